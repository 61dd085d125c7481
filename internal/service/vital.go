package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/storage"
)

var validate = validator.New()

// VitalLogListLimit caps how many logs a single list call returns.
const VitalLogListLimit = 50

// VitalLogRequest carries a new measurement. All metrics are optional but
// range-checked when present; the ranges mirror what the intake form allows.
type VitalLogRequest struct {
	Systolic   *int       `json:"systolic" validate:"omitempty,gte=50,lte=250"`
	Diastolic  *int       `json:"diastolic" validate:"omitempty,gte=30,lte=150"`
	HeartRate  *int       `json:"heartRate" validate:"omitempty,gte=30,lte=250"`
	Weight     *float64   `json:"weight" validate:"omitempty,gte=20,lte=300"`
	BloodSugar *int       `json:"bloodSugar" validate:"omitempty,gte=50,lte=500"`
	Notes      string     `json:"notes" validate:"omitempty,max=500"`
	Date       *time.Time `json:"date"`
}

func ValidateVitalLogRequest(body *VitalLogRequest) error {
	return validate.Struct(body)
}

func CreateVitalLog(ctx context.Context, repo storage.VitalLogRepository, user *internal.User, body *VitalLogRequest) (*internal.VitalLog, error) {
	now := time.Now()
	date := now
	if body.Date != nil {
		date = *body.Date
	}
	log := &internal.VitalLog{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Systolic:   body.Systolic,
		Diastolic:  body.Diastolic,
		HeartRate:  body.HeartRate,
		Weight:     body.Weight,
		BloodSugar: body.BloodSugar,
		Notes:      body.Notes,
		Date:       date,
		CreatedAt:  now,
	}
	if err := repo.SaveVitalLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func ListVitalLogs(ctx context.Context, repo storage.VitalLogRepository, user *internal.User, limit int) ([]internal.VitalLog, error) {
	if limit <= 0 || limit > VitalLogListLimit {
		limit = VitalLogListLimit
	}
	return repo.ListVitalLogs(ctx, user.ID, limit)
}

func DeleteVitalLog(ctx context.Context, repo storage.VitalLogRepository, user *internal.User, id string) error {
	return repo.DeleteVitalLog(ctx, user.ID, id)
}
