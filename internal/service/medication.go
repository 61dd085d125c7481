package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/storage"
)

// DefaultFrequency is applied when a request omits the frequency.
const DefaultFrequency = "once daily"

type MedicationRequest struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	Frequency string `json:"frequency" validate:"omitempty,oneof='once daily' 'twice daily' 'three times daily' 'as needed'"`
}

// ValidateMedicationRequest trims name and dosage in place before checking,
// so whitespace-only values fail the required rule.
func ValidateMedicationRequest(req *MedicationRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Dosage = strings.TrimSpace(req.Dosage)
	return validate.Struct(req)
}

func CreateMedication(ctx context.Context, repo storage.MedicationRepository, user *internal.User, req *MedicationRequest) (*internal.Medication, error) {
	frequency := req.Frequency
	if frequency == "" {
		frequency = DefaultFrequency
	}
	med := &internal.Medication{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: frequency,
		IsTaken:   false,
		CreatedAt: time.Now(),
	}
	if err := repo.SaveMedication(ctx, med); err != nil {
		return nil, err
	}
	return med, nil
}

func ListMedications(ctx context.Context, repo storage.MedicationRepository, user *internal.User) ([]internal.Medication, error) {
	return repo.ListMedications(ctx, user.ID)
}

// ToggleMedicationTaken flips isTaken. LastTaken is stamped only on the
// false→true transition and kept as a historical marker when toggling back.
func ToggleMedicationTaken(ctx context.Context, repo storage.MedicationRepository, user *internal.User, id string) (*internal.Medication, error) {
	med, err := repo.GetMedication(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}

	med.IsTaken = !med.IsTaken
	if med.IsTaken {
		now := time.Now()
		med.LastTaken = &now
	}

	if err := repo.UpdateMedication(ctx, med); err != nil {
		return nil, err
	}
	return med, nil
}

func DeleteMedication(ctx context.Context, repo storage.MedicationRepository, user *internal.User, id string) error {
	return repo.DeleteMedication(ctx, user.ID, id)
}
