package storage

import (
	"context"

	"github.com/LidiaAlemu/meditrack/internal"
)

// VitalLogRepository is the port for vital-sign persistence. List results are
// newest-first by record date. Delete returns internal.ErrNotFound when the
// id is absent or owned by another user.
type VitalLogRepository interface {
	SaveVitalLog(ctx context.Context, log *internal.VitalLog) error
	ListVitalLogs(ctx context.Context, userID string, limit int) ([]internal.VitalLog, error)
	DeleteVitalLog(ctx context.Context, userID, id string) error
}

// MedicationRepository is the port for medication persistence. Get, Update
// and Delete are owner-scoped and return internal.ErrNotFound for records
// that are absent or belong to someone else.
type MedicationRepository interface {
	SaveMedication(ctx context.Context, med *internal.Medication) error
	ListMedications(ctx context.Context, userID string) ([]internal.Medication, error)
	GetMedication(ctx context.Context, userID, id string) (*internal.Medication, error)
	UpdateMedication(ctx context.Context, med *internal.Medication) error
	DeleteMedication(ctx context.Context, userID, id string) error
}
