package storage

import (
	"errors"

	"github.com/LidiaAlemu/meditrack/internal"
	"github.com/LidiaAlemu/meditrack/internal/config"
)

func NewMemoryRepositories() (VitalLogRepository, MedicationRepository) {
	s := NewMemoryStorage()
	return s, s
}

func NewFileRepositories(vitalsFile, medsFile string, logger internal.Logger) (VitalLogRepository, MedicationRepository, error) {
	s, err := NewFileStorage(vitalsFile, medsFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, s, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (VitalLogRepository, MedicationRepository, error) {
	s, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, s, nil
}

func NewMongoRepositories(uri, dbName string, logger internal.Logger) (VitalLogRepository, MedicationRepository, error) {
	s, err := NewMongoStorage(uri, dbName, logger)
	if err != nil {
		return nil, nil, err
	}
	return s, s, nil
}

// FromConfig selects the backend. The returned closer flushes or disconnects
// the backend; it is a no-op for backends without teardown.
func FromConfig(cfg *config.Config, logger internal.Logger) (VitalLogRepository, MedicationRepository, func() error, error) {
	noop := func() error { return nil }
	switch cfg.StorageBackend {
	case "memory":
		vitals, meds := NewMemoryRepositories()
		return vitals, meds, noop, nil
	case "file":
		s, err := NewFileStorage(cfg.VitalsFile, cfg.MedicationsFile, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s, s.Close, nil
	case "postgres":
		s, err := NewPostgresStorage(cfg.PostgresDSN, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s, s.Close, nil
	case "mongo":
		s, err := NewMongoStorage(cfg.MongoURI, cfg.MongoDB, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s, s.Close, nil
	}
	return nil, nil, nil, errors.New("storage: unknown backend " + cfg.StorageBackend)
}
