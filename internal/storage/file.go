package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/LidiaAlemu/meditrack/internal"
)

// FileStorage layers debounced JSON persistence over MemoryStorage. Writes
// go through the in-memory maps immediately; a background worker flushes
// each file at most once per save delay. Close flushes synchronously.
type FileStorage struct {
	mem            *MemoryStorage
	vitalsFile     string
	medsFile       string
	saveVitalsChan chan struct{}
	saveMedsChan   chan struct{}
	shutdownChan   chan struct{}
	saveDelay      time.Duration
	logger         internal.Logger
}

func NewFileStorage(vitalsFile, medsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		mem:            NewMemoryStorage(),
		vitalsFile:     vitalsFile,
		medsFile:       medsFile,
		saveVitalsChan: make(chan struct{}, 1),
		saveMedsChan:   make(chan struct{}, 1),
		shutdownChan:   make(chan struct{}),
		saveDelay:      500 * time.Millisecond,
		logger:         logger,
	}

	if err := s.loadVitals(); err != nil {
		logger.Errorf("storage: failed to load vital logs: %v", err)
		return nil, err
	}
	if err := s.loadMedications(); err != nil {
		logger.Errorf("storage: failed to load medications: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveVitalsChan, s.saveVitals, "vital logs")
	go s.saveWorker(s.saveMedsChan, s.saveMedications, "medications")

	return s, nil
}

func (s *FileStorage) loadVitals() error {
	file, err := os.Open(s.vitalsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var logs []*internal.VitalLog
	if err := json.NewDecoder(file).Decode(&logs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for _, l := range logs {
		if err := s.mem.SaveVitalLog(context.Background(), l); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStorage) loadMedications() error {
	file, err := os.Open(s.medsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var meds []*internal.Medication
	if err := json.NewDecoder(file).Decode(&meds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for _, m := range meds {
		if err := s.mem.SaveMedication(context.Background(), m); err != nil {
			return err
		}
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveVitals() error {
	return atomicWriteFileJSON(s.vitalsFile, s.mem.snapshotVitals())
}

func (s *FileStorage) saveMedications() error {
	meds := s.mem.snapshotMedications()
	if meds == nil {
		meds = make([]*internal.Medication, 0)
	}
	return atomicWriteFileJSON(s.medsFile, meds)
}

func (s *FileStorage) saveWorker(signal <-chan struct{}, save func() error, what string) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func signalSave(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	// Flush pending data synchronously on shutdown
	if err := s.saveVitals(); err != nil {
		return err
	}
	return s.saveMedications()
}

// --- VitalLogRepository ---

func (s *FileStorage) SaveVitalLog(ctx context.Context, log *internal.VitalLog) error {
	if err := s.mem.SaveVitalLog(ctx, log); err != nil {
		return err
	}
	signalSave(s.saveVitalsChan)
	return nil
}

func (s *FileStorage) ListVitalLogs(ctx context.Context, userID string, limit int) ([]internal.VitalLog, error) {
	return s.mem.ListVitalLogs(ctx, userID, limit)
}

func (s *FileStorage) DeleteVitalLog(ctx context.Context, userID, id string) error {
	if err := s.mem.DeleteVitalLog(ctx, userID, id); err != nil {
		return err
	}
	signalSave(s.saveVitalsChan)
	return nil
}

// --- MedicationRepository ---

func (s *FileStorage) SaveMedication(ctx context.Context, med *internal.Medication) error {
	if err := s.mem.SaveMedication(ctx, med); err != nil {
		return err
	}
	signalSave(s.saveMedsChan)
	return nil
}

func (s *FileStorage) ListMedications(ctx context.Context, userID string) ([]internal.Medication, error) {
	return s.mem.ListMedications(ctx, userID)
}

func (s *FileStorage) GetMedication(ctx context.Context, userID, id string) (*internal.Medication, error) {
	return s.mem.GetMedication(ctx, userID, id)
}

func (s *FileStorage) UpdateMedication(ctx context.Context, med *internal.Medication) error {
	if err := s.mem.UpdateMedication(ctx, med); err != nil {
		return err
	}
	signalSave(s.saveMedsChan)
	return nil
}

func (s *FileStorage) DeleteMedication(ctx context.Context, userID, id string) error {
	if err := s.mem.DeleteMedication(ctx, userID, id); err != nil {
		return err
	}
	signalSave(s.saveMedsChan)
	return nil
}

// --- Compile-time assertions ---
var _ VitalLogRepository = (*FileStorage)(nil)
var _ MedicationRepository = (*FileStorage)(nil)
