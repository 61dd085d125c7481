package storage

import (
	"context"
	"sync"

	"github.com/LidiaAlemu/meditrack/internal"
)

// MemoryStorage keeps all records in mutex-guarded maps with a per-user
// newest-first index. It backs tests, local development, and the in-memory
// half of FileStorage.
type MemoryStorage struct {
	mu           sync.RWMutex
	vitals       map[string]*internal.VitalLog
	userVitalIdx map[string][]*internal.VitalLog // userID -> logs sorted by Date descending
	medications  map[string]*internal.Medication
	userMedIdx   map[string][]*internal.Medication // userID -> meds sorted by CreatedAt descending
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		vitals:       make(map[string]*internal.VitalLog),
		userVitalIdx: make(map[string][]*internal.VitalLog),
		medications:  make(map[string]*internal.Medication),
		userMedIdx:   make(map[string][]*internal.Medication),
	}
}

// --- VitalLogRepository ---

func (s *MemoryStorage) SaveVitalLog(ctx context.Context, log *internal.VitalLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vitals[log.ID] = log

	logs := s.userVitalIdx[log.UserID]
	inserted := false
	for i, existing := range logs {
		if existing.Date.Before(log.Date) {
			logs = append(logs[:i], append([]*internal.VitalLog{log}, logs[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		logs = append(logs, log)
	}
	s.userVitalIdx[log.UserID] = logs
	return nil
}

func (s *MemoryStorage) ListVitalLogs(ctx context.Context, userID string, limit int) ([]internal.VitalLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logsPtr := s.userVitalIdx[userID]
	if limit > 0 && len(logsPtr) > limit {
		logsPtr = logsPtr[:limit]
	}
	logs := make([]internal.VitalLog, len(logsPtr))
	for i, l := range logsPtr {
		logs[i] = *l
	}
	return logs, nil
}

func (s *MemoryStorage) DeleteVitalLog(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.vitals[id]
	if !ok || log.UserID != userID {
		return internal.ErrNotFound
	}
	delete(s.vitals, id)
	idx := s.userVitalIdx[userID]
	for i, l := range idx {
		if l.ID == id {
			s.userVitalIdx[userID] = append(idx[:i], idx[i+1:]...)
			break
		}
	}
	return nil
}

// --- MedicationRepository ---

func (s *MemoryStorage) SaveMedication(ctx context.Context, med *internal.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.medications[med.ID] = med

	meds := s.userMedIdx[med.UserID]
	inserted := false
	for i, existing := range meds {
		if existing.CreatedAt.Before(med.CreatedAt) {
			meds = append(meds[:i], append([]*internal.Medication{med}, meds[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		meds = append(meds, med)
	}
	s.userMedIdx[med.UserID] = meds
	return nil
}

func (s *MemoryStorage) ListMedications(ctx context.Context, userID string) ([]internal.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	medsPtr := s.userMedIdx[userID]
	meds := make([]internal.Medication, len(medsPtr))
	for i, m := range medsPtr {
		meds[i] = *m
	}
	return meds, nil
}

func (s *MemoryStorage) GetMedication(ctx context.Context, userID, id string) (*internal.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	med, ok := s.medications[id]
	if !ok || med.UserID != userID {
		return nil, internal.ErrNotFound
	}
	copied := *med
	return &copied, nil
}

func (s *MemoryStorage) UpdateMedication(ctx context.Context, med *internal.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.medications[med.ID]
	if !ok || existing.UserID != med.UserID {
		return internal.ErrNotFound
	}
	*existing = *med
	return nil
}

func (s *MemoryStorage) DeleteMedication(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	med, ok := s.medications[id]
	if !ok || med.UserID != userID {
		return internal.ErrNotFound
	}
	delete(s.medications, id)
	idx := s.userMedIdx[userID]
	for i, m := range idx {
		if m.ID == id {
			s.userMedIdx[userID] = append(idx[:i], idx[i+1:]...)
			break
		}
	}
	return nil
}

// snapshotVitals copies every stored log for persistence.
func (s *MemoryStorage) snapshotVitals() []*internal.VitalLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	logs := make([]*internal.VitalLog, 0, len(s.vitals))
	for _, l := range s.vitals {
		logs = append(logs, l)
	}
	return logs
}

func (s *MemoryStorage) snapshotMedications() []*internal.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meds := make([]*internal.Medication, 0, len(s.medications))
	for _, m := range s.medications {
		meds = append(meds, m)
	}
	return meds
}

// --- Compile-time assertions ---
var _ VitalLogRepository = (*MemoryStorage)(nil)
var _ MedicationRepository = (*MemoryStorage)(nil)
