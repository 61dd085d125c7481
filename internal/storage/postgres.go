package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LidiaAlemu/meditrack/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- VitalLogRepository ---

func (p *PostgresStorage) SaveVitalLog(ctx context.Context, log *internal.VitalLog) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO vital_logs (id, user_id, systolic, diastolic, heart_rate, weight, blood_sugar, notes, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		log.ID, log.UserID, log.Systolic, log.Diastolic, log.HeartRate, log.Weight, log.BloodSugar, log.Notes, log.Date, log.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert vital log: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListVitalLogs(ctx context.Context, userID string, limit int) ([]internal.VitalLog, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, systolic, diastolic, heart_rate, weight, blood_sugar, notes, date, created_at
		 FROM vital_logs WHERE user_id = $1 ORDER BY date DESC LIMIT $2`, userID, limit)
	if err != nil {
		p.logger.Errorf("failed to query vital logs: %v", err)
		return nil, err
	}
	defer rows.Close()

	logs := []internal.VitalLog{}
	for rows.Next() {
		var l internal.VitalLog
		err := rows.Scan(&l.ID, &l.UserID, &l.Systolic, &l.Diastolic, &l.HeartRate, &l.Weight, &l.BloodSugar, &l.Notes, &l.Date, &l.CreatedAt)
		if err != nil {
			p.logger.Errorf("failed to scan vital log: %v", err)
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (p *PostgresStorage) DeleteVitalLog(ctx context.Context, userID, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM vital_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		p.logger.Errorf("failed to delete vital log: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return internal.ErrNotFound
	}
	return nil
}

// --- MedicationRepository ---

func (p *PostgresStorage) SaveMedication(ctx context.Context, med *internal.Medication) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO medications (id, user_id, name, dosage, frequency, is_taken, last_taken, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		med.ID, med.UserID, med.Name, med.Dosage, med.Frequency, med.IsTaken, med.LastTaken, med.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert medication: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListMedications(ctx context.Context, userID string) ([]internal.Medication, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, name, dosage, frequency, is_taken, last_taken, created_at
		 FROM medications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query medications: %v", err)
		return nil, err
	}
	defer rows.Close()

	meds := []internal.Medication{}
	for rows.Next() {
		var m internal.Medication
		err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.IsTaken, &m.LastTaken, &m.CreatedAt)
		if err != nil {
			p.logger.Errorf("failed to scan medication: %v", err)
			return nil, err
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}

func (p *PostgresStorage) GetMedication(ctx context.Context, userID, id string) (*internal.Medication, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, user_id, name, dosage, frequency, is_taken, last_taken, created_at
		 FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	var m internal.Medication
	if err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.IsTaken, &m.LastTaken, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrNotFound
		}
		p.logger.Errorf("failed to get medication: %v", err)
		return nil, err
	}
	return &m, nil
}

func (p *PostgresStorage) UpdateMedication(ctx context.Context, med *internal.Medication) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE medications SET is_taken = $1, last_taken = $2 WHERE id = $3 AND user_id = $4`,
		med.IsTaken, med.LastTaken, med.ID, med.UserID)
	if err != nil {
		p.logger.Errorf("failed to update medication: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return internal.ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) DeleteMedication(ctx context.Context, userID, id string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		p.logger.Errorf("failed to delete medication: %v", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return internal.ErrNotFound
	}
	return nil
}

// --- Compile-time assertions ---
var _ VitalLogRepository = (*PostgresStorage)(nil)
var _ MedicationRepository = (*PostgresStorage)(nil)
