package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempora/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (id, duration, goals, available_hours, considerations, body, model, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Duration,
		s.Goals,
		s.AvailableHours,
		s.Considerations,
		s.Body,
		s.Model,
		string(s.Source),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT id, duration, goals, available_hours, considerations, body, model, source, created_at
		FROM schedules WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanSchedule(row)
}

func (r *SQLiteScheduleRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Schedule, error) {
	query := `SELECT id, duration, goals, available_hours, considerations, body, model, source, created_at
		FROM schedules ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		s, err := scanScheduleRow(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	return schedules, nil
}

func scanSchedule(row *sql.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	var source, createdAtStr string

	err := row.Scan(&s.ID, &s.Duration, &s.Goals, &s.AvailableHours,
		&s.Considerations, &s.Body, &s.Model, &source, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}

	return populateSchedule(&s, source, createdAtStr)
}

func scanScheduleRow(rows *sql.Rows) (*domain.Schedule, error) {
	var s domain.Schedule
	var source, createdAtStr string

	err := rows.Scan(&s.ID, &s.Duration, &s.Goals, &s.AvailableHours,
		&s.Considerations, &s.Body, &s.Model, &source, &createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning schedule: %w", err)
	}

	return populateSchedule(&s, source, createdAtStr)
}

func populateSchedule(s *domain.Schedule, source, createdAtStr string) (*domain.Schedule, error) {
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule created_at: %w", err)
	}
	s.Source = domain.ScoreSource(source)
	s.CreatedAt = createdAt
	return s, nil
}
