package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/tempora/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ScheduleRepo stores generated schedules for later retrieval.
type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Schedule, error)
}
