package repository

import (
	"context"

	"github.com/alexanderramin/dochazka/internal/domain"
)

// ShiftRepo persists saved shifts in list order.
type ShiftRepo interface {
	Create(ctx context.Context, r *domain.ShiftRecord) error
	GetByName(ctx context.Context, name string) (*domain.ShiftRecord, error)
	Update(ctx context.Context, r *domain.ShiftRecord) error
	List(ctx context.Context) ([]*domain.ShiftRecord, error)
	NextPosition(ctx context.Context) (int, error)
}
