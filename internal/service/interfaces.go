package service

import (
	"context"

	"github.com/alexanderramin/dochazka/internal/domain"
)

// ShiftStore holds the saved shift list. Merge replaces the entry with the
// same name in place, or appends when the name is new. There is no removal.
type ShiftStore interface {
	Merge(ctx context.Context, s domain.Shift) error
	List(ctx context.Context) ([]domain.Shift, error)
}
