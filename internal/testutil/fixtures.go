package testutil

import (
	"time"

	"github.com/alexanderramin/dochazka/internal/domain"
	"github.com/google/uuid"
)

// ShiftOption customises a fixture record.
type ShiftOption func(*domain.ShiftRecord)

func WithSeconds(n int) ShiftOption {
	return func(r *domain.ShiftRecord) {
		r.Shift.Seconds = n
	}
}

func WithPosition(p int) ShiftOption {
	return func(r *domain.ShiftRecord) {
		r.Position = p
	}
}

// NewTestShiftRecord returns a record at position 0 with a fresh ID.
func NewTestShiftRecord(name string, opts ...ShiftOption) *domain.ShiftRecord {
	now := time.Now().UTC()
	r := &domain.ShiftRecord{
		ID:        uuid.New().String(),
		Shift:     domain.Shift{Name: name},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
