package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/dochazka/internal/db"
	"github.com/alexanderramin/dochazka/internal/domain"
	"github.com/alexanderramin/dochazka/internal/repository"
	"github.com/google/uuid"
)

// SQLiteShiftStore is the durable ShiftStore. Each merge is one
// transaction so the lookup and the write cannot interleave.
type SQLiteShiftStore struct {
	shifts repository.ShiftRepo
	uow    db.UnitOfWork
	now    func() time.Time
}

func NewSQLiteShiftStore(shifts repository.ShiftRepo, uow db.UnitOfWork) *SQLiteShiftStore {
	return &SQLiteShiftStore{
		shifts: shifts,
		uow:    uow,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *SQLiteShiftStore) Merge(ctx context.Context, shift domain.Shift) error {
	now := s.now()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txShifts := repository.NewSQLiteShiftRepo(tx)

		existing, err := txShifts.GetByName(ctx, shift.Name)
		switch {
		case err == nil:
			existing.Shift = shift
			existing.UpdatedAt = now
			return txShifts.Update(ctx, existing)
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		pos, err := txShifts.NextPosition(ctx)
		if err != nil {
			return err
		}
		return txShifts.Create(ctx, &domain.ShiftRecord{
			ID:        uuid.New().String(),
			Position:  pos,
			Shift:     shift,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
}

func (s *SQLiteShiftStore) List(ctx context.Context) ([]domain.Shift, error) {
	records, err := s.shifts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Shift, 0, len(records))
	for _, r := range records {
		out = append(out, r.Shift)
	}
	return out, nil
}
