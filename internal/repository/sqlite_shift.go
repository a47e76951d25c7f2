package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/dochazka/internal/db"
	"github.com/alexanderramin/dochazka/internal/domain"
)

// SQLiteShiftRepo implements ShiftRepo on SQLite.
type SQLiteShiftRepo struct {
	db db.DBTX
}

// NewSQLiteShiftRepo creates a repo over a *sql.DB or a *sql.Tx.
func NewSQLiteShiftRepo(conn db.DBTX) *SQLiteShiftRepo {
	return &SQLiteShiftRepo{db: conn}
}

const shiftColumns = `id, position, name, seconds, created_at, updated_at`

func (r *SQLiteShiftRepo) Create(ctx context.Context, s *domain.ShiftRecord) error {
	query := `INSERT INTO shifts (` + shiftColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Position,
		s.Shift.Name,
		s.Shift.Seconds,
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting shift: %w", err)
	}
	return nil
}

func (r *SQLiteShiftRepo) GetByName(ctx context.Context, name string) (*domain.ShiftRecord, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)

	s, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("shift %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning shift: %w", err)
	}
	return s, nil
}

// Update rewrites name, seconds and updated_at of the row with s.ID.
// Position and created_at are immutable.
func (r *SQLiteShiftRepo) Update(ctx context.Context, s *domain.ShiftRecord) error {
	query := `UPDATE shifts SET name = ?, seconds = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, s.Shift.Name, s.Shift.Seconds, formatTime(s.UpdatedAt), s.ID)
	if err != nil {
		return fmt.Errorf("updating shift: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating shift: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("shift %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteShiftRepo) List(ctx context.Context) ([]*domain.ShiftRecord, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*domain.ShiftRecord
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shift row: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}
	return shifts, nil
}

// NextPosition returns the position an appended shift should take.
func (r *SQLiteShiftRepo) NextPosition(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM shifts`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("computing next shift position: %w", err)
	}
	return next, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(row rowScanner) (*domain.ShiftRecord, error) {
	var s domain.ShiftRecord
	var createdAt, updatedAt string

	if err := row.Scan(&s.ID, &s.Position, &s.Shift.Name, &s.Shift.Seconds, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if s.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
