package service

import (
	"context"
	"sync"

	"github.com/alexanderramin/dochazka/internal/domain"
)

// MemoryShiftStore is the volatile ShiftStore; its contents are lost with
// the process.
type MemoryShiftStore struct {
	mu     sync.RWMutex
	shifts domain.ShiftList
}

func NewMemoryShiftStore() *MemoryShiftStore {
	return &MemoryShiftStore{}
}

func (m *MemoryShiftStore) Merge(_ context.Context, s domain.Shift) error {
	m.mu.Lock()
	m.shifts = m.shifts.Merge(s)
	m.mu.Unlock()
	return nil
}

func (m *MemoryShiftStore) List(context.Context) ([]domain.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shifts.Clone(), nil
}
