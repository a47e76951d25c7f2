package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/dochazka/internal/domain"
	"github.com/alexanderramin/dochazka/internal/repository"
	"github.com/alexanderramin/dochazka/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteShiftStore {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSQLiteShiftStore(repository.NewSQLiteShiftRepo(database), testutil.NewTestUoW(database))
}

// storeContract runs the merge rule against any ShiftStore.
func storeContract(t *testing.T, store ShiftStore) {
	ctx := context.Background()

	require.NoError(t, store.Merge(ctx, domain.Shift{Name: "Ana", Seconds: 3}))
	require.NoError(t, store.Merge(ctx, domain.Shift{Name: "Petr", Seconds: 7}))
	require.NoError(t, store.Merge(ctx, domain.Shift{Name: "Ana", Seconds: 5}))
	require.NoError(t, store.Merge(ctx, domain.Shift{Name: "Jana", Seconds: 1}))

	shifts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Shift{
		{Name: "Ana", Seconds: 5},
		{Name: "Petr", Seconds: 7},
		{Name: "Jana", Seconds: 1},
	}, shifts)
}

func TestMemoryShiftStore_Merge(t *testing.T) {
	storeContract(t, NewMemoryShiftStore())
}

func TestSQLiteShiftStore_Merge(t *testing.T) {
	storeContract(t, newSQLiteStore(t))
}

func TestMemoryShiftStore_ListReturnsCopy(t *testing.T) {
	store := NewMemoryShiftStore()
	ctx := context.Background()
	require.NoError(t, store.Merge(ctx, domain.Shift{Name: "Ana", Seconds: 3}))

	shifts, err := store.List(ctx)
	require.NoError(t, err)
	shifts[0].Seconds = 999

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, again[0].Seconds)
}

func TestSQLiteShiftStore_ReplaceKeepsPosition(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.Merge(ctx, domain.Shift{Name: "Ana", Seconds: 3}))
	require.NoError(t, store.Merge(ctx, domain.Shift{Name: "Petr", Seconds: 4}))

	require.NoError(t, store.Merge(ctx, domain.Shift{Name: "Ana", Seconds: 1}))

	shifts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Shift{{Name: "Ana", Seconds: 1}, {Name: "Petr", Seconds: 4}}, shifts)
}

func TestSQLiteShiftStore_RollsBackFailedMerge(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("injected")
	store := NewSQLiteShiftStore(
		repository.NewSQLiteShiftRepo(database),
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: boom},
	)

	err := store.Merge(context.Background(), domain.Shift{Name: "Ana", Seconds: 3})
	assert.ErrorIs(t, err, boom)

	shifts, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shifts)
}

func TestTracker_WithSQLiteStore(t *testing.T) {
	tr, _ := newTestTracker(t, WithShiftStore(newSQLiteStore(t)))
	ctx := context.Background()

	tr.StartShift()
	ticks(tr, 3)
	tr.RenameOpenShift("Ana")
	tr.StopShift()
	require.NoError(t, tr.SaveShift(ctx))

	tr.EditShift(domain.Shift{Name: "Ana", Seconds: 3})
	ticks(tr, 2)
	tr.StopShift()
	require.NoError(t, tr.SaveShift(ctx))

	assert.Equal(t, []domain.Shift{{Name: "Ana", Seconds: 5}}, listShifts(t, tr))
}

func TestTracker_EditShiftClampsNegativeSeconds(t *testing.T) {
	stores := map[string]func(t *testing.T) ShiftStore{
		"memory": func(*testing.T) ShiftStore { return NewMemoryShiftStore() },
		"sqlite": func(t *testing.T) ShiftStore { return newSQLiteStore(t) },
	}
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			storeContract(t, store)
			tr, _ := newTestTracker(t, WithShiftStore(store))
			ctx := context.Background()

			tr.EditShift(domain.Shift{Name: "Eva", Seconds: -3})
			assert.Equal(t, domain.Shift{Name: "Eva", Seconds: 0}, openShift(t, tr))
			tr.StopShift()
			require.NoError(t, tr.SaveShift(ctx))

			shifts, err := store.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.Shift{Name: "Eva", Seconds: 0}, shifts[len(shifts)-1])
		})
	}
}
