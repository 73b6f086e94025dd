package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_RecordAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	completedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	session := domain.NewSession("s-1", "Write report", domain.CategoryWork, 25, completedAt)
	require.NoError(t, repo.Record(ctx, session))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "Write report", got.Task)
	assert.Equal(t, domain.CategoryWork, got.Category)
	assert.Equal(t, 25, got.Duration)
	assert.Equal(t, session.Date, got.Date)
	assert.True(t, completedAt.Equal(got.CompletedAt))
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSQLiteRepository_RecordDuplicateKeepsFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Record(ctx, domain.NewSession("dup", "first", domain.CategoryWork, 25, now)))
	require.NoError(t, repo.Record(ctx, domain.NewSession("dup", "second", domain.CategoryHealth, 50, now)))

	got, err := repo.Get(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Task)
}

func TestSQLiteRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	for i, task := range []string{"a", "b", "c"} {
		s := domain.NewSession(task, task, domain.CategoryLearning, 25, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Record(ctx, s))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].Task, all[1].Task, all[2].Task})

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLiteSlot_SetGetRemove(t *testing.T) {
	slot := newTestRepository(t).Slots()

	_, err := slot.Get("tempo-timer-state")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)

	require.NoError(t, slot.Set("tempo-timer-state", "one"))
	require.NoError(t, slot.Set("tempo-timer-state", "two"))

	got, err := slot.Get("tempo-timer-state")
	require.NoError(t, err)
	assert.Equal(t, "two", got)

	require.NoError(t, slot.Remove("tempo-timer-state"))
	_, err = slot.Get("tempo-timer-state")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestNewSQLiteRepositoryForPath_PersistsAcrossReopen(t *testing.T) {
	home := t.TempDir()

	repo, err := NewSQLiteRepositoryForPath(home)
	require.NoError(t, err)
	require.NoError(t, repo.Slots().Set("k", "v"))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepositoryForPath(home)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Slots().Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
