package repositoryImp

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hosammostafait/AICareerAdvisor/database"
	"github.com/hosammostafait/AICareerAdvisor/entities"
)

func TestGenerationRepo(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	repo := New(db)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	logs := []entities.GenerationLog{
		{ID: "a", Outcome: "ok", Tools: 5, CreatedAt: base},
		{ID: "b", Outcome: "ok", Tools: 6, CreatedAt: base.Add(time.Minute)},
		{ID: "c", Outcome: "invalid_credential", CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range logs {
		require.NoError(t, repo.Create(&logs[i]))
	}

	counts, err := repo.CountByOutcome()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"ok": 2, "invalid_credential": 1}, counts)

	recent, err := repo.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)
}

func TestGenerationRepo_Empty(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)

	counts, err := New(db).CountByOutcome()
	require.NoError(t, err)
	assert.Empty(t, counts)
}
