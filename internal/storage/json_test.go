package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rncheck/internal/config"
	"rncheck/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.AppRoot = t.TempDir()
	st := NewJSONStorage(cfg)

	_, err := st.Load()
	require.ErrorIs(t, err, domain.ErrNoReport)

	cat := domain.NewCategory("metro_server", "Metro Server")
	cat.Add("Status Endpoint", domain.Fail, "Connection failed: refused")
	cat.Aggregate(false)
	report := &domain.Report{
		RunID:      "run-1",
		Suite:      domain.SuiteFull,
		AppRoot:    cfg.AppRoot,
		Categories: []*domain.Category{cat},
		StartedAt:  time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
	report.DecideByRatio(0.7)
	report.Finish(1500 * time.Millisecond)

	require.NoError(t, st.Save(report))
	assert.FileExists(t, filepath.Join(cfg.AppRoot, "storage", "rncheck-report.json"))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "run-1", loaded.RunID)
	assert.Equal(t, domain.VerdictFailure, loaded.Verdict)
	assert.Equal(t, 1.5, loaded.Seconds)
	require.Len(t, loaded.Categories, 1)
	assert.Equal(t, domain.StatusFail, loaded.Categories[0].Status)
	assert.Equal(t, "Connection failed: refused", loaded.Categories[0].Failures()[0].Message)
}

func TestJSONStorage_LoadCorrupt(t *testing.T) {
	cfg := config.New()
	cfg.AppRoot = t.TempDir()
	path := cfg.GetOutputPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := NewJSONStorage(cfg).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoReport)
}
