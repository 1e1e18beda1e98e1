package storage

import (
	"context"
	"time"

	"rncheck/internal/config"
	"rncheck/internal/domain"
)

// Storage persists and loads run reports (e.g. for the report viewer).
type Storage interface {
	Save(report *domain.Report) error
	Load() (*domain.Report, error)
}

// History is a Storage that keeps every run and can list them
type History interface {
	Storage
	Recent(ctx context.Context, limit int) ([]RunSummary, error)
	Close() error
}

// RunSummary is one row of run history
type RunSummary struct {
	RunID     string
	Suite     string
	AppRoot   string
	Verdict   domain.Verdict
	Passed    int
	Total     int
	StartedAt time.Time
	Seconds   float64
}

// Summarize reduces a report to its history row
func Summarize(report *domain.Report) RunSummary {
	return RunSummary{
		RunID:     report.RunID,
		Suite:     report.Suite,
		AppRoot:   report.AppRoot,
		Verdict:   report.Verdict,
		Passed:    report.Passed,
		Total:     report.Total,
		StartedAt: report.StartedAt,
		Seconds:   report.Seconds,
	}
}

// JSONStorage stores the last report in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
