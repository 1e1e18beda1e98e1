package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rncheck/internal/config"
	"rncheck/internal/domain"
)

func TestDSN(t *testing.T) {
	for _, k := range []string{"DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_DATABASE"} {
		t.Setenv(k, "")
	}

	cfg := config.New()
	cfg.Env["DB_HOST"] = "db.internal"
	cfg.Env["DB_PASSWORD"] = "secret"

	parsed, err := mysql.ParseDSN(DSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "db.internal:3306", parsed.Addr)
	assert.Equal(t, "root", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "rncheck", parsed.DBName)
	assert.True(t, parsed.ParseTime)

	t.Setenv("DB_HOST", "from-env")
	parsed, err = mysql.ParseDSN(DSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "from-env:3306", parsed.Addr)
}

func TestIsValidTableName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"check_runs", true},
		{"CheckRuns2", true},
		{"", false},
		{"2runs", false},
		{"runs; DROP TABLE users", false},
		{"runs`", false},
		{"a123456789012345678901234567890123456789012345678901234567890123", true},
		{"a1234567890123456789012345678901234567890123456789012345678901234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidTableName(tt.name))
		})
	}
}

func TestOpenMySQL_RejectsBadTable(t *testing.T) {
	cfg := config.New()
	cfg.History.Table = "bad name"
	_, err := OpenMySQL(context.Background(), cfg)
	assert.Error(t, err)
}

// Runs against a real server when RNCHECK_TEST_MYSQL is set, e.g.
// RNCHECK_TEST_MYSQL=1 DB_HOST=127.0.0.1 DB_DATABASE=rncheck_test
func TestMySQLStorage_RoundTrip(t *testing.T) {
	if os.Getenv("RNCHECK_TEST_MYSQL") == "" {
		t.Skip("RNCHECK_TEST_MYSQL not set")
	}

	cfg := config.New()
	cfg.History.Table = "check_runs_test"
	ctx := context.Background()

	st, err := OpenMySQL(ctx, cfg)
	require.NoError(t, err)
	defer st.Close()
	_, _ = st.db.ExecContext(ctx, "DELETE FROM `check_runs_test`")

	for i, verdict := range []domain.Verdict{domain.VerdictFailure, domain.VerdictSuccess} {
		report := &domain.Report{
			RunID:     []string{"11111111-1111-1111-1111-111111111111", "22222222-2222-2222-2222-222222222222"}[i],
			Suite:     domain.SuiteFull,
			AppRoot:   "/app",
			Verdict:   verdict,
			StartedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, st.Save(report))
	}

	latest, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictSuccess, latest.Verdict)

	runs, err := st.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", runs[0].RunID)
}
