package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql"

	"rncheck/internal/config"
	"rncheck/internal/domain"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// MySQLStorage archives every report in a MySQL table
type MySQLStorage struct {
	db    *sql.DB
	table string
}

// DSN builds the connection string from DB_* variables. Process environment
// wins over the app's .env, which wins over the defaults.
func DSN(cfg *config.Config) string {
	lookup := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := cfg.Env[key]; v != "" {
			return v
		}
		return fallback
	}

	dsn := mysql.NewConfig()
	dsn.User = lookup("DB_USERNAME", "root")
	dsn.Passwd = lookup("DB_PASSWORD", "")
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(lookup("DB_HOST", "127.0.0.1"), lookup("DB_PORT", "3306"))
	dsn.DBName = lookup("DB_DATABASE", "rncheck")
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	return dsn.FormatDSN()
}

// OpenMySQL connects to the history database and makes sure the table exists
func OpenMySQL(ctx context.Context, cfg *config.Config) (*MySQLStorage, error) {
	table := cfg.History.Table
	if !isValidTableName(table) {
		return nil, fmt.Errorf("invalid history table name: %s", table)
	}

	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	s := &MySQLStorage{db: db, table: table}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *MySQLStorage) migrate(ctx context.Context) error {
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"run_id CHAR(36) NOT NULL PRIMARY KEY,"+
		"suite VARCHAR(16) NOT NULL,"+
		"app_root VARCHAR(512) NOT NULL,"+
		"verdict VARCHAR(16) NOT NULL,"+
		"passed INT NOT NULL,"+
		"total INT NOT NULL,"+
		"started_at DATETIME(3) NOT NULL,"+
		"duration_seconds DOUBLE NOT NULL,"+
		"report JSON NOT NULL,"+
		"INDEX idx_started_at (started_at))", s.table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

// Save inserts the report as a new run
func (s *MySQLStorage) Save(report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	query := fmt.Sprintf("INSERT INTO `%s` "+
		"(run_id, suite, app_root, verdict, passed, total, started_at, duration_seconds, report) "+
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)", s.table)
	_, err = s.db.Exec(query,
		report.RunID, report.Suite, report.AppRoot, string(report.Verdict),
		report.Passed, report.Total, report.StartedAt.UTC(), report.Seconds, data,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", report.RunID, err)
	}
	return nil
}

// Load returns the most recent run
func (s *MySQLStorage) Load() (*domain.Report, error) {
	query := fmt.Sprintf("SELECT report FROM `%s` ORDER BY started_at DESC LIMIT 1", s.table)
	var data []byte
	if err := s.db.QueryRow(query).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoReport
		}
		return nil, fmt.Errorf("load latest run: %w", err)
	}
	return decodeReport(data)
}

// Recent lists the latest runs, newest first
func (s *MySQLStorage) Recent(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	query := fmt.Sprintf("SELECT run_id, suite, app_root, verdict, passed, total, started_at, duration_seconds "+
		"FROM `%s` ORDER BY started_at DESC LIMIT ?", s.table)

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var verdict string
		if err := rows.Scan(&r.RunID, &r.Suite, &r.AppRoot, &verdict, &r.Passed, &r.Total, &r.StartedAt, &r.Seconds); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Verdict = domain.Verdict(verdict)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the database handle
func (s *MySQLStorage) Close() error {
	return s.db.Close()
}

// isValidTableName only allows plain identifiers, so the name can be quoted into DDL
func isValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}
