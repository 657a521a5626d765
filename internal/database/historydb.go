package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/policyscan/policyscan/internal/model"
)

// HistoryDB provides SQLite-based storage for export history.
// It manages connection pooling and provides methods for recording and
// listing exports.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created;
// otherwise a missing database is an error.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "policyscan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to forbid creating new files and
	// mode=rwc to allow it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports only one writer; readers don't need more here either
	// because history queries are tiny.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Export records store one row per completed report export
	CREATE TABLE IF NOT EXISTS exports (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		title TEXT NOT NULL,
		overall_score INTEGER,
		grade TEXT,
		critical_count INTEGER DEFAULT 0,
		high_count INTEGER DEFAULT 0,
		medium_count INTEGER DEFAULT 0,
		low_count INTEGER DEFAULT 0,
		format TEXT NOT NULL,
		output_path TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_exports_source ON exports(source);
	CREATE INDEX IF NOT EXISTS idx_exports_created ON exports(created_at);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// ExportRecord represents one stored export.
type ExportRecord struct {
	ID            string
	Source        string
	Title         string
	OverallScore  int
	Grade         string
	CriticalCount int
	HighCount     int
	MediumCount   int
	LowCount      int
	Format        string
	OutputPath    string
	CreatedAt     time.Time
}

// NewExportRecord builds a record from a completed export.
// Score and grade are zero-valued when the analysis carries no scorecard.
func NewExportRecord(res *model.AnalysisResult, format, outputPath string) ExportRecord {
	rec := ExportRecord{
		ID:            uuid.NewString(),
		Source:        res.Source,
		Title:         res.Source,
		Format:        format,
		OutputPath:    outputPath,
		CriticalCount: res.CountBySeverity(model.SeverityCritical),
		HighCount:     res.CountBySeverity(model.SeverityHigh),
		MediumCount:   res.CountBySeverity(model.SeverityMedium),
		LowCount:      res.CountBySeverity(model.SeverityLow),
	}
	if res.Scorecard != nil {
		rec.OverallScore = res.Scorecard.Overall()
		rec.Grade = res.Scorecard.LetterGrade()
	}
	return rec
}

// InsertExport inserts an export record. A missing ID is assigned.
func (hdb *HistoryDB) InsertExport(ctx context.Context, record *ExportRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
	INSERT INTO exports (id, source, title, overall_score, grade,
		critical_count, high_count, medium_count, low_count,
		format, output_path)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := hdb.db.ExecContext(ctx, query,
		record.ID, record.Source, record.Title, record.OverallScore, record.Grade,
		record.CriticalCount, record.HighCount, record.MediumCount, record.LowCount,
		record.Format, record.OutputPath,
	)
	if err != nil {
		return fmt.Errorf("failed to insert export record: %w", err)
	}
	return nil
}

// ListExports returns the most recent exports, newest first.
func (hdb *HistoryDB) ListExports(ctx context.Context, limit int) ([]ExportRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT id, source, title, overall_score, grade,
		critical_count, high_count, medium_count, low_count,
		format, output_path, created_at
	FROM exports
	ORDER BY created_at DESC, id
	LIMIT ?
	`
	rows, err := hdb.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query export history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []ExportRecord
	for rows.Next() {
		var rec ExportRecord
		if err := rows.Scan(
			&rec.ID, &rec.Source, &rec.Title, &rec.OverallScore, &rec.Grade,
			&rec.CriticalCount, &rec.HighCount, &rec.MediumCount, &rec.LowCount,
			&rec.Format, &rec.OutputPath, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate export history: %w", err)
	}
	return records, nil
}

// CountExports returns the total number of recorded exports.
func (hdb *HistoryDB) CountExports(ctx context.Context) (int, error) {
	var count int
	if err := hdb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exports").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count exports: %w", err)
	}
	return count, nil
}
