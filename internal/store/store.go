package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/budai/ent"

	// Postgres driver for production deployments.
	_ "github.com/lib/pq"
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Sentinel errors returned by repositories.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store for driver ("sqlite" or "postgres") at dsn.
// It applies SQLite pragmas where relevant and runs auto-migration.
func Open(driver, dsn string) (*Store, error) {
	var entDialect string
	switch driver {
	case DriverSQLite, "":
		driver, entDialect = DriverSQLite, dialect.SQLite
	case DriverPostgres:
		entDialect = dialect.Postgres
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == DriverSQLite {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	drv := entsql.OpenDB(entDialect, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// WithTx runs fn inside a transaction. Repositories obtained from the
// Store passed to fn share the transaction. fn's error rolls back.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(&Store{db: s.db, client: tx.Client()}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) Users() UserRepo             { return &userRepo{client: s.client} }
func (s *Store) Children() ChildRepo         { return &childRepo{client: s.client} }
func (s *Store) Assessments() AssessmentRepo { return &assessmentRepo{client: s.client} }
func (s *Store) Tasks() TaskRepo             { return &taskRepo{client: s.client} }
func (s *Store) Badges() BadgeRepo           { return &badgeRepo{client: s.client} }
func (s *Store) CoCreate() CoCreateRepo      { return &coCreateRepo{client: s.client} }
func (s *Store) Reports() ReportRepo         { return &reportRepo{client: s.client} }
func (s *Store) Growth() GrowthRepo          { return &growthRepo{client: s.client} }
func (s *Store) Works() WorkRepo             { return &workRepo{client: s.client} }
func (s *Store) Coach() CoachRepo            { return &coachRepo{client: s.client} }
func (s *Store) Events() EventRepo           { return &eventRepo{client: s.client} }

// applyPragmas configures SQLite for a single-node deployment.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultSQLitePath resolves the SQLite file path in priority order:
// 1. BUDAI_DB environment variable
// 2. $XDG_DATA_HOME/budai/budai.db
// 3. ~/.local/share/budai/budai.db
func DefaultSQLitePath() (string, error) {
	if p := os.Getenv("BUDAI_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "budai", "budai.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// SQLiteDSN turns a file path into a DSN with foreign keys enabled for
// every pooled connection.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// mapErr translates ent errors into the package sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case ent.IsConstraintError(err):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
