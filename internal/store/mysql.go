package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/go-sql-driver/mysql"
	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
)

// Config defines configurations to connect database
type Config struct {
	DSN                string `mapstructure:"dsn"`
	Automigrate        bool   `mapstructure:"automigrate"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
	TLSCAPath          string `mapstructure:"tls_ca_path"`
}

// MYSQLStore implements methods to access MYSQL database
type MYSQLStore struct {
	// db is used for executing queries
	db    dependency.DB
	txDB  txDB
	ts    time.Time
	close context.CancelFunc
}

// registerTLSConfig registers the CA from cfg.TLSCAPath under the "custom" name,
// so a DSN can reference it with tls=custom.
func registerTLSConfig(cfg Config) error {
	if cfg.TLSCAPath == "" {
		return nil
	}
	caCert, err := os.ReadFile(cfg.TLSCAPath)
	if err != nil {
		return fmt.Errorf("failed to read CA certificate from %s: %w", cfg.TLSCAPath, err)
	}
	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return fmt.Errorf("failed to parse CA certificate")
	}
	slog.Default().Info("using CA certificate from file", "path", cfg.TLSCAPath)
	return mysql.RegisterTLSConfig("custom", &tls.Config{RootCAs: caCertPool})
}

// prepareDSN forces the driver options the store relies on: DATETIME columns
// scan into time.Time, updates report matched rather than changed rows and
// the session compares TIMESTAMP columns in UTC.
func prepareDSN(dsn string) (string, error) {
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}
	mc.ParseTime = true
	mc.ClientFoundRows = true
	if mc.Params == nil {
		mc.Params = map[string]string{}
	}
	mc.Params["time_zone"] = "'+00:00'"
	if mc.Loc == nil {
		mc.Loc = time.UTC
	}
	return mc.FormatDSN(), nil
}

// New connects to the database, applies migrations and returns a new MYSQLStore object.
func New(ctx context.Context, cfg Config) (*MYSQLStore, error) {
	if err := registerTLSConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to register TLS config: %w", err)
	}

	dsn, err := prepareDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	d, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database : %v", err)
	}

	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(2 * time.Minute)
	d.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Automigrate {
		slog.Default().InfoContext(ctx, "applying migrations")
		migrateCtx, migrateCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer migrateCancel()
		if err := MigrateWithContext(migrateCtx, d.Unsafe().DB); err != nil {
			d.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return newStore(ctx, d), nil
}

// NewWithDB wraps an already opened connection pool. It does not ping or migrate.
func NewWithDB(ctx context.Context, d *sqlx.DB) *MYSQLStore {
	return newStore(ctx, d)
}

func newStore(ctx context.Context, d *sqlx.DB) *MYSQLStore {
	ctx, c := context.WithCancel(ctx)
	ss := &MYSQLStore{
		db:    d,
		close: c,
	}
	go func() {
		<-ctx.Done()
		d.Close()
	}()
	return ss
}

//go:embed sql
var fs embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql",
	}
}

// Migrate applies all pending migrations.
func Migrate(db *sql.DB) error {
	return MigrateWithContext(context.Background(), db)
}

// MigrateWithContext applies all pending migrations, giving up when ctx is done.
func MigrateWithContext(ctx context.Context, db *sql.DB) error {
	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := migrate.Exec(db, "mysql", migrationSource(), migrate.Up)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("migration timeout: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("db migrations have failed: %w", res.err)
		}
		slog.Default().InfoContext(ctx, "applied migrations",
			slog.Int("count", res.n),
		)
		return nil
	}
}

func (ms *MYSQLStore) Close() {
	ms.close()
}

// Ping checks database connectivity by executing a simple query
func (ms *MYSQLStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	err := ms.db.QueryRowxContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
