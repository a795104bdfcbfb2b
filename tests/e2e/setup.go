//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"gear-rental/cmd/bootstrap"
	"gear-rental/cmd/bootstrap/components"
	"gear-rental/internal/infra/db"
	"gear-rental/internal/pkg/config"
	"gear-rental/internal/pkg/errs"
	"gear-rental/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // driver for wait.ForSQL
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "rental"
	pgPassword = "rental"
	pgPort     = nat.Port("5432/tcp")
)

// server is where the shared container listens on the host.
type server struct {
	host string
	port string
}

func (s server) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, s.host, s.port, database)
}

// sharedServer starts one postgres:17 per test process. The container is
// reaped by testcontainers' ryuk when the process exits.
var sharedServer = sync.OnceValues(func() (server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// throwaway data: trade durability for speed
			Cmd: []string{"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return server{host: host, port: port.Port()}.dsn("postgres")
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"app": "gear-rental", "purpose": "e2e"},
		},
	})
	if err != nil {
		return server{}, errs.Wrap(err, "start postgres container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		return server{}, errs.Wrap(err, "container host")
	}
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return server{}, errs.Wrap(err, "container port")
	}
	return server{host: host, port: port.Port()}, nil
})

// freshDatabase creates a uniquely named database, migrates it and returns a
// pool on it. Both are removed when t ends.
func freshDatabase(t *testing.T, srv server) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := "rental_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin, err := pgx.Connect(ctx, srv.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close(ctx)
	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, srv.dsn("postgres"))
		if err != nil {
			slog.Warn("drop test database: connect", "database", name, "error", err.Error())
			return
		}
		defer conn.Close(ctx)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err.Error())
		}
	})

	dbCfg := config.DBConfig{
		Host:     srv.host,
		Port:     srv.port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
	pool, closePool, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "open pool on %s", name)
	t.Cleanup(closePool)

	require.NoError(t, migrate(ctx, pool), "migrate %s", name)
	return pool, dbCfg
}

// migrate applies migrations/*.sql in lexical order inside one transaction.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return errs.Wrap(err, "list migrations")
	}
	slices.Sort(files)

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, f := range files {
			sql, err := os.ReadFile(f)
			if err != nil {
				return errs.Wrapf(err, "read %s", f)
			}
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				return errs.Wrapf(err, "apply %s", filepath.Base(f))
			}
		}
		return nil
	})
}

// migrationsDir walks up from the test's package directory to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errs.Wrap(err, "working directory")
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errs.New("module root not found above the test directory")
		}
		dir = parent
	}
}

// startApp builds the HTTP graph the server uses, with the test pool and
// config substituted for the real ones.
func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Rental.TimeZone = "UTC"

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg, cfg.Rental),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start app")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop app", "error", err.Error())
		}
	})
	return router, cfg
}

// SharedSuite is embedded by every e2e suite. Each suite owns a database and
// every subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	t := s.T()

	srv, err := sharedServer()
	require.NoError(t, err)
	s.DB, s.Config.DB = freshDatabase(t, srv)
	s.Router, s.Config = startApp(t, s.DB, s.Config.DB)
}

func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "reset tables")
}
