//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gear-rental/internal/infra/dbq"
	"gear-rental/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain text password of every fixture user.
const TestPassword = "password123"

var testPasswordHash = sync.OnceValues(func() (string, error) {
	return password.HashPassword(TestPassword)
})

// CreateTestUser is idempotent on email and returns the stored id.
func CreateTestUser(t *testing.T, db dbq.DBTX, email, role string) uuid.UUID {
	t.Helper()

	hash, err := testPasswordHash()
	require.NoError(t, err)

	var id uuid.UUID
	err = db.QueryRow(context.Background(), `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		uuid.New(), email, hash, role).Scan(&id)
	require.NoError(t, err)
	return id
}

func DeactivateUser(t *testing.T, db dbq.DBTX, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// CreateTestEquipment inserts an active item priced by a single daily tier.
func CreateTestEquipment(t *testing.T, db dbq.DBTX, name, equipmentType string, dailyCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	tiers := fmt.Sprintf(`[{"label":"day","days":1,"price_cents":%d}]`, dailyCents)
	_, err := db.Exec(context.Background(), `
		INSERT INTO equipment (id, name, type, quantity, status, active, rate_tiers)
		VALUES ($1, $2, $3, 1, 'Available', true, $4::jsonb)`,
		id, name, equipmentType, tiers)
	require.NoError(t, err)
	return id
}

func SetEquipmentStatus(t *testing.T, db dbq.DBTX, id uuid.UUID, status string) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE equipment SET status = $2 WHERE id = $1", id, status)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "equipment %s not found", id)
}

var (
	truncateOnce sync.Once
	truncateStmt string
	truncateErr  error
)

// ResetDB empties every table of the public schema. The table list is read
// once per process since all test databases share the migrated schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		truncateStmt, truncateErr = buildTruncate(ctx, pool)
	})
	if truncateErr != nil {
		return truncateErr
	}
	_, err := pool.Exec(ctx, truncateStmt)
	return err
}

func buildTruncate(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	rows, err := pool.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public'
		ORDER BY tablename`)
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", fmt.Errorf("scan tables: %w", err)
	}
	if len(tables) == 0 {
		return "", errors.New("no tables to truncate, migrations missing")
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE", nil
}
