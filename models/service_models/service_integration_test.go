package service_models

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joy095/cardoctor/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLoggers()
	os.Exit(m.Run())
}

// Store-backed tests run only when TEST_DATABASE_URL points at a disposable
// Postgres database.
func storePool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping store integration test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS services (id uuid PRIMARY KEY, doc jsonb NOT NULL)`)
	require.NoError(t, err)

	return pool
}

// seedService loads a catalog entry the way the out-of-band loader would.
func seedService(t *testing.T, ctx context.Context, pool *pgxpool.Pool, doc string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(ctx, `INSERT INTO services (id, doc) VALUES ($1, $2)`, id, []byte(doc))
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	})
	return id
}

func TestGetAllServicesReturnsFullDocuments(t *testing.T) {
	pool := storePool(t)
	ctx := context.Background()

	id := seedService(t, ctx, pool,
		`{"title":"Full Engine Repair","price":"250","service_id":"05","img":"https://i.ibb.co/engine.jpg","facility":[{"name":"Warranty"}]}`)

	services, err := GetAllServices(ctx, pool)
	require.NoError(t, err)

	var found map[string]any
	for _, s := range services {
		if s["_id"] == id.String() {
			found = s
			break
		}
	}
	require.NotNil(t, found, "seeded service must appear in the listing")

	// Listing carries the full document, extra fields included.
	assert.Equal(t, "Full Engine Repair", found["title"])
	assert.Contains(t, found, "facility")
}

func TestGetServiceByIDProjectsFields(t *testing.T) {
	pool := storePool(t)
	ctx := context.Background()

	id := seedService(t, ctx, pool,
		`{"title":"Full Engine Repair","price":"250","service_id":"05","img":"https://i.ibb.co/engine.jpg","description":"long text"}`)

	service, err := GetServiceByID(ctx, pool, id.String())
	require.NoError(t, err)

	assert.Equal(t, id.String(), service["_id"])
	assert.Equal(t, "Full Engine Repair", service["title"])
	assert.Equal(t, "250", service["price"])
	assert.Equal(t, "05", service["service_id"])
	assert.Equal(t, "https://i.ibb.co/engine.jpg", service["img"])
	assert.NotContains(t, service, "description")
}

func TestGetServiceByUnknownIDReportsNoRows(t *testing.T) {
	pool := storePool(t)

	_, err := GetServiceByID(context.Background(), pool, uuid.NewString())
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}
