package repository

import (
	"context"
	"testing"
	"time"

	"lotto-gate/internal/config"
	"lotto-gate/internal/database"
	"lotto-gate/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts PostgreSQL in a container and applies the draw schema.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "postgres",
		Password:        "postgres",
		Database:        "testdb",
		MaxConnections:  4,
		MinConnections:  1,
		MaxConnLifetime: 300,
	}, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, database.EnsureSchema(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

func newDraw(numbers []int, bonus int, createdAt time.Time) *model.Draw {
	return &model.Draw{
		ID:             uuid.New(),
		WinningNumbers: numbers,
		BonusNumber:    bonus,
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
	}
}

func TestDrawRepository_CreateAndGetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewDrawRepository(pool, zerolog.Nop())
	ctx := context.Background()

	draw := newDraw([]int{45, 3, 17, 1, 29, 8}, 7, time.Now())
	require.NoError(t, repo.Create(ctx, draw))

	got, err := repo.GetByID(ctx, draw.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, draw.ID, got.ID)
	assert.Equal(t, draw.WinningNumbers, got.WinningNumbers, "numbers keep their order")
	assert.Equal(t, draw.BonusNumber, got.BonusNumber)
	assert.True(t, draw.CreatedAt.Equal(got.CreatedAt))
}

func TestDrawRepository_GetByID_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewDrawRepository(pool, zerolog.Nop())

	got, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDrawRepository_Create_DuplicateID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewDrawRepository(pool, zerolog.Nop())
	ctx := context.Background()

	draw := newDraw([]int{1, 2, 3, 4, 5, 6}, 7, time.Now())
	require.NoError(t, repo.Create(ctx, draw))

	err := repo.Create(ctx, draw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create draw")
}

func TestDrawRepository_Create_RejectedBySchema(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewDrawRepository(pool, zerolog.Nop())

	err := repo.Create(context.Background(), newDraw([]int{1, 2, 3}, 7, time.Now()))
	require.Error(t, err)
}

func TestDrawRepository_List(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewDrawRepository(pool, zerolog.Nop())
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	oldest := newDraw([]int{1, 2, 3, 4, 5, 6}, 7, base)
	middle := newDraw([]int{7, 8, 9, 10, 11, 12}, 13, base.Add(time.Minute))
	newest := newDraw([]int{40, 41, 42, 43, 44, 45}, 1, base.Add(2*time.Minute))

	for _, d := range []*model.Draw{middle, oldest, newest} {
		require.NoError(t, repo.Create(ctx, d))
	}

	tests := []struct {
		name     string
		limit    int
		offset   int
		expected []uuid.UUID
	}{
		{name: "All draws newest first", limit: 10, offset: 0, expected: []uuid.UUID{newest.ID, middle.ID, oldest.ID}},
		{name: "Limited", limit: 2, offset: 0, expected: []uuid.UUID{newest.ID, middle.ID}},
		{name: "Offset", limit: 2, offset: 2, expected: []uuid.UUID{oldest.ID}},
		{name: "Past the end", limit: 2, offset: 5, expected: []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draws, err := repo.List(ctx, tt.limit, tt.offset)
			require.NoError(t, err)

			ids := make([]uuid.UUID, 0, len(draws))
			for _, d := range draws {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
