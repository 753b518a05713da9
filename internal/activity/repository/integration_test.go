package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/mirayfashion/admin-backend/internal/activity/domain"
	"github.com/mirayfashion/admin-backend/internal/activity/repository"
	"github.com/mirayfashion/admin-backend/pkg/database"
	"github.com/mirayfashion/admin-backend/pkg/logger"
	"github.com/mirayfashion/admin-backend/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestActivityRepository_RoundTrip exercises the repository against a real
// PostgreSQL instance: append entries, list them newest first, then purge.
func TestActivityRepository_RoundTrip(t *testing.T) {
	testutil.SkipIfShort(t)
	ctx := context.Background()

	container, err := testutil.NewPostgresContainer(ctx, testutil.DefaultPostgresConfig())
	require.NoError(t, err)
	defer container.Terminate(ctx)

	db, err := container.Connect(ctx)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, container.CreateActivitySchema(ctx, db))

	repo := repository.NewActivityRepository(database.FromSqlx(db, logger.New("activity-it", "test")))

	for i := 0; i < 5; i++ {
		entry := &domain.Entry{
			Actor:    "admin@miray.com",
			Action:   fmt.Sprintf("action-%d", i),
			Entity:   "order",
			EntityID: fmt.Sprintf("o-%d", i),
			Details:  map[string]string{"seq": fmt.Sprintf("%d", i)},
		}
		require.NoError(t, repo.Create(ctx, entry))
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	}

	entries, total, err := repo.List(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, entries, 3)
	// Newest first
	assert.Equal(t, "action-4", entries[0].Action)
	assert.Equal(t, "4", entries[0].Details["seq"])

	removed, err := repo.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), removed)

	_, total, err = repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
