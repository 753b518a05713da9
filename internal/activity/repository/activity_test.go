package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mirayfashion/admin-backend/internal/activity/domain"
	"github.com/mirayfashion/admin-backend/internal/activity/repository"
	"github.com/mirayfashion/admin-backend/pkg/database"
	"github.com/mirayfashion/admin-backend/pkg/logger"
	"github.com/mirayfashion/admin-backend/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*repository.ActivityRepository, *testutil.MockDB) {
	t.Helper()
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })

	db := database.FromSqlx(mockDB.DB, logger.New("activity-test", "test"))
	return repository.NewActivityRepository(db), mockDB
}

func TestActivityRepository_Create(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	createdAt := time.Now().UTC()
	mockDB.ExpectQuery("INSERT INTO activity_log").
		WithArgs(testutil.AnyUUID{}, "admin@miray.com", "product.update", "product", "p-1", []byte(`{"field":"price"}`)).
		WillReturnRows(testutil.MockRows("created_at").AddRow(createdAt))

	entry := &domain.Entry{
		Actor:    "admin@miray.com",
		Action:   "product.update",
		Entity:   "product",
		EntityID: "p-1",
		Details:  map[string]string{"field": "price"},
	}

	err := repo.Create(context.Background(), entry)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, createdAt, entry.CreatedAt)

	mockDB.ExpectationsWereMet(t)
}

func TestActivityRepository_List(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	now := time.Now().UTC()
	mockDB.ExpectQuery("SELECT COUNT(*) FROM activity_log").
		WillReturnRows(testutil.MockRows("count").AddRow(int64(12)))
	mockDB.ExpectQuery("SELECT id, actor, action, entity, entity_id, details, created_at").
		WithArgs(2, 2).
		WillReturnRows(testutil.MockRows("id", "actor", "action", "entity", "entity_id", "details", "created_at").
			AddRow("e1", "admin@miray.com", "order.ship", "order", "o-1", []byte(`{"carrier":"dhl"}`), now).
			AddRow("e2", "admin@miray.com", "login", "", "", []byte(`{}`), now.Add(-time.Minute)))

	entries, total, err := repo.List(context.Background(), 2, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(12), total)
	require.Len(t, entries, 2)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, "dhl", entries[0].Details["carrier"])
	assert.Equal(t, "login", entries[1].Action)

	mockDB.ExpectationsWereMet(t)
}

func TestActivityRepository_Purge(t *testing.T) {
	repo, mockDB := newTestRepo(t)

	mockDB.ExpectExec("DELETE FROM activity_log").
		WillReturnResult(sqlmock.NewResult(0, 7))

	removed, err := repo.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), removed)

	mockDB.ExpectationsWereMet(t)
}
