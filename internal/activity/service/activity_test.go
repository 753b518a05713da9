package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mirayfashion/admin-backend/internal/activity/domain"
	"github.com/mirayfashion/admin-backend/internal/activity/repository"
	"github.com/mirayfashion/admin-backend/internal/activity/service"
	"github.com/mirayfashion/admin-backend/pkg/database"
	"github.com/mirayfashion/admin-backend/pkg/logger"
	"github.com/mirayfashion/admin-backend/pkg/messaging"
	"github.com/mirayfashion/admin-backend/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*service.ActivityService, *testutil.MockDB, *testutil.MockPublisher) {
	t.Helper()
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })

	log := logger.New("activity-test", "test")
	repo := repository.NewActivityRepository(database.FromSqlx(mockDB.DB, log))
	publisher := testutil.NewMockPublisher()

	return service.NewActivityService(repo, publisher, log), mockDB, publisher
}

func TestActivityService_Record_PublishesEvent(t *testing.T) {
	svc, mockDB, publisher := newTestService(t)

	mockDB.ExpectQuery("INSERT INTO activity_log").
		WillReturnRows(testutil.MockRows("created_at").AddRow(time.Now().UTC()))

	entry, err := svc.Record(context.Background(), &domain.Entry{
		Actor:  "admin@miray.com",
		Action: "coupon.create",
		Entity: "coupon",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	publisher.AssertEventPublished(t, messaging.EventActivityRecorded)
	mockDB.ExpectationsWereMet(t)
}

func TestActivityService_Record_NilPublisher(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })

	log := logger.New("activity-test", "test")
	repo := repository.NewActivityRepository(database.FromSqlx(mockDB.DB, log))
	svc := service.NewActivityService(repo, nil, log)

	mockDB.ExpectQuery("INSERT INTO activity_log").
		WillReturnRows(testutil.MockRows("created_at").AddRow(time.Now().UTC()))

	_, err := svc.Record(context.Background(), &domain.Entry{
		Actor:  "admin@miray.com",
		Action: "login",
	})
	require.NoError(t, err)
}

func TestActivityService_List_ClampsPaging(t *testing.T) {
	svc, mockDB, _ := newTestService(t)

	mockDB.ExpectQuery("SELECT COUNT(*) FROM activity_log").
		WillReturnRows(testutil.MockRows("count").AddRow(int64(0)))
	// page 0 / per_page 0 clamp to 1 / 20
	mockDB.ExpectQuery("SELECT id, actor, action, entity, entity_id, details, created_at").
		WithArgs(20, 0).
		WillReturnRows(testutil.MockRows("id", "actor", "action", "entity", "entity_id", "details", "created_at"))

	entries, total, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, int64(0), total)

	mockDB.ExpectationsWereMet(t)
}

func TestActivityService_Purge_PublishesEvent(t *testing.T) {
	svc, mockDB, publisher := newTestService(t)

	mockDB.ExpectExec("DELETE FROM activity_log").
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := svc.Purge(context.Background(), "root@miray.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	publisher.AssertEventPublished(t, messaging.EventActivityPurged)
	require.Len(t, publisher.PublishedEvents, 1)

	payload, ok := publisher.PublishedEvents[0].Payload.(messaging.ActivityPurgedEvent)
	require.True(t, ok)
	assert.Equal(t, "root@miray.com", payload.Actor)
	assert.Equal(t, int64(3), payload.Removed)
}
