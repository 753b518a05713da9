package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/mirayfashion/admin-backend/internal/activity/handler"
	"github.com/mirayfashion/admin-backend/internal/activity/repository"
	"github.com/mirayfashion/admin-backend/internal/activity/service"
	"github.com/mirayfashion/admin-backend/pkg/database"
	"github.com/mirayfashion/admin-backend/pkg/httputil"
	"github.com/mirayfashion/admin-backend/pkg/logger"
	"github.com/mirayfashion/admin-backend/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*handler.ActivityHandler, *testutil.MockDB) {
	t.Helper()
	mockDB := testutil.NewMockDB(t)
	t.Cleanup(func() { mockDB.Close() })

	log := logger.New("activity-handler-test", "test")
	repo := repository.NewActivityRepository(database.FromSqlx(mockDB.DB, log))
	svc := service.NewActivityService(repo, nil, log)
	return handler.NewActivityHandler(svc, log), mockDB
}

func TestCreateEntry(t *testing.T) {
	h, mockDB := newTestHandler(t)

	mockDB.ExpectQuery("INSERT INTO activity_log").
		WillReturnRows(testutil.MockRows("created_at").AddRow(time.Now().UTC()))

	req := testutil.NewHTTPRequest(http.MethodPost, "/api/v1/activity/", handler.CreateEntryRequest{
		Actor:  "admin@miray.com",
		Action: "product.delete",
		Entity: "product",
	})
	rr := testutil.ExecuteRequest(http.HandlerFunc(h.CreateEntry), req)

	testutil.AssertStatus(t, rr, http.StatusCreated)
	testutil.AssertBodyContains(t, rr, "product.delete")
	mockDB.ExpectationsWereMet(t)
}

func TestCreateEntry_ValidationError(t *testing.T) {
	h, _ := newTestHandler(t)

	// Action is required
	req := testutil.NewHTTPRequest(http.MethodPost, "/api/v1/activity/", handler.CreateEntryRequest{
		Actor: "admin@miray.com",
	})
	rr := testutil.ExecuteRequest(http.HandlerFunc(h.CreateEntry), req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	testutil.AssertBodyContains(t, rr, "VALIDATION_ERROR")
}

func TestListEntries_PaginationMeta(t *testing.T) {
	h, mockDB := newTestHandler(t)

	now := time.Now().UTC()
	mockDB.ExpectQuery("SELECT COUNT(*) FROM activity_log").
		WillReturnRows(testutil.MockRows("count").AddRow(int64(41)))
	mockDB.ExpectQuery("SELECT id, actor, action, entity, entity_id, details, created_at").
		WillReturnRows(testutil.MockRows("id", "actor", "action", "entity", "entity_id", "details", "created_at").
			AddRow("e1", "admin@miray.com", "login", "", "", []byte(`{}`), now))

	req := testutil.NewHTTPRequest(http.MethodGet, "/api/v1/activity/?page=2&per_page=20", nil)
	rr := testutil.ExecuteRequest(http.HandlerFunc(h.ListEntries), req)

	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp httputil.Response
	testutil.ParseJSONBody(t, rr, &resp)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
