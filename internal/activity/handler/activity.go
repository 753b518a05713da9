package handler

import (
	"net/http"
	"strconv"

	"github.com/mirayfashion/admin-backend/internal/activity/domain"
	"github.com/mirayfashion/admin-backend/internal/activity/service"
	"github.com/mirayfashion/admin-backend/pkg/httputil"
	"github.com/mirayfashion/admin-backend/pkg/logger"
)

// ActivityHandler handles activity log endpoints
type ActivityHandler struct {
	service *service.ActivityService
	logger  *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *service.ActivityService, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: svc,
		logger:  log,
	}
}

// CreateEntryRequest is the request body for recording an activity entry
type CreateEntryRequest struct {
	Actor    string            `json:"actor" validate:"required,max=255"`
	Action   string            `json:"action" validate:"required,max=100"`
	Entity   string            `json:"entity" validate:"max=100"`
	EntityID string            `json:"entity_id" validate:"max=100"`
	Details  map[string]string `json:"details"`
}

// CreateEntry records a new activity entry
func (h *ActivityHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	entry := &domain.Entry{
		Actor:    req.Actor,
		Action:   req.Action,
		Entity:   req.Entity,
		EntityID: req.EntityID,
		Details:  req.Details,
	}

	created, err := h.service.Record(r.Context(), entry)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, created)
}

// ListEntries returns a page of activity entries, newest first
func (h *ActivityHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	entries, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	httputil.JSONWithMeta(w, http.StatusOK, entries, &httputil.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	})
}

// PurgeEntries clears the activity log. Superadmin only; the route is
// guarded by the session middleware.
func (h *ActivityHandler) PurgeEntries(w http.ResponseWriter, r *http.Request) {
	actor := httputil.GetActor(r.Context())

	removed, err := h.service.Purge(r.Context(), actor)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]int64{"removed": removed})
}
