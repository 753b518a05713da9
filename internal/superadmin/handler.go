package superadmin

import (
	"net/http"
	"strings"

	"github.com/mirayfashion/admin-backend/pkg/errors"
	"github.com/mirayfashion/admin-backend/pkg/httputil"
	"github.com/mirayfashion/admin-backend/pkg/logger"
)

// Handler handles superadmin session endpoints
type Handler struct {
	manager *Manager
	logger  *logger.Logger
}

// NewHandler creates a new superadmin handler
func NewHandler(manager *Manager, log *logger.Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  log,
	}
}

// UnlockRequest is the request body for the unlock endpoint
type UnlockRequest struct {
	Actor      string `json:"actor" validate:"required,max=255"`
	Passphrase string `json:"passphrase" validate:"required"`
}

// Unlock verifies the passphrase and issues a session token
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req UnlockRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	session, err := h.manager.Unlock(req.Actor, req.Passphrase)
	if err != nil {
		h.logger.Warn().
			Str("actor", req.Actor).
			Msg("superadmin unlock rejected")
		httputil.Error(w, err)
		return
	}

	h.logger.Info().
		Str("actor", req.Actor).
		Msg("superadmin session issued")

	httputil.JSON(w, http.StatusOK, session)
}

// RequireSession guards a route behind a valid superadmin token. The actor
// from the token is placed on the request context.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httputil.Error(w, errors.Unauthorized("superadmin session required"))
			return
		}

		claims, err := h.manager.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			httputil.Error(w, err)
			return
		}

		ctx := httputil.WithActor(r.Context(), claims.Actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
