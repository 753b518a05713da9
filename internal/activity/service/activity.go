// Package service implements the activity log lifecycle: append, paged
// listing, and superadmin purge. Entries used to live in each admin's
// browser storage; moving them server-side makes the log shared and
// durable.
package service

import (
	"context"

	"github.com/mirayfashion/admin-backend/internal/activity/domain"
	"github.com/mirayfashion/admin-backend/internal/activity/repository"
	"github.com/mirayfashion/admin-backend/pkg/database"
	"github.com/mirayfashion/admin-backend/pkg/errors"
	"github.com/mirayfashion/admin-backend/pkg/logger"
	"github.com/mirayfashion/admin-backend/pkg/messaging"
)

// EventPublisher publishes activity events. Satisfied by messaging.Publisher;
// nil disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// ActivityService handles activity log business logic
type ActivityService struct {
	repo      *repository.ActivityRepository
	publisher EventPublisher
	logger    *logger.Logger
}

// NewActivityService creates a new activity service. publisher may be nil
// when event publishing is disabled.
func NewActivityService(repo *repository.ActivityRepository, publisher EventPublisher, log *logger.Logger) *ActivityService {
	return &ActivityService{
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

// Record appends an entry to the activity log and publishes a best-effort
// event. A publish failure never fails the append.
func (s *ActivityService) Record(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if err := s.repo.Create(ctx, entry); err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return nil, appErr
		}
		s.logger.Error().Err(err).Msg("failed to record activity entry")
		return nil, errors.Internal("failed to record activity entry")
	}

	if s.publisher != nil {
		event := messaging.ActivityRecordedEvent{
			EntryID: entry.ID,
			Actor:   entry.Actor,
			Action:  entry.Action,
			Entity:  entry.Entity,
		}
		if err := s.publisher.Publish(ctx, messaging.EventActivityRecorded, event); err != nil {
			s.logger.Warn().Err(err).Msg("failed to publish activity event")
		}
	}

	return entry, nil
}

// List returns a page of entries, newest first.
func (s *ActivityService) List(ctx context.Context, page, perPage int) ([]*domain.Entry, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	entries, total, err := s.repo.List(ctx, page, perPage)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list activity entries")
		return nil, 0, errors.Internal("failed to list activity entries")
	}

	return entries, total, nil
}

// Purge clears the whole log. Callers must have already verified superadmin
// access; the purge itself is logged via the published event, not the log it
// just emptied.
func (s *ActivityService) Purge(ctx context.Context, actor string) (int64, error) {
	removed, err := s.repo.Purge(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to purge activity log")
		return 0, errors.Internal("failed to purge activity log")
	}

	s.logger.Info().
		Str("actor", actor).
		Int64("removed", removed).
		Msg("activity log purged")

	if s.publisher != nil {
		event := messaging.ActivityPurgedEvent{Actor: actor, Removed: removed}
		if err := s.publisher.Publish(ctx, messaging.EventActivityPurged, event); err != nil {
			s.logger.Warn().Err(err).Msg("failed to publish purge event")
		}
	}

	return removed, nil
}
