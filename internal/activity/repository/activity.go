package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/mirayfashion/admin-backend/internal/activity/domain"
	"github.com/mirayfashion/admin-backend/pkg/database"
)

// ActivityRepository handles activity log persistence
type ActivityRepository struct {
	db *database.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *database.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends a new activity log entry
func (r *ActivityRepository) Create(ctx context.Context, entry *domain.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	detailsJSON, err := json.Marshal(entry.Details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	query := `
		INSERT INTO activity_log (id, actor, action, entity, entity_id, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	return r.db.QueryRowxContext(ctx, query,
		entry.ID,
		entry.Actor,
		entry.Action,
		entry.Entity,
		entry.EntityID,
		detailsJSON,
	).Scan(&entry.CreatedAt)
}

// List returns activity entries newest first, with the total count for
// pagination
func (r *ActivityRepository) List(ctx context.Context, page, perPage int) ([]*domain.Entry, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM activity_log`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, actor, action, entity, entity_id, details, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	offset := (page - 1) * perPage
	rows, err := r.db.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		var entry domain.Entry
		var detailsJSON []byte

		if err := rows.Scan(
			&entry.ID, &entry.Actor, &entry.Action,
			&entry.Entity, &entry.EntityID, &detailsJSON, &entry.CreatedAt,
		); err != nil {
			return nil, 0, err
		}

		if len(detailsJSON) > 0 {
			json.Unmarshal(detailsJSON, &entry.Details)
		}

		entries = append(entries, &entry)
	}

	return entries, total, rows.Err()
}

// Purge deletes all activity entries and returns how many were removed
func (r *ActivityRepository) Purge(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activity_log`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
