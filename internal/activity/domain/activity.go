// Package domain holds the activity log types. The log records every
// mutating admin action (product edits, order status changes, purges) and
// lives in Postgres so it survives browser sessions and is shared between
// admins.
package domain

import "time"

// Entry is one recorded admin action.
type Entry struct {
	ID        string            `db:"id" json:"id"`
	Actor     string            `db:"actor" json:"actor"`
	Action    string            `db:"action" json:"action"`
	Entity    string            `db:"entity" json:"entity,omitempty"`
	EntityID  string            `db:"entity_id" json:"entity_id,omitempty"`
	Details   map[string]string `db:"-" json:"details,omitempty"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
}
