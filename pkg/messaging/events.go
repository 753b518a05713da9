package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	// Activity log events
	EventActivityRecorded = "activity.recorded"
	EventActivityPurged   = "activity.purged"

	// Superadmin session events
	EventSuperadminUnlocked = "superadmin.unlocked"

	// Export events
	EventOrdersExported = "dashboard.orders.exported"
)

// Exchange names
const (
	ExchangeActivityEvents = "admin.activity"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            uuid.New().String(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// ActivityRecordedEvent is published when an admin action is appended to the
// activity log.
type ActivityRecordedEvent struct {
	EntryID string `json:"entry_id"`
	Actor   string `json:"actor"`
	Action  string `json:"action"`
	Entity  string `json:"entity,omitempty"`
}

// ActivityPurgedEvent is published when a superadmin clears the activity log.
type ActivityPurgedEvent struct {
	Actor   string `json:"actor"`
	Removed int64  `json:"removed"`
}
