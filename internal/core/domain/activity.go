package domain

import "time"

// Activity actions recorded in the trail.
const (
	ActivityHouseCreated   = "house_created"
	ActivityActressCreated = "actress_created"
)

// ActivityEntry is one record in the audit trail of catalog writes.
type ActivityEntry struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Action     string    `json:"action" bson:"action"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	EntityName string    `json:"entity_name" bson:"entity_name"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}
