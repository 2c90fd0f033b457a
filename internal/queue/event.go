// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions carried by NoteEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EventQueueName is the durable queue that note lifecycle events are
// published to and consumed from.
const EventQueueName = "notes.events"

// NoteEvent is published whenever a note is created, updated or
// deleted. It carries enough information for downstream consumers to
// build an audit trail or analytics without querying the primary
// database. Deleted events only carry the ids, since the row is gone
// by the time the event is emitted.
type NoteEvent struct {
	Action     string `json:"action"`
	NoteID     uint64 `json:"note_id"`
	OwnerID    uint64 `json:"owner_id"`
	Title      string `json:"title,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
