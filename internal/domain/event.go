package domain

type EventType string

const (
	EventLike   EventType = "LIKE"
	EventReview EventType = "REVIEW"
	EventFriend EventType = "FRIEND"
)

type Operation string

const (
	OpAdd    Operation = "ADD"
	OpRemove Operation = "REMOVE"
	OpUpdate Operation = "UPDATE"
)

// Event is one row of the append-only activity feed. Timestamp is
// epoch milliseconds assigned by the server; events are never mutated
// or deleted.
type Event struct {
	ID        int64     `json:"eventId"`
	Timestamp int64     `json:"timestamp"`
	EventType EventType `json:"eventType"`
	Operation Operation `json:"operation"`
	UserID    int64     `json:"userId"`
	EntityID  int64     `json:"entityId"`
}
