package models

// Term change operations carried by TermEvent.
const (
	TermCreated = "created"
	TermUpdated = "updated"
	TermDeleted = "deleted"
)

// TermEvent is published whenever a term is created, updated or deleted.
type TermEvent struct {
	EventID         string `json:"event_id"`                   // EventID is a unique identifier for the event.
	Operation       string `json:"operation"`                  // Operation is one of "created", "updated" or "deleted".
	Keyword         string `json:"keyword"`                    // Keyword is the term keyword after the change.
	PreviousKeyword string `json:"previous_keyword,omitempty"` // PreviousKeyword is set when an update renamed the term.
	Term            *Term  `json:"term"`                       // Term is the term state after the change, or the removed term.
	Timestamp       int64  `json:"timestamp"`                  // Timestamp is the Unix timestamp (in seconds) of the change.
}
