// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types carried on the auth.events queue.
const (
    EventUserRegistered  = "user.registered"
    EventPasswordChanged = "password.changed"
)

// AuthEvent is published when an account-changing operation succeeds.  It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.  An out-of-band
// delivery mechanism for reset notifications would subscribe here.
type AuthEvent struct {
    Type       string `json:"type"` // one of the Event* constants
    UserID     uint64 `json:"user_id"`
    Name       string `json:"name,omitempty"`
    Email      string `json:"email"`
    OccurredAt string `json:"occurred_at"`
}
