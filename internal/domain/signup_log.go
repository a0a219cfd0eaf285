package domain

import (
	"context"
	"time"
)

// SignupLogEntry is one row of the append-only signup audit log.
// swagger:model SignupLogEntry
type SignupLogEntry struct {
	ID           string    `json:"id"`
	ActivityName string    `json:"activity_name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSignupLogEntry creates a new SignupLogEntry. ID is typically set by the repository on create.
func NewSignupLogEntry(activityName, email string, createdAt time.Time) *SignupLogEntry {
	return &SignupLogEntry{
		ActivityName: activityName,
		Email:        email,
		CreatedAt:    createdAt,
	}
}

// SignupLogRepository records completed signups. It is never read back into the registry.
type SignupLogRepository interface {
	Record(ctx context.Context, entry *SignupLogEntry) error
	ListByActivity(ctx context.Context, activityName string) ([]*SignupLogEntry, error)
}

// Signup outcomes reported to SignupMetrics.
const (
	OutcomeSuccess           = "success"
	OutcomeNotFound          = "not_found"
	OutcomeAlreadyRegistered = "already_registered"
	OutcomeCapacityExceeded  = "capacity_exceeded"
	OutcomeInvalid           = "invalid"
)

// UnknownActivity is the metrics label used for names that are not in the registry.
const UnknownActivity = "unknown"

// SignupMetrics counts signup attempts by outcome.
type SignupMetrics interface {
	ObserveSignup(activity, outcome string)
}
