package domain

import (
	"context"
	"fmt"
	"slices"
)

// Activity is an extracurricular offering with a fixed capacity and an ordered roster.
// The name is the registry key and is not repeated in the JSON record.
// swagger:model Activity
type Activity struct {
	Name            string   `json:"-" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// ParticipantCount returns the number of signed-up students.
func (a *Activity) ParticipantCount() int {
	return len(a.Participants)
}

// RemainingSpots returns how many more students can sign up.
func (a *Activity) RemainingSpots() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull reports whether the roster has reached capacity.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// IsOpen reports whether the activity still accepts signups.
func (a *Activity) IsOpen() bool {
	return !a.IsFull()
}

// HasParticipant reports whether email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Clone returns a deep copy; the participants slice is never shared.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return &c
}

// Validate checks the record invariants that must hold for a seeded activity.
func (a *Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: activity name is required", ErrInvalidInput)
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("%w: %q: max_participants must be positive", ErrInvalidInput, a.Name)
	}
	if len(a.Participants) > a.MaxParticipants {
		return fmt.Errorf("%w: %q: %d participants exceed capacity %d",
			ErrInvalidInput, a.Name, len(a.Participants), a.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %q: duplicate participant %s", ErrInvalidInput, a.Name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// SignupResult confirms a successful signup.
// swagger:model SignupResult
type SignupResult struct {
	Message  string `json:"message"`
	Activity string `json:"activity"`
	Email    string `json:"email"`

	// Schedule and RemainingSpots are read under the same lock as the append.
	Schedule       string `json:"-"`
	RemainingSpots int    `json:"-"`
}

// NewSignupResult builds the confirmation returned to the caller.
func NewSignupResult(activity, email string) *SignupResult {
	return &SignupResult{
		Message:  fmt.Sprintf("Signed up %s for %s", email, activity),
		Activity: activity,
		Email:    email,
	}
}

// ActivityRegistry holds every activity keyed by name.
// Signup must be atomic per activity; reads return copies the caller may keep.
type ActivityRegistry interface {
	List(ctx context.Context) map[string]*Activity
	Get(ctx context.Context, name string) (*Activity, error)
	Signup(ctx context.Context, name, email string) (*SignupResult, error)
}

// ActivityService defines the operations exposed to the HTTP layer.
type ActivityService interface {
	ListActivities(ctx context.Context) map[string]*Activity
	GetActivity(ctx context.Context, name string) (*Activity, error)
	Signup(ctx context.Context, name, email string) (*SignupResult, error)
	// Project computes the named projection from one snapshot of the activity.
	// email is only consulted by projections that need it (is_participant).
	Project(ctx context.Context, name string, p Projection, email string) (any, error)
	SignupHistory(ctx context.Context, name string) ([]*SignupLogEntry, error)
}
