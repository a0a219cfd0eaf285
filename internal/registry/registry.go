// Package registry holds the in-memory activity registry.
//
// Each activity is guarded by its own RWMutex so that a signup's
// check-then-append runs exclusively with respect to other signups on the
// same activity, while reads and signups on other activities proceed in
// parallel. The name->entry map is built once and never modified afterwards.
package registry

import (
	"context"
	"fmt"
	"sync"

	"mergingtonactivities/internal/domain"
)

type entry struct {
	mu       sync.RWMutex
	activity *domain.Activity
}

// snapshot returns a copy taken under the read lock.
func (e *entry) snapshot() *domain.Activity {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.activity.Clone()
}

// Registry is an in-memory domain.ActivityRegistry.
type Registry struct {
	entries map[string]*entry
}

// New builds a registry from the seed activities. Seeds are copied; later
// changes to the slice do not affect the registry.
func New(seed []*domain.Activity) (*Registry, error) {
	entries := make(map[string]*entry, len(seed))
	for _, a := range seed {
		if a == nil {
			return nil, fmt.Errorf("%w: nil activity in seed", domain.ErrInvalidInput)
		}
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, dup := entries[a.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate activity %q", domain.ErrInvalidInput, a.Name)
		}
		entries[a.Name] = &entry{activity: a.Clone()}
	}
	return &Registry{entries: entries}, nil
}

var _ domain.ActivityRegistry = (*Registry)(nil)

// List returns a copy of every activity keyed by name.
func (r *Registry) List(_ context.Context) map[string]*domain.Activity {
	out := make(map[string]*domain.Activity, len(r.entries))
	for name, e := range r.entries {
		out[name] = e.snapshot()
	}
	return out
}

// Get returns a copy of the named activity or domain.ErrNotFound.
func (r *Registry) Get(_ context.Context, name string) (*domain.Activity, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e.snapshot(), nil
}

// Signup appends email to the activity's roster.
// Checks run in a fixed order: existence, duplicate, capacity. Nothing is
// mutated unless all of them pass.
func (r *Registry) Signup(_ context.Context, name, email string) (*domain.SignupResult, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, domain.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	a := e.activity
	if a.HasParticipant(email) {
		return nil, domain.ErrAlreadyRegistered
	}
	if a.IsFull() {
		return nil, domain.ErrCapacityExceeded
	}
	a.Participants = append(a.Participants, email)

	res := domain.NewSignupResult(name, email)
	res.Schedule = a.Schedule
	res.RemainingSpots = a.RemainingSpots()
	return res, nil
}

// Len returns the number of activities.
func (r *Registry) Len() int {
	return len(r.entries)
}
