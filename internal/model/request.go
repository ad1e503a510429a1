package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attempt records one step of a fallback chain
type Attempt struct {
	Strategy string  // e.g. "xdg-open" or "desktop.open"
	Outcome  Outcome // what happened
	Detail   string  // error text or exit status, empty on success
}

// Request represents a single opener invocation and every attempt it made
type Request struct {
	ID         string
	Intent     Intent
	Target     string
	Attempts   []Attempt
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRequest creates a request with a fresh ID
func NewRequest(intent Intent, target string) *Request {
	return &Request{
		ID:        uuid.NewString(),
		Intent:    intent,
		Target:    target,
		Attempts:  make([]Attempt, 0),
		StartedAt: time.Now(),
	}
}

// Record appends an attempt
func (r *Request) Record(a Attempt) {
	r.Attempts = append(r.Attempts, a)
}

// Finish marks the request as done
func (r *Request) Finish() {
	r.FinishedAt = time.Now()
}

// Launched returns true if any attempt launched
func (r *Request) Launched() bool {
	_, ok := r.LaunchedBy()
	return ok
}

// LaunchedBy returns the strategy that launched, if any
func (r *Request) LaunchedBy() (string, bool) {
	for _, a := range r.Attempts {
		if a.Outcome.Launched() {
			return a.Strategy, true
		}
	}
	return "", false
}

// Strategies returns the names of all attempted strategies in order
func (r *Request) Strategies() []string {
	names := make([]string, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		names = append(names, a.Strategy)
	}
	return names
}

// Summary returns a one-line human readable description
func (r *Request) Summary() string {
	if by, ok := r.LaunchedBy(); ok {
		return fmt.Sprintf("%s %s: launched by %s", r.Intent, r.Target, by)
	}
	if len(r.Attempts) == 0 {
		return fmt.Sprintf("%s %s: nothing to try", r.Intent, r.Target)
	}
	return fmt.Sprintf("%s %s: failed (%s)", r.Intent, r.Target, strings.Join(r.Strategies(), ", "))
}
