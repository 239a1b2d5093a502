package order

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by every InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions that every
// status change goes through before any mutation happens.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Status is persisted as its integer
// value and exposed over the API by its name.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Preparing means the kitchen has started on the order.
	Preparing

	// Ready means the order is waiting to be served.
	Ready

	// Delivered is terminal: the order reached the table.
	Delivered

	// Cancelled is terminal: the order was abandoned before delivery.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getTransitions returns the allowed next states for every valid status.
// A status missing from the map has no way out.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and Unknown statuses have no outgoing edges
	return map[Status][]Status{
		Pending:   {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Delivered},
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, Ready, Delivered, Cancelled}
}

// ParseStatus resolves a status by its exact name, e.g. "Preparing".
//
// Returns:
//   - the matching Status on success
//   - ValueIsInvalidError listing the accepted names otherwise
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not one of: %s", s, joinStatuses(Statuses())),
	)
}

// Validate checks if the Status value is one of the five lifecycle states.
//
// Unknown (0) and any other values are invalid. This method is used to
// ensure Status values from external sources (database, API) are valid
// before use.
func (s Status) Validate() error {
	for _, status := range Statuses() {
		if s == status {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AllowedNext returns the states reachable from s in one step.
// The result is empty for terminal and invalid statuses.
func (s Status) AllowedNext() []Status {
	next := getTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether target is an allowed next state of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo checks the move from s to target without performing it.
//
// Returns:
//   - (target, nil) when the transition is allowed
//   - (Unknown, ValueIsInvalidError) when target is not a valid status
//   - (Unknown, *InvalidTransitionError) when target is valid but not reachable from s
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Ready)
//	// err: cannot change status from Pending to Ready (allowed: Preparing, Cancelled)
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}

// InvalidTransitionError reports a status change the state machine forbids.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	allowed := "none"
	if next := e.From.AllowedNext(); len(next) > 0 {
		allowed = joinStatuses(next)
	}
	return fmt.Sprintf("cannot change status from %s to %s (allowed: %s)", e.From, e.To, allowed)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func joinStatuses(statuses []Status) string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
