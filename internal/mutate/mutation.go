package mutate

import (
	"context"
	"sync"

	"github.com/soukonline/cli/internal/api"
)

// State tracks a mutation through its lifecycle
type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

const (
	genericSuccess = "Operation successful"
	genericFailure = "Operation failed"
)

// Notifier surfaces mutation outcomes to the user. Every failure path ends in
// a notification; nothing is swallowed silently.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Invalidator is the slice of the cache store that mutations touch
type Invalidator interface {
	Invalidate(keys ...string)
}

// Outcome summarises a finished mutation for the caller
type Outcome struct {
	Succeeded bool
	Message   string
}

// Mutation wraps a single write operation with the protocol every write
// shares: run the call, classify the response, invalidate the affected cache
// keys, and notify the user. Invalidation happens only after a confirmed,
// success-classified response — a thrown error or a business rejection
// leaves the cache untouched — and is ordered before the notification.
type Mutation[In any] struct {
	call           func(context.Context, In) (*api.WriteResponse, error)
	keys           []string
	cache          Invalidator
	notify         Notifier
	successMessage string
	errorMessage   string

	mu    sync.Mutex
	state State
}

// New wires a write call to the cache keys it must invalidate on success
func New[In any](cache Invalidator, notify Notifier, call func(context.Context, In) (*api.WriteResponse, error), keys ...string) *Mutation[In] {
	return &Mutation[In]{
		call:   call,
		keys:   keys,
		cache:  cache,
		notify: notify,
		state:  StateIdle,
	}
}

// WithMessages overrides the success and failure notification texts. An
// override takes priority over the response's own message.
func (m *Mutation[In]) WithMessages(success, failure string) *Mutation[In] {
	m.successMessage = success
	m.errorMessage = failure
	return m
}

// State returns the mutation's current lifecycle state
func (m *Mutation[In]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mutation[In]) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Run performs the write. Independent Run calls may race freely; the cache's
// invalidation is idempotent and data consistency across racing writes is the
// backend's concern, not the client's.
func (m *Mutation[In]) Run(ctx context.Context, in In) (Outcome, error) {
	m.setState(StatePending)

	res, err := m.call(ctx, in)
	if err != nil {
		// A rejected call never invalidates: the backend state may be
		// unchanged and a refetch would buy nothing.
		m.setState(StateFailed)
		msg := firstNonEmpty(m.errorMessage, err.Error(), genericFailure)
		m.notify.Failure(msg)
		return Outcome{Succeeded: false, Message: msg}, err
	}

	nestedCode, nestedMessage := res.Nested()
	if classified(res.Code) || classified(nestedCode) {
		m.setState(StateSucceeded)
		m.cache.Invalidate(m.keys...)
		msg := firstNonEmpty(m.successMessage, res.Message, nestedMessage, genericSuccess)
		m.notify.Success(msg)
		return Outcome{Succeeded: true, Message: msg}, nil
	}

	if res.Code == 0 && nestedCode == 0 && res.Message != "" {
		// Delete endpoints answer with a bare {message} and no code; treat
		// that shape as success.
		m.setState(StateSucceeded)
		m.cache.Invalidate(m.keys...)
		msg := firstNonEmpty(m.successMessage, res.Message)
		m.notify.Success(msg)
		return Outcome{Succeeded: true, Message: msg}, nil
	}

	// Business rejection inside a 2xx transport response: surface it as a
	// failure and leave the cache alone.
	m.setState(StateFailed)
	msg := firstNonEmpty(m.errorMessage, res.Message, nestedMessage, genericFailure)
	m.notify.Failure(msg)
	return Outcome{Succeeded: false, Message: msg}, nil
}

// classified reports whether a status-like body code marks success
func classified(code int) bool {
	return code == 200 || code == 201
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
