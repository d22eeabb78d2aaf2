// Package session owns the process-wide view of who is signed in.
// Components resolve sessions through the Accessor and observe sign-in and
// sign-out through Subscribe instead of reading shared global state.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"court-booking/internal/domain/auth"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventSignedIn       EventKind = "signed_in"
	EventSignedOut      EventKind = "signed_out"
	EventSignedUp       EventKind = "signed_up"
	EventTokenRefreshed EventKind = "token_refreshed"
	EventEmailConfirmed EventKind = "email_confirmed"
)

type Event struct {
	Kind   EventKind
	UserID uuid.UUID
	At     time.Time
}

type Listener func(Event)

type Accessor struct {
	provider shared.IdentityProvider
	clock    clock.Clock
	logger   *slog.Logger

	mu        sync.RWMutex
	listeners map[uint64]Listener
	nextID    uint64
}

func NewAccessor(provider shared.IdentityProvider, clk clock.Clock, logger *slog.Logger) *Accessor {
	return &Accessor{
		provider:  provider,
		clock:     clk,
		logger:    logger,
		listeners: make(map[uint64]Listener),
	}
}

// Resolve returns the session proven by token. An empty or rejected token yields ErrAuthRequired.
func (a *Accessor) Resolve(ctx context.Context, token string) (*auth.Session, error) {
	if token == "" {
		return nil, errs.ErrAuthRequired
	}
	s, err := a.provider.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Subscribe registers fn for every published event. The returned func unregisters it and is
// safe to call more than once.
func (a *Accessor) Subscribe(fn Listener) (unsubscribe func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	a.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.listeners, id)
			a.mu.Unlock()
		})
	}
}

// Publish delivers ev synchronously to a snapshot of the current subscribers.
func (a *Accessor) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = a.clock.Now()
	}

	a.mu.RLock()
	snapshot := make([]Listener, 0, len(a.listeners))
	for _, fn := range a.listeners {
		snapshot = append(snapshot, fn)
	}
	a.mu.RUnlock()

	for _, fn := range snapshot {
		a.deliver(fn, ev)
	}
}

func (a *Accessor) deliver(fn Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("session listener panicked", "event", string(ev.Kind), "panic", r)
		}
	}()
	fn(ev)
}

// Subscribers returns the number of registered listeners.
func (a *Accessor) Subscribers() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.listeners)
}
