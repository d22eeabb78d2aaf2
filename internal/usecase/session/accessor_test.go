//go:build unit

package session_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/session"
	"court-booking/tests/common/builder"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccessor(t *testing.T) (*session.Accessor, *sharedmock.MockIdentityProvider) {
	ctrl := gomock.NewController(t)
	provider := sharedmock.NewMockIdentityProvider(ctrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	return session.NewAccessor(provider, clk, slog.New(slog.NewTextHandler(io.Discard, nil))), provider
}

func TestAccessor_Resolve(t *testing.T) {
	t.Run("empty token is rejected without asking the provider", func(t *testing.T) {
		accessor, _ := newAccessor(t)

		_, err := accessor.Resolve(context.Background(), "")

		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})

	t.Run("valid token resolves to the provider session", func(t *testing.T) {
		accessor, provider := newAccessor(t)
		member := builder.NewUserBuilder().BuildSession()
		provider.EXPECT().GetSession(gomock.Any(), "token").Return(member, nil).Times(1)

		got, err := accessor.Resolve(context.Background(), "token")

		require.NoError(t, err)
		assert.Equal(t, member, got)
	})

	t.Run("provider rejection is passed through", func(t *testing.T) {
		accessor, provider := newAccessor(t)
		provider.EXPECT().GetSession(gomock.Any(), "revoked").Return(nil, errs.ErrAuthRequired).Times(1)

		_, err := accessor.Resolve(context.Background(), "revoked")

		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})
}

func TestAccessor_SubscribeUnsubscribe(t *testing.T) {
	accessor, _ := newAccessor(t)

	var first, second []session.EventKind
	unsubFirst := accessor.Subscribe(func(ev session.Event) { first = append(first, ev.Kind) })
	unsubSecond := accessor.Subscribe(func(ev session.Event) { second = append(second, ev.Kind) })
	assert.Equal(t, 2, accessor.Subscribers())

	accessor.Publish(session.Event{Kind: session.EventSignedIn, UserID: uuid.New()})
	unsubFirst()
	unsubFirst()
	accessor.Publish(session.Event{Kind: session.EventSignedOut, UserID: uuid.New()})

	assert.Equal(t, []session.EventKind{session.EventSignedIn}, first)
	assert.Equal(t, []session.EventKind{session.EventSignedIn, session.EventSignedOut}, second)
	assert.Equal(t, 1, accessor.Subscribers())

	unsubSecond()
	assert.Zero(t, accessor.Subscribers())
}

func TestAccessor_PublishStampsTime(t *testing.T) {
	accessor, _ := newAccessor(t)

	var got session.Event
	accessor.Subscribe(func(ev session.Event) { got = ev })
	accessor.Publish(session.Event{Kind: session.EventSignedUp})

	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), got.At)
}

func TestAccessor_PanickingListenerDoesNotStopDelivery(t *testing.T) {
	accessor, _ := newAccessor(t)

	delivered := 0
	accessor.Subscribe(func(session.Event) { panic("boom") })
	accessor.Subscribe(func(session.Event) { delivered++ })

	assert.NotPanics(t, func() {
		accessor.Publish(session.Event{Kind: session.EventSignedIn})
	})
	assert.Equal(t, 1, delivered)
}

func TestAccessor_UnsubscribeFromListener(t *testing.T) {
	accessor, _ := newAccessor(t)

	calls := 0
	var unsubscribe func()
	unsubscribe = accessor.Subscribe(func(session.Event) {
		calls++
		unsubscribe()
	})

	accessor.Publish(session.Event{Kind: session.EventSignedIn})
	accessor.Publish(session.Event{Kind: session.EventSignedIn})

	assert.Equal(t, 1, calls)
}

func TestAccessor_ConcurrentPublishAndSubscribe(t *testing.T) {
	accessor, _ := newAccessor(t)

	var mu sync.Mutex
	count := 0
	accessor.Subscribe(func(session.Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			accessor.Publish(session.Event{Kind: session.EventTokenRefreshed})
		}()
		go func() {
			defer wg.Done()
			unsub := accessor.Subscribe(func(session.Event) {})
			unsub()
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, count)
	assert.Equal(t, 1, accessor.Subscribers())
}

func TestAuditListener(t *testing.T) {
	var buf bytes.Buffer
	listener := session.AuditListener(slog.New(slog.NewTextHandler(&buf, nil)))
	userID := uuid.New()

	listener(session.Event{Kind: session.EventSignedOut, UserID: userID, At: time.Now()})

	assert.Contains(t, buf.String(), "event=signed_out")
	assert.Contains(t, buf.String(), userID.String())
}
