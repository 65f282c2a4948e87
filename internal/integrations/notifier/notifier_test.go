package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Oasis-BookingService/internal/domain"
	"github.com/m04kA/Oasis-BookingService/pkg/logger"
	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID: "b-1",
		Contact: domain.Contact{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Phone: "+1 555 0100",
		},
		Date:        "2026-10-19",
		Time:        "10:30 AM",
		Status:      domain.StatusPending,
		CancelToken: "tok/with+chars",
		CreatedAt:   time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC),
	}
}

func testComposer(t *testing.T) *Composer {
	t.Helper()
	loc, err := slotclock.LoadLocation(slotclock.DefaultTimezone)
	require.NoError(t, err)
	return NewComposer("Oasis AI", "https://oasis.example/", loc)
}

func TestComposer_Compose(t *testing.T) {
	c := testComposer(t)
	b := testBooking()

	msg, err := c.Compose(b, domain.NotificationConfirmation)
	require.NoError(t, err)
	assert.Contains(t, msg.Subject, "Oasis AI")
	assert.Contains(t, msg.Body, "Monday, October 19, 2026 at 10:30 AM")
	assert.Contains(t, msg.Body, "https://oasis.example/cancel?token=tok%2Fwith%2Bchars")

	msg, err = c.Compose(b, domain.NotificationCancellation)
	require.NoError(t, err)
	assert.NotContains(t, msg.Body, "/cancel?token=")

	_, err = c.Compose(b, domain.NotificationKind("sms"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestComposer_CancelURLEmptyWithoutBase(t *testing.T) {
	loc, err := slotclock.LoadLocation(slotclock.DefaultTimezone)
	require.NoError(t, err)
	c := NewComposer("Oasis AI", "", loc)
	assert.Empty(t, c.CancelURL(testBooking()))
}

func TestEmailClient_Notify(t *testing.T) {
	var got sendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer server.Close()

	client := NewEmailClient(server.URL, "re_test", "Oasis <hello@oasis.example>", testComposer(t), time.Second, logger.Nop())
	err := client.Notify(context.Background(), testBooking(), domain.NotificationConfirmation)

	require.NoError(t, err)
	assert.Equal(t, []string{"ada@example.com"}, got.To)
	assert.Equal(t, "Oasis <hello@oasis.example>", got.From)
	assert.NotEmpty(t, got.Subject)
}

func TestEmailClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "validation error", status: http.StatusUnprocessableEntity, wantErr: ErrRejected},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrInvalidResponse},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))
			defer server.Close()

			client := NewEmailClient(server.URL, "k", "from@x", testComposer(t), time.Second, logger.Nop())
			err := client.Notify(context.Background(), testBooking(), domain.NotificationReminder)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type fakeWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaNotifier_Notify(t *testing.T) {
	w := &fakeWriter{}
	n := NewKafkaNotifier(w, testComposer(t), logger.Nop())

	require.NoError(t, n.Notify(context.Background(), testBooking(), domain.NotificationConfirmation))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "b-1", string(w.msgs[0].Key))

	var event BookingEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	assert.Equal(t, "confirmation", event.Type)
	assert.Equal(t, "2026-10-19", event.Date)
	assert.Contains(t, event.CancelURL, "/cancel?token=")

	w.err = errors.New("broker down")
	err := n.Notify(context.Background(), testBooking(), domain.NotificationReminder)
	assert.ErrorIs(t, err, ErrPublish)
}

type countingGateway struct {
	calls atomic.Int32
	errs  []error
}

func (g *countingGateway) Notify(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) error {
	n := int(g.calls.Add(1))
	if n <= len(g.errs) {
		return g.errs[n-1]
	}
	return nil
}

func TestRetrying(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		g := &countingGateway{errs: []error{ErrInvalidResponse, ErrInternal}}
		r := NewRetrying(g, 3, time.Millisecond, logger.Nop())

		require.NoError(t, r.Notify(context.Background(), testBooking(), domain.NotificationConfirmation))
		assert.Equal(t, int32(3), g.calls.Load())
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		g := &countingGateway{errs: []error{ErrInternal, ErrInternal, ErrInternal}}
		r := NewRetrying(g, 2, time.Millisecond, logger.Nop())

		err := r.Notify(context.Background(), testBooking(), domain.NotificationConfirmation)
		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, int32(2), g.calls.Load())
	})

	t.Run("does not retry rejected messages", func(t *testing.T) {
		g := &countingGateway{errs: []error{ErrRejected}}
		r := NewRetrying(g, 5, time.Millisecond, logger.Nop())

		err := r.Notify(context.Background(), testBooking(), domain.NotificationConfirmation)
		assert.ErrorIs(t, err, ErrRejected)
		assert.Equal(t, int32(1), g.calls.Load())
	})
}

func TestFanout_JoinsErrors(t *testing.T) {
	ok := &countingGateway{}
	bad := &countingGateway{errs: []error{ErrPublish}}

	err := Fanout{bad, ok}.Notify(context.Background(), testBooking(), domain.NotificationConfirmation)

	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, int32(1), ok.calls.Load())
}

type outcomeCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *outcomeCounter) IncNotificationOutcome(kind, outcome string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.counts[kind+"/"+outcome]++
}

type blockingGateway struct {
	release chan struct{}
	err     error
}

func (g *blockingGateway) Notify(ctx context.Context, b *domain.Booking, kind domain.NotificationKind) error {
	<-g.release
	return g.err
}

func TestDispatcher_DispatchIsAsync(t *testing.T) {
	g := &blockingGateway{release: make(chan struct{}), err: ErrInternal}
	counter := &outcomeCounter{}
	d := NewDispatcher(g, time.Second, logger.Nop(), counter)

	done := make(chan struct{})
	go func() {
		d.Dispatch(testBooking(), domain.NotificationConfirmation)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on the gateway")
	}

	close(g.release)
	d.Wait()

	counter.mu.Lock()
	defer counter.mu.Unlock()
	assert.Equal(t, 1, counter.counts["confirmation/failed"])
}

func TestDispatcher_Send(t *testing.T) {
	counter := &outcomeCounter{}
	d := NewDispatcher(&countingGateway{}, time.Second, logger.Nop(), counter)

	require.NoError(t, d.Send(context.Background(), testBooking(), domain.NotificationReminder))
	assert.Equal(t, 1, counter.counts["reminder/sent"])
}
