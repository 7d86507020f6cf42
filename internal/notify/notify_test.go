package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-wellness/internal/domain/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/multierr"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type spyPlatform struct {
	grant bool
	err   error

	mu        sync.Mutex
	scheduled []Notification
}

func (s *spyPlatform) RequestPermission(ctx context.Context) (bool, error) { return s.grant, nil }

func (s *spyPlatform) Schedule(ctx context.Context, n Notification) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, n)
	return "n1", nil
}

var fixedNow = time.Date(2026, 2, 26, 12, 0, 0, 0, time.UTC)

func newBridge(p Platform) *Bridge {
	b := NewBridge(p, WithLocation(time.UTC), WithClock(func() time.Time { return fixedNow }))
	b.RequestPermission(context.Background())
	return b
}

func TestScheduleReminder_PastIsSkipped(t *testing.T) {
	spy := &spyPlatform{grant: true}
	b := newBridge(spy)

	ok, err := b.ScheduleReminder(context.Background(), "Reminder for Luna", "Flea treatment", "2026-02-15", "09:00")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, spy.scheduled)
}

func TestScheduleReminder_FutureIsTagged(t *testing.T) {
	spy := &spyPlatform{grant: true}
	b := newBridge(spy)

	ok, err := b.ScheduleReminder(context.Background(), "Reminder for Luna", "Annual checkup", "2026-03-15", "14:00")
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, spy.scheduled, 1)
	n := spy.scheduled[0]
	assert.Equal(t, "Reminder for Luna", n.Title)
	assert.Equal(t, "Annual checkup", n.Body)
	assert.Equal(t, TypeReminder, n.Data[DataType])
	assert.True(t, n.Trigger.Equal(time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)))
}

func TestScheduleReminder_InvalidFormat(t *testing.T) {
	b := newBridge(&spyPlatform{grant: true})

	_, err := b.ScheduleReminder(context.Background(), "t", "b", "15/03/2026", "14:00")
	assert.ErrorIs(t, err, validate.ErrInvalid)

	_, err = b.ScheduleReminder(context.Background(), "t", "b", "2026-03-15", "2pm")
	assert.ErrorIs(t, err, validate.ErrInvalid)
}

func TestScheduleReminder_NoPermission(t *testing.T) {
	spy := &spyPlatform{grant: false}
	b := newBridge(spy)

	ok, err := b.ScheduleReminder(context.Background(), "t", "b", "2026-03-15", "14:00")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, spy.scheduled)
}

func TestScheduleReminder_PlatformError(t *testing.T) {
	boom := errors.New("boom")
	b := newBridge(&spyPlatform{grant: true, err: boom})

	_, err := b.ScheduleReminder(context.Background(), "t", "b", "2026-03-15", "14:00")
	assert.ErrorIs(t, err, boom)
}

func TestLocalPlatform_DeliversAndCancels(t *testing.T) {
	delivered := make(chan Notification, 1)
	p := NewLocalPlatform(SinkFunc(func(n Notification) error {
		delivered <- n
		return nil
	}), true)

	_, err := p.Schedule(context.Background(), Notification{Title: "soon", Trigger: time.Now().Add(10 * time.Millisecond)})
	require.NoError(t, err)
	later, err := p.Schedule(context.Background(), Notification{Title: "later", Trigger: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	select {
	case n := <-delivered:
		assert.Equal(t, "soon", n.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("notification not delivered")
	}

	assert.Equal(t, 1, p.Pending())
	assert.True(t, p.Cancel(later))
	assert.False(t, p.Cancel(later))
	assert.Zero(t, p.Pending())

	require.NoError(t, p.Close())
	_, err = p.Schedule(context.Background(), Notification{Trigger: time.Now()})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLocalPlatform_CloseReportsDeliveryErrors(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)
	p := NewLocalPlatform(SinkFunc(func(n Notification) error {
		defer wg.Done()
		return errors.New("deliver " + n.Title)
	}), true)

	for _, title := range []string{"a", "b"} {
		_, err := p.Schedule(context.Background(), Notification{Title: title, Trigger: time.Now()})
		require.NoError(t, err)
	}
	wg.Wait()

	err := p.Close()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestLocalPlatform_CloseStopsPending(t *testing.T) {
	p := NewLocalPlatform(SinkFunc(func(Notification) error {
		t.Error("should not deliver after close")
		return nil
	}), true)

	_, err := p.Schedule(context.Background(), Notification{Trigger: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.Zero(t, p.Pending())
}
