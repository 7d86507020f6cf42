package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var ErrClosed = errors.New("notification platform closed")

// Sink recibe las notificaciones cuando vencen.
type Sink interface {
	Deliver(n Notification) error
}

type SinkFunc func(n Notification) error

func (f SinkFunc) Deliver(n Notification) error { return f(n) }

// LocalPlatform programa notificaciones con timers del proceso.
// Los errores de entrega se acumulan y se devuelven en Close.
type LocalPlatform struct {
	sink  Sink
	grant bool
	now   func() time.Time

	mu       sync.Mutex
	closed   bool
	timers   map[string]*time.Timer
	inflight sync.WaitGroup
	errs     error
}

func NewLocalPlatform(sink Sink, grant bool) *LocalPlatform {
	return &LocalPlatform{
		sink:   sink,
		grant:  grant,
		now:    time.Now,
		timers: make(map[string]*time.Timer),
	}
}

func (p *LocalPlatform) RequestPermission(ctx context.Context) (bool, error) {
	return p.grant, nil
}

func (p *LocalPlatform) Schedule(ctx context.Context, n Notification) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return "", ErrClosed
	}

	id := uuid.NewString()
	delay := n.Trigger.Sub(p.now())
	if delay < 0 {
		delay = 0
	}

	p.inflight.Add(1)
	p.timers[id] = time.AfterFunc(delay, func() {
		defer p.inflight.Done()
		p.fire(id, n)
	})
	return id, nil
}

func (p *LocalPlatform) fire(id string, n Notification) {
	p.mu.Lock()
	if _, ok := p.timers[id]; !ok {
		p.mu.Unlock()
		return
	}
	delete(p.timers, id)
	p.mu.Unlock()

	if err := p.sink.Deliver(n); err != nil {
		p.mu.Lock()
		p.errs = multierr.Append(p.errs, err)
		p.mu.Unlock()
	}
}

// Cancel anula una notificación pendiente; false si ya salió o no existe.
func (p *LocalPlatform) Cancel(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	t, ok := p.timers[id]
	if !ok {
		return false
	}
	delete(p.timers, id)
	if t.Stop() {
		p.inflight.Done()
	}
	return true
}

func (p *LocalPlatform) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.timers)
}

// Close frena los timers pendientes, espera entregas en curso y devuelve
// los errores de entrega acumulados.
func (p *LocalPlatform) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	for id, t := range p.timers {
		if t.Stop() {
			p.inflight.Done()
		}
		delete(p.timers, id)
	}
	p.mu.Unlock()

	p.inflight.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errs
}
