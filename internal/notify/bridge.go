// Package notify convierte la fecha/hora de un reminder en una notificación
// local programada en la plataforma.
package notify

import (
	"context"
	"strings"
	"sync"
	"time"

	"pet-wellness/internal/domain/validate"
	"pet-wellness/internal/platform/logger"
)

const (
	// DataType / TypeReminder etiquetan la notificación como recordatorio.
	DataType     = "type"
	TypeReminder = "reminder"

	triggerLayout = validate.DateLayout + " " + validate.TimeLayout
)

type Notification struct {
	Title   string
	Body    string
	Data    map[string]string
	Trigger time.Time
}

// Platform es el servicio de notificaciones del sistema.
type Platform interface {
	RequestPermission(ctx context.Context) (bool, error)
	Schedule(ctx context.Context, n Notification) (string, error)
}

type Bridge struct {
	platform Platform
	loc      *time.Location
	now      func() time.Time
	log      logger.Logger

	mu      sync.RWMutex
	allowed bool
}

type Option func(*Bridge)

// WithLocation fija la zona horaria local (default time.Local).
func WithLocation(loc *time.Location) Option {
	return func(b *Bridge) { b.loc = loc }
}

func WithClock(now func() time.Time) Option {
	return func(b *Bridge) { b.now = now }
}

func WithLogger(log logger.Logger) Option {
	return func(b *Bridge) { b.log = log }
}

func NewBridge(p Platform, opts ...Option) *Bridge {
	b := &Bridge{
		platform: p,
		loc:      time.Local,
		now:      time.Now,
		log:      logger.Discard(),
	}
	for _, o := range opts {
		o(b)
	}
	b.log = b.log.With(map[string]any{"component": "notify"})
	return b
}

// RequestPermission se llama una vez al arrancar. Sin permiso, ScheduleReminder
// no programa nada pero tampoco falla.
func (b *Bridge) RequestPermission(ctx context.Context) bool {
	ok, err := b.platform.RequestPermission(ctx)
	if err != nil {
		b.log.Warn("notification permission request failed", map[string]any{"error": err})
		ok = false
	}
	b.mu.Lock()
	b.allowed = ok
	b.mu.Unlock()
	return ok
}

func (b *Bridge) Allowed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.allowed
}

// Trigger arma el instante local a partir de "YYYY-MM-DD" y "HH:MM".
func (b *Bridge) Trigger(date, clock string) (time.Time, error) {
	if err := validate.First(validate.Date("date", date), validate.Clock("time", clock)); err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(triggerLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), b.loc)
}

// ScheduleReminder devuelve scheduled=false sin error cuando el instante ya pasó
// o no hay permiso. Solo falla por formato inválido o error de la plataforma.
func (b *Bridge) ScheduleReminder(ctx context.Context, title, body, date, clock string) (bool, error) {
	at, err := b.Trigger(date, clock)
	if err != nil {
		return false, err
	}

	if at.Before(b.now()) {
		b.log.Debug("reminder in the past, not scheduled", map[string]any{"trigger": at.Format(time.RFC3339)})
		return false, nil
	}
	if !b.Allowed() {
		b.log.Debug("notifications not permitted, not scheduled", map[string]any{"trigger": at.Format(time.RFC3339)})
		return false, nil
	}

	id, err := b.platform.Schedule(ctx, Notification{
		Title:   title,
		Body:    body,
		Data:    map[string]string{DataType: TypeReminder},
		Trigger: at,
	})
	if err != nil {
		return false, err
	}

	b.log.Debug("reminder scheduled", map[string]any{"notification_id": id, "trigger": at.Format(time.RFC3339)})
	return true, nil
}
