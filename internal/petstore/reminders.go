package petstore

import (
	"context"
	"errors"
	"fmt"

	"pet-wellness/internal/domain/reminders"
)

// ErrNotLoaded: el registro no está en las colecciones de la mascota activa.
var ErrNotLoaded = errors.New("record not loaded for the active pet")

// AddReminder programa la notificación local antes de crear el reminder. Un
// fallo al programar se registra y no frena la creación.
func (s *Store) AddReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	r.PetID = s.petOrActive(r.PetID)
	if err := r.Validate(); err != nil {
		return reminders.Reminder{}, err
	}

	s.schedule(ctx, r)

	created, err := s.api.AddReminder(ctx, r)
	if err != nil {
		return reminders.Reminder{}, err
	}
	s.commit(created.PetID, func() {
		s.reminders = append(clone(s.reminders), created)
	})
	return created, nil
}

func (s *Store) schedule(ctx context.Context, r reminders.Reminder) {
	if s.sched == nil {
		return
	}

	s.mu.RLock()
	p, _ := s.petLocked(r.PetID)
	s.mu.RUnlock()

	title := "Reminder for " + p.Name
	ok, err := s.sched.ScheduleReminder(ctx, title, r.Title, r.Date, r.Time)
	if err != nil {
		s.log.Warn("schedule reminder notification failed", map[string]any{"op": "add_reminder", "pet_id": r.PetID, "error": err})
		return
	}
	if !ok {
		s.log.Debug("reminder notification not scheduled", map[string]any{"op": "add_reminder", "pet_id": r.PetID, "due": r.Due()})
	}
}

// UpdateReminder reemplaza en el lugar, sin cambiar el orden.
func (s *Store) UpdateReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	if err := r.Validate(); err != nil {
		return reminders.Reminder{}, err
	}

	updated, err := s.api.UpdateReminder(ctx, r)
	if err != nil {
		return reminders.Reminder{}, err
	}
	s.commit(updated.PetID, func() {
		s.reminders = replaceByID(s.reminders, updated)
	})
	return updated, nil
}

func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	if err := s.api.DeleteReminder(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.reminders = removeByID(s.reminders, id)
	s.mu.Unlock()
	return nil
}

func (s *Store) CompleteReminder(ctx context.Context, id string) (reminders.Reminder, error) {
	return s.changeReminder(ctx, id, func(r *reminders.Reminder) { r.Completed = true })
}

// SnoozeReminder lo marca como pospuesto; sigue pendiente.
func (s *Store) SnoozeReminder(ctx context.Context, id string) (reminders.Reminder, error) {
	return s.changeReminder(ctx, id, func(r *reminders.Reminder) { r.Snoozed = true })
}

func (s *Store) changeReminder(ctx context.Context, id string, fn func(*reminders.Reminder)) (reminders.Reminder, error) {
	s.mu.RLock()
	r, ok := findByID(s.reminders, id)
	s.mu.RUnlock()
	if !ok {
		return reminders.Reminder{}, fmt.Errorf("reminder %q: %w", id, ErrNotLoaded)
	}

	fn(&r)
	return s.UpdateReminder(ctx, r)
}

func (s *Store) PendingReminders() []reminders.Reminder {
	return s.filterReminders(reminders.Reminder.Pending)
}

func (s *Store) CompletedReminders() []reminders.Reminder {
	return s.filterReminders(func(r reminders.Reminder) bool { return r.Completed })
}

// UpcomingReminders devuelve los primeros n pendientes en el orden de la lista.
func (s *Store) UpcomingReminders(n int) []reminders.Reminder {
	pending := s.PendingReminders()
	if n >= 0 && len(pending) > n {
		pending = pending[:n]
	}
	return pending
}

func (s *Store) filterReminders(keep func(reminders.Reminder) bool) []reminders.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reminders.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
