// Package petstore mantiene la lista de mascotas, la mascota activa y sus cinco
// colecciones dependientes. Toda mutación pasa por el API y el estado local sólo
// cambia después de la confirmación del servidor.
package petstore

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-wellness/internal/apiclient"
	"pet-wellness/internal/domain/health"
	"pet-wellness/internal/domain/insights"
	"pet-wellness/internal/domain/pets"
	"pet-wellness/internal/domain/reminders"
	"pet-wellness/internal/domain/training"
	"pet-wellness/internal/domain/wellness"
	"pet-wellness/internal/platform/logger"

	"golang.org/x/sync/errgroup"
)

// ErrStaleSelection lo devuelve SetActivePetID cuando otra selección posterior
// ganó mientras se cargaban los datos; el resultado se descarta.
var ErrStaleSelection = errors.New("active pet changed before its data finished loading")

// Scheduler programa la notificación local de un reminder.
// notify.Bridge lo implementa.
type Scheduler interface {
	ScheduleReminder(ctx context.Context, title, body, date, clock string) (bool, error)
}

type Store struct {
	api   apiclient.API
	sched Scheduler
	log   logger.Logger

	mu        sync.RWMutex
	loading   bool
	resetting bool
	pets      []pets.Pet
	activeID  string
	seq       uint64
	health    []health.Record
	reminders []reminders.Reminder
	wellness  []wellness.Entry
	goals     []training.Goal
	insights  []insights.Insight

	bg sync.WaitGroup
}

// NewStore arranca en loading=true hasta el primer Load, igual que la pantalla
// inicial. sched puede ser nil (sin notificaciones).
func NewStore(api apiclient.API, sched Scheduler, log logger.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	return &Store{
		api:     api,
		sched:   sched,
		log:     log.With(map[string]any{"component": "petstore"}),
		loading: true,
	}
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Load trae la lista de mascotas y activa la primera. Si la lista falla queda
// vacía, sin selección ni colecciones, y se devuelve el error; loading se
// limpia en ambos casos.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	list, err := s.api.GetPets(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.seq++
		s.pets = nil
		s.activeID = ""
		s.clearLocked()
		s.mu.Unlock()
		s.log.Error("load pets failed", map[string]any{"op": "load", "error": err})
		return err
	}
	s.pets = list
	s.mu.Unlock()

	if len(list) == 0 {
		return nil
	}
	// si otra selección ganó mientras tanto, la carga igual terminó bien
	if err := s.SetActivePetID(ctx, list[0].ID); err != nil && !errors.Is(err, ErrStaleSelection) {
		return err
	}
	return nil
}

func (s *Store) Pets() []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.pets)
}

func (s *Store) ActivePetID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// ActivePet resuelve la selección contra la lista; un id desconocido da false.
func (s *Store) ActivePet() (pets.Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.petLocked(s.activeID)
}

func (s *Store) petLocked(id string) (pets.Pet, bool) {
	if id == "" {
		return pets.Pet{}, false
	}
	for _, p := range s.pets {
		if p.ID == id {
			return p, true
		}
	}
	return pets.Pet{}, false
}

func (s *Store) HealthRecords() []health.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.health)
}

func (s *Store) Reminders() []reminders.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.reminders)
}

func (s *Store) WellnessEntries() []wellness.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.wellness)
}

func (s *Store) TrainingGoals() []training.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.goals)
}

func (s *Store) Insights() []insights.Insight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.insights)
}

// petData es el resultado de un fan-out; se aplica completo o no se aplica.
type petData struct {
	health    []health.Record
	reminders []reminders.Reminder
	wellness  []wellness.Entry
	goals     []training.Goal
	insights  []insights.Insight
}

// SetActivePetID pide las cinco colecciones en paralelo y las aplica juntas con
// la nueva selección. Si alguna falla, la selección y las colecciones anteriores
// quedan intactas. Si mientras tanto hubo otra selección, devuelve
// ErrStaleSelection sin tocar nada. Un id vacío limpia la selección; un id que
// no está en la lista queda seleccionado sin mascota activa y sin colecciones,
// sin consultar al servidor.
func (s *Store) SetActivePetID(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	s.mu.Lock()
	s.seq++
	seq := s.seq
	if _, known := s.petLocked(id); !known {
		s.activeID = id
		s.clearLocked()
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	data, err := s.fetch(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.log.Debug("discarding stale pet data", map[string]any{"op": "set_active_pet", "pet_id": id})
		return ErrStaleSelection
	}
	if err != nil {
		s.log.Error("load pet data failed", map[string]any{"op": "set_active_pet", "pet_id": id, "error": err})
		return err
	}

	s.activeID = id
	s.health = data.health
	s.reminders = data.reminders
	s.wellness = data.wellness
	s.goals = data.goals
	s.insights = data.insights
	return nil
}

func (s *Store) fetch(ctx context.Context, petID string) (petData, error) {
	var d petData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.api.GetHealthRecords(gctx, petID)
		d.health = ofPet(items, petID)
		return err
	})
	g.Go(func() error {
		items, err := s.api.GetReminders(gctx, petID)
		d.reminders = ofPet(items, petID)
		return err
	})
	g.Go(func() error {
		items, err := s.api.GetWellnessEntries(gctx, petID)
		d.wellness = ofPet(items, petID)
		return err
	})
	g.Go(func() error {
		items, err := s.api.GetTrainingGoals(gctx, petID)
		d.goals = ofPet(items, petID)
		return err
	})
	g.Go(func() error {
		items, err := s.api.GetInsights(gctx, petID)
		d.insights = ofPet(items, petID)
		return err
	})

	if err := g.Wait(); err != nil {
		return petData{}, err
	}
	return d, nil
}

func (s *Store) clearLocked() {
	s.health = nil
	s.reminders = nil
	s.wellness = nil
	s.goals = nil
	s.insights = nil
}

// Wait bloquea hasta que terminen los refresh en segundo plano.
func (s *Store) Wait() {
	s.bg.Wait()
}

// Reset deja el store vacío (logout). Invalida cualquier fan-out en curso.
// Mientras espera los refresh pendientes no se lanzan refresh nuevos.
func (s *Store) Reset() {
	s.mu.Lock()
	s.resetting = true
	s.mu.Unlock()

	s.bg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetting = false
	s.seq++
	s.pets = nil
	s.activeID = ""
	s.loading = false
	s.clearLocked()
}
