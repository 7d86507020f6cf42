package petstore

import (
	"context"
	"strings"
	"time"

	"pet-wellness/internal/domain/health"
	"pet-wellness/internal/domain/training"
	"pet-wellness/internal/domain/wellness"
)

const insightsRefreshTimeout = 30 * time.Second

// petOrActive completa petId con la mascota activa cuando viene vacío.
func (s *Store) petOrActive(petID string) string {
	if strings.TrimSpace(petID) != "" {
		return strings.TrimSpace(petID)
	}
	return s.ActivePetID()
}

// commit aplica fn sólo si el registro es de la mascota activa; los demás
// quedan en el servidor y aparecen al seleccionar su mascota.
func (s *Store) commit(petID string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if petID != "" && petID == s.activeID {
		fn()
	}
}

// ── Health records ──

// AddHealthRecord inserta al principio (más reciente primero).
func (s *Store) AddHealthRecord(ctx context.Context, r health.Record) (health.Record, error) {
	r.PetID = s.petOrActive(r.PetID)
	if err := r.Validate(); err != nil {
		return health.Record{}, err
	}

	created, err := s.api.AddHealthRecord(ctx, r)
	if err != nil {
		return health.Record{}, err
	}
	s.commit(created.PetID, func() {
		s.health = append([]health.Record{created}, s.health...)
	})
	return created, nil
}

func (s *Store) UpdateHealthRecord(ctx context.Context, r health.Record) (health.Record, error) {
	if err := r.Validate(); err != nil {
		return health.Record{}, err
	}

	updated, err := s.api.UpdateHealthRecord(ctx, r)
	if err != nil {
		return health.Record{}, err
	}
	s.commit(updated.PetID, func() {
		s.health = replaceByID(s.health, updated)
	})
	return updated, nil
}

func (s *Store) DeleteHealthRecord(ctx context.Context, id string) error {
	if err := s.api.DeleteHealthRecord(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.health = removeByID(s.health, id)
	s.mu.Unlock()
	return nil
}

// ── Wellness ──

// AddWellnessEntry agrega el check-in y refresca los insights en segundo plano.
// Si el refresh falla sólo se registra; el check-in ya quedó guardado.
func (s *Store) AddWellnessEntry(ctx context.Context, e wellness.Entry) (wellness.Entry, error) {
	e.PetID = s.petOrActive(e.PetID)
	if err := e.Validate(); err != nil {
		return wellness.Entry{}, err
	}

	created, err := s.api.AddWellnessEntry(ctx, e)
	if err != nil {
		return wellness.Entry{}, err
	}

	active := false
	s.commit(created.PetID, func() {
		s.wellness = append(clone(s.wellness), created)
		active = true
	})
	if active {
		s.refreshInsights(ctx, created.PetID)
	}
	return created, nil
}

func (s *Store) UpdateWellnessEntry(ctx context.Context, e wellness.Entry) (wellness.Entry, error) {
	if err := e.Validate(); err != nil {
		return wellness.Entry{}, err
	}

	updated, err := s.api.UpdateWellnessEntry(ctx, e)
	if err != nil {
		return wellness.Entry{}, err
	}
	s.commit(updated.PetID, func() {
		s.wellness = replaceByID(s.wellness, updated)
	})
	return updated, nil
}

func (s *Store) DeleteWellnessEntry(ctx context.Context, id string) error {
	if err := s.api.DeleteWellnessEntry(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.wellness = removeByID(s.wellness, id)
	s.mu.Unlock()
	return nil
}

// refreshInsights no hereda la cancelación del llamador: el check-in ya volvió.
func (s *Store) refreshInsights(ctx context.Context, petID string) {
	ctx = context.WithoutCancel(ctx)

	// Add bajo mu: Reset marca resetting antes de esperar a bg.
	s.mu.Lock()
	if s.resetting {
		s.mu.Unlock()
		return
	}
	s.bg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.bg.Done()

		ctx, cancel := context.WithTimeout(ctx, insightsRefreshTimeout)
		defer cancel()

		items, err := s.api.GetInsights(ctx, petID)
		if err != nil {
			s.log.Warn("refresh insights failed", map[string]any{"op": "refresh_insights", "pet_id": petID, "error": err})
			return
		}
		s.commit(petID, func() {
			s.insights = ofPet(items, petID)
		})
	}()
}

// ── Training goals ──

func (s *Store) AddTrainingGoal(ctx context.Context, g training.Goal) (training.Goal, error) {
	g.PetID = s.petOrActive(g.PetID)
	if err := g.Validate(); err != nil {
		return training.Goal{}, err
	}

	created, err := s.api.AddTrainingGoal(ctx, g)
	if err != nil {
		return training.Goal{}, err
	}
	s.commit(created.PetID, func() {
		s.goals = append(clone(s.goals), created)
	})
	return created, nil
}

func (s *Store) UpdateTrainingGoal(ctx context.Context, g training.Goal) (training.Goal, error) {
	if err := g.Validate(); err != nil {
		return training.Goal{}, err
	}

	updated, err := s.api.UpdateTrainingGoal(ctx, g)
	if err != nil {
		return training.Goal{}, err
	}
	s.commit(updated.PetID, func() {
		s.goals = replaceByID(s.goals, updated)
	})
	return updated, nil
}

// RecordGoalProgress reemplaza la meta con la versión del servidor.
func (s *Store) RecordGoalProgress(ctx context.Context, id string) (training.Goal, error) {
	updated, err := s.api.RecordGoalProgress(ctx, id)
	if err != nil {
		return training.Goal{}, err
	}
	s.commit(updated.PetID, func() {
		s.goals = replaceByID(s.goals, updated)
	})
	return updated, nil
}

func (s *Store) DeleteTrainingGoal(ctx context.Context, id string) error {
	if err := s.api.DeleteTrainingGoal(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.goals = removeByID(s.goals, id)
	s.mu.Unlock()
	return nil
}
