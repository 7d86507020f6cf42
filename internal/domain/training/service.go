package training

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, petID string, in Goal) (Goal, error) {
	in.PetID = strings.TrimSpace(petID)
	if err := in.Validate(); err != nil {
		return Goal{}, err
	}

	g := in.normalized()
	g.ID = uuid.NewString()
	if err := s.repo.Create(ctx, g); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// Update no permite bajar currentCount: el progreso solo avanza.
func (s *Service) Update(ctx context.Context, in Goal) (Goal, error) {
	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Goal{}, err
	}

	in.PetID = current.PetID
	if in.CurrentCount < current.CurrentCount {
		in.CurrentCount = current.CurrentCount
	}
	if err := in.Validate(); err != nil {
		return Goal{}, err
	}

	g := in.normalized()
	if err := s.repo.Update(ctx, g); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// RecordProgress suma una repetición y devuelve el goal persistido.
func (s *Service) RecordProgress(ctx context.Context, id string) (Goal, error) {
	current, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Goal{}, err
	}

	g := current.Progress()
	if err := s.repo.Update(ctx, g); err != nil {
		return Goal{}, err
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Goal, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Goal, error) {
	return s.repo.ListByScope(ctx, petID)
}
