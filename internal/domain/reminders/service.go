package reminders

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

// Create ignora completed/snoozed del input: todo reminder nace pendiente.
func (s *Service) Create(ctx context.Context, petID string, in Reminder) (Reminder, error) {
	in.PetID = strings.TrimSpace(petID)
	in.Completed = false
	in.Snoozed = false
	if err := in.Validate(); err != nil {
		return Reminder{}, err
	}

	rem := in.normalized()
	rem.ID = uuid.NewString()

	if err := s.repo.Create(ctx, rem); err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

// Update reemplaza el registro por id.
func (s *Service) Update(ctx context.Context, in Reminder) (Reminder, error) {
	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Reminder{}, err
	}

	in.PetID = current.PetID
	if err := in.Validate(); err != nil {
		return Reminder{}, err
	}

	rem := in.normalized()
	if err := s.repo.Update(ctx, rem); err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Reminder, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Reminder, error) {
	return s.repo.ListByScope(ctx, petID)
}
