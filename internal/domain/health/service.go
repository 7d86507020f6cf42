package health

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, petID string, in Record) (Record, error) {
	in.PetID = strings.TrimSpace(petID)
	if err := in.Validate(); err != nil {
		return Record{}, err
	}

	rec := in.normalized()
	rec.ID = uuid.NewString()

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Update reemplaza el registro; la mascota dueña no cambia.
func (s *Service) Update(ctx context.Context, in Record) (Record, error) {
	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Record{}, err
	}

	in.PetID = current.PetID
	if err := in.Validate(); err != nil {
		return Record{}, err
	}

	rec := in.normalized()
	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

// ListByPet devuelve más reciente primero; empates conservan orden de inserción.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]Record, error) {
	items, err := s.repo.ListByScope(ctx, petID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	return items, nil
}
