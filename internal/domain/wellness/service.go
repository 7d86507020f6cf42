package wellness

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

func (s *Service) Create(ctx context.Context, petID string, in Entry) (Entry, error) {
	in.PetID = strings.TrimSpace(petID)
	in.Date = strings.TrimSpace(in.Date)
	in.Notes = strings.TrimSpace(in.Notes)
	if err := in.Validate(); err != nil {
		return Entry{}, err
	}

	in.ID = uuid.NewString()
	if err := s.repo.Create(ctx, in); err != nil {
		return Entry{}, err
	}
	return in, nil
}

func (s *Service) Update(ctx context.Context, in Entry) (Entry, error) {
	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Entry{}, err
	}

	in.PetID = current.PetID
	in.Notes = strings.TrimSpace(in.Notes)
	if err := in.Validate(); err != nil {
		return Entry{}, err
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return Entry{}, err
	}
	return in, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Entry, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

// ListByPet ordena por fecha ascendente (el cliente agrega al final).
func (s *Service) ListByPet(ctx context.Context, petID string) ([]Entry, error) {
	items, err := s.repo.ListByScope(ctx, petID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date < items[j].Date
	})
	return items, nil
}
