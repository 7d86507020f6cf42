package insights

import (
	"context"
	"sort"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByPet devuelve los insights más recientes primero.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]Insight, error) {
	items, err := s.repo.ListByScope(ctx, petID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
	return items, nil
}
