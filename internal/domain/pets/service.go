package pets

import (
	"context"
	"strings"
	"time"

	"pet-wellness/internal/domain/validate"
	"pet-wellness/internal/ports/auth"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) today() string {
	return s.now().Format(validate.DateLayout)
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in Pet) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, auth.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return Pet{}, err
	}

	p := in
	p.ID = uuid.NewString()
	p.OwnerID = ownerUserID
	p.Name = strings.TrimSpace(p.Name)
	p.Breed = strings.TrimSpace(p.Breed)
	p.Notes = strings.TrimSpace(p.Notes)
	if strings.TrimSpace(p.Avatar) == "" {
		p.Avatar = DefaultAvatar(p.Species)
	}
	if len(p.WeightHistory) == 0 {
		p = p.WithWeight(p.Weight, s.today())
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update reemplaza el registro completo (sin semántica de patch).
// Conserva owner e id; si el peso cambió agrega un punto con la fecha de hoy.
func (s *Service) Update(ctx context.Context, userID string, in Pet) (Pet, error) {
	if err := in.Validate(); err != nil {
		return Pet{}, err
	}

	current, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return Pet{}, err
	}
	if current.OwnerID != userID {
		return Pet{}, auth.ErrForbidden
	}

	p := in
	p.OwnerID = current.OwnerID
	if len(p.WeightHistory) == 0 {
		p.WeightHistory = current.WeightHistory
	}
	p = p.WithWeight(p.Weight, s.today())
	if strings.TrimSpace(p.Avatar) == "" {
		p.Avatar = DefaultAvatar(p.Species)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID, petID string) error {
	if err := s.Authorize(ctx, petID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, petID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByScope(ctx, ownerUserID)
}

// Trends devuelve el historial de peso de la mascota.
func (s *Service) Trends(ctx context.Context, userID, petID string) ([]WeightPoint, error) {
	if err := s.Authorize(ctx, petID, userID); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if p.WeightHistory == nil {
		return []WeightPoint{}, nil
	}
	return p.WeightHistory, nil
}
