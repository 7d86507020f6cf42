package sharing

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-wellness/internal/domain/pets"
	"pet-wellness/internal/domain/validate"
	"pet-wellness/internal/ports/storage"

	"github.com/google/uuid"
)

const DefaultBaseURL = "https://vetted.app"

var ErrRevoked = errors.New("share link revoked")

// PetReader evita depender del Service completo de pets.
type PetReader interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo    Repository
	pets    PetReader
	baseURL string
	now     func() time.Time
}

func NewService(repo Repository, petReader PetReader, baseURL string) *Service {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		repo:    repo,
		pets:    petReader,
		baseURL: baseURL,
		now:     time.Now,
	}
}

// URL arma <base>/share/pet/<token>.
func (s *Service) URL(l Link) string {
	return s.baseURL + "/share/pet/" + l.Token
}

// Generate es idempotente: si ya hay un link activo del mismo owner para la mascota, lo reutiliza.
func (s *Service) Generate(ctx context.Context, petID, ownerUserID string) (Link, error) {
	petID = strings.TrimSpace(petID)
	ownerUserID = strings.TrimSpace(ownerUserID)
	if petID == "" || ownerUserID == "" {
		return Link{}, validate.Invalid("petId and owner required")
	}

	existing, err := s.repo.ListByScope(ctx, petID)
	if err != nil {
		return Link{}, err
	}
	for _, l := range existing {
		if l.OwnerUserID == ownerUserID && l.Status == StatusActive {
			return l, nil
		}
	}

	l := Link{
		Token:       uuid.NewString(),
		PetID:       petID,
		OwnerUserID: ownerUserID,
		Status:      StatusActive,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return Link{}, err
	}
	return l, nil
}

// RevokeAll revoca todos los links activos de la mascota. Idempotente.
func (s *Service) RevokeAll(ctx context.Context, petID string) (int, error) {
	items, err := s.repo.ListByScope(ctx, petID)
	if err != nil {
		return 0, err
	}

	now := s.now()
	n := 0
	for _, l := range items {
		if l.Status == StatusRevoked {
			continue
		}
		l.Status = StatusRevoked
		l.RevokedAt = &now
		if err := s.repo.Update(ctx, l); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Resolve devuelve el perfil público detrás de un token activo, sin ownerId.
func (s *Service) Resolve(ctx context.Context, token string) (pets.Pet, error) {
	l, err := s.repo.GetByID(ctx, strings.TrimSpace(token))
	if err != nil {
		return pets.Pet{}, err
	}
	if l.Status != StatusActive {
		return pets.Pet{}, ErrRevoked
	}

	p, err := s.pets.GetByID(ctx, l.PetID)
	if errors.Is(err, storage.ErrNotFound) {
		// la mascota se borró; el link queda huérfano
		return pets.Pet{}, storage.ErrNotFound
	}
	if err != nil {
		return pets.Pet{}, err
	}
	p.OwnerID = ""
	return p, nil
}
