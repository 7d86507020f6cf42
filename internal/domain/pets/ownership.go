package pets

import (
	"context"

	"pet-wellness/internal/ports/auth"
)

// OwnerOf expone el ownerUserID de una mascota.
// Se usa para evitar ciclos de imports entre módulos (pets <-> registros dependientes).
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerID, nil
}

// Authorize falla con auth.ErrForbidden si userID no es dueño de petID.
// Los módulos dependientes (health, reminders, ...) lo reciben como interfaz.
func (s *Service) Authorize(ctx context.Context, petID, userID string) error {
	owner, err := s.OwnerOf(ctx, petID)
	if err != nil {
		return err
	}
	if owner != userID {
		return auth.ErrForbidden
	}
	return nil
}
