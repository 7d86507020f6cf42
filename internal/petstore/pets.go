package petstore

import (
	"context"

	"pet-wellness/internal/domain/pets"
)

// AddPet agrega la mascota confirmada al final. Si es la primera y no había
// selección, queda activa.
func (s *Store) AddPet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if err := p.Validate(); err != nil {
		return pets.Pet{}, err
	}

	created, err := s.api.AddPet(ctx, p)
	if err != nil {
		return pets.Pet{}, err
	}

	s.mu.Lock()
	s.pets = append(clone(s.pets), created)
	activate := s.activeID == "" && len(s.pets) == 1
	s.mu.Unlock()

	if activate {
		if err := s.SetActivePetID(ctx, created.ID); err != nil {
			s.log.Warn("activate first pet failed", map[string]any{"op": "add_pet", "pet_id": created.ID, "error": err})
		}
	}
	return created, nil
}

func (s *Store) UpdatePet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if err := p.Validate(); err != nil {
		return pets.Pet{}, err
	}

	updated, err := s.api.UpdatePet(ctx, p)
	if err != nil {
		return pets.Pet{}, err
	}

	s.mu.Lock()
	s.pets = replaceByID(s.pets, updated)
	s.mu.Unlock()
	return updated, nil
}

// DeletePet saca la mascota de la lista. Si era la activa, pasa a la primera
// que quede; sin mascotas las colecciones quedan vacías.
func (s *Store) DeletePet(ctx context.Context, id string) error {
	if err := s.api.DeletePet(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.pets = removeByID(s.pets, id)
	if s.activeID != id {
		s.mu.Unlock()
		return nil
	}
	s.seq++
	s.activeID = ""
	s.clearLocked()
	next := ""
	if len(s.pets) > 0 {
		next = s.pets[0].ID
	}
	s.mu.Unlock()

	if next == "" {
		return nil
	}
	return s.SetActivePetID(ctx, next)
}

func (s *Store) GetPetTrends(ctx context.Context, id string) ([]pets.WeightPoint, error) {
	return s.api.GetPetTrends(ctx, id)
}

// GenerateShareLink devuelve la URL pública de sólo lectura de la mascota.
func (s *Store) GenerateShareLink(ctx context.Context, id string) (string, error) {
	return s.api.GenerateShareLink(ctx, id)
}
