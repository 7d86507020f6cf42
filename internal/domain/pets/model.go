package pets

import (
	"strings"

	"pet-wellness/internal/domain/validate"
)

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// WeightPoint es una medición de peso (kg) en una fecha YYYY-MM-DD.
type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// Pet representa el perfil de una mascota. Update reemplaza el registro completo.
type Pet struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId,omitempty"`

	Name    string  `json:"name"`
	Species Species `json:"species"` // dog, cat
	Breed   string  `json:"breed"`
	DOB     string  `json:"dob"` // YYYY-MM-DD opcional

	Weight        float64       `json:"weight"`
	WeightHistory []WeightPoint `json:"weightHistory"` // orden cronológico

	Notes  string `json:"notes"`
	Avatar string `json:"avatar"`
}

func (p Pet) RecordID() string    { return p.ID }
func (p Pet) RecordScope() string { return p.OwnerID }

func (p Pet) Validate() error {
	err := validate.First(
		validate.Required("name", p.Name),
		validate.OneOf("species", p.Species, SpeciesDog, SpeciesCat),
	)
	if err != nil {
		return err
	}
	if strings.TrimSpace(p.DOB) != "" {
		if err := validate.Date("dob", p.DOB); err != nil {
			return err
		}
	}
	if p.Weight < 0 {
		return validate.Invalid("weight must not be negative")
	}

	prev := ""
	for _, wp := range p.WeightHistory {
		if err := validate.Date("weightHistory.date", wp.Date); err != nil {
			return err
		}
		// YYYY-MM-DD compara bien como string
		if wp.Date < prev {
			return validate.Invalid("weightHistory must be chronological")
		}
		prev = wp.Date
	}
	return nil
}

// DefaultAvatar devuelve el glyph por especie.
func DefaultAvatar(s Species) string {
	switch s {
	case SpeciesCat:
		return "🐈"
	default:
		return "🐕"
	}
}

// WithWeight devuelve una copia con el peso actualizado; si cambió y date es
// posterior al último punto, agrega el punto al historial.
func (p Pet) WithWeight(weight float64, date string) Pet {
	history := append([]WeightPoint(nil), p.WeightHistory...)
	changed := len(history) == 0 || history[len(history)-1].Weight != weight
	if weight > 0 && changed {
		if n := len(history); n == 0 || history[n-1].Date < date {
			history = append(history, WeightPoint{Date: date, Weight: weight})
		}
	}
	p.Weight = weight
	p.WeightHistory = history
	return p
}
