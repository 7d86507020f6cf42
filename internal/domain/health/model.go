package health

import (
	"strings"

	"pet-wellness/internal/domain/validate"
)

// RecordType clasifica el registro de salud.
// @Enum vaccination, medication, vet_visit, note
type RecordType string

const (
	TypeVaccination RecordType = "vaccination"
	TypeMedication  RecordType = "medication"
	TypeVetVisit    RecordType = "vet_visit"
	TypeNote        RecordType = "note"
)

// Record es una entrada del historial de salud de una mascota.
type Record struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	Type        RecordType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"` // YYYY-MM-DD
}

func (r Record) RecordID() string    { return r.ID }
func (r Record) RecordScope() string { return r.PetID }

func (r Record) Validate() error {
	return validate.First(
		validate.Required("petId", r.PetID),
		validate.OneOf("type", r.Type, TypeVaccination, TypeMedication, TypeVetVisit, TypeNote),
		validate.Required("title", r.Title),
		validate.Date("date", r.Date),
	)
}

func (r Record) normalized() Record {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Date = strings.TrimSpace(r.Date)
	return r
}
