package reminders

import (
	"strings"

	"pet-wellness/internal/domain/validate"
)

// @Enum vaccination, medication, custom
type Type string

const (
	TypeVaccination Type = "vaccination"
	TypeMedication  Type = "medication"
	TypeCustom      Type = "custom"
)

// Reminder: creado pendiente; puede pasar a snoozed y luego a completed.
// Completado sigue en la colección.
type Reminder struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	Title     string `json:"title"`
	Type      Type   `json:"type"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Recurring bool   `json:"recurring"`
	Completed bool   `json:"completed"`
	Snoozed   bool   `json:"snoozed"`
}

func (r Reminder) RecordID() string    { return r.ID }
func (r Reminder) RecordScope() string { return r.PetID }

func (r Reminder) Validate() error {
	return validate.First(
		validate.Required("petId", r.PetID),
		validate.Required("title", r.Title),
		validate.OneOf("type", r.Type, TypeVaccination, TypeMedication, TypeCustom),
		validate.Date("date", r.Date),
		validate.Clock("time", r.Time),
	)
}

// Pending = ni completado (los snoozed siguen pendientes).
func (r Reminder) Pending() bool { return !r.Completed }

// Due devuelve "YYYY-MM-DD HH:MM", comparable lexicográficamente.
func (r Reminder) Due() string { return r.Date + " " + r.Time }

func (r Reminder) normalized() Reminder {
	r.Title = strings.TrimSpace(r.Title)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	return r
}
