package wellness

import (
	"pet-wellness/internal/domain/validate"
)

// Entry es un check-in diario; cada puntaje va de 1 a 5.
type Entry struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`
	Date  string `json:"date"`

	Appetite int    `json:"appetite"`
	Energy   int    `json:"energy"`
	Mood     int    `json:"mood"`
	Bathroom int    `json:"bathroom"`
	Activity int    `json:"activity"`
	Notes    string `json:"notes"`
}

func (e Entry) RecordID() string    { return e.ID }
func (e Entry) RecordScope() string { return e.PetID }

func (e Entry) Validate() error {
	return validate.First(
		validate.Required("petId", e.PetID),
		validate.Date("date", e.Date),
		validate.Rating("appetite", e.Appetite),
		validate.Rating("energy", e.Energy),
		validate.Rating("mood", e.Mood),
		validate.Rating("bathroom", e.Bathroom),
		validate.Rating("activity", e.Activity),
	)
}

// Average promedia los cinco puntajes.
func (e Entry) Average() float64 {
	return float64(e.Appetite+e.Energy+e.Mood+e.Bathroom+e.Activity) / 5
}
