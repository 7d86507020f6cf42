// Package seed contiene el dataset demo (Luna y Mochi) que comparten el Fake del
// cliente y el modo memoria del servidor.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-wellness/internal/domain/health"
	"pet-wellness/internal/domain/insights"
	"pet-wellness/internal/domain/pets"
	"pet-wellness/internal/domain/reminders"
	"pet-wellness/internal/domain/training"
	"pet-wellness/internal/domain/users"
	"pet-wellness/internal/domain/validate"
	"pet-wellness/internal/domain/wellness"
	"pet-wellness/internal/ports/storage"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	DemoUserID   = "u1"
	DemoName     = "Mary Showcase"
	DemoEmail    = "mary@example.com"
	DemoPassword = "showcase-demo"

	wellnessDays = 7
)

// Dataset agrupa todas las colecciones demo.
type Dataset struct {
	User      users.User
	Pets      []pets.Pet
	Health    []health.Record
	Reminders []reminders.Reminder
	Wellness  []wellness.Entry
	Goals     []training.Goal
	Insights  []insights.Insight
}

// New arma el dataset. Los check-ins cubren los últimos siete días hasta today;
// los puntajes salen de gofakeit con la semilla dada (misma semilla => mismos datos).
func New(today time.Time, seed int64) Dataset {
	return Dataset{
		User:      users.User{ID: DemoUserID, Name: DemoName, Email: DemoEmail},
		Pets:      demoPets(),
		Health:    demoHealth(),
		Reminders: demoReminders(),
		Wellness:  append(demoWellness(gofakeit.New(seed), "1", today), demoWellness(gofakeit.New(seed+1), "2", today)...),
		Goals:     demoGoals(),
		Insights:  demoInsights(),
	}
}

// Account devuelve la cuenta demo con el hash de DemoPassword.
func (d Dataset) Account(cost int) (users.Account, error) {
	hash, err := users.HashPassword(DemoPassword, cost)
	if err != nil {
		return users.Account{}, err
	}
	return users.Account{
		ID:           d.User.ID,
		Name:         d.User.Name,
		Email:        d.User.Email,
		PasswordHash: hash,
	}, nil
}

// Into inserta items en repo; los que ya existen se ignoran.
func Into[T storage.Record](ctx context.Context, repo storage.Repository[T], items []T) error {
	for _, it := range items {
		err := repo.Create(ctx, it)
		if err == nil || errors.Is(err, storage.ErrConflict) {
			continue
		}
		return fmt.Errorf("seed %s: %w", it.RecordID(), err)
	}
	return nil
}

func demoPets() []pets.Pet {
	return []pets.Pet{
		{
			ID:      "1",
			OwnerID: DemoUserID,
			Name:    "Luna",
			Species: pets.SpeciesDog,
			Breed:   "Golden Retriever",
			DOB:     "2021-03-15",
			Weight:  28,
			WeightHistory: []pets.WeightPoint{
				{Date: "2025-09-01", Weight: 26},
				{Date: "2025-10-01", Weight: 27},
				{Date: "2025-11-01", Weight: 27.5},
				{Date: "2025-12-01", Weight: 28},
				{Date: "2026-01-01", Weight: 28},
				{Date: "2026-02-01", Weight: 28},
			},
			Notes:  "Loves belly rubs and playing fetch",
			Avatar: "🐕",
		},
		{
			ID:      "2",
			OwnerID: DemoUserID,
			Name:    "Mochi",
			Species: pets.SpeciesCat,
			Breed:   "British Shorthair",
			DOB:     "2022-08-20",
			Weight:  5.2,
			WeightHistory: []pets.WeightPoint{
				{Date: "2025-09-01", Weight: 4.8},
				{Date: "2025-10-01", Weight: 5.0},
				{Date: "2025-11-01", Weight: 5.1},
				{Date: "2025-12-01", Weight: 5.2},
				{Date: "2026-01-01", Weight: 5.2},
				{Date: "2026-02-01", Weight: 5.2},
			},
			Notes:  "Enjoys sunbeams and chin scratches",
			Avatar: "🐈",
		},
	}
}

func demoHealth() []health.Record {
	return []health.Record{
		{ID: "h1", PetID: "1", Type: health.TypeVaccination, Title: "Rabies Vaccine", Description: "Annual rabies booster", Date: "2026-01-15"},
		{ID: "h2", PetID: "1", Type: health.TypeVetVisit, Title: "Annual Checkup", Description: "All clear, healthy and happy!", Date: "2026-01-15"},
		{ID: "h3", PetID: "1", Type: health.TypeMedication, Title: "Flea Prevention", Description: "Monthly flea and tick treatment", Date: "2026-02-01"},
		{ID: "h4", PetID: "2", Type: health.TypeVaccination, Title: "FVRCP Vaccine", Description: "Core vaccine booster", Date: "2025-12-10"},
		{ID: "h5", PetID: "2", Type: health.TypeNote, Title: "Slight sneezing", Description: "Noticed occasional sneezing, monitoring", Date: "2026-02-05"},
	}
}

func demoReminders() []reminders.Reminder {
	return []reminders.Reminder{
		{ID: "r1", PetID: "1", Title: "Flea treatment", Type: reminders.TypeMedication, Date: "2026-02-15", Time: "09:00", Recurring: true},
		{ID: "r2", PetID: "1", Title: "Annual checkup", Type: reminders.TypeCustom, Date: "2026-03-15", Time: "14:00"},
		{ID: "r3", PetID: "2", Title: "Deworming", Type: reminders.TypeMedication, Date: "2026-02-20", Time: "10:00", Recurring: true},
		{ID: "r4", PetID: "1", Title: "Rabies booster", Type: reminders.TypeVaccination, Date: "2027-01-15", Time: "10:00"},
	}
}

// demoWellness genera un check-in por día, del más viejo (hoy-6) a hoy.
// Puntajes 3..5; bathroom 4..5.
func demoWellness(f *gofakeit.Faker, petID string, today time.Time) []wellness.Entry {
	out := make([]wellness.Entry, 0, wellnessDays)
	for i := wellnessDays - 1; i >= 0; i-- {
		out = append(out, wellness.Entry{
			ID:       fmt.Sprintf("w-%s-%d", petID, i),
			PetID:    petID,
			Date:     today.AddDate(0, 0, -i).Format(validate.DateLayout),
			Appetite: f.Number(3, 5),
			Energy:   f.Number(3, 5),
			Mood:     f.Number(3, 5),
			Bathroom: f.Number(4, 5),
			Activity: f.Number(3, 5),
		})
	}
	return out
}

func demoGoals() []training.Goal {
	return []training.Goal{
		{ID: "t1", PetID: "1", Title: "Leash walking", Type: training.TypeHabit, TargetCount: 7, CurrentCount: 5},
		{ID: "t2", PetID: "1", Title: "Sit & stay", Type: training.TypeSkill, TargetCount: 7, CurrentCount: 4},
		{ID: "t3", PetID: "2", Title: "Litter box routine", Type: training.TypeHabit, TargetCount: 7, CurrentCount: 6},
	}
}

func demoInsights() []insights.Insight {
	return []insights.Insight{
		{ID: "i1", PetID: "1", Message: "Luna's energy levels have been consistently high this week. Great job keeping her active! 🎉", Type: insights.TypeInfo, Icon: "⚡", Date: "2026-02-11"},
		{ID: "i2", PetID: "1", Message: "Flea treatment is due in 4 days. Make sure you have it ready!", Type: insights.TypeGentleAlert, Icon: "💊", Date: "2026-02-11"},
		{ID: "i3", PetID: "2", Message: "Mochi's appetite has been steady. She seems to be doing well.", Type: insights.TypeInfo, Icon: "😸", Date: "2026-02-11"},
	}
}
