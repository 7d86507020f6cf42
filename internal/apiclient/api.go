// Package apiclient es el único punto de contacto del cliente con el backend.
// HTTPClient habla con el servidor real; Fake sirve el dataset demo en proceso.
package apiclient

import (
	"context"

	"pet-wellness/internal/domain/health"
	"pet-wellness/internal/domain/insights"
	"pet-wellness/internal/domain/pets"
	"pet-wellness/internal/domain/reminders"
	"pet-wellness/internal/domain/training"
	"pet-wellness/internal/domain/users"
	"pet-wellness/internal/domain/wellness"
)

// AuthResult es la respuesta de login/signup: {user, token}.
type AuthResult = users.AuthResponse

// TokenSource entrega el token de sesión vigente; "" => anónimo.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapta una función a TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// API es el contrato completo. Los errores devueltos envuelven
// ErrAuthentication, ErrValidation o ErrNetworkOrServer.
type API interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Signup(ctx context.Context, name, email, password string) (AuthResult, error)
	// Logout es best-effort: los errores se registran y se descartan.
	Logout(ctx context.Context)
	GetUser(ctx context.Context) (users.User, error)

	GetPets(ctx context.Context) ([]pets.Pet, error)
	AddPet(ctx context.Context, p pets.Pet) (pets.Pet, error)
	UpdatePet(ctx context.Context, p pets.Pet) (pets.Pet, error)
	DeletePet(ctx context.Context, id string) error
	GetPetTrends(ctx context.Context, id string) ([]pets.WeightPoint, error)

	GetHealthRecords(ctx context.Context, petID string) ([]health.Record, error)
	AddHealthRecord(ctx context.Context, r health.Record) (health.Record, error)
	UpdateHealthRecord(ctx context.Context, r health.Record) (health.Record, error)
	DeleteHealthRecord(ctx context.Context, id string) error

	GetReminders(ctx context.Context, petID string) ([]reminders.Reminder, error)
	AddReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error)
	UpdateReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error

	GetWellnessEntries(ctx context.Context, petID string) ([]wellness.Entry, error)
	AddWellnessEntry(ctx context.Context, e wellness.Entry) (wellness.Entry, error)
	UpdateWellnessEntry(ctx context.Context, e wellness.Entry) (wellness.Entry, error)
	DeleteWellnessEntry(ctx context.Context, id string) error

	GetTrainingGoals(ctx context.Context, petID string) ([]training.Goal, error)
	AddTrainingGoal(ctx context.Context, g training.Goal) (training.Goal, error)
	UpdateTrainingGoal(ctx context.Context, g training.Goal) (training.Goal, error)
	DeleteTrainingGoal(ctx context.Context, id string) error
	RecordGoalProgress(ctx context.Context, goalID string) (training.Goal, error)

	GetInsights(ctx context.Context, petID string) ([]insights.Insight, error)

	GenerateShareLink(ctx context.Context, petID string) (string, error)
}
