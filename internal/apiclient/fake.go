package apiclient

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"pet-wellness/internal/domain/health"
	"pet-wellness/internal/domain/insights"
	"pet-wellness/internal/domain/pets"
	"pet-wellness/internal/domain/reminders"
	"pet-wellness/internal/domain/sharing"
	"pet-wellness/internal/domain/training"
	"pet-wellness/internal/domain/users"
	"pet-wellness/internal/domain/validate"
	"pet-wellness/internal/domain/wellness"
	"pet-wellness/internal/seed"

	"github.com/google/uuid"
)

// MockToken es el token que emite el Fake.
const MockToken = "mock_token"

type FakeOptions struct {
	// Latency simula la red en cada llamada (respeta ctx).
	Latency time.Duration
	// Tokens, si se define, hace que GetUser exija un token como el backend real.
	Tokens       TokenSource
	ShareBaseURL string
	Now          func() time.Time
	Seed         int64
}

// Fake implementa API en memoria sobre el dataset demo. Es seguro para uso concurrente.
type Fake struct {
	opts FakeOptions

	mu        sync.Mutex
	user      users.User
	pets      []pets.Pet
	health    []health.Record
	reminders []reminders.Reminder
	wellness  []wellness.Entry
	goals     []training.Goal
	insights  []insights.Insight
}

var _ API = (*Fake)(nil)

func NewFake(opts FakeOptions) *Fake {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.ShareBaseURL = strings.TrimRight(strings.TrimSpace(opts.ShareBaseURL), "/")
	if opts.ShareBaseURL == "" {
		opts.ShareBaseURL = sharing.DefaultBaseURL
	}

	ds := seed.New(opts.Now(), opts.Seed)
	return &Fake{
		opts:      opts,
		user:      ds.User,
		pets:      ds.Pets,
		health:    ds.Health,
		reminders: ds.Reminders,
		wellness:  ds.Wellness,
		goals:     ds.Goals,
		insights:  ds.Insights,
	}
}

func (f *Fake) wait(ctx context.Context) error {
	if f.opts.Latency > 0 {
		t := time.NewTimer(f.opts.Latency)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return classify(ctx.Err(), scopeData)
		}
	}
	if err := ctx.Err(); err != nil {
		return classify(err, scopeData)
	}
	return nil
}

func notFound(what string) error {
	return serverError(http.StatusNotFound, what+" not found")
}

func rejected(err error) error {
	return &Error{Kind: ErrNetworkOrServer, StatusCode: http.StatusUnprocessableEntity, Message: err.Error(), Err: err}
}

// ── Auth ──

func (f *Fake) Login(ctx context.Context, email, password string) (AuthResult, error) {
	if err := credentials(email, password); err != nil {
		return AuthResult{}, err
	}
	if err := f.wait(ctx); err != nil {
		return AuthResult{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return AuthResult{User: f.user, Token: MockToken}, nil
}

// Signup hace eco de nombre y email sobre el usuario demo.
func (f *Fake) Signup(ctx context.Context, name, email, password string) (AuthResult, error) {
	if err := validate.Required("name", name); err != nil {
		return AuthResult{}, err
	}
	if err := credentials(email, password); err != nil {
		return AuthResult{}, err
	}
	if err := f.wait(ctx); err != nil {
		return AuthResult{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = users.User{ID: f.user.ID, Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	return AuthResult{User: f.user, Token: MockToken}, nil
}

func (f *Fake) Logout(ctx context.Context) {}

func (f *Fake) GetUser(ctx context.Context) (users.User, error) {
	if f.opts.Tokens != nil {
		tok, err := f.opts.Tokens.Token(ctx)
		if err != nil || strings.TrimSpace(tok) == "" {
			return users.User{}, authError("no session token")
		}
	}
	if err := f.wait(ctx); err != nil {
		return users.User{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user, nil
}

// ── Pets ──

func clonePet(p pets.Pet) pets.Pet {
	p.WeightHistory = append([]pets.WeightPoint(nil), p.WeightHistory...)
	return p
}

func (f *Fake) GetPets(ctx context.Context) ([]pets.Pet, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]pets.Pet, 0, len(f.pets))
	for _, p := range f.pets {
		out = append(out, clonePet(p))
	}
	return out, nil
}

func (f *Fake) AddPet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if err := p.Validate(); err != nil {
		return pets.Pet{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return pets.Pet{}, err
	}

	p = clonePet(p)
	p.ID = uuid.NewString()
	if p.Avatar == "" {
		p.Avatar = pets.DefaultAvatar(p.Species)
	}
	if len(p.WeightHistory) == 0 {
		p = p.WithWeight(p.Weight, f.opts.Now().Format(validate.DateLayout))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p.OwnerID = f.user.ID
	f.pets = append(f.pets, p)
	return clonePet(p), nil
}

func (f *Fake) UpdatePet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if err := p.Validate(); err != nil {
		return pets.Pet{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return pets.Pet{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pets {
		if f.pets[i].ID == p.ID {
			p = clonePet(p)
			p.OwnerID = f.pets[i].OwnerID
			f.pets[i] = p
			return clonePet(p), nil
		}
	}
	return pets.Pet{}, notFound("pet")
}

// DeletePet borra también los registros dependientes.
func (f *Fake) DeletePet(ctx context.Context, id string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	idx := -1
	for i := range f.pets {
		if f.pets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return notFound("pet")
	}
	f.pets = append(f.pets[:idx:idx], f.pets[idx+1:]...)
	f.health = dropPet(f.health, id, func(r health.Record) string { return r.PetID })
	f.reminders = dropPet(f.reminders, id, func(r reminders.Reminder) string { return r.PetID })
	f.wellness = dropPet(f.wellness, id, func(e wellness.Entry) string { return e.PetID })
	f.goals = dropPet(f.goals, id, func(g training.Goal) string { return g.PetID })
	f.insights = dropPet(f.insights, id, func(i insights.Insight) string { return i.PetID })
	return nil
}

func (f *Fake) GetPetTrends(ctx context.Context, id string) ([]pets.WeightPoint, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pets {
		if p.ID == id {
			return append([]pets.WeightPoint{}, p.WeightHistory...), nil
		}
	}
	return []pets.WeightPoint{}, nil
}

// ── Health records ──

func (f *Fake) GetHealthRecords(ctx context.Context, petID string) ([]health.Record, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return byPet(f.health, petID, func(r health.Record) string { return r.PetID }), nil
}

func (f *Fake) AddHealthRecord(ctx context.Context, r health.Record) (health.Record, error) {
	if err := r.Validate(); err != nil {
		return health.Record{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return health.Record{}, err
	}
	r.ID = uuid.NewString()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.health = append(f.health, r)
	return r, nil
}

func (f *Fake) UpdateHealthRecord(ctx context.Context, r health.Record) (health.Record, error) {
	if err := r.Validate(); err != nil {
		return health.Record{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return health.Record{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return replace(f.health, r, func(x health.Record) string { return x.ID }, "health record")
}

func (f *Fake) DeleteHealthRecord(ctx context.Context, id string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.health, err = remove(f.health, id, func(x health.Record) string { return x.ID }, "health record")
	return err
}

// ── Reminders ──

func (f *Fake) GetReminders(ctx context.Context, petID string) ([]reminders.Reminder, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return byPet(f.reminders, petID, func(r reminders.Reminder) string { return r.PetID }), nil
}

func (f *Fake) AddReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	if err := r.Validate(); err != nil {
		return reminders.Reminder{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return reminders.Reminder{}, err
	}
	r.ID = uuid.NewString()
	r.Completed = false
	r.Snoozed = false

	f.mu.Lock()
	defer f.mu.Unlock()
	f.reminders = append(f.reminders, r)
	return r, nil
}

func (f *Fake) UpdateReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	if err := r.Validate(); err != nil {
		return reminders.Reminder{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return reminders.Reminder{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return replace(f.reminders, r, func(x reminders.Reminder) string { return x.ID }, "reminder")
}

func (f *Fake) DeleteReminder(ctx context.Context, id string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.reminders, err = remove(f.reminders, id, func(x reminders.Reminder) string { return x.ID }, "reminder")
	return err
}

// ── Wellness ──

func (f *Fake) GetWellnessEntries(ctx context.Context, petID string) ([]wellness.Entry, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return byPet(f.wellness, petID, func(e wellness.Entry) string { return e.PetID }), nil
}

func (f *Fake) AddWellnessEntry(ctx context.Context, e wellness.Entry) (wellness.Entry, error) {
	if err := e.Validate(); err != nil {
		return wellness.Entry{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return wellness.Entry{}, err
	}
	e.ID = uuid.NewString()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.wellness = append(f.wellness, e)
	return e, nil
}

func (f *Fake) UpdateWellnessEntry(ctx context.Context, e wellness.Entry) (wellness.Entry, error) {
	if err := e.Validate(); err != nil {
		return wellness.Entry{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return wellness.Entry{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return replace(f.wellness, e, func(x wellness.Entry) string { return x.ID }, "wellness entry")
}

func (f *Fake) DeleteWellnessEntry(ctx context.Context, id string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.wellness, err = remove(f.wellness, id, func(x wellness.Entry) string { return x.ID }, "wellness entry")
	return err
}

// ── Training ──

func (f *Fake) GetTrainingGoals(ctx context.Context, petID string) ([]training.Goal, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return byPet(f.goals, petID, func(g training.Goal) string { return g.PetID }), nil
}

func (f *Fake) AddTrainingGoal(ctx context.Context, g training.Goal) (training.Goal, error) {
	if err := g.Validate(); err != nil {
		return training.Goal{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return training.Goal{}, err
	}
	g.ID = uuid.NewString()
	g.Completed = g.CurrentCount >= g.TargetCount

	f.mu.Lock()
	defer f.mu.Unlock()
	f.goals = append(f.goals, g)
	return g, nil
}

func (f *Fake) UpdateTrainingGoal(ctx context.Context, g training.Goal) (training.Goal, error) {
	if err := g.Validate(); err != nil {
		return training.Goal{}, rejected(err)
	}
	if err := f.wait(ctx); err != nil {
		return training.Goal{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return replace(f.goals, g, func(x training.Goal) string { return x.ID }, "goal")
}

func (f *Fake) DeleteTrainingGoal(ctx context.Context, id string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	f.goals, err = remove(f.goals, id, func(x training.Goal) string { return x.ID }, "goal")
	return err
}

func (f *Fake) RecordGoalProgress(ctx context.Context, goalID string) (training.Goal, error) {
	if err := f.wait(ctx); err != nil {
		return training.Goal{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.goals {
		if f.goals[i].ID == goalID {
			f.goals[i] = f.goals[i].Progress()
			return f.goals[i], nil
		}
	}
	return training.Goal{}, notFound("goal")
}

// ── Insights / sharing ──

func (f *Fake) GetInsights(ctx context.Context, petID string) ([]insights.Insight, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return byPet(f.insights, petID, func(i insights.Insight) string { return i.PetID }), nil
}

func (f *Fake) GenerateShareLink(ctx context.Context, petID string) (string, error) {
	if err := f.wait(ctx); err != nil {
		return "", err
	}
	return f.opts.ShareBaseURL + "/share/pet/" + petID, nil
}

// ── helpers genéricos sobre los slices ──

func byPet[T any](items []T, petID string, pet func(T) string) []T {
	out := make([]T, 0)
	for _, it := range items {
		if pet(it) == petID {
			out = append(out, it)
		}
	}
	return out
}

func dropPet[T any](items []T, petID string, pet func(T) string) []T {
	out := items[:0:0]
	for _, it := range items {
		if pet(it) != petID {
			out = append(out, it)
		}
	}
	return out
}

func replace[T any](items []T, v T, id func(T) string, what string) (T, error) {
	for i := range items {
		if id(items[i]) == id(v) {
			items[i] = v
			return v, nil
		}
	}
	var zero T
	return zero, notFound(what)
}

func remove[T any](items []T, idv string, id func(T) string, what string) ([]T, error) {
	for i := range items {
		if id(items[i]) == idv {
			return append(items[:i:i], items[i+1:]...), nil
		}
	}
	return items, notFound(what)
}
