package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
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
	"pet-wellness/internal/platform/httpclient"
	"pet-wellness/internal/platform/logger"
)

// HTTPClient implementa API contra el backend REST.
type HTTPClient struct {
	http   *httpclient.Client
	tokens TokenSource
	log    logger.Logger
}

var _ API = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logger.Logger) (*HTTPClient, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Discard()
	}
	return &HTTPClient{
		http:   hc,
		tokens: tokens,
		log:    log.With(map[string]any{"component": "apiclient"}),
	}, nil
}

func (c *HTTPClient) token(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}
	tok, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Debug("token lookup failed", map[string]any{"error": err})
		return ""
	}
	return strings.TrimSpace(tok)
}

func (c *HTTPClient) do(ctx context.Context, s scope, method, path string, in, out any) error {
	var headers map[string]string
	if tok := c.token(ctx); tok != "" {
		headers = map[string]string{"Authorization": "Bearer " + tok}
	}
	return classify(c.http.DoJSON(ctx, method, path, headers, in, out), s)
}

func seg(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}

// ── Auth ──

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (AuthResult, error) {
	if err := credentials(email, password); err != nil {
		return AuthResult{}, err
	}

	var out AuthResult
	err := c.do(ctx, scopeAuth, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &out)
	return out, err
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (AuthResult, error) {
	if err := validate.Required("name", name); err != nil {
		return AuthResult{}, err
	}
	if err := credentials(email, password); err != nil {
		return AuthResult{}, err
	}

	req := users.RegisterInput{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: password,
	}
	var out AuthResult
	err := c.do(ctx, scopeAuth, http.MethodPost, "/register", req, &out)
	return out, err
}

func (c *HTTPClient) Logout(ctx context.Context) {
	if err := c.do(ctx, scopeData, http.MethodPost, "/logout", nil, nil); err != nil {
		c.log.Warn("logout failed (ignored)", map[string]any{"op": "logout", "error": err})
	}
}

func (c *HTTPClient) GetUser(ctx context.Context) (users.User, error) {
	if c.token(ctx) == "" {
		return users.User{}, authError("no session token")
	}
	var out users.User
	err := c.do(ctx, scopeAuth, http.MethodGet, "/user", nil, &out)
	return out, err
}

// ── Pets ──

func (c *HTTPClient) GetPets(ctx context.Context) ([]pets.Pet, error) {
	var out []pets.Pet
	err := c.do(ctx, scopeData, http.MethodGet, "/pets", nil, &out)
	return out, err
}

func (c *HTTPClient) AddPet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out pets.Pet
	err := c.do(ctx, scopeData, http.MethodPost, "/pets", p, &out)
	return out, err
}

func (c *HTTPClient) UpdatePet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out pets.Pet
	err := c.do(ctx, scopeData, http.MethodPut, "/pets/"+seg(p.ID), p, &out)
	return out, err
}

func (c *HTTPClient) DeletePet(ctx context.Context, id string) error {
	return c.do(ctx, scopeData, http.MethodDelete, "/pets/"+seg(id), nil, nil)
}

func (c *HTTPClient) GetPetTrends(ctx context.Context, id string) ([]pets.WeightPoint, error) {
	var out []pets.WeightPoint
	err := c.do(ctx, scopeData, http.MethodGet, "/pets/"+seg(id)+"/trends", nil, &out)
	return out, err
}

// ── Health records ──

func (c *HTTPClient) GetHealthRecords(ctx context.Context, petID string) ([]health.Record, error) {
	var out []health.Record
	err := c.do(ctx, scopeData, http.MethodGet, "/pets/"+seg(petID)+"/health-records", nil, &out)
	return out, err
}

func (c *HTTPClient) AddHealthRecord(ctx context.Context, r health.Record) (health.Record, error) {
	var out health.Record
	err := c.do(ctx, scopeData, http.MethodPost, "/pets/"+seg(r.PetID)+"/health-records", r, &out)
	return out, err
}

func (c *HTTPClient) UpdateHealthRecord(ctx context.Context, r health.Record) (health.Record, error) {
	var out health.Record
	err := c.do(ctx, scopeData, http.MethodPut, "/health-records/"+seg(r.ID), r, &out)
	return out, err
}

func (c *HTTPClient) DeleteHealthRecord(ctx context.Context, id string) error {
	return c.do(ctx, scopeData, http.MethodDelete, "/health-records/"+seg(id), nil, nil)
}

// ── Reminders ──

func (c *HTTPClient) GetReminders(ctx context.Context, petID string) ([]reminders.Reminder, error) {
	var out []reminders.Reminder
	err := c.do(ctx, scopeData, http.MethodGet, "/pets/"+seg(petID)+"/reminders", nil, &out)
	return out, err
}

func (c *HTTPClient) AddReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	var out reminders.Reminder
	err := c.do(ctx, scopeData, http.MethodPost, "/pets/"+seg(r.PetID)+"/reminders", r, &out)
	return out, err
}

func (c *HTTPClient) UpdateReminder(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	var out reminders.Reminder
	err := c.do(ctx, scopeData, http.MethodPut, "/reminders/"+seg(r.ID), r, &out)
	return out, err
}

func (c *HTTPClient) DeleteReminder(ctx context.Context, id string) error {
	return c.do(ctx, scopeData, http.MethodDelete, "/reminders/"+seg(id), nil, nil)
}

// ── Wellness ──

func (c *HTTPClient) GetWellnessEntries(ctx context.Context, petID string) ([]wellness.Entry, error) {
	var out []wellness.Entry
	err := c.do(ctx, scopeData, http.MethodGet, "/pets/"+seg(petID)+"/wellness", nil, &out)
	return out, err
}

func (c *HTTPClient) AddWellnessEntry(ctx context.Context, e wellness.Entry) (wellness.Entry, error) {
	var out wellness.Entry
	err := c.do(ctx, scopeData, http.MethodPost, "/pets/"+seg(e.PetID)+"/wellness", e, &out)
	return out, err
}

func (c *HTTPClient) UpdateWellnessEntry(ctx context.Context, e wellness.Entry) (wellness.Entry, error) {
	var out wellness.Entry
	err := c.do(ctx, scopeData, http.MethodPut, "/wellness/"+seg(e.ID), e, &out)
	return out, err
}

func (c *HTTPClient) DeleteWellnessEntry(ctx context.Context, id string) error {
	return c.do(ctx, scopeData, http.MethodDelete, "/wellness/"+seg(id), nil, nil)
}

// ── Training ──

func (c *HTTPClient) GetTrainingGoals(ctx context.Context, petID string) ([]training.Goal, error) {
	var out []training.Goal
	err := c.do(ctx, scopeData, http.MethodGet, "/pets/"+seg(petID)+"/goals", nil, &out)
	return out, err
}

func (c *HTTPClient) AddTrainingGoal(ctx context.Context, g training.Goal) (training.Goal, error) {
	var out training.Goal
	err := c.do(ctx, scopeData, http.MethodPost, "/pets/"+seg(g.PetID)+"/goals", g, &out)
	return out, err
}

func (c *HTTPClient) UpdateTrainingGoal(ctx context.Context, g training.Goal) (training.Goal, error) {
	var out training.Goal
	err := c.do(ctx, scopeData, http.MethodPut, "/goals/"+seg(g.ID), g, &out)
	return out, err
}

func (c *HTTPClient) DeleteTrainingGoal(ctx context.Context, id string) error {
	return c.do(ctx, scopeData, http.MethodDelete, "/goals/"+seg(id), nil, nil)
}

// RecordGoalProgress no manda body; el servidor incrementa y devuelve el goal.
func (c *HTTPClient) RecordGoalProgress(ctx context.Context, goalID string) (training.Goal, error) {
	var out training.Goal
	err := c.do(ctx, scopeData, http.MethodPost, "/goals/"+seg(goalID)+"/progress", nil, &out)
	return out, err
}

// ── Insights / sharing ──

func (c *HTTPClient) GetInsights(ctx context.Context, petID string) ([]insights.Insight, error) {
	var out []insights.Insight
	err := c.do(ctx, scopeData, http.MethodGet, "/pets/"+seg(petID)+"/insights", nil, &out)
	return out, err
}

func (c *HTTPClient) GenerateShareLink(ctx context.Context, petID string) (string, error) {
	var out sharing.ShareResponse
	if err := c.do(ctx, scopeData, http.MethodPost, "/pets/"+seg(petID)+"/share", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func credentials(email, password string) error {
	return validate.First(
		validate.Required("email", email),
		validate.Required("password", password),
	)
}
