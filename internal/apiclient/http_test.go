package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pet-wellness/internal/domain/health"
	"pet-wellness/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(tok string) TokenSource {
	return TokenFunc(func(ctx context.Context) (string, error) { return tok, nil })
}

func newTestClient(t *testing.T, h http.Handler, tok string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL, 2*time.Second, staticToken(tok), nil)
	require.NoError(t, err)
	return c
}

const petsJSON = `[{"id":"1","name":"Luna","species":"dog","weight":28},{"id":"2","name":"Mochi","species":"cat","weight":5.2}]`

func TestHTTPClient_EnvelopeAndBareDecodeTheSame(t *testing.T) {
	enveloped := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":`+petsJSON+`}`)
	}), "tok")
	bare := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, petsJSON)
	}), "tok")

	a, err := enveloped.GetPets(context.Background())
	require.NoError(t, err)
	b, err := bare.GetPets(context.Background())
	require.NoError(t, err)

	require.Len(t, a, 2)
	assert.Equal(t, a, b)
	assert.Equal(t, "Luna", a[0].Name)
	assert.Equal(t, pets.SpeciesCat, a[1].Species)
}

func TestHTTPClient_Headers(t *testing.T) {
	var seen http.Header
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		_, _ = io.WriteString(w, `[]`)
	}), "abc")

	_, err := c.GetHealthRecords(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", seen.Get("Authorization"))
	assert.Equal(t, "application/json", seen.Get("Accept"))
	assert.Equal(t, "application/json", seen.Get("Content-Type"))

	anon := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		_, _ = io.WriteString(w, `[]`)
	}), "")
	_, err = anon.GetPets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seen.Get("Authorization"))
}

func TestHTTPClient_ErrorMessages(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pets/1/health-records":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message":"title required"}`)
		case "/pets":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"unauthenticated"}`)
		}
	}), "tok")
	ctx := context.Background()

	_, err := c.AddHealthRecord(ctx, health.Record{PetID: "1"})
	require.Error(t, err)
	assert.Equal(t, "title required", err.Error())
	assert.ErrorIs(t, err, ErrNetworkOrServer)
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(err))

	_, err = c.GetPets(ctx)
	require.Error(t, err)
	assert.Equal(t, "API error 500", err.Error())
	assert.ErrorIs(t, err, ErrNetworkOrServer)

	_, err = c.GetReminders(ctx, "1")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.NotErrorIs(t, err, ErrNetworkOrServer)
}

func TestHTTPClient_AuthScope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"message":"boom"}`)
	}), "tok")

	_, err := c.Login(context.Background(), "mary@example.com", "pw")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, "boom", err.Error())

	_, err = c.GetUser(context.Background())
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestHTTPClient_ValidationBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}), "")
	ctx := context.Background()

	_, err := c.Login(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = c.Login(ctx, "a@b.c", "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = c.Signup(ctx, " ", "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrValidation)

	// sin token, GetUser falla sin request
	_, err = c.GetUser(ctx)
	assert.ErrorIs(t, err, ErrAuthentication)

	assert.Zero(t, calls.Load())
}

func TestHTTPClient_SignupPayloadAndAuthResult(t *testing.T) {
	var body map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"data":{"user":{"id":"u9","name":"Ana","email":"ana@example.com"},"token":"t9"}}`)
	}), "")

	res, err := c.Signup(context.Background(), "Ana", "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "t9", res.Token)
	assert.Equal(t, "Ana", res.User.Name)
	assert.Equal(t, "secret123", body["password_confirmation"])
}

func TestHTTPClient_LogoutSwallowsErrors(t *testing.T) {
	var hit atomic.Bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit.Store(true)
		w.WriteHeader(http.StatusInternalServerError)
	}), "tok")

	c.Logout(context.Background())
	assert.True(t, hit.Load())
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, time.Second, staticToken("tok"), nil)
	require.NoError(t, err)

	_, err = c.GetPets(context.Background())
	assert.ErrorIs(t, err, ErrNetworkOrServer)
	assert.Zero(t, StatusCode(err))
}

func TestHTTPClient_RecordGoalProgress_NoBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/goals/t1/progress", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.Empty(t, b)
		_, _ = io.WriteString(w, `{"id":"t1","petId":"1","title":"Leash walking","type":"habit","targetCount":7,"currentCount":6}`)
	}), "tok")

	g, err := c.RecordGoalProgress(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 6, g.CurrentCount)
}

func TestHTTPClient_DeleteNoContent(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}), "tok")

	assert.NoError(t, c.DeleteReminder(context.Background(), "r1"))
}
