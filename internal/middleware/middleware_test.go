package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-wellness/internal/platform/logger"
	"pet-wellness/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticVerifier struct {
	token string
}

func (v staticVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != v.token {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: "u1", Email: "mary@example.com"}, nil
}

func protected() http.Handler {
	return AuthContext(staticVerifier{token: "good"})(RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, _ := UserID(r.Context())
		_, _ = w.Write([]byte(uid))
	})))
}

func TestRequireUser(t *testing.T) {
	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"bad scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "bearer good", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/pets", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			protected().ServeHTTP(rr, req)

			assert.Equal(t, tc.status, rr.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "u1", rr.Body.String())
			} else {
				assert.JSONEq(t, `{"message":"unauthenticated"}`, rr.Body.String())
			}
		})
	}
}

func TestRequestMetrics_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(RequestMetrics(m))
	r.Get("/pets/{petID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"1", "2"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/pets/"+id, nil))
		require.Equal(t, http.StatusTeapot, rr.Code)
	}

	got := testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/pets/{petID}", "418"))
	assert.Equal(t, float64(2), got)
}

func TestLogRequest_WritesStatusAndPath(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.ParseLevel("debug"), Format: logger.FormatJSON, Output: &buf})

	h := LogRequest(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/pets", nil))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, buf.String(), `"path":"/pets"`)
	assert.Contains(t, buf.String(), `"status":201`)
}
