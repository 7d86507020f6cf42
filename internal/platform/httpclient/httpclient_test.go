package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func serve(t *testing.T, status int, body string) *Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	c, err := NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)
	return c
}

func TestDoJSON_UnwrapsEnvelope(t *testing.T) {
	c := serve(t, http.StatusOK, `{"data":[{"id":"1","name":"Luna"}]}`)

	var out []pet
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Luna", out[0].Name)
}

func TestDoJSON_BareBody(t *testing.T) {
	c := serve(t, http.StatusOK, `[{"id":"2","name":"Mochi"}]`)

	var out []pet
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "pets", nil, nil, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Mochi", out[0].Name)
}

func TestDoJSON_BareObjectWithoutDataKey(t *testing.T) {
	c := serve(t, http.StatusCreated, `{"id":"3","name":"Kiwi"}`)

	var out pet
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "/pets", nil, pet{Name: "Kiwi"}, &out))
	assert.Equal(t, "3", out.ID)
}

func TestDoJSON_ErrorMessageFromBody(t *testing.T) {
	c := serve(t, http.StatusUnprocessableEntity, `{"message":"name required"}`)

	err := c.DoJSON(context.Background(), http.MethodPost, "/pets", nil, pet{}, nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, "name required", httpErr.Error())
}

func TestDoJSON_GenericErrorMessage(t *testing.T) {
	c := serve(t, http.StatusInternalServerError, `oops`)

	err := c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil, nil)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "API error 500", httpErr.Error())
	assert.Equal(t, "oops", httpErr.Body)
}

func TestDoJSON_RelativePathRequiresBaseURL(t *testing.T) {
	c := New(0)
	err := c.DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil, nil)
	require.Error(t, err)
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, `null`, string(Unwrap([]byte(`{"data":null}`))))
	assert.Equal(t, `[1]`, string(Unwrap([]byte(`[1]`))))
	assert.Equal(t, `{"url":"x"}`, string(Unwrap([]byte(`{"url":"x"}`))))
}
