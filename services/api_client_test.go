package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostSendsJSONAndDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access": "tok"})
	}))
	t.Cleanup(srv.Close)

	client := NewAPIClient(srv.URL)
	var out struct {
		Access string `json:"access"`
	}
	require.NoError(t, client.Post(context.Background(), "/token/", map[string]string{"email": "a@b.c"}, &out))
	assert.Equal(t, "tok", out.Access)
}

func TestBearerHeaderFollowsAuthToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := NewAPIClient(srv.URL)

	require.NoError(t, client.Get(context.Background(), "/ping", nil))
	assert.Empty(t, gotAuth)

	client.SetAuthToken("tok-123")
	require.NoError(t, client.Get(context.Background(), "/ping", nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)

	client.ClearAuthToken()
	require.NoError(t, client.Get(context.Background(), "/ping", nil))
	assert.Empty(t, gotAuth)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))
	t.Cleanup(srv.Close)

	client := NewAPIClient(srv.URL)
	err := client.Post(context.Background(), "/token/", map[string]string{}, nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, "Invalid credentials", apiErr.Error())
}

func TestAPIErrorWithoutBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewAPIClient(srv.URL)
	err := client.Get(context.Background(), "/boom", nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Empty(t, apiErr.Message)
	assert.Contains(t, apiErr.Error(), "500")
}
