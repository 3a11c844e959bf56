package stores

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/services"
	"github.com/sanyamChaudhary27/project-panther/storage"
)

func authServer(t *testing.T, loginStatus int, loginBody any) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(loginStatus)
		_ = json.NewEncoder(w).Encode(loginBody)
	})
	mux.HandleFunc("/auth/register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	srv := authServer(t, http.StatusOK, models.TokenResponse{
		Access: "access-token",
		User:   models.User{ID: "u1", Email: "athlete@panther.fit", Name: "Arjun"},
	})

	bridge := storage.NewMemoryBridge()
	api := services.NewAPIClient(srv.URL)
	auth := NewAuthStore(bridge, api, zerolog.Nop())

	ok := auth.Login(context.Background(), "athlete@panther.fit", "hunter2")
	require.True(t, ok)

	assert.True(t, auth.IsLoggedIn())
	assert.Equal(t, "athlete@panther.fit", auth.UserEmail())
	assert.Empty(t, auth.Err())
	assert.False(t, auth.Loading())
	assert.Equal(t, "access-token", api.AuthToken())

	// token persisted raw, user persisted as JSON
	raw, found, err := bridge.Load(context.Background(), storage.KeyToken)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "access-token", string(raw))

	var user models.User
	require.True(t, storage.LoadJSON(context.Background(), bridge, storage.KeyUser, &user))
	assert.Equal(t, "u1", user.ID)
}

func TestLoginFailureCapturesRemoteError(t *testing.T) {
	srv := authServer(t, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})

	bridge := storage.NewMemoryBridge()
	api := services.NewAPIClient(srv.URL)
	auth := NewAuthStore(bridge, api, zerolog.Nop())

	ok := auth.Login(context.Background(), "athlete@panther.fit", "wrong")
	require.False(t, ok)

	assert.False(t, auth.IsLoggedIn())
	assert.Equal(t, "Invalid credentials", auth.Err())
	assert.False(t, auth.Loading())
	assert.Empty(t, api.AuthToken())
}

func TestLoginTransportFailureUsesFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // force a connection error

	auth := NewAuthStore(storage.NewMemoryBridge(), services.NewAPIClient(srv.URL), zerolog.Nop())

	ok := auth.Login(context.Background(), "a@b.c", "pw")
	require.False(t, ok)
	assert.Equal(t, "Login failed", auth.Err())
	assert.False(t, auth.Loading())
}

func TestRegisterChainsIntoLogin(t *testing.T) {
	srv := authServer(t, http.StatusOK, models.TokenResponse{
		Access: "fresh-token",
		User:   models.User{ID: "u2", Email: "new@panther.fit", Name: "Nisha"},
	})

	auth := NewAuthStore(storage.NewMemoryBridge(), services.NewAPIClient(srv.URL), zerolog.Nop())

	ok := auth.Register(context.Background(), models.RegisterRequest{
		Name:     "Nisha",
		Email:    "new@panther.fit",
		Password: "hunter2",
	})
	require.True(t, ok)
	assert.True(t, auth.IsLoggedIn())
	assert.Equal(t, "new@panther.fit", auth.UserEmail())
}

func TestRegisterFailureCapturesError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/register/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Email already taken"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	auth := NewAuthStore(storage.NewMemoryBridge(), services.NewAPIClient(srv.URL), zerolog.Nop())

	ok := auth.Register(context.Background(), models.RegisterRequest{
		Name: "Dup", Email: "dup@panther.fit", Password: "pw",
	})
	require.False(t, ok)
	assert.Equal(t, "Email already taken", auth.Err())
	assert.False(t, auth.IsLoggedIn())
}

func TestLogoutClearsSessionAndPersistedKeys(t *testing.T) {
	srv := authServer(t, http.StatusOK, models.TokenResponse{
		Access: "tok",
		User:   models.User{ID: "u1", Email: "a@b.c"},
	})

	bridge := storage.NewMemoryBridge()
	api := services.NewAPIClient(srv.URL)
	auth := NewAuthStore(bridge, api, zerolog.Nop())
	require.True(t, auth.Login(context.Background(), "a@b.c", "pw"))

	auth.Logout()

	assert.False(t, auth.IsLoggedIn())
	assert.Empty(t, auth.UserEmail())
	assert.Empty(t, api.AuthToken())

	_, found, _ := bridge.Load(context.Background(), storage.KeyToken)
	assert.False(t, found)
	_, found, _ = bridge.Load(context.Background(), storage.KeyUser)
	assert.False(t, found)
}

func TestRestorePersistedSession(t *testing.T) {
	bridge := storage.NewMemoryBridge()
	ctx := context.Background()
	require.NoError(t, bridge.Save(ctx, storage.KeyToken, []byte("opaque-token")))
	require.NoError(t, storage.SaveJSON(ctx, bridge, storage.KeyUser, models.User{ID: "u1", Email: "a@b.c"}))

	api := services.NewAPIClient("http://localhost:0")
	auth := NewAuthStore(bridge, api, zerolog.Nop())

	assert.True(t, auth.IsLoggedIn())
	assert.Equal(t, "a@b.c", auth.UserEmail())
	assert.Equal(t, "opaque-token", api.AuthToken())
}

func TestRestoreDiscardsExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	bridge := storage.NewMemoryBridge()
	ctx := context.Background()
	require.NoError(t, bridge.Save(ctx, storage.KeyToken, []byte(expired)))
	require.NoError(t, storage.SaveJSON(ctx, bridge, storage.KeyUser, models.User{ID: "u1", Email: "a@b.c"}))

	api := services.NewAPIClient("http://localhost:0")
	auth := NewAuthStore(bridge, api, zerolog.Nop())

	assert.False(t, auth.IsLoggedIn())
	assert.Empty(t, api.AuthToken())

	_, found, _ := bridge.Load(ctx, storage.KeyToken)
	assert.False(t, found, "expired token should be dropped from the bridge")
}
