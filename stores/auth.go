package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/services"
	"github.com/sanyamChaudhary27/project-panther/storage"
	"github.com/sanyamChaudhary27/project-panther/utils"
)

// AuthStore owns the session: the paired (user, access token) identifying
// an authenticated actor, plus the loading/error state the views read.
// Network failures are captured as state, never thrown past the store.
//
// Two overlapping Login calls are allowed to race; the last response to
// resolve wins. The source behaves the same way and no guard is added.
type AuthStore struct {
	mu          sync.Mutex
	user        *models.User
	accessToken string
	loading     bool
	err         string

	bridge storage.Bridge
	api    *services.APIClient
	log    zerolog.Logger
}

// NewAuthStore restores any persisted session from the bridge. A persisted
// token whose expiry has already passed is discarded instead of restored.
func NewAuthStore(bridge storage.Bridge, api *services.APIClient, log zerolog.Logger) *AuthStore {
	s := &AuthStore{
		bridge: bridge,
		api:    api,
		log:    log.With().Str("store", "auth").Logger(),
	}
	s.restore()
	return s
}

func (s *AuthStore) restore() {
	ctx := context.Background()

	raw, ok, err := s.bridge.Load(ctx, storage.KeyToken)
	if err != nil || !ok {
		return
	}
	token := string(raw)
	if utils.TokenExpired(token) {
		s.log.Info().Msg("discarding expired persisted session")
		_ = s.bridge.Delete(ctx, storage.KeyToken)
		_ = s.bridge.Delete(ctx, storage.KeyUser)
		return
	}

	var user models.User
	if !storage.LoadJSON(ctx, s.bridge, storage.KeyUser, &user) {
		return
	}

	s.mu.Lock()
	s.accessToken = token
	s.user = &user
	s.mu.Unlock()
	s.api.SetAuthToken(token)
	s.log.Info().Str("email", user.Email).Msg("session restored")
}

// Login exchanges credentials for a session. On success the token and user
// are stored in state and on the bridge, and the shared API client gets the
// bearer header for subsequent calls. On failure the error message lands in
// Err(). Loading is reset on every path.
func (s *AuthStore) Login(ctx context.Context, email, password string) bool {
	s.setLoading(true)
	s.setErr("")
	defer s.setLoading(false)

	var out models.TokenResponse
	err := s.api.Post(ctx, "/token/", models.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		s.setErr(errorMessage(err, "Login failed"))
		return false
	}

	user := out.User
	s.mu.Lock()
	s.accessToken = out.Access
	s.user = &user
	s.mu.Unlock()

	if err := s.bridge.Save(ctx, storage.KeyToken, []byte(out.Access)); err != nil {
		s.log.Error().Err(err).Msg("failed to persist access token")
	}
	if err := storage.SaveJSON(ctx, s.bridge, storage.KeyUser, out.User); err != nil {
		s.log.Error().Err(err).Msg("failed to persist user")
	}
	s.api.SetAuthToken(out.Access)

	s.log.Info().Str("email", email).Msg("logged in")
	return true
}

// Register creates the account, then logs in with the same credentials to
// establish the session.
func (s *AuthStore) Register(ctx context.Context, data models.RegisterRequest) bool {
	s.setLoading(true)
	s.setErr("")
	defer s.setLoading(false)

	if err := s.api.Post(ctx, "/auth/register/", data, nil); err != nil {
		s.setErr(errorMessage(err, "Registration failed"))
		return false
	}

	return s.Login(ctx, data.Email, data.Password)
}

// Logout clears the session from state and from the bridge, and drops the
// default bearer header.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.accessToken = ""
	s.mu.Unlock()

	ctx := context.Background()
	_ = s.bridge.Delete(ctx, storage.KeyToken)
	_ = s.bridge.Delete(ctx, storage.KeyUser)
	s.api.ClearAuthToken()

	s.log.Info().Msg("logged out")
}

// IsLoggedIn holds exactly when both a token and a user are present
func (s *AuthStore) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken != "" && s.user != nil
}

// UserEmail is the session user's email, or empty when logged out
func (s *AuthStore) UserEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Email
}

// User returns a copy of the session user, if any
func (s *AuthStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AuthStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *AuthStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *AuthStore) setErr(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

// errorMessage prefers the remote API's error field; transport errors and
// bodyless failures collapse to the generic fallback.
func errorMessage(err error, fallback string) string {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
