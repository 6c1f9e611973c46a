package auth

import (
	"context"
	"encoding/json"
	"sync"

	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// State is a snapshot of the session store. The pair invariant holds in every
// settled snapshot: User is non-nil exactly when Token is non-empty.
type State struct {
	User          *models.User `json:"user"`
	Token         string       `json:"token,omitempty"`
	IsLoading     bool         `json:"isLoading"`
	IsInitialized bool         `json:"isInitialized"`
	Error         string       `json:"error,omitempty"`
}

// SessionStore is the authenticated-session state machine. It owns the
// user/token pair and is the single writer of that state; the API and Storage
// collaborators are injected so the store itself stays free of transport and
// persistence concerns.
//
// Overlapping calls settle last-write-wins: network calls run outside the
// lock and whichever resolution is applied last defines the final state. The
// store does not cancel in-flight requests.
type SessionStore struct {
	api     API
	storage Storage

	mu            sync.Mutex
	user          *models.User
	token         string
	isLoading     bool
	isInitialized bool
	errMsg        string
}

// NewSessionStore creates an empty, uninitialized session store. A nil
// storage is allowed and makes Initialize settle immediately with no user.
func NewSessionStore(api API, storage Storage) *SessionStore {
	return &SessionStore{api: api, storage: storage}
}

// Snapshot returns the current state.
func (s *SessionStore) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		User:          s.user,
		Token:         s.token,
		IsLoading:     s.isLoading,
		IsInitialized: s.isInitialized,
		Error:         s.errMsg,
	}
}

// Initialize hydrates the session from persisted storage. It runs the storage
// read at most once: calling it again after it has settled is a no-op, so the
// settled state of two consecutive calls equals that of one. When no storage
// backend is available it settles immediately with no user.
func (s *SessionStore) Initialize(ctx context.Context) {
	s.mu.Lock()
	if s.isInitialized {
		s.mu.Unlock()
		return
	}
	if s.storage == nil {
		s.isInitialized = true
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	token, err := s.storage.GetItem(ctx, utils.StorageKeyAuthToken)
	if err != nil {
		utils.GetLogger().Warn("session: storage read failed during initialize", zap.Error(err))
	}
	userJSON, err := s.storage.GetItem(ctx, utils.StorageKeyUser)
	if err != nil {
		utils.GetLogger().Warn("session: storage read failed during initialize", zap.Error(err))
	}

	var stored *models.User
	if userJSON != "" {
		var u models.User
		if err := json.Unmarshal([]byte(userJSON), &u); err == nil {
			stored = &u
		}
	}

	if stored == nil || token == "" {
		s.mu.Lock()
		s.isInitialized = true
		s.isLoading = false
		s.mu.Unlock()
		return
	}

	// Both halves of the pair are present: restore them provisionally and
	// let CheckAuth settle initialization against the backend.
	s.mu.Lock()
	stored.Role = models.NormalizeRole(stored.Role)
	s.user = stored
	s.token = token
	s.mu.Unlock()

	s.CheckAuth(ctx)
}

// Login authenticates against the backend. On success the user/token pair is
// set atomically and persisted; on failure the pair is cleared, the error is
// recorded for the UI, and the error is returned to the caller unswallowed.
func (s *SessionStore) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()

	resp, err := s.api.Login(ctx, req)

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.user = nil
		s.token = ""
		s.errMsg = err.Error()
		s.mu.Unlock()
		return nil, err
	}
	user := resp.User
	user.Role = models.NormalizeRole(user.Role)
	s.user = &user
	s.token = resp.AccessToken
	s.errMsg = ""
	s.mu.Unlock()

	s.persist(ctx, resp)
	return resp, nil
}

// Register creates an account. The session remains unauthenticated; errors
// surface verbatim for the registration form.
func (s *SessionStore) Register(ctx context.Context, req models.RegisterRequest) error {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()

	err := s.api.Register(ctx, req)

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.errMsg = err.Error()
	}
	s.mu.Unlock()
	return err
}

// Logout notifies the backend best-effort, then unconditionally clears the
// session and persisted storage. It never fails.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.isLoading = true
	s.mu.Unlock()

	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			utils.GetLogger().Warn("session: backend logout failed", zap.Error(err))
		}
	}

	s.clearStorage(ctx)

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.errMsg = ""
	s.isLoading = false
	s.isInitialized = true
	s.mu.Unlock()
}

// CheckAuth validates the held token against the backend. An invalid or
// expired token is an expected condition: the session recovers silently to
// the unauthenticated state instead of surfacing an error.
func (s *SessionStore) CheckAuth(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	if token == "" {
		s.user = nil
		s.isLoading = false
		s.isInitialized = true
		s.mu.Unlock()
		return
	}
	s.isLoading = true
	s.mu.Unlock()

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		utils.GetLogger().Debug("session: auth check failed, recovering to signed-out", zap.Error(err))
		s.Logout(ctx)
		return
	}

	s.mu.Lock()
	user.Role = models.NormalizeRole(user.Role)
	s.user = user
	s.isLoading = false
	s.isInitialized = true
	s.errMsg = ""
	s.mu.Unlock()

	if s.storage != nil {
		if data, err := json.Marshal(user); err == nil {
			if err := s.storage.SetItem(ctx, utils.StorageKeyUser, string(data)); err != nil {
				utils.GetLogger().Warn("session: failed to persist user", zap.Error(err))
			}
		}
	}
}

// ChangePassword changes the current user's password. Errors surface verbatim.
func (s *SessionStore) ChangePassword(ctx context.Context, current, next string) error {
	s.mu.Lock()
	token := s.token
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()

	err := s.api.ChangePassword(ctx, token, current, next)

	s.mu.Lock()
	s.isLoading = false
	if err != nil {
		s.errMsg = err.Error()
	}
	s.mu.Unlock()
	return err
}

// ClearError drops the recorded error message.
func (s *SessionStore) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *SessionStore) persist(ctx context.Context, resp *models.AuthResponse) {
	if s.storage == nil {
		return
	}
	logger := utils.GetLogger()
	if err := s.storage.SetItem(ctx, utils.StorageKeyAuthToken, resp.AccessToken); err != nil {
		logger.Warn("session: failed to persist auth token", zap.Error(err))
	}
	if resp.RefreshToken != "" {
		if err := s.storage.SetItem(ctx, utils.StorageKeyRefreshToken, resp.RefreshToken); err != nil {
			logger.Warn("session: failed to persist refresh token", zap.Error(err))
		}
	}
	if data, err := json.Marshal(resp.User); err == nil {
		if err := s.storage.SetItem(ctx, utils.StorageKeyUser, string(data)); err != nil {
			logger.Warn("session: failed to persist user", zap.Error(err))
		}
	}
}

func (s *SessionStore) clearStorage(ctx context.Context) {
	if s.storage == nil {
		return
	}
	for _, key := range []string{utils.StorageKeyAuthToken, utils.StorageKeyRefreshToken, utils.StorageKeyUser} {
		if err := s.storage.RemoveItem(ctx, key); err != nil {
			utils.GetLogger().Warn("session: failed to clear storage", zap.String("key", key), zap.Error(err))
		}
	}
}
