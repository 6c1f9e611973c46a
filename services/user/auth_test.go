package user

import (
	"context"
	"testing"

	"barberbook/models"
	"barberbook/services/auth"
	"barberbook/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*models.User), byEmail: make(map[string]*models.User)}
}

func (m *memUserRepo) add(u *models.User) {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
}

func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := m.byID[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, assert.AnError
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := m.byEmail[email]; ok {
		out := *u
		return &out, nil
	}
	return nil, nil
}

func (m *memUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range m.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) GetStaff() ([]models.User, error) {
	var out []models.User
	for _, u := range m.byID {
		if u.Role.IsStaff() && u.IsActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memUserRepo) Create(user *models.User) error {
	m.add(user)
	return nil
}

func (m *memUserRepo) Update(user *models.User) error {
	m.add(user)
	return nil
}

func (m *memUserRepo) UpdateWithDocument(id string, update bson.M) error {
	u, ok := m.byID[id]
	if !ok {
		return assert.AnError
	}
	if set, ok := update["$set"].(bson.M); ok {
		if v, ok := set["token_hash"].(string); ok {
			u.TokenHash = v
		}
		if v, ok := set["password_hash"].(string); ok {
			u.PasswordHash = v
		}
		if v, ok := set["is_active"].(bool); ok {
			u.IsActive = v
		}
	}
	return nil
}

func (m *memUserRepo) Delete(id string) error {
	u, ok := m.byID[id]
	if !ok {
		return assert.AnError
	}
	delete(m.byEmail, u.Email)
	delete(m.byID, id)
	return nil
}

func (m *memUserRepo) PushNotification(id string, n models.Notification) error {
	return nil
}

func (m *memUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return m.GetByID(id)
}

func newTestUserService(t *testing.T) (*DefaultUserService, *memUserRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	repo := newMemUserRepo()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.add(&models.User{
		ID:           "c1",
		Email:        "kari@example.com",
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
		IsActive:     true,
	})

	return &DefaultUserService{
		Repo:  repo,
		Cache: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}, repo
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, repo := newTestUserService(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "kari@example.com", Password: "Password1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "c1", resp.User.ID)
	assert.Empty(t, resp.User.PasswordHash, "credentials must not leave the service")

	assert.Equal(t, utils.HashToken(resp.AccessToken), repo.byID["c1"].TokenHash)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "kari@example.com", Password: "wrong",
	})
	require.Error(t, err)
	apiErr, ok := err.(*auth.APIError)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.Status)

	// Unknown email yields the same message as a wrong password.
	_, err2 := svc.Login(context.Background(), models.LoginRequest{
		Email: "nobody@example.com", Password: "Password1",
	})
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc, repo := newTestUserService(t)
	repo.byID["c1"].IsActive = false
	repo.byEmail["kari@example.com"].IsActive = false

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "kari@example.com", Password: "Password1",
	})
	require.Error(t, err)
	apiErr, ok := err.(*auth.APIError)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.Status)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)

	err := svc.Register(context.Background(), models.RegisterRequest{
		FirstName: "Kari", LastName: "N", Email: "kari@example.com",
		PhoneNumber: "555", Password: "Password1",
	})
	require.Error(t, err)
	apiErr, ok := err.(*auth.APIError)
	require.True(t, ok)
	assert.Equal(t, 409, apiErr.Status)
}

func TestRegisterCreatesCustomer(t *testing.T) {
	svc, repo := newTestUserService(t)

	err := svc.Register(context.Background(), models.RegisterRequest{
		FirstName: "New", LastName: "Guy", Email: "new@example.com",
		PhoneNumber: "555", Password: "Password1",
	})
	require.NoError(t, err)

	rec := repo.byEmail["new@example.com"]
	require.NotNil(t, rec)
	assert.Equal(t, models.RoleCustomer, rec.Role)
	assert.True(t, rec.IsActive)
	assert.NotEqual(t, "Password1", rec.PasswordHash)
}

func TestCurrentUserRoundTrip(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "kari@example.com", Password: "Password1"})
	require.NoError(t, err)

	me, err := svc.CurrentUser(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "c1", me.ID)
	assert.Empty(t, me.TokenHash)
}

func TestCurrentUserFallsBackToRecordOnCacheMiss(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "kari@example.com", Password: "Password1"})
	require.NoError(t, err)

	// Drop the cache entry; the stored hash on the record still validates.
	require.NoError(t, svc.Cache.Del(ctx, utils.AuthCachePrefix+"c1").Err())

	me, err := svc.CurrentUser(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "c1", me.ID)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "kari@example.com", Password: "Password1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	assert.Empty(t, repo.byID["c1"].TokenHash)

	_, err = svc.CurrentUser(ctx, resp.AccessToken)
	assert.Error(t, err, "a revoked token must no longer resolve")
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "kari@example.com", Password: "Password1"})
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.Equal(t, "c1", fresh.User.ID)

	// An access token is not a refresh token.
	_, err = svc.RefreshToken(ctx, resp.AccessToken)
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{Email: "kari@example.com", Password: "Password1"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, resp.AccessToken, "wrong", "NewPassword2")
	require.Error(t, err)

	err = svc.ChangePassword(ctx, resp.AccessToken, "Password1", "weak")
	require.Error(t, err)

	err = svc.ChangePassword(ctx, resp.AccessToken, "Password1", "NewPassword2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "kari@example.com", Password: "NewPassword2"})
	assert.NoError(t, err)
}
