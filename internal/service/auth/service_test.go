package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/organization"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/user"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

type fakeOrganizationRepo struct {
	orgs map[string]organization.Organization
}

func (f *fakeOrganizationRepo) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	return org, nil
}

func newLoginFixture(t *testing.T) (*fakeUserRepo, *fakeOrganizationRepo, auth.AuthService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := &fakeUserRepo{byEmail: map[string]user.User{
		"admin@farm.test": {
			ID:             "user-1",
			OrganizationID: "org-1",
			Email:          "admin@farm.test",
			PasswordHash:   string(hash),
			Name:           "Admin",
			Role:           user.RoleAdmin,
			IsActive:       true,
		},
	}}
	orgRepo := &fakeOrganizationRepo{orgs: map[string]organization.Organization{
		"org-1": {ID: "org-1", Name: "Green Valley Farms", IsActive: true},
	}}

	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return userRepo, orgRepo, NewAuthService(userRepo, orgRepo, jwtService)
}

func TestLogin_Success(t *testing.T) {
	_, _, svc := newLoginFixture(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@farm.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, string(user.RoleAdmin), resp.Role)
	assert.Equal(t, "org-1", resp.OrganizationID)
	assert.Equal(t, "Green Valley Farms", resp.OrganizationName)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, _, svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@farm.test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, _, svc := newLoginFixture(t)

	// An unknown email reads the same as a bad password to the caller.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@farm.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo, _, svc := newLoginFixture(t)

	u := userRepo.byEmail["admin@farm.test"]
	u.IsActive = false
	userRepo.byEmail["admin@farm.test"] = u

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@farm.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestLogin_DeactivatedOrganization(t *testing.T) {
	_, orgRepo, svc := newLoginFixture(t)

	org := orgRepo.orgs["org-1"]
	org.IsActive = false
	orgRepo.orgs["org-1"] = org

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@farm.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, organization.ErrOrganizationInactive)
}

func TestLogin_ValidatesInput(t *testing.T) {
	_, _, svc := newLoginFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	_, _, svc := newLoginFixture(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@farm.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), resp.RefreshToken))
	assert.ErrorIs(t, svc.Logout(context.Background(), ""), auth.ErrInvalidToken)
}
