package service

import (
	"testing"

	"congocar/internal/db"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profiles map[string]*db.Profile // keyed by email
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*db.Profile{}}
}

func (f *fakeProfileRepo) CreateProfile(p *db.Profile) error {
	f.profiles[p.Email] = p
	return nil
}

func (f *fakeProfileRepo) GetByEmail(email string) (*db.Profile, error) {
	return f.profiles[email], nil
}

func (f *fakeProfileRepo) GetByID(id string) (*db.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeProfileRepo) GetRoleByID(id string) (string, error) {
	p, err := f.GetByID(id)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}

func TestSignUpCreatesClientProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewAuthService(repo)

	profile, err := svc.SignUp("jean@x.com", "secret123", "jean")
	require.NoError(t, err)
	assert.Equal(t, db.RoleClient, profile.Role)
	assert.Equal(t, "jean", profile.Username)
	assert.NotEmpty(t, profile.ID)
	assert.NotEqual(t, "secret123", profile.PasswordHash)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewAuthService(repo)

	_, err := svc.SignUp("jean@x.com", "secret123", "jean")
	require.NoError(t, err)

	_, err = svc.SignUp("jean@x.com", "other456", "jean2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLoginReturnsTokenWithRoleClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeProfileRepo()
	svc := NewAuthService(repo)

	profile, err := svc.SignUp("jean@x.com", "secret123", "jean")
	require.NoError(t, err)

	tokenString, err := svc.Login("jean@x.com", "secret123")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, profile.ID, claims["sub"])
	assert.Equal(t, db.RoleClient, claims["role"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeProfileRepo()
	svc := NewAuthService(repo)

	_, err := svc.SignUp("jean@x.com", "secret123", "jean")
	require.NoError(t, err)

	_, err = svc.Login("jean@x.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login("nobody@x.com", "secret123")
	assert.EqualError(t, err, "invalid credentials")
}
