package service

import (
	"errors"
	"os"
	"time"

	"congocar/internal/db"
	"congocar/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	SignUp(email, password, username string) (*db.Profile, error)
	Login(email, password string) (string, error)
	Profile(id string) (*db.Profile, error)
}

type authService struct {
	repo repository.ProfileRepository
}

func NewAuthService(repo repository.ProfileRepository) AuthService {
	return &authService{repo: repo}
}

// SignUp registers a client profile. Every self-registered account gets the
// "client" role; admins are provisioned directly in the database.
func (s *authService) SignUp(email, password, username string) (*db.Profile, error) {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &db.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Role:         db.RoleClient,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *authService) Login(email, password string) (string, error) {
	profile, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"sub":  profile.ID,
		"role": profile.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Profile resolves the authenticated identity's profile record by id.
func (s *authService) Profile(id string) (*db.Profile, error) {
	return s.repo.GetByID(id)
}
