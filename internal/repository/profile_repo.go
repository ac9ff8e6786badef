package repository

import (
	"database/sql"
	"errors"

	"congocar/internal/db"
)

type ProfileRepository interface {
	CreateProfile(profile *db.Profile) error
	GetByEmail(email string) (*db.Profile, error)
	GetByID(id string) (*db.Profile, error)
	GetRoleByID(id string) (string, error)
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(database *sql.DB) ProfileRepository {
	return &profileRepository{db: database}
}

func (r *profileRepository) CreateProfile(profile *db.Profile) error {
	query := `
	INSERT INTO profiles (id, email, username, role, password_hash, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(query,
		profile.ID,
		profile.Email,
		profile.Username,
		profile.Role,
		profile.PasswordHash,
		profile.CreatedAt,
	)
	return err
}

// GetByEmail returns (nil, nil) when no profile matches.
func (r *profileRepository) GetByEmail(email string) (*db.Profile, error) {
	var p db.Profile
	err := r.db.QueryRow(
		`SELECT id, email, username, role, password_hash, created_at FROM profiles WHERE email = $1`,
		email,
	).Scan(&p.ID, &p.Email, &p.Username, &p.Role, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetByID(id string) (*db.Profile, error) {
	var p db.Profile
	err := r.db.QueryRow(
		`SELECT id, email, username, role, password_hash, created_at FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Email, &p.Username, &p.Role, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetRoleByID(id string) (string, error) {
	var role string
	err := r.db.QueryRow(`SELECT role FROM profiles WHERE id = $1`, id).Scan(&role)
	if err != nil {
		return "", err
	}
	return role, nil
}
