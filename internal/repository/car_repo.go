package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"congocar/internal/db"
)

type CarRepository struct {
	DB *sql.DB
}

func NewCarRepository(database *sql.DB) *CarRepository {
	return &CarRepository{DB: database}
}

// ListCars returns every car, newest first.
func (r *CarRepository) ListCars() ([]db.Car, error) {
	query := `
	SELECT id, brand, model, year, price, description, image, status, created_at
	FROM cars
	ORDER BY created_at DESC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying cars: %w", err)
	}
	defer rows.Close()

	var cars []db.Car
	for rows.Next() {
		var c db.Car
		if err := rows.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Price, &c.Description, &c.Image, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning car: %w", err)
		}
		cars = append(cars, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating car rows: %w", err)
	}
	return cars, nil
}

func (r *CarRepository) GetCarByID(id string) (*db.Car, error) {
	var c db.Car
	query := `
	SELECT id, brand, model, year, price, description, image, status, created_at
	FROM cars
	WHERE id = $1`

	err := r.DB.QueryRow(query, id).Scan(
		&c.ID, &c.Brand, &c.Model, &c.Year, &c.Price, &c.Description, &c.Image, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("car with id '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying car: %w", err)
	}
	return &c, nil
}

func (r *CarRepository) CreateCar(car *db.Car) error {
	query := `
	INSERT INTO cars (id, brand, model, year, price, description, image, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at`
	return r.DB.QueryRow(query,
		car.ID,
		car.Brand,
		car.Model,
		car.Year,
		car.Price,
		car.Description,
		car.Image,
		car.Status,
		car.CreatedAt,
	).Scan(&car.CreatedAt)
}

func (r *CarRepository) UpdateCar(car *db.Car) error {
	result, err := r.DB.Exec(`
	UPDATE cars
	SET brand = $1, model = $2, year = $3, price = $4, description = $5, image = $6, status = $7
	WHERE id = $8`,
		car.Brand, car.Model, car.Year, car.Price, car.Description, car.Image, car.Status, car.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating car: %w", err)
	}
	return requireRowAffected(result, "car", car.ID)
}

func (r *CarRepository) UpdateCarStatus(id, status string) error {
	result, err := r.DB.Exec(`UPDATE cars SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating car status: %w", err)
	}
	return requireRowAffected(result, "car", id)
}

func (r *CarRepository) DeleteCar(id string) error {
	result, err := r.DB.Exec(`DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting car: %w", err)
	}
	return requireRowAffected(result, "car", id)
}

func requireRowAffected(result sql.Result, entity, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s with id '%s' not found: %w", entity, id, sql.ErrNoRows)
	}
	return nil
}
