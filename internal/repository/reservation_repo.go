package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"congocar/internal/db"
	"congocar/internal/entities"

	"github.com/lib/pq"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(database *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: database}
}

func (r *ReservationRepository) CreateReservation(res *db.Reservation) error {
	query := `
	INSERT INTO reservations (id, car_id, name, email, phone, message, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at`
	err := r.DB.QueryRow(query,
		res.ID,
		res.CarID,
		res.Name,
		res.Email,
		res.Phone,
		res.Message,
		res.CreatedAt,
	).Scan(&res.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		// 23503: the car_id foreign key has no matching car row.
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return fmt.Errorf("car with id '%s' does not exist: %w", res.CarID, err)
		}
		return fmt.Errorf("error creating reservation: %w", err)
	}
	return nil
}

// ListReservationsWithCar returns all reservations, newest first, each joined
// with its referenced car. Cars deleted after the fact leave a nil Car.
func (r *ReservationRepository) ListReservationsWithCar() ([]entities.AdminReservation, error) {
	query := `
	SELECT
		r.id, r.name, r.email, r.phone, r.message, r.created_at,
		c.id, c.brand, c.model, c.year, c.price, c.description, c.image, c.status, c.created_at
	FROM reservations r
	LEFT JOIN cars c ON c.id = r.car_id
	ORDER BY r.created_at DESC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []entities.AdminReservation
	for rows.Next() {
		var res entities.AdminReservation
		var carID, brand, model, description, image, status sql.NullString
		var year, price sql.NullInt64
		var carCreatedAt sql.NullTime
		err := rows.Scan(
			&res.ID, &res.Name, &res.Email, &res.Phone, &res.Message, &res.CreatedAt,
			&carID, &brand, &model, &year, &price, &description, &image, &status, &carCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		if carID.Valid {
			res.Car = &db.Car{
				ID:          carID.String,
				Brand:       brand.String,
				Model:       model.String,
				Year:        int(year.Int64),
				Price:       int(price.Int64),
				Description: description.String,
				Image:       image.String,
				Status:      status.String,
				CreatedAt:   carCreatedAt.Time,
			}
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation rows: %w", err)
	}
	return reservations, nil
}

func (r *ReservationRepository) DeleteReservation(id string) error {
	result, err := r.DB.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting reservation: %w", err)
	}
	return requireRowAffected(result, "reservation", id)
}
