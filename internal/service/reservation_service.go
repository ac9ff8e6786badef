package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"congocar/internal/db"
	"congocar/internal/entities"
	apperrors "congocar/internal/errors"

	"github.com/google/uuid"
)

// ReservationStore is the persistence surface the reservation flow needs.
type ReservationStore interface {
	CreateReservation(res *db.Reservation) error
	ListReservationsWithCar() ([]entities.AdminReservation, error)
	DeleteReservation(id string) error
}

// ReservationNotifier sends the two reservation emails. Its outcome is
// advisory: the reservation is successful once persisted.
type ReservationNotifier interface {
	SendReservationNotification(payload entities.NotificationPayload) error
}

type ReservationService struct {
	Repo     ReservationStore
	Cars     CarStore
	Notifier ReservationNotifier
}

func NewReservationService(repo ReservationStore, cars CarStore, notifier ReservationNotifier) *ReservationService {
	return &ReservationService{
		Repo:     repo,
		Cars:     cars,
		Notifier: notifier,
	}
}

// CreateReservation persists a reservation for the requested car, then fires
// the email notification as a non-blocking task. The insert is the source of
// truth: a notification failure is logged and never surfaced. The insert is
// awaited to completion before the notification task starts, so the payload
// always describes a durably recorded reservation.
//
// There is no idempotency key: resubmitting creates a new row.
func (s *ReservationService) CreateReservation(req *entities.ReservationRequest) (*db.Reservation, error) {
	car, err := s.Cars.GetCarByID(req.CarID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("car not found")
		}
		return nil, err
	}
	if car.Status != db.CarStatusAvailable {
		return nil, apperrors.Conflict("car is no longer available")
	}

	reservation := &db.Reservation{
		ID:        uuid.NewString(),
		CarID:     car.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateReservation(reservation); err != nil {
		log.Printf("Error creating reservation in repository: %v", err)
		return nil, err
	}

	payload := entities.NotificationPayload{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Car:     fmt.Sprintf("%s %s (%d)", car.Brand, car.Model, car.Year),
		Message: req.Message,
	}
	go func(p entities.NotificationPayload) {
		if err := s.Notifier.SendReservationNotification(p); err != nil {
			log.Printf("Reservation %s saved, but notification emails failed: %v", reservation.ID, err)
		}
	}(payload)

	return reservation, nil
}

func (s *ReservationService) ListReservations() ([]entities.AdminReservation, error) {
	return s.Repo.ListReservationsWithCar()
}

func (s *ReservationService) DeleteReservation(id string) error {
	err := s.Repo.DeleteReservation(id)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("reservation not found")
	}
	return err
}
