package service

import (
	"database/sql"
	"errors"
	"time"

	"congocar/internal/db"
	"congocar/internal/entities"
	apperrors "congocar/internal/errors"

	"github.com/google/uuid"
)

// CarStore is the persistence surface the car service needs.
type CarStore interface {
	ListCars() ([]db.Car, error)
	GetCarByID(id string) (*db.Car, error)
	CreateCar(car *db.Car) error
	UpdateCar(car *db.Car) error
	UpdateCarStatus(id, status string) error
	DeleteCar(id string) error
}

type CarService struct {
	Repo CarStore
}

func NewCarService(repo CarStore) *CarService {
	return &CarService{Repo: repo}
}

// ListCatalogue returns the full newest-first car set restricted by the
// catalogue filters. Fetch and filtering are separate steps so the filter
// semantics stay independent of the store.
func (s *CarService) ListCatalogue(searchTerm, filterBrand string) ([]db.Car, error) {
	cars, err := s.Repo.ListCars()
	if err != nil {
		return nil, err
	}
	return FilterCars(cars, searchTerm, filterBrand), nil
}

func (s *CarService) ListBrands() ([]string, error) {
	cars, err := s.Repo.ListCars()
	if err != nil {
		return nil, err
	}
	return Brands(cars), nil
}

func (s *CarService) GetCar(id string) (*db.Car, error) {
	car, err := s.Repo.GetCarByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("car not found")
		}
		return nil, err
	}
	return car, nil
}

func (s *CarService) CreateCar(req *entities.CarRequest) (*db.Car, error) {
	status := req.Status
	if status == "" {
		status = db.CarStatusAvailable
	}
	car := &db.Car{
		ID:          uuid.NewString(),
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.CreateCar(car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) UpdateCar(id string, req *entities.CarRequest) (*db.Car, error) {
	car, err := s.GetCar(id)
	if err != nil {
		return nil, err
	}
	car.Brand = req.Brand
	car.Model = req.Model
	car.Year = req.Year
	car.Price = req.Price
	car.Description = req.Description
	car.Image = req.Image
	if req.Status != "" {
		car.Status = req.Status
	}
	if err := s.Repo.UpdateCar(car); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("car not found")
		}
		return nil, err
	}
	return car, nil
}

// ToggleStatus flips a car between "Disponible" and "Vendu" and returns the
// new status. This is the only status transition the system models.
func (s *CarService) ToggleStatus(id string) (string, error) {
	car, err := s.GetCar(id)
	if err != nil {
		return "", err
	}
	newStatus := db.CarStatusAvailable
	if car.Status == db.CarStatusAvailable {
		newStatus = db.CarStatusSold
	}
	if err := s.Repo.UpdateCarStatus(id, newStatus); err != nil {
		return "", err
	}
	return newStatus, nil
}

func (s *CarService) DeleteCar(id string) error {
	err := s.Repo.DeleteCar(id)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("car not found")
	}
	return err
}
