package api

import (
	"net/http"

	"congocar/internal/db"
	"congocar/internal/service"

	"github.com/gorilla/mux"
)

type CatalogueHandler struct {
	Service *service.CarService
}

func NewCatalogueHandler(svc *service.CarService) *CatalogueHandler {
	return &CatalogueHandler{Service: svc}
}

// ListCars returns the catalogue, newest first, restricted by the optional
// "search" and "brand" query filters.
func (h *CatalogueHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	searchTerm := r.URL.Query().Get("search")
	filterBrand := r.URL.Query().Get("brand")

	cars, err := h.Service.ListCatalogue(searchTerm, filterBrand)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if cars == nil {
		cars = []db.Car{}
	}
	writeJSON(w, http.StatusOK, cars)
}

// ListBrands returns the distinct brands present in the catalogue.
func (h *CatalogueHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.Service.ListBrands()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (h *CatalogueHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	car, err := h.Service.GetCar(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}
