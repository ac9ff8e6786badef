package service

import (
	"strings"

	"congocar/internal/db"
)

// AllBrands is the brand filter value that disables brand filtering.
const AllBrands = "All"

// FilterCars restricts cars to those whose "<brand> <model>" label contains
// searchTerm (case-insensitive) and whose brand matches filterBrand exactly.
// An empty searchTerm and a filterBrand of "All" (or "") leave the set
// unchanged. The input order is preserved.
func FilterCars(cars []db.Car, searchTerm, filterBrand string) []db.Car {
	query := strings.ToLower(searchTerm)
	filtered := make([]db.Car, 0, len(cars))
	for _, car := range cars {
		label := strings.ToLower(car.Brand + " " + car.Model)
		if query != "" && !strings.Contains(label, query) {
			continue
		}
		if filterBrand != "" && filterBrand != AllBrands && car.Brand != filterBrand {
			continue
		}
		filtered = append(filtered, car)
	}
	return filtered
}

// Brands returns the distinct brands present in cars, in first-seen order.
func Brands(cars []db.Car) []string {
	seen := make(map[string]bool, len(cars))
	brands := make([]string, 0, len(cars))
	for _, car := range cars {
		if !seen[car.Brand] {
			seen[car.Brand] = true
			brands = append(brands, car.Brand)
		}
	}
	return brands
}
