// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("trip_date", validateTripDate)
		_ = v.RegisterValidation("item_category", validateItemCategory)
		_ = v.RegisterValidation("place_slot", validatePlaceSlot)
		_ = v.RegisterValidation("meal_slot", validateMealSlot)
		_ = v.RegisterValidation("packing_category", validatePackingCategory)
	}
}

// validateTripDate enforces the strict YYYY-MM-DD format used across
// the itinerary logic.
func validateTripDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateItemCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "place", "restaurant", "hotel":
		return true
	}
	return false
}

func validatePlaceSlot(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "morning", "afternoon", "evening":
		return true
	}
	return false
}

func validateMealSlot(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "breakfast", "lunch", "dinner", "snack":
		return true
	}
	return false
}

func validatePackingCategory(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= 50
}
