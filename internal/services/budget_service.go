package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
)

// budgetService handles trip budget logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// AddBudgetItem creates a budget line for the trip.
func (s *budgetService) AddBudgetItem(tripID uint, label string, estimated, actual float64) (*models.BudgetItem, error) {
	if err := s.tripExists(tripID); err != nil {
		return nil, err
	}
	if label == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Budget label is required")
	}
	if estimated < 0 || actual < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Costs cannot be negative")
	}

	item := &models.BudgetItem{
		TripID:        tripID,
		Label:         label,
		EstimatedCost: estimated,
		ActualCost:    actual,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// UpdateBudgetItem updates a budget line's fields. Nil costs and an
// empty label are left unchanged.
func (s *budgetService) UpdateBudgetItem(tripID, itemID uint, label string, estimated, actual *float64) (*models.BudgetItem, error) {
	item, err := s.getTripBudgetItem(tripID, itemID)
	if err != nil {
		return nil, err
	}

	if label != "" {
		item.Label = label
	}
	if estimated != nil {
		if *estimated < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Costs cannot be negative")
		}
		item.EstimatedCost = *estimated
	}
	if actual != nil {
		if *actual < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Costs cannot be negative")
		}
		item.ActualCost = *actual
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// DeleteBudgetItem soft-deletes a budget line.
func (s *budgetService) DeleteBudgetItem(tripID, itemID uint) error {
	item, err := s.getTripBudgetItem(tripID, itemID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudget returns the trip's budget lines with totals and spend
// progress against the estimate.
func (s *budgetService) GetBudget(tripID uint) (*BudgetSummary, error) {
	if err := s.tripExists(tripID); err != nil {
		return nil, err
	}

	var items []models.BudgetItem
	if err := s.db.Where("trip_id = ?", tripID).Order("id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &BudgetSummary{Items: items}
	if summary.Items == nil {
		summary.Items = []models.BudgetItem{}
	}
	for _, item := range items {
		summary.TotalEstimated += item.EstimatedCost
		summary.TotalActual += item.ActualCost
	}
	summary.Remaining = summary.TotalEstimated - summary.TotalActual
	if summary.TotalEstimated > 0 {
		summary.Percentage = summary.TotalActual / summary.TotalEstimated * 100
	}
	return summary, nil
}

func (s *budgetService) tripExists(tripID uint) error {
	var trip models.Trip
	if err := s.db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTripNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *budgetService) getTripBudgetItem(tripID, itemID uint) (*models.BudgetItem, error) {
	var item models.BudgetItem
	err := s.db.Where("id = ? AND trip_id = ?", itemID, tripID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}
