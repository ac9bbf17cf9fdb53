package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
	"tripkit/internal/suggest"
)

// packingService handles packing list logic.
type packingService struct {
	db *gorm.DB
}

// NewPackingService creates a new PackingServicer.
func NewPackingService(db *gorm.DB) PackingServicer {
	return &packingService{db: db}
}

// SeedPackingList seeds the suggested packing list for the trip's
// destination, style, and season. Seeding is idempotent on
// (category, label): re-running never duplicates and never touches the
// checked state of existing entries. Returns the number of items added.
func (s *packingService) SeedPackingList(tripID uint) (int, error) {
	trip, err := s.getTrip(tripID)
	if err != nil {
		return 0, err
	}

	var existing []models.PackingItem
	if err := s.db.Where("trip_id = ?", tripID).Find(&existing).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	type key struct{ category, label string }
	seen := make(map[key]bool, len(existing))
	for _, item := range existing {
		seen[key{item.Category, item.Label}] = true
	}

	suggested := suggest.PackingList(trip.Destination, trip.TravelStyle, trip.StartDate)
	added := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for category, labels := range suggested {
			for _, label := range labels {
				if seen[key{category, label}] {
					continue
				}
				item := models.PackingItem{TripID: tripID, Category: category, Label: label}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				seen[key{category, label}] = true
				added++
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return added, nil
}

// GetPackingList returns the trip's packing items grouped by category.
func (s *packingService) GetPackingList(tripID uint) (map[string][]models.PackingItem, error) {
	if _, err := s.getTrip(tripID); err != nil {
		return nil, err
	}

	var items []models.PackingItem
	if err := s.db.Where("trip_id = ?", tripID).Order("category, id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	grouped := make(map[string][]models.PackingItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped, nil
}

// AddPackingItem adds a user-defined packing item.
func (s *packingService) AddPackingItem(tripID uint, category, label string) (*models.PackingItem, error) {
	if _, err := s.getTrip(tripID); err != nil {
		return nil, err
	}
	if label == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Packing item label is required")
	}
	if category == "" {
		category = "Other"
	}

	item := &models.PackingItem{TripID: tripID, Category: category, Label: label}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// UpdatePackingItem updates a packing item's checked state and label.
// A nil checked and an empty label are left unchanged.
func (s *packingService) UpdatePackingItem(tripID, itemID uint, checked *bool, label string) (*models.PackingItem, error) {
	item, err := s.getTripPackingItem(tripID, itemID)
	if err != nil {
		return nil, err
	}

	if checked != nil {
		item.Checked = *checked
	}
	if label != "" {
		item.Label = label
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// DeletePackingItem soft-deletes a packing item.
func (s *packingService) DeletePackingItem(tripID, itemID uint) error {
	item, err := s.getTripPackingItem(tripID, itemID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *packingService) getTrip(tripID uint) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trip, nil
}

func (s *packingService) getTripPackingItem(tripID, itemID uint) (*models.PackingItem, error) {
	var item models.PackingItem
	err := s.db.Where("id = ? AND trip_id = ?", itemID, tripID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPackingItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}
