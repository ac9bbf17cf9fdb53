package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
)

// checklistService handles checklist item logic.
type checklistService struct {
	db *gorm.DB
}

// NewChecklistService creates a new ChecklistServicer.
func NewChecklistService(db *gorm.DB) ChecklistServicer {
	return &checklistService{db: db}
}

// AddItem adds a checklist item to a day. The slot is validated against
// the category's vocabulary; hotels never carry one.
func (s *checklistService) AddItem(tripID, dayID uint, category models.ItemCategory, name string, slot *string) (*models.ChecklistItem, error) {
	var day models.ItineraryDay
	err := s.db.Where("id = ? AND trip_id = ?", dayID, tripID).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDayNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Item name is required")
	}
	switch category {
	case models.CategoryPlace, models.CategoryRestaurant, models.CategoryHotel:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category must be place, restaurant, or hotel")
	}
	slot = normalizeSlot(category, slot)

	item := &models.ChecklistItem{
		DayID:    dayID,
		Category: category,
		Name:     strings.TrimSpace(name),
		Slot:     slot,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// UpdateItem updates an item's checked state and slot. A nil field is
// left unchanged; an empty slot string clears the slot.
func (s *checklistService) UpdateItem(tripID, itemID uint, checked *bool, slot *string) (*models.ChecklistItem, error) {
	item, err := s.getTripItem(tripID, itemID)
	if err != nil {
		return nil, err
	}

	if checked != nil {
		item.Checked = *checked
	}
	if slot != nil {
		if *slot == "" {
			item.Slot = nil
		} else {
			item.Slot = normalizeSlot(item.Category, slot)
		}
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// HideItem hides an item from all views, routing, and export. The row
// stays so re-imports and suggestion seeding do not resurrect it.
func (s *checklistService) HideItem(tripID, itemID uint) error {
	item, err := s.getTripItem(tripID, itemID)
	if err != nil {
		return err
	}
	item.Hidden = true
	if err := s.db.Save(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// getTripItem loads an item and verifies it hangs off one of the
// trip's days.
func (s *checklistService) getTripItem(tripID, itemID uint) (*models.ChecklistItem, error) {
	var item models.ChecklistItem
	err := s.db.
		Joins("JOIN itinerary_days ON itinerary_days.id = checklist_items.day_id").
		Where("checklist_items.id = ? AND itinerary_days.trip_id = ?", itemID, tripID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// normalizeSlot lower-cases a slot and drops values outside the
// category's vocabulary.
func normalizeSlot(category models.ItemCategory, slot *string) *string {
	if slot == nil {
		return nil
	}
	value := strings.ToLower(strings.TrimSpace(*slot))
	if !models.ValidSlot(category, value) {
		return nil
	}
	return &value
}
