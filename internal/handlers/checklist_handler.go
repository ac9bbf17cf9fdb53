package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/models"
	"tripkit/internal/services"
)

// ChecklistHandler handles checklist item requests.
type ChecklistHandler struct {
	checklistService services.ChecklistServicer
}

// NewChecklistHandler creates a new ChecklistHandler.
func NewChecklistHandler(checklistService services.ChecklistServicer) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// AddItemRequest represents the request payload for adding a checklist item.
type AddItemRequest struct {
	Category models.ItemCategory `json:"category" binding:"required,item_category"`
	Name     string              `json:"name" binding:"required,min=1,max=300"`
	Slot     *string             `json:"slot" binding:"omitempty,place_slot|meal_slot"`
}

// UpdateItemRequest represents the request payload for updating a
// checklist item. Nil fields are left unchanged; an empty slot clears
// it.
type UpdateItemRequest struct {
	Checked *bool   `json:"checked"`
	Slot    *string `json:"slot" binding:"omitempty,place_slot|meal_slot"`
}

// AddItem handles adding a checklist item to a day.
// @Summary     Add checklist item
// @Description Add a place, restaurant, or hotel candidate to a day
// @Tags        checklist
// @Accept      json
// @Produce     json
// @Param       id      path int            true "Trip ID"
// @Param       day_id  path int            true "Day ID"
// @Param       request body AddItemRequest true "Item details"
// @Success     201 {object} models.ChecklistItem "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Day not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/days/{day_id}/items [post]
func (h *ChecklistHandler) AddItem(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	dayID, err := parsePathID(c, "day_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.checklistService.AddItem(tripID, dayID, req.Category, req.Name, req.Slot)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateItem handles updating a checklist item's checked state or slot.
// @Summary     Update checklist item
// @Description Update an item's checked state or slot; an empty slot clears it
// @Tags        checklist
// @Accept      json
// @Produce     json
// @Param       id      path int               true "Trip ID"
// @Param       item_id path int               true "Item ID"
// @Param       request body UpdateItemRequest true "Item changes"
// @Success     200 {object} models.ChecklistItem "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/items/{item_id} [patch]
func (h *ChecklistHandler) UpdateItem(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	itemID, err := parsePathID(c, "item_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.checklistService.UpdateItem(tripID, itemID, req.Checked, req.Slot)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// HideItem handles hiding a checklist item.
// @Summary     Hide checklist item
// @Description Hide an item from all views, routing, and export; re-imports will not resurrect it
// @Tags        checklist
// @Accept      json
// @Produce     json
// @Param       id      path int true "Trip ID"
// @Param       item_id path int true "Item ID"
// @Success     200 {object} MessageResponse "Item hidden"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/items/{item_id} [delete]
func (h *ChecklistHandler) HideItem(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	itemID, err := parsePathID(c, "item_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.checklistService.HideItem(tripID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item hidden successfully"})
}
