package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/services"
)

// PackingHandler handles packing list requests.
type PackingHandler struct {
	packingService services.PackingServicer
}

// NewPackingHandler creates a new PackingHandler.
func NewPackingHandler(packingService services.PackingServicer) *PackingHandler {
	return &PackingHandler{packingService: packingService}
}

// AddPackingItemRequest represents the request payload for adding a packing item.
type AddPackingItemRequest struct {
	Category string `json:"category" binding:"omitempty,packing_category"`
	Label    string `json:"label" binding:"required,min=1,max=200"`
}

// UpdatePackingItemRequest represents the request payload for updating
// a packing item. Nil checked and an empty label are left unchanged.
type UpdatePackingItemRequest struct {
	Checked *bool  `json:"checked"`
	Label   string `json:"label" binding:"omitempty,min=1,max=200"`
}

// SeedPackingList handles seeding the suggested packing list.
// @Summary     Seed packing list
// @Description Seed suggested packing items for the trip's destination, style, and season; idempotent
// @Tags        packing
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} map[string]int "Items added"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/packing/seed [post]
func (h *PackingHandler) SeedPackingList(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	added, err := h.packingService.SeedPackingList(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items_added": added})
}

// GetPackingList handles retrieving the packing list.
// @Summary     Get packing list
// @Description Get the trip's packing items grouped by category
// @Tags        packing
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} map[string][]models.PackingItem "Packing list by category"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/packing [get]
func (h *PackingHandler) GetPackingList(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	grouped, err := h.packingService.GetPackingList(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"packing_list": grouped})
}

// AddPackingItem handles adding a user-defined packing item.
// @Summary     Add packing item
// @Description Add a packing item; category defaults to Other
// @Tags        packing
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "Trip ID"
// @Param       request body AddPackingItemRequest true "Packing item details"
// @Success     201 {object} models.PackingItem "Packing item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/packing [post]
func (h *PackingHandler) AddPackingItem(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddPackingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.packingService.AddPackingItem(tripID, req.Category, req.Label)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"packing_item": item})
}

// UpdatePackingItem handles updating a packing item.
// @Summary     Update packing item
// @Description Update a packing item's checked state or label
// @Tags        packing
// @Accept      json
// @Produce     json
// @Param       id      path int                      true "Trip ID"
// @Param       item_id path int                      true "Packing item ID"
// @Param       request body UpdatePackingItemRequest true "Packing item changes"
// @Success     200 {object} models.PackingItem "Updated packing item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Packing item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/packing/{item_id} [patch]
func (h *PackingHandler) UpdatePackingItem(c *gin.Context) {
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

	var req UpdatePackingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.packingService.UpdatePackingItem(tripID, itemID, req.Checked, req.Label)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"packing_item": item})
}

// DeletePackingItem handles deleting a packing item.
// @Summary     Delete packing item
// @Description Delete a packing item by ID (soft delete)
// @Tags        packing
// @Accept      json
// @Produce     json
// @Param       id      path int true "Trip ID"
// @Param       item_id path int true "Packing item ID"
// @Success     200 {object} MessageResponse "Packing item deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Packing item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/packing/{item_id} [delete]
func (h *PackingHandler) DeletePackingItem(c *gin.Context) {
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

	if err := h.packingService.DeletePackingItem(tripID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Packing item deleted successfully"})
}
