package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tripkit/internal/errors"
	"tripkit/internal/services"
)

// BudgetHandler handles trip budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// AddBudgetItemRequest represents the request payload for adding a budget line.
type AddBudgetItemRequest struct {
	Label         string  `json:"label" binding:"required,min=1,max=200"`
	EstimatedCost float64 `json:"estimated_cost" binding:"omitempty,gte=0"`
	ActualCost    float64 `json:"actual_cost" binding:"omitempty,gte=0"`
}

// UpdateBudgetItemRequest represents the request payload for updating a
// budget line. Nil costs and an empty label are left unchanged.
type UpdateBudgetItemRequest struct {
	Label         string   `json:"label" binding:"omitempty,min=1,max=200"`
	EstimatedCost *float64 `json:"estimated_cost" binding:"omitempty,gte=0"`
	ActualCost    *float64 `json:"actual_cost" binding:"omitempty,gte=0"`
}

// GetBudget handles retrieving the trip budget summary.
// @Summary     Get trip budget
// @Description Get the trip's budget lines with totals and spend progress
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       id path int true "Trip ID"
// @Success     200 {object} services.BudgetSummary "Budget summary"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.budgetService.GetBudget(tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// AddBudgetItem handles adding a budget line.
// @Summary     Add budget item
// @Description Add an estimated/actual spend line to the trip budget
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Trip ID"
// @Param       request body AddBudgetItemRequest true "Budget line details"
// @Success     201 {object} models.BudgetItem "Budget item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/budget [post]
func (h *BudgetHandler) AddBudgetItem(c *gin.Context) {
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.budgetService.AddBudgetItem(tripID, req.Label, req.EstimatedCost, req.ActualCost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget_item": item})
}

// UpdateBudgetItem handles updating a budget line.
// @Summary     Update budget item
// @Description Update a budget line's label or costs
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       id      path int                     true "Trip ID"
// @Param       item_id path int                     true "Budget item ID"
// @Param       request body UpdateBudgetItemRequest true "Budget line changes"
// @Success     200 {object} models.BudgetItem "Updated budget item"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/budget/{item_id} [patch]
func (h *BudgetHandler) UpdateBudgetItem(c *gin.Context) {
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

	var req UpdateBudgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.budgetService.UpdateBudgetItem(tripID, itemID, req.Label, req.EstimatedCost, req.ActualCost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_item": item})
}

// DeleteBudgetItem handles deleting a budget line.
// @Summary     Delete budget item
// @Description Delete a budget line by ID (soft delete)
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       id      path int true "Trip ID"
// @Param       item_id path int true "Budget item ID"
// @Success     200 {object} MessageResponse "Budget item deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Budget item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/budget/{item_id} [delete]
func (h *BudgetHandler) DeleteBudgetItem(c *gin.Context) {
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

	if err := h.budgetService.DeleteBudgetItem(tripID, itemID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget item deleted successfully"})
}
