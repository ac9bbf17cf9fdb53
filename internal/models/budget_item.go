package models

// BudgetItem tracks one estimated/actual spend line for a trip.
// Costs are non-negative currency amounts, default 0.
type BudgetItem struct {
	Base
	TripID        uint    `gorm:"not null;index" json:"trip_id"`
	Label         string  `gorm:"not null" json:"label"`
	EstimatedCost float64 `gorm:"not null;default:0" json:"estimated_cost"`
	ActualCost    float64 `gorm:"not null;default:0" json:"actual_cost"`
}
