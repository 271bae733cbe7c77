package entities

import "time"

// BudgetRequestStatus represents the review lifecycle of a submitted budget.
//
// Requests are created PENDING; only an admin moves them to APPROVED or REJECTED.

type BudgetRequestStatus string

const (
	BudgetRequestStatusPending  BudgetRequestStatus = "PENDING"
	BudgetRequestStatusApproved BudgetRequestStatus = "APPROVED"
	BudgetRequestStatusRejected BudgetRequestStatus = "REJECTED"
)

func (s BudgetRequestStatus) Valid() bool {
	switch s {
	case BudgetRequestStatusPending, BudgetRequestStatusApproved, BudgetRequestStatusRejected:
		return true
	}
	return false
}

// ClientContact identifies who asked for the budget.
type ClientContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BudgetRequest is a submitted budget persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (number, allocated from the counters table)
//   - GSI (status-created_at-index): status / created_at
//
// Inputs and TotalBudget are a snapshot taken at submission and never change.
// Status and Notes are mutated by admin review only.
type BudgetRequest struct {
	ID          int64               `json:"id"`
	Client      ClientContact       `json:"client"`
	Inputs      BudgetInputs        `json:"inputs"`
	TotalBudget float64             `json:"totalBudget"`
	Status      BudgetRequestStatus `json:"status"`
	Notes       string              `json:"notes"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// DashboardStats aggregates the review queue.
type DashboardStats struct {
	PendingCount        int64   `json:"pendingCount"`
	ApprovedCount       int64   `json:"approvedCount"`
	RejectedCount       int64   `json:"rejectedCount"`
	TotalApprovedBudget float64 `json:"totalApprovedBudget"`
}
