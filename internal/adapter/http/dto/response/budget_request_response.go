package response

import (
	"orcamento_api/internal/domain/entities"
	"time"
)

// BudgetRequestResponse is the flat shape the dashboard front-end reads.
type BudgetRequestResponse struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`

	Area            float64 `json:"area"`
	WallType        string  `json:"wallType"`
	FinishQuality   string  `json:"finishQuality"`
	WallFinish      string  `json:"wallFinish"`
	FrameArea       float64 `json:"frameArea"`
	Bathrooms       int     `json:"bathrooms"`
	FloorArea       float64 `json:"floorArea"`
	CeilingArea     float64 `json:"ceilingArea"`
	CeilingType     string  `json:"ceilingType"`
	RoofType        string  `json:"roofType"`
	RoofArea        float64 `json:"roofArea"`
	FoundationType  string  `json:"foundationType"`
	WastePercentage float64 `json:"wastePercentage"`

	TotalBudget float64   `json:"totalBudget"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromBudgetRequest(br entities.BudgetRequest) BudgetRequestResponse {
	in := br.Inputs
	return BudgetRequestResponse{
		ID:              br.ID,
		ClientName:      br.Client.Name,
		ClientEmail:     br.Client.Email,
		ClientPhone:     br.Client.Phone,
		Area:            in.Area,
		WallType:        string(in.WallType),
		FinishQuality:   string(in.FinishQuality),
		WallFinish:      string(in.WallFinish),
		FrameArea:       in.FrameArea,
		Bathrooms:       in.Bathrooms,
		FloorArea:       in.FloorArea,
		CeilingArea:     in.CeilingArea,
		CeilingType:     string(in.CeilingType),
		RoofType:        string(in.RoofType),
		RoofArea:        in.RoofArea,
		FoundationType:  string(in.FoundationType),
		WastePercentage: in.WastePercentage,
		TotalBudget:     br.TotalBudget,
		Status:          string(br.Status),
		Notes:           br.Notes,
		CreatedAt:       br.CreatedAt,
		UpdatedAt:       br.UpdatedAt,
	}
}

func FromBudgetRequests(items []entities.BudgetRequest) []BudgetRequestResponse {
	out := make([]BudgetRequestResponse, 0, len(items))
	for _, br := range items {
		out = append(out, FromBudgetRequest(br))
	}
	return out
}

type DashboardStatsResponse struct {
	PendingCount        int64   `json:"pendingCount"`
	ApprovedCount       int64   `json:"approvedCount"`
	RejectedCount       int64   `json:"rejectedCount"`
	TotalApprovedBudget float64 `json:"totalApprovedBudget"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse(s)
}
