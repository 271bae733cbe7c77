package request

import (
	"strings"

	"orcamento_api/internal/domain/entities"
)

// BudgetInputsRequest is the calculator payload. Numbers are pointers so a
// missing field fails `required` instead of silently becoming zero.
type BudgetInputsRequest struct {
	Area            *float64 `json:"area" binding:"required,gte=1,lte=10000"`
	WallType        string   `json:"wallType" binding:"required,oneof=alvenaria drywall steel_frame"`
	FinishQuality   string   `json:"finishQuality" binding:"required,oneof=basic standard premium"`
	WallFinish      string   `json:"wallFinish" binding:"required,oneof=paint ceramic_tile natural_stone"`
	FrameArea       *float64 `json:"frameArea" binding:"required,gte=0"`
	Bathrooms       *int     `json:"bathrooms" binding:"required,gte=0,lte=20"`
	FloorArea       *float64 `json:"floorArea" binding:"required,gte=0"`
	CeilingArea     *float64 `json:"ceilingArea" binding:"required,gte=0"`
	CeilingType     string   `json:"ceilingType" binding:"required,oneof=plaster drywall suspended"`
	RoofType        string   `json:"roofType" binding:"required,oneof=ceramic_tile metal concrete"`
	RoofArea        *float64 `json:"roofArea" binding:"required,gte=0"`
	FoundationType  string   `json:"foundationType" binding:"required,oneof=shallow deep pile"`
	WastePercentage *float64 `json:"wastePercentage" binding:"required,gte=0,lte=50"`
}

// ToEntity must only be called after binding succeeded.
func (r BudgetInputsRequest) ToEntity() entities.BudgetInputs {
	return entities.BudgetInputs{
		Area:            deref(r.Area),
		WallType:        entities.WallType(r.WallType),
		FinishQuality:   entities.FinishQuality(r.FinishQuality),
		WallFinish:      entities.WallFinish(r.WallFinish),
		FrameArea:       deref(r.FrameArea),
		Bathrooms:       derefInt(r.Bathrooms),
		FloorArea:       deref(r.FloorArea),
		CeilingArea:     deref(r.CeilingArea),
		CeilingType:     entities.CeilingType(r.CeilingType),
		RoofType:        entities.RoofType(r.RoofType),
		RoofArea:        deref(r.RoofArea),
		FoundationType:  entities.FoundationType(r.FoundationType),
		WastePercentage: deref(r.WastePercentage),
	}
}

type ClientDataRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
}

// SubmitBudgetRequest is the body of POST /budget/submit: the calculator
// fields at top level plus a clientData object.
type SubmitBudgetRequest struct {
	ClientData ClientDataRequest `json:"clientData"`
	BudgetInputsRequest
}

func (r SubmitBudgetRequest) Client() entities.ClientContact {
	return entities.ClientContact{
		Name:  strings.TrimSpace(r.ClientData.Name),
		Email: strings.TrimSpace(r.ClientData.Email),
		Phone: strings.TrimSpace(r.ClientData.Phone),
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes" binding:"max=2000"`
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
