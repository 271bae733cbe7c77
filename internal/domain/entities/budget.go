package entities

// Closed enumerations accepted by the calculator inputs.
//
// Values are kept in the wire format used by the front-end (Portuguese wall type
// "alvenaria" included), so they round-trip through JSON and storage unchanged.

type WallType string

const (
	WallTypeAlvenaria  WallType = "alvenaria"
	WallTypeDrywall    WallType = "drywall"
	WallTypeSteelFrame WallType = "steel_frame"
)

type FinishQuality string

const (
	FinishQualityBasic    FinishQuality = "basic"
	FinishQualityStandard FinishQuality = "standard"
	FinishQualityPremium  FinishQuality = "premium"
)

type WallFinish string

const (
	WallFinishPaint        WallFinish = "paint"
	WallFinishCeramicTile  WallFinish = "ceramic_tile"
	WallFinishNaturalStone WallFinish = "natural_stone"
)

type CeilingType string

const (
	CeilingTypePlaster   CeilingType = "plaster"
	CeilingTypeDrywall   CeilingType = "drywall"
	CeilingTypeSuspended CeilingType = "suspended"
)

type RoofType string

const (
	RoofTypeCeramicTile RoofType = "ceramic_tile"
	RoofTypeMetal       RoofType = "metal"
	RoofTypeConcrete    RoofType = "concrete"
)

type FoundationType string

const (
	FoundationTypeShallow FoundationType = "shallow"
	FoundationTypeDeep    FoundationType = "deep"
	FoundationTypePile    FoundationType = "pile"
)

// BudgetInputs are the building parameters a budget is calculated from.
//
// It is never stored on its own; BudgetRequest keeps a snapshot of it.
type BudgetInputs struct {
	Area            float64        `json:"area"`
	WallType        WallType       `json:"wallType"`
	FinishQuality   FinishQuality  `json:"finishQuality"`
	WallFinish      WallFinish     `json:"wallFinish"`
	FrameArea       float64        `json:"frameArea"`
	Bathrooms       int            `json:"bathrooms"`
	FloorArea       float64        `json:"floorArea"`
	CeilingArea     float64        `json:"ceilingArea"`
	CeilingType     CeilingType    `json:"ceilingType"`
	RoofType        RoofType       `json:"roofType"`
	RoofArea        float64        `json:"roofArea"`
	FoundationType  FoundationType `json:"foundationType"`
	WastePercentage float64        `json:"wastePercentage"`
}

// EapItem is one work-breakdown-structure line of a budget.
type EapItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// BudgetResponse is an itemized budget plus its grand total.
type BudgetResponse struct {
	Items []EapItem `json:"items"`
	Total float64   `json:"total"`
}
