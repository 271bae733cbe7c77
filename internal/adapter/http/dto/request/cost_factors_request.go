package request

import "orcamento_api/internal/domain/entities"

// CostFactorsRequest replaces every factor at once. Version, when non-zero,
// must match the stored version.
type CostFactorsRequest struct {
	Version int64 `json:"version" binding:"gte=0"`

	AlvenariaMultiplier  *float64 `json:"alvenariaMultiplier" binding:"required,gt=0"`
	DrywallMultiplier    *float64 `json:"drywallMultiplier" binding:"required,gt=0"`
	SteelFrameMultiplier *float64 `json:"steelFrameMultiplier" binding:"required,gt=0"`

	BasicFinishMultiplier    *float64 `json:"basicFinishMultiplier" binding:"required,gt=0"`
	StandardFinishMultiplier *float64 `json:"standardFinishMultiplier" binding:"required,gt=0"`
	PremiumFinishMultiplier  *float64 `json:"premiumFinishMultiplier" binding:"required,gt=0"`

	PaintMultiplier        *float64 `json:"paintMultiplier" binding:"required,gt=0"`
	CeramicTileMultiplier  *float64 `json:"ceramicTileMultiplier" binding:"required,gt=0"`
	NaturalStoneMultiplier *float64 `json:"naturalStoneMultiplier" binding:"required,gt=0"`

	AluminumFrameMultiplier *float64 `json:"aluminumFrameMultiplier" binding:"required,gt=0"`
	WoodFrameMultiplier     *float64 `json:"woodFrameMultiplier" binding:"required,gt=0"`
	PvcFrameMultiplier      *float64 `json:"pvcFrameMultiplier" binding:"required,gt=0"`

	PlasterCeilingMultiplier   *float64 `json:"plasterCeilingMultiplier" binding:"required,gt=0"`
	DrywallCeilingMultiplier   *float64 `json:"drywallCeilingMultiplier" binding:"required,gt=0"`
	SuspendedCeilingMultiplier *float64 `json:"suspendedCeilingMultiplier" binding:"required,gt=0"`

	CeramicTileRoofMultiplier *float64 `json:"ceramicTileRoofMultiplier" binding:"required,gt=0"`
	MetalRoofMultiplier       *float64 `json:"metalRoofMultiplier" binding:"required,gt=0"`
	ConcreteRoofMultiplier    *float64 `json:"concreteRoofMultiplier" binding:"required,gt=0"`

	ShallowFoundationMultiplier *float64 `json:"shallowFoundationMultiplier" binding:"required,gt=0"`
	DeepFoundationMultiplier    *float64 `json:"deepFoundationMultiplier" binding:"required,gt=0"`
	PileFoundationMultiplier    *float64 `json:"pileFoundationMultiplier" binding:"required,gt=0"`

	BaseConstructionCost *float64 `json:"baseConstructionCost" binding:"required,gt=0"`
	BaseElectricalCost   *float64 `json:"baseElectricalCost" binding:"required,gt=0"`
	BasePlumbingCost     *float64 `json:"basePlumbingCost" binding:"required,gt=0"`

	ProjectManagementCost *float64 `json:"projectManagementCost" binding:"required,gt=0"`
	ContingencyCost       *float64 `json:"contingencyCost" binding:"required,gt=0"`
	TaxRate               *float64 `json:"taxRate" binding:"required,gt=0"`
}

func (r CostFactorsRequest) ToEntity() entities.CostFactors {
	return entities.CostFactors{
		Version: r.Version,

		AlvenariaMultiplier:  deref(r.AlvenariaMultiplier),
		DrywallMultiplier:    deref(r.DrywallMultiplier),
		SteelFrameMultiplier: deref(r.SteelFrameMultiplier),

		BasicFinishMultiplier:    deref(r.BasicFinishMultiplier),
		StandardFinishMultiplier: deref(r.StandardFinishMultiplier),
		PremiumFinishMultiplier:  deref(r.PremiumFinishMultiplier),

		PaintMultiplier:        deref(r.PaintMultiplier),
		CeramicTileMultiplier:  deref(r.CeramicTileMultiplier),
		NaturalStoneMultiplier: deref(r.NaturalStoneMultiplier),

		AluminumFrameMultiplier: deref(r.AluminumFrameMultiplier),
		WoodFrameMultiplier:     deref(r.WoodFrameMultiplier),
		PvcFrameMultiplier:      deref(r.PvcFrameMultiplier),

		PlasterCeilingMultiplier:   deref(r.PlasterCeilingMultiplier),
		DrywallCeilingMultiplier:   deref(r.DrywallCeilingMultiplier),
		SuspendedCeilingMultiplier: deref(r.SuspendedCeilingMultiplier),

		CeramicTileRoofMultiplier: deref(r.CeramicTileRoofMultiplier),
		MetalRoofMultiplier:       deref(r.MetalRoofMultiplier),
		ConcreteRoofMultiplier:    deref(r.ConcreteRoofMultiplier),

		ShallowFoundationMultiplier: deref(r.ShallowFoundationMultiplier),
		DeepFoundationMultiplier:    deref(r.DeepFoundationMultiplier),
		PileFoundationMultiplier:    deref(r.PileFoundationMultiplier),

		BaseConstructionCost: deref(r.BaseConstructionCost),
		BaseElectricalCost:   deref(r.BaseElectricalCost),
		BasePlumbingCost:     deref(r.BasePlumbingCost),

		ProjectManagementCost: deref(r.ProjectManagementCost),
		ContingencyCost:       deref(r.ContingencyCost),
		TaxRate:               deref(r.TaxRate),
	}
}
