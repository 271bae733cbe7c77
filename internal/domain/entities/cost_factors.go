package entities

import (
	"fmt"
	"time"
)

// CostFactorsID is the fixed key of the singleton cost factors record.
const CostFactorsID int64 = 1

// CostFactors is the admin-configurable table of multipliers and base rates.
//
// Exactly one record exists (ID == CostFactorsID). Version starts at 1 and is
// incremented on every replace.
type CostFactors struct {
	ID        int64     `json:"id"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`

	AlvenariaMultiplier  float64 `json:"alvenariaMultiplier"`
	DrywallMultiplier    float64 `json:"drywallMultiplier"`
	SteelFrameMultiplier float64 `json:"steelFrameMultiplier"`

	BasicFinishMultiplier    float64 `json:"basicFinishMultiplier"`
	StandardFinishMultiplier float64 `json:"standardFinishMultiplier"`
	PremiumFinishMultiplier  float64 `json:"premiumFinishMultiplier"`

	PaintMultiplier        float64 `json:"paintMultiplier"`
	CeramicTileMultiplier  float64 `json:"ceramicTileMultiplier"`
	NaturalStoneMultiplier float64 `json:"naturalStoneMultiplier"`

	AluminumFrameMultiplier float64 `json:"aluminumFrameMultiplier"`
	WoodFrameMultiplier     float64 `json:"woodFrameMultiplier"`
	PvcFrameMultiplier      float64 `json:"pvcFrameMultiplier"`

	PlasterCeilingMultiplier   float64 `json:"plasterCeilingMultiplier"`
	DrywallCeilingMultiplier   float64 `json:"drywallCeilingMultiplier"`
	SuspendedCeilingMultiplier float64 `json:"suspendedCeilingMultiplier"`

	CeramicTileRoofMultiplier float64 `json:"ceramicTileRoofMultiplier"`
	MetalRoofMultiplier       float64 `json:"metalRoofMultiplier"`
	ConcreteRoofMultiplier    float64 `json:"concreteRoofMultiplier"`

	ShallowFoundationMultiplier float64 `json:"shallowFoundationMultiplier"`
	DeepFoundationMultiplier    float64 `json:"deepFoundationMultiplier"`
	PileFoundationMultiplier    float64 `json:"pileFoundationMultiplier"`

	BaseConstructionCost float64 `json:"baseConstructionCost"`
	BaseElectricalCost   float64 `json:"baseElectricalCost"`
	BasePlumbingCost     float64 `json:"basePlumbingCost"`

	// Percentages.
	ProjectManagementCost float64 `json:"projectManagementCost"`
	ContingencyCost       float64 `json:"contingencyCost"`
	TaxRate               float64 `json:"taxRate"`
}

// DefaultCostFactors returns the factors a fresh installation starts with.
func DefaultCostFactors() CostFactors {
	return CostFactors{
		ID:      CostFactorsID,
		Version: 1,

		AlvenariaMultiplier:  1.0,
		DrywallMultiplier:    0.8,
		SteelFrameMultiplier: 1.2,

		BasicFinishMultiplier:    0.7,
		StandardFinishMultiplier: 1.0,
		PremiumFinishMultiplier:  1.5,

		PaintMultiplier:        0.3,
		CeramicTileMultiplier:  1.2,
		NaturalStoneMultiplier: 2.0,

		AluminumFrameMultiplier: 1.5,
		WoodFrameMultiplier:     1.0,
		PvcFrameMultiplier:      1.3,

		PlasterCeilingMultiplier:   0.8,
		DrywallCeilingMultiplier:   1.0,
		SuspendedCeilingMultiplier: 1.5,

		CeramicTileRoofMultiplier: 1.0,
		MetalRoofMultiplier:       1.2,
		ConcreteRoofMultiplier:    1.8,

		ShallowFoundationMultiplier: 1.0,
		DeepFoundationMultiplier:    1.5,
		PileFoundationMultiplier:    2.0,

		BaseConstructionCost: 1500.0,
		BaseElectricalCost:   200.0,
		BasePlumbingCost:     300.0,

		ProjectManagementCost: 10.0,
		ContingencyCost:       5.0,
		TaxRate:               15.0,
	}
}

type costFactorField struct {
	key string
	ref func(*CostFactors) *float64
}

// costFactorFields lists every configurable value under its wire name.
var costFactorFields = []costFactorField{
	{"alvenariaMultiplier", func(f *CostFactors) *float64 { return &f.AlvenariaMultiplier }},
	{"drywallMultiplier", func(f *CostFactors) *float64 { return &f.DrywallMultiplier }},
	{"steelFrameMultiplier", func(f *CostFactors) *float64 { return &f.SteelFrameMultiplier }},
	{"basicFinishMultiplier", func(f *CostFactors) *float64 { return &f.BasicFinishMultiplier }},
	{"standardFinishMultiplier", func(f *CostFactors) *float64 { return &f.StandardFinishMultiplier }},
	{"premiumFinishMultiplier", func(f *CostFactors) *float64 { return &f.PremiumFinishMultiplier }},
	{"paintMultiplier", func(f *CostFactors) *float64 { return &f.PaintMultiplier }},
	{"ceramicTileMultiplier", func(f *CostFactors) *float64 { return &f.CeramicTileMultiplier }},
	{"naturalStoneMultiplier", func(f *CostFactors) *float64 { return &f.NaturalStoneMultiplier }},
	{"aluminumFrameMultiplier", func(f *CostFactors) *float64 { return &f.AluminumFrameMultiplier }},
	{"woodFrameMultiplier", func(f *CostFactors) *float64 { return &f.WoodFrameMultiplier }},
	{"pvcFrameMultiplier", func(f *CostFactors) *float64 { return &f.PvcFrameMultiplier }},
	{"plasterCeilingMultiplier", func(f *CostFactors) *float64 { return &f.PlasterCeilingMultiplier }},
	{"drywallCeilingMultiplier", func(f *CostFactors) *float64 { return &f.DrywallCeilingMultiplier }},
	{"suspendedCeilingMultiplier", func(f *CostFactors) *float64 { return &f.SuspendedCeilingMultiplier }},
	{"ceramicTileRoofMultiplier", func(f *CostFactors) *float64 { return &f.CeramicTileRoofMultiplier }},
	{"metalRoofMultiplier", func(f *CostFactors) *float64 { return &f.MetalRoofMultiplier }},
	{"concreteRoofMultiplier", func(f *CostFactors) *float64 { return &f.ConcreteRoofMultiplier }},
	{"shallowFoundationMultiplier", func(f *CostFactors) *float64 { return &f.ShallowFoundationMultiplier }},
	{"deepFoundationMultiplier", func(f *CostFactors) *float64 { return &f.DeepFoundationMultiplier }},
	{"pileFoundationMultiplier", func(f *CostFactors) *float64 { return &f.PileFoundationMultiplier }},
	{"baseConstructionCost", func(f *CostFactors) *float64 { return &f.BaseConstructionCost }},
	{"baseElectricalCost", func(f *CostFactors) *float64 { return &f.BaseElectricalCost }},
	{"basePlumbingCost", func(f *CostFactors) *float64 { return &f.BasePlumbingCost }},
	{"projectManagementCost", func(f *CostFactors) *float64 { return &f.ProjectManagementCost }},
	{"contingencyCost", func(f *CostFactors) *float64 { return &f.ContingencyCost }},
	{"taxRate", func(f *CostFactors) *float64 { return &f.TaxRate }},
}

// Values returns every configurable value keyed by its wire name.
func (f CostFactors) Values() map[string]float64 {
	out := make(map[string]float64, len(costFactorFields))
	for _, field := range costFactorFields {
		out[field.key] = *field.ref(&f)
	}
	return out
}

// SetValues copies known keys from values into f. Unknown keys are ignored and
// missing keys leave the current value in place.
func (f *CostFactors) SetValues(values map[string]float64) {
	for _, field := range costFactorFields {
		if v, ok := values[field.key]; ok {
			*field.ref(f) = v
		}
	}
}

// Validate reports the first configurable value that is not strictly positive.
func (f CostFactors) Validate() error {
	for _, field := range costFactorFields {
		if v := *field.ref(&f); v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", field.key, v)
		}
	}
	return nil
}

// Unknown enum values fall back to 1.0 so a calculation never fails on lookup.

func (f CostFactors) WallTypeMultiplier(t WallType) float64 {
	switch t {
	case WallTypeAlvenaria:
		return f.AlvenariaMultiplier
	case WallTypeDrywall:
		return f.DrywallMultiplier
	case WallTypeSteelFrame:
		return f.SteelFrameMultiplier
	}
	return 1.0
}

func (f CostFactors) FinishQualityMultiplier(q FinishQuality) float64 {
	switch q {
	case FinishQualityBasic:
		return f.BasicFinishMultiplier
	case FinishQualityStandard:
		return f.StandardFinishMultiplier
	case FinishQualityPremium:
		return f.PremiumFinishMultiplier
	}
	return 1.0
}

// WallFinishMultiplier is stored and editable but not used by the calculator
// yet; item totals ignore the wall finish. It is kept for the pricing change
// that will apply it.
func (f CostFactors) WallFinishMultiplier(w WallFinish) float64 {
	switch w {
	case WallFinishPaint:
		return f.PaintMultiplier
	case WallFinishCeramicTile:
		return f.CeramicTileMultiplier
	case WallFinishNaturalStone:
		return f.NaturalStoneMultiplier
	}
	return 1.0
}
