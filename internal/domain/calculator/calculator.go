// Package calculator turns building parameters into an itemized budget.
//
// Calculate is pure: no I/O, no clock, no randomness. The same inputs and cost
// factors always produce the same response.
package calculator

import "orcamento_api/internal/domain/entities"

const itemUnit = "m²"

// Per-unit rates of the additive costs.
const (
	FrameRatePerArea   = 200.0
	BathroomRate       = 5000.0
	FloorRatePerArea   = 150.0
	CeilingRatePerArea = 100.0
	RoofRatePerArea    = 300.0
)

// Category is one fixed cost-distribution bucket of the budget.
type Category struct {
	ID     string
	Name   string
	Weight float64
}

// Categories is the cost distribution in output order. Weights sum to 1.0.
var Categories = []Category{
	{ID: "foundation", Name: "Fundação", Weight: 0.15},
	{ID: "structure", Name: "Estrutura", Weight: 0.20},
	{ID: "masonry", Name: "Alvenaria", Weight: 0.08},
	{ID: "finishing", Name: "Acabamento", Weight: 0.12},
	{ID: "roof", Name: "Cobertura", Weight: 0.10},
	{ID: "frames", Name: "Esquadrias", Weight: 0.08},
	{ID: "electrical", Name: "Instalações Elétricas", Weight: 0.08},
	{ID: "plumbing", Name: "Instalações Hidráulicas", Weight: 0.06},
	{ID: "painting", Name: "Pintura", Weight: 0.05},
	{ID: "flooring", Name: "Pisos", Weight: 0.04},
	{ID: "ceiling", Name: "Forros", Weight: 0.02},
	{ID: "waterproofing", Name: "Impermeabilização", Weight: 0.01},
	{ID: "cleaning", Name: "Limpeza e Acabamento", Weight: 0.01},
}

// TotalWeight is the sum of all category weights.
func TotalWeight() float64 {
	total := 0.0
	for _, c := range Categories {
		total += c.Weight
	}
	return total
}

// Calculate builds the budget for in using factors.
//
// in.Area must be > 0; callers validate inputs first. Unknown enum values are
// priced with a 1.0 multiplier instead of failing.
//
// The wall-finish multiplier is not applied to the item totals; the items
// always sum to baseCost * wall * finish.
func Calculate(in entities.BudgetInputs, factors entities.CostFactors) entities.BudgetResponse {
	baseCost := in.Area * factors.BaseConstructionCost

	wallMultiplier := factors.WallTypeMultiplier(in.WallType)
	finishMultiplier := factors.FinishQualityMultiplier(in.FinishQuality)

	items := make([]entities.EapItem, 0, len(Categories))
	itemsTotal := 0.0
	for _, c := range Categories {
		itemCost := baseCost * c.Weight * wallMultiplier * finishMultiplier
		items = append(items, entities.EapItem{
			ID:         c.ID,
			Name:       c.Name,
			Unit:       itemUnit,
			Quantity:   in.Area,
			UnitPrice:  itemCost / in.Area,
			TotalPrice: itemCost,
		})
		itemsTotal += itemCost
	}

	return entities.BudgetResponse{
		Items: items,
		Total: itemsTotal + AdditionalCosts(in, itemsTotal),
	}
}

// AdditionalCosts prices the per-unit extras plus waste over itemsTotal.
func AdditionalCosts(in entities.BudgetInputs, itemsTotal float64) float64 {
	extra := in.FrameArea * FrameRatePerArea
	extra += float64(in.Bathrooms) * BathroomRate
	extra += in.FloorArea * FloorRatePerArea
	extra += in.CeilingArea * CeilingRatePerArea
	extra += in.RoofArea * RoofRatePerArea
	extra += itemsTotal * (in.WastePercentage / 100.0)
	return extra
}
