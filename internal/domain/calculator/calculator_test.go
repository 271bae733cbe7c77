package calculator

import (
	"encoding/json"
	"math"
	"testing"

	"orcamento_api/internal/domain/entities"
)

const tolerance = 1e-6

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Abs(b))
}

func scenarioInputs() entities.BudgetInputs {
	return entities.BudgetInputs{
		Area:            100,
		WallType:        entities.WallTypeAlvenaria,
		FinishQuality:   entities.FinishQualityStandard,
		WallFinish:      entities.WallFinishPaint,
		FrameArea:       10,
		Bathrooms:       2,
		FloorArea:       80,
		CeilingArea:     80,
		CeilingType:     entities.CeilingTypePlaster,
		RoofType:        entities.RoofTypeCeramicTile,
		RoofArea:        100,
		FoundationType:  entities.FoundationTypeShallow,
		WastePercentage: 10,
	}
}

func TestCategories_WeightsSumToOne(t *testing.T) {
	if len(Categories) != 13 {
		t.Fatalf("expected 13 categories, got %d", len(Categories))
	}
	if !approxEqual(TotalWeight(), 1.0) {
		t.Fatalf("expected weights to sum to 1.0, got %v", TotalWeight())
	}
	seen := map[string]bool{}
	for _, c := range Categories {
		if seen[c.ID] {
			t.Fatalf("duplicate category %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestCalculate_Scenario(t *testing.T) {
	res := Calculate(scenarioInputs(), entities.DefaultCostFactors())

	if len(res.Items) != 13 {
		t.Fatalf("expected 13 items, got %d", len(res.Items))
	}
	for i, item := range res.Items {
		want := 150000 * Categories[i].Weight
		if item.ID != Categories[i].ID || !approxEqual(item.TotalPrice, want) {
			t.Fatalf("item %d: expected %s=%v, got %s=%v", i, Categories[i].ID, want, item.ID, item.TotalPrice)
		}
		if item.Quantity != 100 || item.Unit != "m²" {
			t.Fatalf("unexpected quantity/unit: %+v", item)
		}
		if !approxEqual(item.UnitPrice, want/100) {
			t.Fatalf("unexpected unit price: %+v", item)
		}
	}

	// 150000 items + 2000 frames + 10000 bathrooms + 12000 floor + 8000 ceiling
	// + 30000 roof + 15000 waste.
	if !approxEqual(res.Total, 227000) {
		t.Fatalf("expected total 227000, got %v", res.Total)
	}
}

func TestCalculate_ItemsSumToMultipliedBase(t *testing.T) {
	factors := entities.DefaultCostFactors()
	cases := []entities.BudgetInputs{
		{Area: 1, WallType: entities.WallTypeDrywall, FinishQuality: entities.FinishQualityBasic, WallFinish: entities.WallFinishNaturalStone},
		{Area: 250.5, WallType: entities.WallTypeSteelFrame, FinishQuality: entities.FinishQualityPremium, WallFinish: entities.WallFinishCeramicTile},
		{Area: 10000, WallType: entities.WallTypeAlvenaria, FinishQuality: entities.FinishQualityStandard, WallFinish: entities.WallFinishPaint},
	}
	for _, in := range cases {
		res := Calculate(in, factors)
		sum := 0.0
		for _, item := range res.Items {
			sum += item.TotalPrice
		}
		want := in.Area * factors.BaseConstructionCost * factors.WallTypeMultiplier(in.WallType) * factors.FinishQualityMultiplier(in.FinishQuality)
		if !approxEqual(sum, want) {
			t.Fatalf("area=%v: expected items sum %v, got %v", in.Area, want, sum)
		}
		if !approxEqual(res.Total, sum) {
			t.Fatalf("no additive inputs, expected total == items sum, got %v vs %v", res.Total, sum)
		}
	}
}

func TestCalculate_UnknownEnumsFallBackToOne(t *testing.T) {
	factors := entities.DefaultCostFactors()
	in := entities.BudgetInputs{Area: 10, WallType: "adobe", FinishQuality: "luxury"}

	res := Calculate(in, factors)
	if !approxEqual(res.Total, 10*1500) {
		t.Fatalf("expected 15000 with neutral multipliers, got %v", res.Total)
	}
}

func TestCalculate_UsesConfiguredFactors(t *testing.T) {
	factors := entities.DefaultCostFactors()
	factors.BaseConstructionCost = 2000
	factors.PremiumFinishMultiplier = 2

	in := entities.BudgetInputs{Area: 10, WallType: entities.WallTypeAlvenaria, FinishQuality: entities.FinishQualityPremium}
	res := Calculate(in, factors)
	if !approxEqual(res.Total, 10*2000*2) {
		t.Fatalf("expected 40000, got %v", res.Total)
	}
}

func TestCalculate_IsDeterministic(t *testing.T) {
	in := scenarioInputs()
	factors := entities.DefaultCostFactors()

	first, _ := json.Marshal(Calculate(in, factors))
	for i := 0; i < 20; i++ {
		again, _ := json.Marshal(Calculate(in, factors))
		if string(again) != string(first) {
			t.Fatalf("run %d produced different output", i)
		}
	}
}

func TestAdditionalCosts_WasteAppliesToItemsTotal(t *testing.T) {
	in := entities.BudgetInputs{WastePercentage: 50, Bathrooms: 1}
	got := AdditionalCosts(in, 1000)
	if !approxEqual(got, 5000+500) {
		t.Fatalf("expected 5500, got %v", got)
	}
}
