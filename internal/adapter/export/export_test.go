package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"orcamento_api/internal/domain/calculator"
	"orcamento_api/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func sampleBudget() entities.BudgetResponse {
	return calculator.Calculate(entities.BudgetInputs{
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
	}, entities.DefaultCostFactors())
}

func TestMoney(t *testing.T) {
	cases := map[float64]string{
		0:         "R$ 0.00",
		1234.5:    "R$ 1234.50",
		227000:    "R$ 227000.00",
		10.005:    "R$ 10.01",
		99.994999: "R$ 99.99",
	}
	for in, want := range cases {
		if got := Money(in); got != want {
			t.Fatalf("Money(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestQuantity(t *testing.T) {
	cases := map[float64]string{
		100:   "100.0",
		0:     "0.0",
		12.5:  "12.5",
		0.125: "0.125",
	}
	for in, want := range cases {
		if got := quantity(in); got != want {
			t.Fatalf("quantity(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestFilename(t *testing.T) {
	got := Filename(time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC), "csv")
	if got != "orcamento_2024-03-09_14-05-07.csv" {
		t.Fatalf("unexpected filename: %s", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleBudget()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != "ID,Item,Unit,Quantity,UnitPrice,TotalPrice" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "foundation" || rows[1][3] != "100.0" || rows[1][5] != "R$ 22500.00" {
		t.Fatalf("unexpected first item: %v", rows[1])
	}
	last := rows[14]
	if last[4] != "TOTAL:" || last[5] != "R$ 227000.00" {
		t.Fatalf("unexpected total row: %v", last)
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleBudget()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != SheetName {
		t.Fatalf("expected sheet %s, got %s", SheetName, f.GetSheetName(0))
	}
	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 15 || rows[0][0] != "ID" || rows[14][4] != "TOTAL:" {
		t.Fatalf("unexpected rows: %v", rows)
	}

	total, err := f.GetCellValue(SheetName, "F15", excelize.Options{RawCellValue: true})
	if err != nil || total != "227000" {
		t.Fatalf("expected raw total 227000, got %q err=%v", total, err)
	}

	for col, want := range map[string]float64{"A": 14, "B": 24, "F": 16} {
		if got, err := f.GetColWidth(SheetName, col); err != nil || got != want {
			t.Fatalf("column %s: expected width %v, got %v err=%v", col, want, got, err)
		}
	}
}
