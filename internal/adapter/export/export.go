package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"orcamento_api/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	SheetName = "Orcamento"
)

var header = []string{"ID", "Item", "Unit", "Quantity", "UnitPrice", "TotalPrice"}

// Filename returns orcamento_<yyyy-MM-dd_HH-mm-ss>.<ext>.
func Filename(now time.Time, ext string) string {
	return fmt.Sprintf("orcamento_%s.%s", now.Format("2006-01-02_15-04-05"), ext)
}

// Money formats v as "R$ 1234.50", rounding half away from zero.
func Money(v float64) string {
	return "R$ " + decimal.NewFromFloat(v).StringFixed(2)
}

// quantity always keeps a fractional digit: 100 is written "100.0", 12.5
// stays "12.5".
func quantity(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.IsInteger() {
		return d.StringFixed(1)
	}
	return d.String()
}

// WriteCSV writes the header, one row per item and a closing total row.
func WriteCSV(w io.Writer, b entities.BudgetResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, it := range b.Items {
		row := []string{it.ID, it.Name, it.Unit, quantity(it.Quantity), Money(it.UnitPrice), Money(it.TotalPrice)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"", "", "", "", "TOTAL:", Money(b.Total)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same table as WriteCSV into a single-sheet workbook.
// Amounts are kept numeric with a currency format.
func WriteXLSX(w io.Writer, b entities.BudgetResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return err
	}

	moneyFmt := `"R$ "#,##0.00`
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return err
	}

	row := 2
	for _, it := range b.Items {
		values := []interface{}{it.ID, it.Name, it.Unit, it.Quantity, round2(it.UnitPrice), round2(it.TotalPrice)}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}
	total := []interface{}{"", "", "", "", "TOTAL:", round2(b.Total)}
	if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", row), &total); err != nil {
		return err
	}

	if err := f.SetCellStyle(SheetName, "E2", fmt.Sprintf("F%d", row), moneyStyle); err != nil {
		return err
	}
	for _, col := range []struct {
		from, to string
		width    float64
	}{
		{"A", "A", 14},
		{"B", "B", 24},
		{"E", "F", 16},
	} {
		if err := f.SetColWidth(SheetName, col.from, col.to, col.width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
