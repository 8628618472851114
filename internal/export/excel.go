package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ProfileCut/internal/model"
)

const (
	sheetPurchases = "Purchases"
	sheetCutPlan   = "Cut Plan"
	sheetOffcuts   = "Offcuts"
)

// ExportExcel writes a cut plan workbook with three sheets: the purchase
// list grouped by stock length, the per-pipe cut plan, and the usable
// offcuts. Suitable for handing to purchasing or the shop floor.
func ExportExcel(path string, material model.Material, result model.ConsumptionResult) error {
	if len(result.Layouts) == 0 {
		return fmt.Errorf("no cut plan to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writePurchaseSheet(f, material, result); err != nil {
		return err
	}
	if err := writeCutPlanSheet(f, result); err != nil {
		return err
	}
	if err := writeOffcutSheet(f, result); err != nil {
		return err
	}

	// Remove the default sheet created by excelize
	f.SetActiveSheet(0)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writePurchaseSheet(f *excelize.File, material model.Material, result model.ConsumptionResult) error {
	if _, err := f.NewSheet(sheetPurchases); err != nil {
		return fmt.Errorf("failed to create purchase sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	setRow(f, sheetPurchases, 1, "Material", material.Name)
	setRow(f, sheetPurchases, 2, "Total pipes", result.TotalPipes)
	setRow(f, sheetPurchases, 3, "Total purchased (ft)", result.TotalPurchasedFt())
	setRow(f, sheetPurchases, 4, "Total scrap (ft)", result.TotalScrapFt)
	setRow(f, sheetPurchases, 5, "Scrap (%)", model.Round3(result.ScrapPercent()))

	headerRow := 7
	setRow(f, sheetPurchases, headerRow, "Stock Length", "Unit", "Length (in)", "Pipes")
	if err := styleRow(f, sheetPurchases, headerRow, 4, headerStyle); err != nil {
		return err
	}

	for i, p := range result.Purchases {
		setRow(f, sheetPurchases, headerRow+1+i, p.Length, p.Unit, p.LengthIn, p.Count)
	}

	if material.PricePerFt > 0 {
		costRow := headerRow + len(result.Purchases) + 2
		cost := result.TotalPurchasedFt() * material.PricePerFt
		setRow(f, sheetPurchases, costRow, "Estimated cost", model.Round3(cost))
	}

	return nil
}

func writeCutPlanSheet(f *excelize.File, result model.ConsumptionResult) error {
	if _, err := f.NewSheet(sheetCutPlan); err != nil {
		return fmt.Errorf("failed to create cut plan sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	setRow(f, sheetCutPlan, 1, "Pipe", "Stock (ft)", "Cut", "Length (ft)", "Length (in)")
	if err := styleRow(f, sheetCutPlan, 1, 5, headerStyle); err != nil {
		return err
	}

	row := 2
	for i, layout := range result.Layouts {
		stockFt := model.Round3(layout.Stock.LengthIn / 12.0)
		for j, cutIn := range layout.CutsIn {
			setRow(f, sheetCutPlan, row, i+1, stockFt, j+1, model.Round3(cutIn/12.0), model.Round3(cutIn))
			row++
		}
		setRow(f, sheetCutPlan, row, i+1, stockFt, "leftover", model.Round3(layout.LeftoverIn/12.0), model.Round3(layout.LeftoverIn))
		row++
	}

	return nil
}

func writeOffcutSheet(f *excelize.File, result model.ConsumptionResult) error {
	if _, err := f.NewSheet(sheetOffcuts); err != nil {
		return fmt.Errorf("failed to create offcut sheet: %w", err)
	}

	setRow(f, sheetOffcuts, 1, "#", "Length (ft)")
	for i, off := range result.UsableOffcutsFt {
		setRow(f, sheetOffcuts, 2+i, i+1, off)
	}
	if len(result.UsableOffcutsFt) == 0 {
		setRow(f, sheetOffcuts, 2, "", "none")
	}
	return nil
}

// setRow writes values into consecutive columns of a row, starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			continue
		}
		// SetCellValue only fails on an invalid sheet or cell reference,
		// both of which are fixed at the call sites above.
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func styleRow(f *excelize.File, sheet string, row, cols, style int) error {
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(cols, row)
	if err := f.SetCellStyle(sheet, start, end, style); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}
	return nil
}
