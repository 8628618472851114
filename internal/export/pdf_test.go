package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ProfileCut/internal/model"
)

// buildTestResult creates a realistic consumption result for testing:
// two 12ft pipes and one 20ft pipe with a usable offcut.
func buildTestResult() model.ConsumptionResult {
	stock12 := model.StandardLength{Length: 12, Unit: "ft", LengthIn: 144}
	stock20 := model.StandardLength{Length: 20, Unit: "ft", LengthIn: 240}

	return model.ConsumptionResult{
		TotalPipes: 3,
		Purchases: []model.PipePurchase{
			{Length: 12, Unit: "ft", LengthIn: 144, Count: 2},
			{Length: 20, Unit: "ft", LengthIn: 240, Count: 1},
		},
		TotalScrapFt:    1.254,
		UsableOffcutsFt: []float64{4.5},
		Layouts: []model.PipeLayout{
			{
				ID:         "pipe-1",
				Stock:      stock12,
				CutsIn:     []float64{60, 60, 22.8},
				UsedIn:     143.05,
				LeftoverIn: 0.95,
			},
			{
				ID:         "pipe-2",
				Stock:      stock12,
				CutsIn:     []float64{72, 57.6},
				UsedIn:     129.725,
				LeftoverIn: 14.275,
			},
			{
				ID:         "pipe-3",
				Stock:      stock20,
				CutsIn:     []float64{96, 90},
				UsedIn:     186.125,
				LeftoverIn: 53.875,
			},
		},
	}
}

func buildTestMaterial() model.Material {
	return model.Material{
		ID:        "mat-1",
		Name:      "Handrail Round Pipe 2in",
		CompanyID: "acme",
		Category:  model.CategoryProfile,
		StandardLengths: []model.StandardLength{
			{Length: 12, Unit: "ft", LengthIn: 144},
			{Length: 20, Unit: "ft", LengthIn: 240},
		},
		PricePerFt: 3.25,
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cutplan.pdf")

	err := ExportPDF(path, buildTestMaterial(), buildTestResult(), model.DefaultSettings())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with a diagram page plus summary page should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, buildTestMaterial(), model.ConsumptionResult{}, model.DefaultSettings())
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportPDF_ManyPipes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many.pdf")

	stock := model.StandardLength{Length: 12, Unit: "ft", LengthIn: 144}
	result := model.ConsumptionResult{
		Purchases: []model.PipePurchase{{Length: 12, Unit: "ft", LengthIn: 144, Count: 20}},
	}
	for i := 0; i < 20; i++ {
		result.Layouts = append(result.Layouts, model.PipeLayout{
			ID:         "p",
			Stock:      stock,
			CutsIn:     []float64{70, 70},
			UsedIn:     140.125,
			LeftoverIn: 3.875,
		})
	}
	result.TotalPipes = len(result.Layouts)

	err := ExportPDF(path, buildTestMaterial(), result, model.DefaultSettings())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_NoOffcuts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_offcuts.pdf")

	result := buildTestResult()
	result.UsableOffcutsFt = nil

	err := ExportPDF(path, buildTestMaterial(), result, model.DefaultSettings())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}
