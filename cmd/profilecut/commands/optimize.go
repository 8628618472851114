package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ProfileCut/internal/engine"
	"github.com/piwi3910/ProfileCut/internal/export"
	"github.com/piwi3910/ProfileCut/internal/importer"
	"github.com/piwi3910/ProfileCut/internal/model"
	"github.com/piwi3910/ProfileCut/internal/project"
)

var (
	optMaterial   string
	optInput      string
	optDXFUnit    string
	optKerfIn     float64
	optOffcutFt   float64
	optPDFPath    string
	optLabelsPath string
	optExcelPath  string
	optJobPath    string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Pack a cut list onto standard stock lengths",
	Long: `Read a cut list from a CSV, Excel, DXF or saved job file and pack it
onto the standard stock lengths of the chosen material.

The plan is printed to stdout; use --pdf, --labels or --xlsx to also
write shop-floor documents.`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optMaterial, "material", "m", "", "material name or ID from the catalogue (required)")
	optimizeCmd.Flags().StringVarP(&optInput, "input", "i", "", "cut list file: .csv, .xlsx, .dxf or .json job (required)")
	optimizeCmd.Flags().StringVar(&optDXFUnit, "dxf-unit", "mm", "drawing unit for DXF input")
	optimizeCmd.Flags().Float64Var(&optKerfIn, "kerf", 0, "saw kerf width in inches (default from config)")
	optimizeCmd.Flags().Float64Var(&optOffcutFt, "min-offcut", 0, "minimum usable offcut length in feet (default from config)")
	optimizeCmd.Flags().StringVar(&optPDFPath, "pdf", "", "write a cut plan PDF to this path")
	optimizeCmd.Flags().StringVar(&optLabelsPath, "labels", "", "write QR pipe labels PDF to this path")
	optimizeCmd.Flags().StringVar(&optExcelPath, "xlsx", "", "write a cut plan workbook to this path")
	optimizeCmd.Flags().StringVar(&optJobPath, "save-job", "", "save the job with its result to this path")
	optimizeCmd.MarkFlagRequired("material")
	optimizeCmd.MarkFlagRequired("input")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalogue()
	if err != nil {
		return err
	}

	material := cat.FindMaterialByID(optMaterial)
	if material == nil {
		material = cat.FindMaterialByName(optMaterial)
	}
	if material == nil {
		return fmt.Errorf("material %q not found in catalogue", optMaterial)
	}

	cuts, err := readCutList(optInput)
	if err != nil {
		return err
	}
	if len(cuts) == 0 {
		return fmt.Errorf("no cut lines found in %s", optInput)
	}

	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)
	if optKerfIn > 0 {
		settings.KerfWidthIn = optKerfIn
	}
	if optOffcutFt > 0 {
		settings.UsableOffcutFt = optOffcutFt
	}

	lengths := model.ExpandCuts(cuts)
	opt := engine.New(settings).WithDiagnostics(stderrDiagnostics)
	result, err := opt.CalculateProfileConsumption(*material, companyID, lengths)
	if err != nil {
		return err
	}

	printPlan(*material, result, settings)

	if optPDFPath != "" {
		if err := export.ExportPDF(optPDFPath, *material, result, settings); err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}
		fmt.Printf("Cut plan PDF written to %s\n", optPDFPath)
	}
	if optLabelsPath != "" {
		if err := export.ExportLabels(optLabelsPath, *material, result); err != nil {
			return fmt.Errorf("failed to export labels: %w", err)
		}
		fmt.Printf("Pipe labels written to %s\n", optLabelsPath)
	}
	if optExcelPath != "" {
		if err := export.ExportExcel(optExcelPath, *material, result); err != nil {
			return fmt.Errorf("failed to export workbook: %w", err)
		}
		fmt.Printf("Cut plan workbook written to %s\n", optExcelPath)
	}

	if optJobPath != "" {
		job := model.NewJob()
		job.Name = strings.TrimSuffix(filepath.Base(optJobPath), ".json")
		job.MaterialID = material.ID
		job.CompanyID = companyID
		job.Cuts = cuts
		job.Settings = settings
		job.Result = &result
		if err := project.SaveJob(optJobPath, job); err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}
		fmt.Printf("Job saved to %s\n", optJobPath)
	}

	return nil
}

// readCutList loads cut lines from a file, dispatching on extension.
func readCutList(path string) ([]model.CutLine, error) {
	var res importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		res = importer.ImportCSV(path)
	case ".xlsx", ".xlsm":
		res = importer.ImportExcel(path)
	case ".dxf":
		res = importer.ImportDXF(path, optDXFUnit)
	case ".json":
		job, err := project.LoadJob(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load job: %w", err)
		}
		return job.Cuts, nil
	default:
		return nil, fmt.Errorf("unsupported cut list format: %s", path)
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(res.Errors) > 0 {
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return nil, fmt.Errorf("%d rows could not be imported from %s", len(res.Errors), path)
	}
	return res.Cuts, nil
}

func printPlan(material model.Material, result model.ConsumptionResult, settings model.CutSettings) {
	fmt.Printf("Material: %s\n", material.Name)
	fmt.Printf("Pipes to purchase: %d\n", result.TotalPipes)
	for _, p := range result.Purchases {
		fmt.Printf("  %d x %g%s (%.0fin)\n", p.Count, p.Length, p.Unit, p.LengthIn)
	}
	fmt.Printf("Total purchased: %.3fft\n", result.TotalPurchasedFt())
	fmt.Printf("Scrap: %.3fft (%.1f%%)\n", result.TotalScrapFt, result.ScrapPercent())
	offcuts := model.CollectOffcuts(material, result, settings.UsableOffcutFt)
	if len(offcuts) > 0 {
		fmt.Println("Usable offcuts:")
		for _, off := range offcuts {
			if off.PriceShare > 0 {
				fmt.Printf("  %.3fft (value %.2f)\n", off.LengthFt, off.PriceShare)
			} else {
				fmt.Printf("  %.3fft\n", off.LengthFt)
			}
		}
	}
	fmt.Println()
	for i, layout := range result.Layouts {
		fmt.Printf("Pipe %d (%g%s):", i+1, layout.Stock.Length, layout.Stock.Unit)
		for _, cut := range layout.CutsIn {
			fmt.Printf(" %.3fft", model.Round3(cut/12.0))
		}
		fmt.Printf("  leftover %.3fft\n", model.Round3(layout.LeftoverIn/12.0))
	}
}
