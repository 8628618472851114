package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ProfileCut/internal/model"
)

var (
	estInput    string
	estPipeFt   float64
	estKerfIn   float64
	estWastePct float64
	estPriceFt  float64
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Quick purchase estimate without a full cut plan",
	Long: `Compute a linear purchase estimate for a cut list: total footage with
kerf, pipe count for a single stock length, and cost including a waste
allowance. Faster than a full optimization when quoting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cuts, err := readCutList(estInput)
		if err != nil {
			return err
		}
		if len(cuts) == 0 {
			return fmt.Errorf("no cut lines found in %s", estInput)
		}

		kerf := estKerfIn
		if kerf == 0 {
			kerf = config.DefaultKerfWidthIn
		}
		waste := estWastePct
		if waste == 0 {
			waste = config.DefaultWastePercent
		}

		est := model.CalculatePurchaseEstimate(cuts, estPipeFt, kerf, waste, estPriceFt)

		fmt.Printf("Total cut length:  %.3fft\n", est.TotalCutFt)
		fmt.Printf("With kerf:         %.3fft\n", est.TotalWithKerfFt)
		fmt.Printf("Pipes (%.0fft):      %d minimum, %d with %.0f%% waste\n",
			est.PipeLengthFt, est.PipesMin, est.PipesWithWaste, waste)
		if est.PricePerFt > 0 {
			fmt.Printf("Estimated cost:    %.2f\n", est.EstimatedCost)
		}
		return nil
	},
}

func init() {
	estimateCmd.Flags().StringVarP(&estInput, "input", "i", "", "cut list file: .csv, .xlsx, .dxf or .json job (required)")
	estimateCmd.Flags().Float64Var(&estPipeFt, "pipe-length", 12, "stock pipe length in feet")
	estimateCmd.Flags().Float64Var(&estKerfIn, "kerf", 0, "saw kerf width in inches (default from config)")
	estimateCmd.Flags().Float64Var(&estWastePct, "waste", 0, "waste allowance percent (default from config)")
	estimateCmd.Flags().Float64Var(&estPriceFt, "price", 0, "price per foot for cost estimate")
	estimateCmd.MarkFlagRequired("input")
}
