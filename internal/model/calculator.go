package model

import "math"

// PurchaseEstimate holds the results of a quick stock purchasing calculation.
// This is the back-of-the-envelope figure shown before running the full
// optimizer: total linear feet plus a waste factor, divided by pipe length.
type PurchaseEstimate struct {
	TotalCutFt      float64 `json:"total_cut_ft"`      // Total length of all cuts (ft, no kerf)
	TotalWithKerfFt float64 `json:"total_with_kerf_ft"` // Total including one kerf allowance per cut
	PipeLengthFt    float64 `json:"pipe_length_ft"`    // Standard length used for the estimate
	PipesExact      float64 `json:"pipes_exact"`       // Exact fractional number of pipes
	PipesMin        int     `json:"pipes_min"`         // Minimum pipes (ceiling of exact)
	PipesWithWaste  int     `json:"pipes_with_waste"`  // Recommended pipes including waste factor
	WastePercent    float64 `json:"waste_percent"`     // Waste factor applied (e.g., 10 for 10%)
	EstimatedCost   float64 `json:"estimated_cost"`    // Total cost if pricing available
	PricePerFt      float64 `json:"price_per_ft"`      // Price used for estimation
	KerfWidthIn     float64 `json:"kerf_width_in"`     // Kerf width used in calculation
}

// CalculatePurchaseEstimate computes roughly how many pipes of the given
// standard length to buy for a cut list. It charges one kerf allowance per
// cut and then applies an additional waste percentage. The full optimizer
// gives the exact packing; this is the estimate quoted to customers.
func CalculatePurchaseEstimate(cuts []CutLine, pipeLengthFt, kerfWidthIn, wastePercent, pricePerFt float64) PurchaseEstimate {
	kerfFt := kerfWidthIn / 12.0

	var totalCutFt, totalWithKerfFt float64
	for _, c := range cuts {
		qty := c.Quantity
		if qty < 1 {
			qty = 1
		}
		totalCutFt += c.LengthFt * float64(qty)
		totalWithKerfFt += (c.LengthFt + kerfFt) * float64(qty)
	}

	if pipeLengthFt <= 0 {
		return PurchaseEstimate{
			TotalCutFt:      Round3(totalCutFt),
			TotalWithKerfFt: Round3(totalWithKerfFt),
			WastePercent:    wastePercent,
			KerfWidthIn:     kerfWidthIn,
		}
	}

	exact := totalWithKerfFt / pipeLengthFt
	minPipes := int(math.Ceil(exact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := int(math.Ceil(exact * wasteFactor))
	if withWaste < minPipes {
		withWaste = minPipes
	}

	estimatedCost := float64(withWaste) * pipeLengthFt * pricePerFt

	return PurchaseEstimate{
		TotalCutFt:      Round3(totalCutFt),
		TotalWithKerfFt: Round3(totalWithKerfFt),
		PipeLengthFt:    pipeLengthFt,
		PipesExact:      exact,
		PipesMin:        minPipes,
		PipesWithWaste:  withWaste,
		WastePercent:    wastePercent,
		EstimatedCost:   estimatedCost,
		PricePerFt:      pricePerFt,
		KerfWidthIn:     kerfWidthIn,
	}
}
