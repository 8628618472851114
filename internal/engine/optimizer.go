// Package engine implements the profile cutting-stock optimizer: given a
// material's catalogue of standard stock lengths and a list of required cut
// lengths, it decides which pipes to consume and how to pack cuts onto
// them, minimizing waste under a kerf-loss model.
package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/ProfileCut/internal/model"
	"github.com/piwi3910/ProfileCut/internal/unit"
)

// Optimizer runs the greedy least-waste packing algorithm.
type Optimizer struct {
	Settings model.CutSettings
	Diag     Diagnostics
}

// New creates an Optimizer. Zero-valued settings fields fall back to the
// defaults so a partially filled struct still behaves sanely.
func New(settings model.CutSettings) *Optimizer {
	defaults := model.DefaultSettings()
	if settings.KerfWidthIn <= 0 {
		settings.KerfWidthIn = defaults.KerfWidthIn
	}
	if settings.UsableOffcutFt <= 0 {
		settings.UsableOffcutFt = defaults.UsableOffcutFt
	}
	if settings.EpsilonIn <= 0 {
		settings.EpsilonIn = defaults.EpsilonIn
	}
	return &Optimizer{Settings: settings, Diag: NopDiagnostics}
}

// WithDiagnostics sets the warning sink and returns the optimizer.
func (o *Optimizer) WithDiagnostics(d Diagnostics) *Optimizer {
	if d != nil {
		o.Diag = d
	}
	return o
}

// stockPipe is a normalized catalogue entry used during one run.
type stockPipe struct {
	std model.StandardLength // LengthIn populated
}

// simulation holds the outcome of trial-packing the current remaining cuts
// onto one candidate pipe.
type simulation struct {
	packed   []float64
	usedIn   float64
	leftover float64
}

// CalculateProfileConsumption produces the purchase/cut plan for the given
// material and required cut lengths (in feet).
//
// The algorithm is a greedy multi-candidate walk: each iteration trial-packs
// the remaining cuts (largest-first, fixed order) onto every standard-length
// candidate, then commits the candidate leaving the smallest immediate
// leftover. Cuts that fit nowhere become scrap, which guarantees the working
// list shrinks every iteration. The exact heuristic, tie-break, and fallback
// are load-bearing: downstream consumers depend on matching pipe counts and
// scrap figures, so do not swap in a different bin-packing strategy.
func (o *Optimizer) CalculateProfileConsumption(material model.Material, companyID string, requiredCutsFt []float64) (model.ConsumptionResult, error) {
	eps := o.Settings.EpsilonIn
	kerf := o.Settings.KerfWidthIn

	if err := o.validateMaterial(material, companyID); err != nil {
		return model.ConsumptionResult{}, err
	}

	stocks, err := o.normalizeStandards(material)
	if err != nil {
		return model.ConsumptionResult{}, err
	}

	cutsIn, err := normalizeCuts(requiredCutsFt)
	if err != nil {
		return model.ConsumptionResult{}, err
	}

	if len(cutsIn) == 0 {
		return model.ConsumptionResult{
			Purchases:       []model.PipePurchase{},
			UsableOffcutsFt: []float64{},
		}, nil
	}

	// Largest-first bias on both lists. The candidate scan below examines
	// every stock each iteration, so the stock order is informational; the
	// cut order is part of the packing contract and is never re-sorted,
	// only shrunk.
	sort.Sort(sort.Reverse(sort.Float64Slice(cutsIn)))
	sort.Slice(stocks, func(i, j int) bool {
		return stocks[i].std.LengthIn > stocks[j].std.LengthIn
	})

	// Fast-fail before the main loop: the largest cut must fit the largest
	// pipe or no packing exists at all.
	largestCut := cutsIn[0]
	largestStock := stocks[0].std.LengthIn
	if largestCut > largestStock+eps {
		return model.ConsumptionResult{}, invalidInput(
			"required cut of %.2fin (%.2fft) exceeds the longest standard stock length of %.2fin (%.2fft) for material %q",
			largestCut, unit.InchesToFeet(largestCut),
			largestStock, unit.InchesToFeet(largestStock),
			material.Name)
	}

	var layouts []model.PipeLayout
	var unfulfillableIn float64

	for len(cutsIn) > 0 {
		bestIdx := -1
		var best simulation

		for i, stock := range stocks {
			sim := simulatePack(stock.std.LengthIn, cutsIn, kerf, eps)
			if len(sim.packed) == 0 {
				continue
			}
			if bestIdx < 0 || sim.leftover < best.leftover {
				bestIdx = i
				best = sim
			}
		}

		if bestIdx < 0 {
			// Nothing can take even one cut. Scrap the largest remaining
			// cut so the loop always terminates.
			idx := largestIndex(cutsIn)
			o.Diag.Warnf("cut of %.3fin does not fit any standard length; counting as scrap", cutsIn[idx])
			unfulfillableIn += cutsIn[idx]
			cutsIn = append(cutsIn[:idx], cutsIn[idx+1:]...)
			continue
		}

		layouts = append(layouts, model.NewPipeLayout(stocks[bestIdx].std, best.packed, best.usedIn, best.leftover))

		for _, packed := range best.packed {
			found := false
			for i, c := range cutsIn {
				if math.Abs(c-packed) <= eps {
					cutsIn = append(cutsIn[:i], cutsIn[i+1:]...)
					found = true
					break
				}
			}
			if !found {
				o.Diag.Warnf("packed cut of %.3fin not found in the working list; skipping removal", packed)
			}
		}
	}

	return o.aggregate(layouts, unfulfillableIn), nil
}

func (o *Optimizer) validateMaterial(material model.Material, companyID string) error {
	if material.ID == "" {
		return invalidInput("material not found")
	}
	if material.CompanyID != companyID {
		return invalidInput("material %q does not belong to company %q", material.Name, companyID)
	}
	if material.Category != model.CategoryProfile {
		return invalidInput("material %q has category %q, expected %q", material.Name, material.Category, model.CategoryProfile)
	}
	if len(material.StandardLengths) == 0 {
		return invalidInput("material %q has no standard stock lengths configured", material.Name)
	}
	return nil
}

// normalizeStandards snapshots the catalogue into inch-denominated stock
// pipes. Malformed entries are skipped with a warning; only an empty result
// is a hard failure.
func (o *Optimizer) normalizeStandards(material model.Material) ([]stockPipe, error) {
	var stocks []stockPipe
	for i, std := range material.StandardLengths {
		lengthIn, err := unit.ToInches(std.Length, std.Unit)
		if err != nil {
			o.Diag.Warnf("skipping standard length %d of material %q: %v", i, material.Name, err)
			continue
		}
		if lengthIn <= 0 {
			o.Diag.Warnf("skipping standard length %d of material %q: %.3f %s is not positive", i, material.Name, std.Length, std.Unit)
			continue
		}
		normalized := std
		normalized.LengthIn = lengthIn
		stocks = append(stocks, stockPipe{std: normalized})
	}
	if len(stocks) == 0 {
		return nil, invalidInput("material %q has no standard lengths that convert to a positive inch value", material.Name)
	}
	return stocks, nil
}

// normalizeCuts validates the required cuts and converts them to inches.
// Any malformed cut fails the whole call; no partial results.
func normalizeCuts(cutsFt []float64) ([]float64, error) {
	cutsIn := make([]float64, 0, len(cutsFt))
	for i, ft := range cutsFt {
		if math.IsNaN(ft) || math.IsInf(ft, 0) {
			return nil, invalidInput("required cut %d is not a finite number", i)
		}
		if ft <= 0 {
			return nil, invalidInput("required cut %d must be positive, got %.3fft", i, ft)
		}
		cutsIn = append(cutsIn, unit.FeetToInches(ft))
	}
	return cutsIn, nil
}

// simulatePack greedily walks the remaining cuts in their current order and
// accepts every one that still fits on a pipe of the given capacity. The
// first cut on a pipe costs no kerf; each further cut charges one kerf.
// The walk only adds cuts; it never explores alternative orderings.
func simulatePack(capacityIn float64, cutsIn []float64, kerf, eps float64) simulation {
	var sim simulation
	for _, c := range cutsIn {
		need := c
		if len(sim.packed) > 0 {
			need += kerf
		}
		if sim.usedIn+need <= capacityIn+eps {
			sim.usedIn += need
			sim.packed = append(sim.packed, c)
		}
	}
	sim.leftover = capacityIn - sim.usedIn
	return sim
}

func largestIndex(values []float64) int {
	idx := 0
	for i, v := range values {
		if v > values[idx] {
			idx = i
		}
	}
	return idx
}

// aggregate folds pipe layouts and unfulfillable scrap into the final
// result: purchase counts per standard length, total scrap, and the usable
// offcut list.
func (o *Optimizer) aggregate(layouts []model.PipeLayout, unfulfillableIn float64) model.ConsumptionResult {
	result := model.ConsumptionResult{
		TotalPipes:      len(layouts),
		Purchases:       []model.PipePurchase{},
		UsableOffcutsFt: []float64{},
		Layouts:         layouts,
	}

	// Group purchases by standard-length identity, preserving first-seen
	// order (descending stock length).
	index := make(map[float64]int)
	for _, layout := range layouts {
		key := layout.Stock.LengthIn
		if i, ok := index[key]; ok {
			result.Purchases[i].Count++
			continue
		}
		index[key] = len(result.Purchases)
		result.Purchases = append(result.Purchases, model.PipePurchase{
			Length:   layout.Stock.Length,
			Unit:     layout.Stock.Unit,
			LengthIn: layout.Stock.LengthIn,
			Count:    1,
		})
	}

	// Leftovers at or above the threshold are usable offcuts; everything
	// else is scrap. Unfulfillable cuts are always scrap.
	scrapFt := unit.InchesToFeet(unfulfillableIn)
	negligibleFt := unit.InchesToFeet(o.Settings.EpsilonIn)
	for _, layout := range layouts {
		leftFt := unit.InchesToFeet(layout.LeftoverIn)
		if leftFt >= o.Settings.UsableOffcutFt {
			rounded := model.Round3(leftFt)
			if rounded >= negligibleFt {
				result.UsableOffcutsFt = append(result.UsableOffcutsFt, rounded)
			}
		} else {
			scrapFt += leftFt
		}
	}

	sort.Float64s(result.UsableOffcutsFt)
	result.TotalScrapFt = model.Round3(scrapFt)
	return result
}
