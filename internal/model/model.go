package model

import (
	"math"

	"github.com/google/uuid"
)

// MaterialCategory classifies what kind of stock a material is sold as.
// Only profile materials (extruded lengths cut from standard pipes) are
// handled by the cutting-stock engine.
type MaterialCategory string

const (
	CategoryProfile  MaterialCategory = "Profile"
	CategoryGlass    MaterialCategory = "Glass"
	CategoryHardware MaterialCategory = "Hardware"
)

// StandardLength represents one purchasable stock pipe size for a material.
// Length is the catalogued value in Unit; LengthIn is derived during
// normalization and is always positive for a usable entry.
type StandardLength struct {
	Length   float64 `json:"length"`
	Unit     string  `json:"unit"`
	LengthIn float64 `json:"length_in_inches,omitempty"`
}

// NewStandardLength creates a catalogue entry. LengthIn is left zero;
// the engine derives it when it snapshots the catalogue.
func NewStandardLength(length float64, unit string) StandardLength {
	return StandardLength{Length: length, Unit: unit}
}

// Material represents a profile material with its catalogue of standard
// stock lengths. The engine treats it as an immutable snapshot: it copies
// the standard-length list before normalizing and never writes back.
type Material struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	CompanyID       string           `json:"company_id"`
	Category        MaterialCategory `json:"category"`
	StandardLengths []StandardLength `json:"standard_lengths"`
	PricePerFt      float64          `json:"price_per_ft,omitempty"`
}

func NewMaterial(name, companyID string, category MaterialCategory, lengths []StandardLength) Material {
	return Material{
		ID:              uuid.New().String()[:8],
		Name:            name,
		CompanyID:       companyID,
		Category:        category,
		StandardLengths: lengths,
	}
}

// CutLine is one row of a cut list: a required cut length in feet,
// repeated Quantity times.
type CutLine struct {
	Label    string  `json:"label"`
	LengthFt float64 `json:"length_ft"`
	Quantity int     `json:"quantity"`
}

func NewCutLine(label string, lengthFt float64, qty int) CutLine {
	return CutLine{Label: label, LengthFt: lengthFt, Quantity: qty}
}

// ExpandCuts flattens cut lines into the plain per-piece length list the
// engine consumes.
func ExpandCuts(lines []CutLine) []float64 {
	var cuts []float64
	for _, l := range lines {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			cuts = append(cuts, l.LengthFt)
		}
	}
	return cuts
}

// CutSettings holds the engine configuration.
type CutSettings struct {
	KerfWidthIn    float64 `json:"kerf_width_in"`    // Blade width in inches, charged per cut after the first on a pipe
	UsableOffcutFt float64 `json:"usable_offcut_ft"` // Leftovers at or above this length (feet) are kept as offcuts
	EpsilonIn      float64 `json:"epsilon_in"`       // Tolerance for capacity checks and cut matching, in inches
}

func DefaultSettings() CutSettings {
	return CutSettings{
		KerfWidthIn:    0.125,
		UsableOffcutFt: 3.0,
		EpsilonIn:      0.001,
	}
}

// PipeLayout is one physical stock pipe with the cuts packed onto it.
// Immutable once created by the engine.
type PipeLayout struct {
	ID         string         `json:"id"`
	Stock      StandardLength `json:"stock"`
	CutsIn     []float64      `json:"cuts_in"`     // Packed cut lengths in inches, in packing order
	UsedIn     float64        `json:"used_in"`     // Total consumed including kerf loss
	LeftoverIn float64        `json:"leftover_in"` // Immediate scrap on this pipe
}

func NewPipeLayout(stock StandardLength, cutsIn []float64, usedIn, leftoverIn float64) PipeLayout {
	return PipeLayout{
		ID:         uuid.New().String()[:8],
		Stock:      stock,
		CutsIn:     cutsIn,
		UsedIn:     usedIn,
		LeftoverIn: leftoverIn,
	}
}

// KerfLossIn returns the material consumed by the blade on this pipe.
func (p PipeLayout) KerfLossIn() float64 {
	var cuts float64
	for _, c := range p.CutsIn {
		cuts += c
	}
	return p.UsedIn - cuts
}

// Efficiency returns the percentage of the pipe consumed by actual cuts.
func (p PipeLayout) Efficiency() float64 {
	if p.Stock.LengthIn == 0 {
		return 0
	}
	return (p.UsedIn - p.KerfLossIn()) / p.Stock.LengthIn * 100.0
}

// PipePurchase is the per-standard-length purchase count in a result.
type PipePurchase struct {
	Length   float64 `json:"length"`
	Unit     string  `json:"unit"`
	LengthIn float64 `json:"length_in_inches"`
	Count    int     `json:"count"`
}

// ConsumptionResult is the aggregate output of one optimization run.
// All feet-denominated figures are rounded to 3 decimal places.
type ConsumptionResult struct {
	TotalPipes      int            `json:"total_pipes_from_stock"`
	Purchases       []PipePurchase `json:"pipes_taken_per_standard_length"`
	TotalScrapFt    float64        `json:"total_scrap_generated_ft"`
	UsableOffcutsFt []float64      `json:"final_usable_offcuts_ft"` // Ascending
	Layouts         []PipeLayout   `json:"layouts,omitempty"`
}

// TotalPurchasedFt returns the total length of stock purchased, in feet.
func (r ConsumptionResult) TotalPurchasedFt() float64 {
	var in float64
	for _, p := range r.Purchases {
		in += p.LengthIn * float64(p.Count)
	}
	return in / 12.0
}

// ScrapPercent returns scrap as a percentage of purchased stock.
func (r ConsumptionResult) ScrapPercent() float64 {
	total := r.TotalPurchasedFt()
	if total == 0 {
		return 0
	}
	return r.TotalScrapFt / total * 100.0
}

// Round3 rounds a feet-denominated output value to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Job ties a cut list to a material for save/load.
type Job struct {
	Name       string             `json:"name"`
	MaterialID string             `json:"material_id"`
	CompanyID  string             `json:"company_id"`
	Cuts       []CutLine          `json:"cuts"`
	Settings   CutSettings        `json:"settings"`
	Result     *ConsumptionResult `json:"result,omitempty"`
}

func NewJob() Job {
	return Job{
		Name:     "Untitled",
		Cuts:     []CutLine{},
		Settings: DefaultSettings(),
	}
}
