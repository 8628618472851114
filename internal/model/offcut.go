package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable leftover length kept back after cutting.
type Offcut struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"material_id"`
	PipeID     string  `json:"pipe_id"` // Which pipe layout it came from
	LengthFt   float64 `json:"length_ft"`
	PriceShare float64 `json:"price_share,omitempty"` // Inherited cost proportional to length (0 if not set)
}

// ToStandardLength converts an offcut into a catalogue entry so it can be
// offered as stock in a later optimization run.
func (o Offcut) ToStandardLength() StandardLength {
	return NewStandardLength(Round3(o.LengthFt), "ft")
}

// CollectOffcuts walks a result's pipe layouts and returns the leftovers
// that meet the usable threshold, sorted ascending by length. Leftovers
// below the threshold are waste and are not reported here.
func CollectOffcuts(material Material, result ConsumptionResult, thresholdFt float64) []Offcut {
	var offcuts []Offcut
	for _, layout := range result.Layouts {
		leftFt := layout.LeftoverIn / 12.0
		if leftFt < thresholdFt {
			continue
		}
		oc := Offcut{
			ID:         uuid.New().String()[:8],
			MaterialID: material.ID,
			PipeID:     layout.ID,
			LengthFt:   Round3(leftFt),
		}
		if material.PricePerFt > 0 {
			oc.PriceShare = Round3(leftFt * material.PricePerFt)
		}
		offcuts = append(offcuts, oc)
	}
	sort.Slice(offcuts, func(i, j int) bool {
		return offcuts[i].LengthFt < offcuts[j].LengthFt
	})
	return offcuts
}

// TotalOffcutFt returns the combined length of the given offcuts in feet.
func TotalOffcutFt(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.LengthFt
	}
	return Round3(total)
}
