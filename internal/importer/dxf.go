package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/ProfileCut/internal/model"
	"github.com/piwi3910/ProfileCut/internal/unit"
)

// minSegmentLength is the shortest segment (in drawing units) treated as a
// real frame member rather than drafting noise.
const minSegmentLength = 1.0

// ImportDXF imports required cuts from a fabrication drawing. Frame members
// are drawn as LINE entities or LWPOLYLINE sides; each segment's length
// becomes one required cut. drawingUnit names the drawing's linear unit
// (typically "mm"); lengths are converted to feet.
func ImportDXF(path, drawingUnit string) ImportResult {
	result := ImportResult{}

	if !unit.Supported(drawingUnit) {
		result.Errors = append(result.Errors, fmt.Sprintf("Unknown drawing unit '%s'", drawingUnit))
		return result
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var lengths []float64
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			l := segmentLength(e.Start[0], e.Start[1], e.End[0], e.End[1])
			if l >= minSegmentLength {
				lengths = append(lengths, l)
			} else {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Skipped LINE shorter than %.0f drawing units", minSegmentLength))
			}

		case *entity.LwPolyline:
			lengths = append(lengths, polylineSegments(e, &result)...)

		default:
			// Dimensions, text, and other annotation entities are skipped
		}
	}

	if len(lengths) == 0 {
		result.Errors = append(result.Errors, "No usable line segments found in DXF file")
		return result
	}

	// Collapse equal lengths (within a tenth of a drawing unit) into one
	// cut line with a quantity, the way a cut list is normally written.
	mergeTolFt, err := unit.Convert(0.1, drawingUnit, "ft")
	if err != nil {
		mergeTolFt = 0.1 / 12.0
	}
	for _, l := range lengths {
		ft, err := unit.Convert(l, drawingUnit, "ft")
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot convert %.1f %s: %v", l, drawingUnit, err))
			return result
		}
		merged := false
		for i := range result.Cuts {
			if math.Abs(result.Cuts[i].LengthFt-ft) < mergeTolFt {
				result.Cuts[i].Quantity++
				merged = true
				break
			}
		}
		if !merged {
			label := fmt.Sprintf("Member %d", len(result.Cuts)+1)
			result.Cuts = append(result.Cuts, model.NewCutLine(label, ft, 1))
		}
	}

	return result
}

// polylineSegments returns the side lengths of a polyline. A closed
// polyline contributes the closing side as well.
func polylineSegments(pl *entity.LwPolyline, result *ImportResult) []float64 {
	n := len(pl.Vertices)
	if n < 2 {
		result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
		return nil
	}

	var lengths []float64
	for i := 0; i < n-1; i++ {
		l := segmentLength(pl.Vertices[i][0], pl.Vertices[i][1], pl.Vertices[i+1][0], pl.Vertices[i+1][1])
		if l >= minSegmentLength {
			lengths = append(lengths, l)
		}
	}
	if pl.Closed {
		l := segmentLength(pl.Vertices[n-1][0], pl.Vertices[n-1][1], pl.Vertices[0][0], pl.Vertices[0][1])
		if l >= minSegmentLength {
			lengths = append(lengths, l)
		}
	}
	return lengths
}

func segmentLength(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
