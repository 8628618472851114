// Package export provides functionality for exporting cut plans to various
// file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/ProfileCut/internal/model"
)

// cutColor represents an RGB color for a packed cut.
type cutColor struct {
	R, G, B int
}

var cutColors = []cutColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	pipeRowH     = 22.0 // Vertical space per pipe diagram
	pipeBarH     = 10.0 // Height of the pipe bar itself
	pipesPerPage = 7
)

// ExportPDF generates a PDF document containing the cut plan. Each page
// shows a batch of pipe diagrams drawn as horizontal bars with their packed
// cuts, followed by a summary page with purchase counts and scrap figures.
func ExportPDF(path string, material model.Material, result model.ConsumptionResult, settings model.CutSettings) error {
	if len(result.Layouts) == 0 {
		return fmt.Errorf("no pipes to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for start := 0; start < len(result.Layouts); start += pipesPerPage {
		end := start + pipesPerPage
		if end > len(result.Layouts) {
			end = len(result.Layouts)
		}
		pdf.AddPage()
		renderPipePage(pdf, material, result.Layouts[start:end], start, len(result.Layouts), settings)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, material, result, settings)

	return pdf.OutputFileAndClose(path)
}

// renderPipePage draws a batch of pipe diagrams on the current page.
func renderPipePage(pdf *fpdf.Fpdf, material model.Material, layouts []model.PipeLayout, offset, total int, settings model.CutSettings) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s | pipes %d-%d of %d", material.Name, offset+1, offset+len(layouts), total)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Scale every bar against the longest pipe on the page so relative
	// lengths stay comparable.
	maxLen := 0.0
	for _, l := range layouts {
		if l.Stock.LengthIn > maxLen {
			maxLen = l.Stock.LengthIn
		}
	}
	if maxLen == 0 {
		return
	}
	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / maxLen

	for i, layout := range layouts {
		top := marginTop + headerHeight + 5 + float64(i)*pipeRowH
		renderPipeBar(pdf, layout, offset+i+1, top, scale, settings)
	}
}

// renderPipeBar draws one pipe as a horizontal bar: colored segments for
// cuts, thin dark strips for kerf, and a gray tail for the leftover.
func renderPipeBar(pdf *fpdf.Fpdf, layout model.PipeLayout, pipeNum int, top, scale float64, settings model.CutSettings) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, top)
	caption := fmt.Sprintf("Pipe %d: %.4g %s  |  %d cuts  |  leftover %.2fin (%.2fft)",
		pipeNum, layout.Stock.Length, layout.Stock.Unit,
		len(layout.CutsIn), layout.LeftoverIn, layout.LeftoverIn/12.0)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, caption, "", 0, "L", false, 0, "")

	barTop := top + 6
	barW := layout.Stock.LengthIn * scale

	// Pipe background (aluminium gray)
	pdf.SetFillColor(225, 228, 232)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(marginLeft, barTop, barW, pipeBarH, "FD")

	x := marginLeft
	for i, cut := range layout.CutsIn {
		if i > 0 {
			// Kerf strip
			kerfW := settings.KerfWidthIn * scale
			pdf.SetFillColor(40, 40, 40)
			pdf.Rect(x, barTop, kerfW, pipeBarH, "F")
			x += kerfW
		}

		col := cutColors[i%len(cutColors)]
		cutW := cut * scale
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, barTop, cutW, pipeBarH, "FD")

		// Cut length text when the segment is wide enough
		label := fmt.Sprintf("%.2fft", cut/12.0)
		if cutW > 14 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(255, 255, 255)
			pdf.SetXY(x, barTop+pipeBarH/2-1.5)
			pdf.CellFormat(cutW, 3, label, "", 0, "C", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		x += cutW
	}
}

// renderSummaryPage draws the purchase table, scrap total, and offcut list.
func renderSummaryPage(pdf *fpdf.Fpdf, material model.Material, result model.ConsumptionResult, settings model.CutSettings) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Purchase summary", "", 0, "L", false, 0, "")

	y := marginTop + headerHeight + 5

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(60, 7, "Standard length", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Inches", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Pipes", "1", 0, "R", false, 0, "")
	y += 7

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range result.Purchases {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(60, 7, fmt.Sprintf("%.4g %s", p.Length, p.Unit), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", p.LengthIn), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", p.Count), "1", 0, "R", false, 0, "")
		y += 7
	}

	y += 8
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Material: %s", material.Name),
		fmt.Sprintf("Total pipes from stock: %d", result.TotalPipes),
		fmt.Sprintf("Total purchased: %.3fft", result.TotalPurchasedFt()),
		fmt.Sprintf("Total scrap: %.3fft (%.1f%%)", result.TotalScrapFt, result.ScrapPercent()),
		fmt.Sprintf("Kerf width: %.3fin", settings.KerfWidthIn),
	}
	if len(result.UsableOffcutsFt) > 0 {
		offcuts := ""
		for i, o := range result.UsableOffcutsFt {
			if i > 0 {
				offcuts += ", "
			}
			offcuts += fmt.Sprintf("%.3fft", o)
		}
		lines = append(lines, fmt.Sprintf("Usable offcuts (>= %.3gft): %s", settings.UsableOffcutFt, offcuts))
	} else {
		lines = append(lines, "Usable offcuts: none")
	}

	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, line, "", 0, "L", false, 0, "")
		y += 6
	}

	// Scrap bar: visual share of waste vs used material
	totalFt := result.TotalPurchasedFt()
	if totalFt > 0 {
		y += 6
		barW := pageWidth - marginLeft - marginRight
		scrapW := barW * math.Min(result.TotalScrapFt/totalFt, 1.0)
		pdf.SetFillColor(76, 175, 80)
		pdf.Rect(marginLeft, y, barW, 6, "F")
		pdf.SetFillColor(244, 67, 54)
		pdf.Rect(marginLeft+barW-scrapW, y, scrapW, 6, "F")
	}
}
