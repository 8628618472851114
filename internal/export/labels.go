package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/ProfileCut/internal/model"
)

// LabelInfo holds the data encoded into each pipe label's QR code. Labels
// are stuck on the physical pipes so the saw operator can scan a pipe and
// see its cut sequence.
type LabelInfo struct {
	PipeID     string    `json:"pipe_id"`
	PipeNumber int       `json:"pipe"`
	Material   string    `json:"material"`
	StockFt    float64   `json:"stock_ft"`
	CutsFt     []float64 `json:"cuts_ft"`
	LeftoverFt float64   `json:"leftover_ft"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per consumed pipe.
// Each label carries the material, stock length, and cut sequence, plus a
// QR code encoding the same data as JSON. Labels are laid out on a
// standard label sheet format (Avery 5160 / 3 columns x 10 rows).
func ExportLabels(path string, material model.Material, result model.ConsumptionResult) error {
	labels := CollectLabelInfos(material, result)
	if len(labels) == 0 {
		return fmt.Errorf("no pipes to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for pipe %d: %w", label.PipeNumber, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.PipeID, info.PipeNumber)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	title := fmt.Sprintf("Pipe %d - %s", info.PipeNumber, info.Material)
	if pdf.GetStringWidth(title) > textW {
		for len(title) > 0 && pdf.GetStringWidth(title+"...") > textW {
			title = title[:len(title)-1]
		}
		title += "..."
	}
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	stock := fmt.Sprintf("Stock %.2fft, %d cuts", info.StockFt, len(info.CutsFt))
	pdf.CellFormat(textW, 3.5, stock, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	cuts := ""
	for i, c := range info.CutsFt {
		if i > 0 {
			cuts += " / "
		}
		cuts += fmt.Sprintf("%.2f", c)
	}
	if pdf.GetStringWidth(cuts) > textW {
		for len(cuts) > 0 && pdf.GetStringWidth(cuts+"...") > textW {
			cuts = cuts[:len(cuts)-1]
		}
		cuts += "..."
	}
	pdf.CellFormat(textW, 3, cuts, "", 1, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Leftover %.2fft", info.LeftoverFt), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos extracts label information from a cut plan for use in
// testing or alternative export formats.
func CollectLabelInfos(material model.Material, result model.ConsumptionResult) []LabelInfo {
	var labels []LabelInfo
	for i, layout := range result.Layouts {
		cutsFt := make([]float64, len(layout.CutsIn))
		for j, c := range layout.CutsIn {
			cutsFt[j] = model.Round3(c / 12.0)
		}
		labels = append(labels, LabelInfo{
			PipeID:     layout.ID,
			PipeNumber: i + 1,
			Material:   material.Name,
			StockFt:    model.Round3(layout.Stock.LengthIn / 12.0),
			CutsFt:     cutsFt,
			LeftoverFt: model.Round3(layout.LeftoverIn / 12.0),
		})
	}
	return labels
}
