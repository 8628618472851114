package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandCuts(t *testing.T) {
	lines := []CutLine{
		NewCutLine("Frame", 5, 2),
		NewCutLine("Sill", 1.9, 1),
		{Label: "NoQty", LengthFt: 3}, // zero quantity counts as one
	}
	cuts := ExpandCuts(lines)
	assert.Equal(t, []float64{5, 5, 1.9, 3}, cuts)
}

func TestExpandCuts_Empty(t *testing.T) {
	assert.Nil(t, ExpandCuts(nil))
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 1.234, Round3(1.23449))
	assert.Equal(t, 1.235, Round3(1.2345))
	assert.Equal(t, 0.0, Round3(0.0000833))
	assert.Equal(t, -2.5, Round3(-2.5))
}

func TestPipeLayout_KerfLossAndEfficiency(t *testing.T) {
	stock := StandardLength{Length: 12, Unit: "ft", LengthIn: 144}
	layout := NewPipeLayout(stock, []float64{60, 60, 22.8}, 143.05, 0.95)

	assert.InDelta(t, 0.25, layout.KerfLossIn(), 1e-9)
	assert.InDelta(t, (142.8/144)*100, layout.Efficiency(), 1e-6)
	assert.NotEmpty(t, layout.ID)
}

func TestPipeLayout_EfficiencyZeroStock(t *testing.T) {
	layout := PipeLayout{Stock: StandardLength{}}
	assert.Zero(t, layout.Efficiency())
}

func TestConsumptionResult_Totals(t *testing.T) {
	result := ConsumptionResult{
		TotalPipes: 3,
		Purchases: []PipePurchase{
			{Length: 12, Unit: "ft", LengthIn: 144, Count: 2},
			{Length: 10, Unit: "ft", LengthIn: 120, Count: 1},
		},
		TotalScrapFt: 1.7,
	}
	assert.InDelta(t, 34.0, result.TotalPurchasedFt(), 1e-9)
	assert.InDelta(t, 5.0, result.ScrapPercent(), 1e-9)
}

func TestConsumptionResult_ScrapPercentEmpty(t *testing.T) {
	assert.Zero(t, ConsumptionResult{}.ScrapPercent())
}

func TestNewMaterial(t *testing.T) {
	mat := NewMaterial("Track", "acme", CategoryProfile, []StandardLength{NewStandardLength(12, "ft")})
	require.NotEmpty(t, mat.ID)
	assert.Equal(t, "acme", mat.CompanyID)
	assert.Equal(t, CategoryProfile, mat.Category)
	require.Len(t, mat.StandardLengths, 1)
	assert.Zero(t, mat.StandardLengths[0].LengthIn, "LengthIn is derived later")
}

func TestNewJobDefaults(t *testing.T) {
	job := NewJob()
	assert.Equal(t, "Untitled", job.Name)
	assert.Equal(t, DefaultSettings(), job.Settings)
	assert.NotNil(t, job.Cuts)
}
