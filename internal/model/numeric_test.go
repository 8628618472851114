package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExternalNumber_PlainNumbers(t *testing.T) {
	got, err := ParseExternalNumber(12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = ParseExternalNumber(12)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)

	got, err = ParseExternalNumber(int64(7))
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

func TestParseExternalNumber_Strings(t *testing.T) {
	got, err := ParseExternalNumber("15.75")
	require.NoError(t, err)
	assert.Equal(t, 15.75, got)

	got, err = ParseExternalNumber("  12 ")
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)

	_, err = ParseExternalNumber("twelve")
	assert.Error(t, err)

	_, err = ParseExternalNumber("")
	assert.Error(t, err)
}

func TestParseExternalNumber_DecimalWrapper(t *testing.T) {
	got, err := ParseExternalNumber(map[string]any{"$numberDecimal": "19.500"})
	require.NoError(t, err)
	assert.Equal(t, 19.5, got)

	_, err = ParseExternalNumber(map[string]any{"value": "19.5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$numberDecimal")

	_, err = ParseExternalNumber(map[string]any{"$numberDecimal": 19.5})
	assert.Error(t, err, "wrapper value must be a string")
}

func TestParseExternalNumber_Rejections(t *testing.T) {
	_, err := ParseExternalNumber(nil)
	assert.Error(t, err)

	_, err = ParseExternalNumber(true)
	assert.Error(t, err)

	_, err = ParseExternalNumber(math.NaN())
	assert.Error(t, err)

	_, err = ParseExternalNumber(math.Inf(-1))
	assert.Error(t, err)
}

func TestStandardLength_UnmarshalFlexibleShapes(t *testing.T) {
	// Catalogues exported from a document database wrap lengths in
	// $numberDecimal; hand-written JSON uses plain numbers or strings.
	cases := []string{
		`{"length": 12, "unit": "ft"}`,
		`{"length": "12", "unit": "ft"}`,
		`{"length": {"$numberDecimal": "12"}, "unit": "ft"}`,
	}
	for _, raw := range cases {
		var std StandardLength
		require.NoError(t, json.Unmarshal([]byte(raw), &std), raw)
		assert.Equal(t, 12.0, std.Length, raw)
		assert.Equal(t, "ft", std.Unit, raw)
	}
}

func TestStandardLength_UnmarshalBadLength(t *testing.T) {
	var std StandardLength
	err := json.Unmarshal([]byte(`{"length": "a dozen", "unit": "ft"}`), &std)
	assert.Error(t, err)
}
