package configuration

import (
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"

	"github.com/mrivnak/pi-fan/internal/curve"
)

func decodeRawCurve(t *testing.T, input interface{}) (FanCurveConfig, error) {
	var result FanCurveConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: curvePointHookFunc(),
		Result:     &result,
	})
	assert.NoError(t, err)

	err = decoder.Decode(input)
	return result, err
}

func TestRawCurvePairDecoding(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"raw_curve": []interface{}{
			[]interface{}{0, 0},
			[]interface{}{40, 30},
			[]interface{}{60, 100},
		},
	}

	// WHEN
	result, err := decodeRawCurve(t, input)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []curve.Point{
		{Temperature: 0, Speed: 0},
		{Temperature: 40, Speed: 30},
		{Temperature: 60, Speed: 100},
	}, result.RawCurve)
}

func TestRawCurveDecodingFloatKeys(t *testing.T) {
	// GIVEN
	// toml numbers may arrive as float64
	input := map[string]interface{}{
		"raw_curve": []interface{}{
			[]interface{}{float64(40), float64(30)},
		},
	}

	// WHEN
	result, err := decodeRawCurve(t, input)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []curve.Point{
		{Temperature: 40, Speed: 30},
	}, result.RawCurve)
}

func TestRawCurveDecodingRejectsMalformedPair(t *testing.T) {
	// GIVEN
	input := map[string]interface{}{
		"raw_curve": []interface{}{
			[]interface{}{0, 0, 0},
		},
	}

	// WHEN
	_, err := decodeRawCurve(t, input)

	// THEN
	assert.Error(t, err)
}
