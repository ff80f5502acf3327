package configuration

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/mrivnak/pi-fan/internal/curve"
)

// curvePointHookFunc returns a mapstructure decode hook that decodes
// the raw_curve pair format ([temperature, speed] sequences) into
// curve.Point values.
func curvePointHookFunc() mapstructure.DecodeHookFuncType {
	pointType := reflect.TypeOf(curve.Point{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != pointType {
			return data, nil
		}

		pair, ok := data.([]interface{})
		if !ok {
			return data, nil
		}
		if len(pair) != 2 {
			return nil, fmt.Errorf("curve point must be a [temperature, speed] pair, got %v", data)
		}

		temp, err := anyToInt(pair[0])
		if err != nil {
			return nil, fmt.Errorf("invalid curve point temperature %v: %w", pair[0], err)
		}
		speed, err := anyToInt(pair[1])
		if err != nil {
			return nil, fmt.Errorf("invalid curve point speed %v: %w", pair[1], err)
		}

		return curve.Point{Temperature: temp, Speed: speed}, nil
	}
}

// anyToInt converts the numeric types produced by YAML/TOML decoding to int.
func anyToInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float32:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}
