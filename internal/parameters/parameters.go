// Package parameters handles generic configuration Params, a map[string]string that the
// user can set from the command line to shape the colony and the assault plan.
package parameters

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// NewFromConfigString creates params from the user's configuration string, a
// comma-separated list of `key` or `key=value` entries.
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		subParts := strings.SplitN(part, "=", 2) // Split into up to 2 parts to handle '=' in values.
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[subParts[0]] = subParts[1]
		}
	}
	return params
}

// GetParamOr returns the value for the given key parsed as type T, or
// defaultValue if the key is not set.
func GetParamOr[T interface {
	bool | int | float32 | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	valueStr, found := params[key]
	if !found {
		return defaultValue, nil
	}
	var value T
	switch v := any(&value).(type) {
	case *string:
		*v = valueStr
	case *bool:
		if valueStr == "" {
			// A key given without a value is interpreted as true.
			*v = true
			break
		}
		parsed, err := strconv.ParseBool(valueStr)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "parameter %q=%q is not a valid bool", key, valueStr)
		}
		*v = parsed
	case *int:
		parsed, err := strconv.Atoi(valueStr)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "parameter %q=%q is not a valid int", key, valueStr)
		}
		*v = parsed
	case *float32:
		parsed, err := strconv.ParseFloat(valueStr, 32)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "parameter %q=%q is not a valid float32", key, valueStr)
		}
		*v = float32(parsed)
	case *float64:
		parsed, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "parameter %q=%q is not a valid float64", key, valueStr)
		}
		*v = parsed
	}
	return value, nil
}

// PopParamOr is like GetParamOr, but it also deletes the retrieved parameter from
// the params map. Combined with a final check that params is empty, it lets the
// caller reject misspelled keys.
func PopParamOr[T interface {
	bool | int | float32 | float64 | string
}](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// CheckExhausted returns an error listing any keys left in params.
// Call it after all known keys were popped with PopParamOr.
func CheckExhausted(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	return errors.Errorf("unknown parameters: %s", strings.Join(keys, ", "))
}
