// Package validate holds the input validation helpers and the error
// taxonomy shared by the calculation packages. Malformed or out-of-range
// input is an InputError; a well-formed request with no physical solution
// is an InfeasibleError. Handlers report both verbatim with status 400 and
// treat anything else as an internal error.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InputError reports malformed, missing or out-of-domain input.
type InputError struct {
	msg string
}

func (e *InputError) Error() string { return e.msg }

// Inputf builds an InputError with a formatted message.
func Inputf(format string, args ...any) error {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// IsInput reports whether err is (or wraps) an InputError.
func IsInput(err error) bool {
	var e *InputError
	return errors.As(err, &e)
}

// InfeasibleError reports a calculation that is well-formed but has no
// physical solution, e.g. no standard orifice is large enough.
type InfeasibleError struct {
	msg string
}

func (e *InfeasibleError) Error() string { return e.msg }

// Infeasiblef builds an InfeasibleError with a formatted message.
func Infeasiblef(format string, args ...any) error {
	return &InfeasibleError{msg: fmt.Sprintf(format, args...)}
}

// IsInfeasible reports whether err is (or wraps) an InfeasibleError.
func IsInfeasible(err error) bool {
	var e *InfeasibleError
	return errors.As(err, &e)
}

// Field fetches a required field from a decoded JSON object.
func Field(data map[string]any, name, label string) (any, error) {
	v, ok := data[name]
	if !ok || v == nil {
		return nil, Inputf("Error with %s input: this field is required and cannot be empty.", label)
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, Inputf("Error with %s input: this field is required and cannot be empty.", label)
	}
	return v, nil
}

// FieldOr fetches an optional field, falling back to def when the field is
// missing or empty.
func FieldOr(data map[string]any, name string, def any) any {
	v, ok := data[name]
	if !ok || v == nil {
		return def
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return def
	}
	return v
}

// Float coerces a JSON value (number, json.Number or numeric string) to a
// finite float64.
func Float(value any, label string) (float64, error) {
	var (
		f   float64
		err error
	)
	switch v := value.(type) {
	case float64:
		f = v
	case json.Number:
		f, err = v.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	case int:
		f = float64(v)
	default:
		err = fmt.Errorf("unsupported type %T", value)
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, Inputf("Error with %s input: must be a valid number, got '%v'.", label, value)
	}
	return f, nil
}

// PositiveFloat coerces and requires a value > 0.
func PositiveFloat(value any, label string) (float64, error) {
	f, err := Float(value, label)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, Inputf("Error with %s input: must be positive, got %g.", label, f)
	}
	return f, nil
}

// NonNegativeFloat coerces and requires a value >= 0.
func NonNegativeFloat(value any, label string) (float64, error) {
	f, err := Float(value, label)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, Inputf("Error with %s input: must be non-negative, got %g.", label, f)
	}
	return f, nil
}

// Choice requires the value to be one of the allowed strings.
func Choice(value any, label string, valid []string) (string, error) {
	if value == nil {
		return "", Inputf("Error with %s input: this field is required and cannot be empty.", label)
	}
	s := fmt.Sprintf("%v", value)
	for _, c := range valid {
		if s == c {
			return s, nil
		}
	}
	quoted := make([]string, len(valid))
	for i, c := range valid {
		quoted[i] = "'" + c + "'"
	}
	return "", Inputf("%s must be one of [%s], got: '%s'.", label, strings.Join(quoted, ", "), s)
}

// Bool coerces a JSON value to a boolean, accepting the usual form-value
// spellings.
func Bool(value any, label string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case json.Number:
		f, err := v.Float64()
		if err == nil {
			return f != 0, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "on":
			return true, nil
		case "false", "0", "no", "off":
			return false, nil
		}
	}
	return false, Inputf("Error with %s input: must be a boolean value (true/false), got '%v'.", label, value)
}

// KRatio checks the specific heat ratio k = Cp/Cv. Real gases have
// 1 < k <= 2; values outside that range are almost certainly input mistakes.
func KRatio(k float64) error {
	if k <= 1.0 {
		return Inputf("Specific heat ratio (k) must be > 1.0 for real gases, got: %g. Typical range is 1.1 to 1.67.", k)
	}
	if k > 2.0 {
		return Inputf("Specific heat ratio (k) = %g is unusually high. Typical range is 1.1 to 1.67. Please verify input.", k)
	}
	return nil
}

// Compressibility checks the gas compressibility factor Z.
func Compressibility(z float64) error {
	if z <= 0 {
		return Inputf("Error with Compressibility Factor (Z) input: must be positive, got %g.", z)
	}
	if z > 2.0 {
		return Inputf("Error with Compressibility Factor (Z) input: value of %g is unusually high. Typical range is 0.2 to 1.2. Please verify.", z)
	}
	return nil
}

// MolecularWeight checks a molecular weight in g/mol.
func MolecularWeight(m float64) error {
	if m <= 0 {
		return Inputf("Error with Molecular Weight input: must be positive, got %g.", m)
	}
	if m < 1 {
		return Inputf("Error with Molecular Weight input: value of %g is too low. Minimum is ~2 for hydrogen.", m)
	}
	return nil
}

// TemperatureC checks a temperature in degrees Celsius against absolute zero.
func TemperatureC(t float64) error {
	if t < -273.15 {
		return Inputf("Error with Temperature input: cannot be below absolute zero (-273.15°C), got %g°C.", t)
	}
	return nil
}

// CorrectionFactor checks a sizing correction factor against its allowed
// range. Kd, Kb and Kc live in (0, 1]; Ke may exceed 1.
func CorrectionFactor(v float64, label string, min, max float64) error {
	if v <= min || v > max {
		return Inputf("%s must be between %g and %g, got: %g.", label, min, max, v)
	}
	return nil
}

// Percentage checks a percentage value in (0, 100].
func Percentage(v float64, label string) error {
	if v <= 0 || v > 100 {
		return Inputf("Error with %s input: must be between 0 and 100%%, got %g%%.", label, v)
	}
	return nil
}
