package fieldtype

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// TagNumber identifies the number variant.
const TagNumber = "number"

// Number stores numeric values. The canonical representation is float64.
type Number struct {
	base
}

// NewNumber constructs a number field. Only the shared nullable constraint is
// consumed.
func NewNumber(name string, constraints Constraints, opts ...Option) (FieldType, error) {
	b, err := newBase(TagNumber, name, constraints, opts...)
	if err != nil {
		return nil, err
	}
	return &Number{base: b}, nil
}

// Validate parses textual input as a floating-point number and widens any
// integer or floating-point input to float64. Every other input shape fails.
func (n *Number) Validate(value any) (any, error) {
	if done, err := n.checkNull(value); done {
		return nil, err
	}
	if s, ok := value.(string); ok {
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ValidationError{Field: n.name, Value: value, Message: fmt.Sprintf("cannot parse %q as a number", s)}
		}
		return parsed, nil
	}
	if parsed, ok := toFloat(value); ok {
		return parsed, nil
	}
	return nil, &ValidationError{Field: n.name, Value: value, Message: fmt.Sprintf("unsupported number input %T", value)}
}

// toFloat widens integer and floating-point inputs to float64. json.Number is
// accepted so records decoded with json.Decoder.UseNumber validate the same
// way as plain decoding.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		return parsed, err == nil
	}
	return 0, false
}
