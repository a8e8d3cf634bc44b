package fieldtype

import "fmt"

// TagEnum identifies the enum variant.
const TagEnum = "enum"

// Enum accepts only values from a fixed, ordered option list. Options are
// stored in their string form, in declaration order.
type Enum struct {
	base
	options []string
}

// NewEnum constructs an enum field. The options constraint is required and
// must be a non-empty list; each element is kept via its string form.
func NewEnum(name string, constraints Constraints, opts ...Option) (FieldType, error) {
	b, err := newBase(TagEnum, name, constraints, opts...)
	if err != nil {
		return nil, err
	}

	raw, ok := b.constraints["options"]
	if !ok {
		return nil, &ConstraintError{Tag: TagEnum, Field: name, Message: "options constraint is required"}
	}
	values, err := stringifyOptions(raw)
	if err != nil {
		return nil, &ConstraintError{Tag: TagEnum, Field: name, Message: err.Error()}
	}
	if len(values) == 0 {
		return nil, &ConstraintError{Tag: TagEnum, Field: name, Message: "options must not be empty"}
	}

	return &Enum{base: b, options: values}, nil
}

// Options returns the allowed values in declaration order.
func (e *Enum) Options() []string {
	out := make([]string, len(e.options))
	copy(out, e.options)
	return out
}

// Validate succeeds only for string input exactly matching one of the allowed
// options. Any other input fails, naming the rejected value.
func (e *Enum) Validate(value any) (any, error) {
	if done, err := e.checkNull(value); done {
		return nil, err
	}
	if s, ok := value.(string); ok {
		for _, opt := range e.options {
			if s == opt {
				return s, nil
			}
		}
	}
	return nil, &ValidationError{Field: e.name, Value: value, Message: fmt.Sprintf("invalid option %v", value)}
}

func stringifyOptions(raw any) ([]string, error) {
	switch list := raw.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			out = append(out, fmt.Sprint(item))
		}
		return out, nil
	}
	return nil, fmt.Errorf("options must be a list, got %T", raw)
}
