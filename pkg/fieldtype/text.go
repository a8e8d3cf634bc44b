package fieldtype

import "fmt"

// TagText identifies the text variant.
const TagText = "text"

// Text accepts any value and coerces it to its string form.
type Text struct {
	base
}

// NewText constructs a text field. Only the shared nullable constraint is
// consumed.
func NewText(name string, constraints Constraints, opts ...Option) (FieldType, error) {
	b, err := newBase(TagText, name, constraints, opts...)
	if err != nil {
		return nil, err
	}
	return &Text{base: b}, nil
}

// Validate returns string input unchanged and coerces anything else via its
// string representation. Non-null input never fails.
func (t *Text) Validate(value any) (any, error) {
	if done, err := t.checkNull(value); done {
		return nil, err
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return fmt.Sprint(value), nil
}
