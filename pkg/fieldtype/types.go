package fieldtype

// Constraints carries the raw, variant-specific configuration supplied at
// construction time. Every variant understands the shared `nullable` key;
// anything else is interpreted by the variant that consumes it. The map is
// copied on ingestion and never mutated afterwards.
type Constraints map[string]any

// FieldType is the contract every variant implements. Validate returns the
// coerced canonical value for the variant, the nil null-marker when the field
// is nullable and the input was nil, or a *ValidationError.
type FieldType interface {
	Tag() string
	Name() string
	UID() string
	Nullable() bool
	Constraints() Constraints
	Validate(value any) (any, error)
}

// Option customises optional field attributes at construction time.
type Option func(*fieldOptions)

type fieldOptions struct {
	uid string
}

// WithUID sets the unique identifier for the constructed field.
func WithUID(uid string) Option {
	return func(o *fieldOptions) {
		o.uid = uid
	}
}

// base holds the state shared by every variant and implements the common
// parts of the FieldType contract. Variants embed it and provide Validate.
type base struct {
	tag         string
	name        string
	uid         string
	nullable    bool
	constraints Constraints
}

// newBase ingests the shared constraint keys. It copies the constraint map so
// later caller mutations cannot leak into the instance.
func newBase(tag, name string, constraints Constraints, opts ...Option) (base, error) {
	if name == "" {
		return base{}, &ConstraintError{Tag: tag, Message: "field name is required"}
	}

	cfg := fieldOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	copied := make(Constraints, len(constraints))
	for key, value := range constraints {
		copied[key] = value
	}

	b := base{tag: tag, name: name, uid: cfg.uid, constraints: copied}
	if raw, ok := copied["nullable"]; ok {
		flag, ok := raw.(bool)
		if !ok {
			return base{}, &ConstraintError{Tag: tag, Field: name, Message: "nullable must be a boolean"}
		}
		b.nullable = flag
	}
	return b, nil
}

func (b *base) Tag() string { return b.tag }

func (b *base) Name() string { return b.name }

func (b *base) UID() string { return b.uid }

func (b *base) Nullable() bool { return b.nullable }

// Constraints returns a copy of the raw constraints the field was built with.
func (b *base) Constraints() Constraints {
	out := make(Constraints, len(b.constraints))
	for key, value := range b.constraints {
		out[key] = value
	}
	return out
}

// checkNull applies the nullability contract shared by every variant. done
// reports that the input was the null marker and validation must
// short-circuit: with a nil error when the field is nullable, with a
// *ValidationError otherwise.
func (b *base) checkNull(value any) (done bool, err error) {
	if value != nil {
		return false, nil
	}
	if !b.nullable {
		return true, &ValidationError{Field: b.name, Message: "value is not nullable"}
	}
	return true, nil
}
