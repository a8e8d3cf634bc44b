package fieldtype

import (
	"fmt"
	"time"
)

// TagDate identifies the date variant.
const TagDate = "date"

// FormatTimestamp is the format constraint sentinel selecting epoch-seconds
// parsing instead of a pattern.
const FormatTimestamp = "timestamp"

// defaultDatePattern is the strptime-style pattern used when the format
// constraint is absent.
const defaultDatePattern = "%Y-%m-%d"

// Date validates calendar dates. The canonical representation is a time.Time
// pinned to UTC midnight. Exactly one interpretation mode is active per
// instance, fixed at construction: pattern parsing or epoch seconds.
type Date struct {
	base
	pattern string
	layout  string // translated Go layout; empty in epoch mode
}

// NewDate constructs a date field. The optional format constraint is either
// the literal "timestamp" or a strptime-style pattern, translated to a Go
// layout here so malformed patterns fail at construction rather than on the
// first Validate call.
func NewDate(name string, constraints Constraints, opts ...Option) (FieldType, error) {
	b, err := newBase(TagDate, name, constraints, opts...)
	if err != nil {
		return nil, err
	}

	pattern := defaultDatePattern
	if raw, ok := b.constraints["format"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, &ConstraintError{Tag: TagDate, Field: name, Message: "format must be a string"}
		}
		pattern = s
	}

	d := &Date{base: b, pattern: pattern}
	if pattern != FormatTimestamp {
		layout, err := strptimeLayout(pattern)
		if err != nil {
			return nil, &ConstraintError{Tag: TagDate, Field: name, Message: err.Error()}
		}
		d.layout = layout
	}
	return d, nil
}

// Validate recognises three input shapes and nothing else: a time.Time is
// truncated to its calendar date; in pattern mode a string is parsed with the
// configured pattern; in epoch mode a numeric value is read as seconds since
// the Unix epoch in UTC.
func (d *Date) Validate(value any) (any, error) {
	if done, err := d.checkNull(value); done {
		return nil, err
	}

	if t, ok := value.(time.Time); ok {
		return truncateToDate(t), nil
	}

	if d.layout != "" {
		s, ok := value.(string)
		if !ok {
			return nil, &ValidationError{Field: d.name, Value: value, Message: fmt.Sprintf("expected a date string, got %T", value)}
		}
		parsed, err := time.Parse(d.layout, s)
		if err != nil {
			return nil, &ValidationError{Field: d.name, Value: value, Message: fmt.Sprintf("cannot parse %q with format %s", s, d.pattern)}
		}
		return truncateToDate(parsed), nil
	}

	secs, ok := toFloat(value)
	if !ok {
		return nil, &ValidationError{Field: d.name, Value: value, Message: fmt.Sprintf("invalid timestamp %v", value)}
	}
	return truncateToDate(time.Unix(int64(secs), 0).UTC()), nil
}

// truncateToDate drops the time-of-day component, keeping the calendar date
// as observed in the input's own location.
func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
