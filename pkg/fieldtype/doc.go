// Package fieldtype defines the constraint-driven field type contract and its
// built-in variants (text, number, date, enum). Each variant interprets its
// raw constraints exactly once at construction and exposes Validate, which
// coerces arbitrary input into the variant's canonical representation or
// fails with a *ValidationError. Instances are immutable after construction,
// so concurrent Validate calls are safe without locking. Variants are
// discovered through an explicit Registry keyed by type tag; DefaultRegistry
// carries the built-ins and accepts additional registrations before
// validation traffic begins.
package fieldtype
