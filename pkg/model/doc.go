// Package model aggregates named field type instances into record
// definitions. A Definition preserves field declaration order, which defines
// record field order for downstream consumers, and verifies at construction
// that every element is a recognised variant. ValidateRecord applies the
// fields' coercion rules to one record at a time, failing atomically on the
// first offending value.
package model
