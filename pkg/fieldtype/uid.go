package fieldtype

import "github.com/oklog/ulid/v2"

// NewUID mints a ULID suitable for field and model identifiers. Callers that
// manage identifiers elsewhere can pass their own value to WithUID instead.
func NewUID() string {
	return ulid.Make().String()
}
