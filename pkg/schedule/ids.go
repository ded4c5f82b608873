package schedule

import (
	"fmt"
	"sync/atomic"
)

// IDs issues unique row/milestone identifiers. A monotonic counter with a
// short prefix keeps IDs stable and predictable in tests.
type IDs struct {
	prefix string
	next   atomic.Uint64
}

// NewIDs returns an issuer starting at <prefix>-1.
func NewIDs(prefix string) *IDs {
	return &IDs{prefix: prefix}
}

// Next returns the next identifier.
func (ids *IDs) Next() string {
	return fmt.Sprintf("%s-%d", ids.prefix, ids.next.Add(1))
}
