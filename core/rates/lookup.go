// Package rates holds the read-only rate and lookup tables the estimation
// engine consumes. Tables are snapshots owned by the rate-management store;
// nothing in this package or its callers mutates them.
package rates

import "printcost/internal/errors"

// QuantityRange is an inclusive [Min, Max] bucket. Max == 0 means open-ended.
type QuantityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether q falls inside the range
func (r QuantityRange) Contains(q int) bool {
	return q >= r.Min && (r.Max == 0 || q <= r.Max)
}

// ResolveByQuantity finds the entry whose range contains q. Ranges within a
// table are non-overlapping and ordered by lower bound; a quantity past the
// last range resolves to the last entry (extrapolation, not an error).
func ResolveByQuantity[T any](entries []T, q int, rangeOf func(T) QuantityRange) (T, error) {
	var zero T
	if len(entries) == 0 {
		return zero, errors.Rates("empty tier table", nil)
	}
	for _, e := range entries {
		if rangeOf(e).Contains(q) {
			return e, nil
		}
	}
	return entries[len(entries)-1], nil
}
