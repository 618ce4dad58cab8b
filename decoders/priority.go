package decoders

import (
	"slices"
)

// ByPriority returns the decoders ordered highest priority first. The
// argument is not modified.
func ByPriority(ds []Decoder) []Decoder {
	ret := slices.Clone(ds)
	slices.SortStableFunc(ret, func(a, b Decoder) int {
		switch {
		case a.Priority() > b.Priority():
			return -1
		case a.Priority() < b.Priority():
			return 1
		}
		return 0
	})
	return ret
}
