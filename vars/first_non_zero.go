package vars

// FirstNonZero picks the first non-zero value, typically to layer a flag
// over a config entry over a default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
