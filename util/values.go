package util

// Ptr boxes v for optional request and response fields.
func Ptr[T any](v T) *T { return &v }

// Deref unboxes p, yielding T's zero value for nil.
func Deref[T any](p *T) T {
	var v T
	if p != nil {
		v = *p
	}
	return v
}

// Coalesce picks the first argument that is not T's zero value.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v == zero {
			continue
		}
		return v
	}
	return zero
}
