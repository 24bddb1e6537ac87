// Package ptr provides helper functions for creating pointers to values.
package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T { return &v }

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// Int returns a pointer to the given int value.
func Int(i int) *int { return &i }

// Deref returns the pointed-to value, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
