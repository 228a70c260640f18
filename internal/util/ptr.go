package util

// Ptr returns a pointer to v. Handy for the many optional pointer fields in
// LSP protocol structs.
func Ptr[T any](v T) *T {
	return &v
}
