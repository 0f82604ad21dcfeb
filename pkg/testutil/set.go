package testutil

// Set sets *p to v for the duration of a test, restoring the old value on
// cleanup.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}
