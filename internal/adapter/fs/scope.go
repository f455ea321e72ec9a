package fs

// NopAccessScoper implements port.AccessScoper for platforms without
// sandboxed file access. Sandboxed targets (security-scoped bookmarks and
// the like) substitute their own implementation; the engine only requires
// that every scan and every batch execution is bracketed by Begin/release.
type NopAccessScoper struct{}

func (NopAccessScoper) Begin(string) (func(), error) {
	return func() {}, nil
}
