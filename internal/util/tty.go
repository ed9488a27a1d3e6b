package util

// IsTerminal reports whether arg is backed by a terminal. Values without
// a file descriptor, such as an in-memory reader, never are.
func IsTerminal(arg any) bool {
	fdsrc, ok := arg.(fder)
	if !ok {
		return false
	}
	return isTerminal(fdsrc.Fd())
}

// AcquireTerminal makes the console available to the picker even when
// stdin carries the items. The returned function undoes whatever was
// changed and must be called once the picker is done.
func AcquireTerminal() (release func(), err error) {
	return acquireTerminal()
}
