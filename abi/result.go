package abi

// Failure is the raw result that denotes a failed call: all bits set, or -1
// when read as a signed word.
const Failure = ^uintptr(0)

// Check applies the shared result convention to a raw result. It returns the
// raw value unchanged and true unless the value is Failure.
func Check(raw uintptr) (uintptr, bool) {
	if raw == Failure {
		return 0, false
	}
	return raw, true
}

// Negative returns true if raw is negative when read as a signed word. Seek
// uses this rather than Check.
func Negative(raw uintptr) bool {
	return int(raw) < 0
}
