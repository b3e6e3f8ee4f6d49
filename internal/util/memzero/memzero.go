package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way. This is
// best-effort defense in depth: the runtime may have copied the bytes
// elsewhere, so it reduces exposure rather than guaranteeing erasure.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
