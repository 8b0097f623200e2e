// Package security provides utilities for protecting sensitive data in memory
package security

import (
	"crypto/subtle"
	"runtime"
)

// SecureZero zeros a byte slice holding sensitive material, such as unconsumed
// entropy, using a method the compiler cannot optimize away
func SecureZero(data []byte) {
	if len(data) == 0 {
		return
	}

	// subtle.ConstantTimeCopy keeps the write observable to the compiler
	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)

	// Force a memory barrier
	runtime.KeepAlive(data)
}
