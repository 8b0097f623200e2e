package securerand

import "github.com/Caqil/securerand/internal/security"

// byteBuffer owns a fixed-capacity region of secure random bytes plus a
// cursor marking the boundary between consumed and fresh bytes. Bytes at
// [0, cursor) have already been handed out and are never exposed again;
// bytes at [cursor, capacity) are fresh. The buffer is refilled in place,
// never reallocated.
//
// All methods must be called with the owning generator's mutex held.
type byteBuffer struct {
	buf    []byte
	cursor int
}

// newByteBuffer creates a buffer of the given capacity. The cursor starts at
// capacity so the first ensure call performs the initial fill.
func newByteBuffer(capacity int) *byteBuffer {
	return &byteBuffer{
		buf:    make([]byte, capacity),
		cursor: capacity,
	}
}

// ensure guarantees that k fresh bytes are available, refilling the entire
// buffer from src exactly when fewer than k remain. A request larger than
// the capacity fails with ErrCapacityExceeded before any refill; that is a
// configuration error, not a transient one. A failed refill leaves the
// cursor untouched.
func (b *byteBuffer) ensure(k int, src ByteSource) error {
	if k > len(b.buf) {
		return ErrCapacityExceeded
	}
	if len(b.buf)-b.cursor < k {
		if err := src.Fill(b.buf); err != nil {
			return err
		}
		b.cursor = 0
	}
	return nil
}

// consume returns a view of the next k fresh bytes and advances the cursor.
// Only valid immediately after a successful ensure(k) under the same lock;
// the returned slice aliases the buffer and is stale after the next refill.
func (b *byteBuffer) consume(k int) []byte {
	p := b.buf[b.cursor : b.cursor+k]
	b.cursor += k
	return p
}

// remaining reports how many fresh bytes are available without a refill.
func (b *byteBuffer) remaining() int {
	return len(b.buf) - b.cursor
}

// wipe zeros the buffer and marks all of it consumed.
func (b *byteBuffer) wipe() {
	security.SecureZero(b.buf)
	b.cursor = len(b.buf)
}
