// Package securerand derives uniformly distributed booleans, bounded
// integers, floating-point fractions, byte arrays, and strings from a
// cryptographically secure byte stream without introducing bias toward any
// output value. Bounded integers use rejection sampling to eliminate modulo
// bias; expensive entropy-source calls are amortized across requests by a
// reusable buffer guarded by a per-instance mutex.
package securerand

import (
	"sync"

	"github.com/Caqil/securerand/pkg/logger"
)

// DefaultBufferCapacity is the entropy buffer size used when the caller does
// not choose one, and the fallback for non-positive capacities.
const DefaultBufferCapacity = 1024

// Config holds generator configuration.
type Config struct {
	// BufferCapacity is the size in bytes of the reusable entropy buffer.
	// It also bounds the largest single Bytes request. Non-positive values
	// are normalized to DefaultBufferCapacity with a warning rather than
	// rejected.
	BufferCapacity int

	// Source supplies the secure random bytes. Nil selects the crypto/rand
	// backed default.
	Source ByteSource

	// Logger receives advisory warnings. Nil selects the package default.
	Logger *logger.Logger
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() *Config {
	return &Config{
		BufferCapacity: DefaultBufferCapacity,
	}
}

// Generator derives unbiased values from a secure byte source. A single
// instance is safe for concurrent use: every operation runs under one
// per-instance mutex, so concurrent callers serialize. Independent instances
// own separate buffers and never contend with each other.
type Generator struct {
	mu     sync.Mutex
	buf    *byteBuffer
	source ByteSource
	log    *logger.Logger
	closed bool
}

// New creates a Generator. A nil cfg is equivalent to DefaultConfig(). New
// never fails: a non-positive buffer capacity falls back to
// DefaultBufferCapacity with a warning instead of rejecting the caller.
func New(cfg *Config) *Generator {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	capacity := cfg.BufferCapacity
	if capacity <= 0 {
		log.WarnEvent().
			Int("requested_capacity", cfg.BufferCapacity).
			Int("effective_capacity", DefaultBufferCapacity).
			Msg("non-positive buffer capacity normalized to default")
		capacity = DefaultBufferCapacity
	}

	source := cfg.Source
	if source == nil {
		source = DefaultSource()
	}

	return &Generator{
		buf:    newByteBuffer(capacity),
		source: source,
		log:    log,
	}
}

// Bool returns an unbiased boolean: true iff the low bit of a fresh 64-bit
// draw is zero.
func (g *Generator) Bool() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false, ErrClosed
	}
	r, err := g.uint64Locked()
	if err != nil {
		return false, err
	}
	return r%2 == 0, nil
}

// Uint32 returns a uniform uint32 over the full 32-bit domain.
func (g *Generator) Uint32() (uint32, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	return g.uint32Locked()
}

// Uint64 returns a uniform uint64 over the full 64-bit domain.
func (g *Generator) Uint64() (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	return g.uint64Locked()
}

// Int32 returns a uniform int32 over the full signed 32-bit domain.
func (g *Generator) Int32() (int32, error) {
	r, err := g.Uint32()
	return int32(r), err
}

// Int64 returns a uniform int64 over the full signed 64-bit domain.
func (g *Generator) Int64() (int64, error) {
	r, err := g.Uint64()
	return int64(r), err
}

// Int32N returns a uniform value in [0, max], inclusive. A negative max is
// folded to its absolute value, so Int32N(-8) is equivalent to Int32N(8).
// Int32N(0) fails with ErrDeterminableOutput.
func (g *Generator) Int32N(max int32) (int32, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	return g.boundedInt32Locked(0, max)
}

// Int32Range returns a uniform value in [min, max], both inclusive. Negative
// bounds are folded to their absolute values first, and the pair is swapped
// if folding inverted it: Int32Range(-10, 5) samples [5, 10], not the signed
// interval the literal arguments suggest. With non-negative bounds,
// min > max fails with ErrInvalidRange and min == max with
// ErrDeterminableOutput.
func (g *Generator) Int32Range(min, max int32) (int32, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	return g.boundedInt32Locked(min, max)
}

// Int64N returns a uniform value in [0, max], inclusive, with the same
// negative-bound folding as Int32N.
func (g *Generator) Int64N(max int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	return g.boundedInt64Locked(0, max)
}

// Int64Range returns a uniform value in [min, max], both inclusive, with the
// same negative-bound folding and swap behavior as Int32Range.
func (g *Generator) Int64Range(min, max int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	return g.boundedInt64Locked(min, max)
}

// Float64 returns a uniform fraction in [0, 1): a fresh 32-bit draw divided
// by 2^32.
func (g *Generator) Float64() (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	r, err := g.uint32Locked()
	if err != nil {
		return 0, err
	}
	return float64(r) / (1 << 32), nil
}

// Float32 returns the narrowing cast of the Float64 construction. The cast
// can round up: raw draws within 2^-25 of 1 yield exactly 1.0, so the result
// lies in [0, 1], not [0, 1). Callers needing a strict half-open interval
// should use Float64.
func (g *Generator) Float32() (float32, error) {
	f, err := g.Float64()
	return float32(f), err
}

// Bytes returns exactly length fresh secure bytes. A negative length is
// treated as its absolute value; length 0 fails with ErrInvalidLength, and a
// length beyond the buffer capacity with ErrCapacityExceeded. The returned
// slice is a copy, never a view of the internal buffer.
func (g *Generator) Bytes(length int) ([]byte, error) {
	if length < 0 {
		length = -length
	}
	if length <= 0 {
		return nil, ErrInvalidLength
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil, ErrClosed
	}
	if err := g.buf.ensure(length, g.source); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, g.buf.consume(length))
	return out, nil
}

// String returns a string of exactly length symbols drawn from
// DefaultAlphabet. All 64 symbols are equally likely.
func (g *Generator) String(length int) (string, error) {
	return g.StringFrom(length, DefaultAlphabet, true)
}

// StringFrom returns a string of exactly length symbols drawn from charset.
// With removeDuplicates (the conventional choice) the alphabet is reduced to
// its distinct symbols in first-occurrence order; without it, repeated
// symbols keep their multiplicity and receive proportionally more
// probability mass. Either way the charset must contain at least 2 distinct
// symbols. A negative length is treated as its absolute value; length 0
// fails with ErrDeterminableOutput.
//
// When the alphabet size does not evenly divide 256 a warn-level advisory is
// emitted, since the byte-to-index reduction then gives some symbols
// slightly more probability; the advisory never blocks generation.
func (g *Generator) StringFrom(length int, charset string, removeDuplicates bool) (string, error) {
	if length < 0 {
		length = -length
	}
	if length <= 0 {
		// Catches 0 and math.MinInt, whose absolute value is unrepresentable.
		return "", ErrDeterminableOutput
	}
	alphabet, err := normalizeAlphabet(charset, removeDuplicates)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return "", ErrClosed
	}
	if size := len(alphabet); 256%size != 0 {
		g.log.WarnEvent().
			Int("alphabet_size", size).
			Float64("max_symbol_probability", float64(256/size+1)/256).
			Float64("min_symbol_probability", float64(256/size)/256).
			Msg("alphabet size does not evenly divide 256; symbol probabilities are slightly skewed")
	}
	return g.assembleLocked(length, alphabet)
}

// Close wipes the entropy buffer and renders the generator unusable; later
// calls fail with ErrClosed. Close is idempotent and never fails.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.buf.wipe()
	g.closed = true
	return nil
}
