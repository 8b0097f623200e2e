package securerand

import (
	"encoding/binary"
	"math"
)

// maxRejectionRetries bounds the rejection-sampling loop. Acceptance
// probability per draw always exceeds 1/2, so this many consecutive
// rejections means the byte source is not producing uniform output.
const maxRejectionRetries = 128

// uint32Locked consumes 4 fresh bytes and decodes them little-endian as a
// uniform uint32. Caller must hold g.mu.
func (g *Generator) uint32Locked() (uint32, error) {
	if err := g.buf.ensure(4, g.source); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(g.buf.consume(4)), nil
}

// uint64Locked consumes 8 fresh bytes and decodes them little-endian as a
// uniform uint64. Caller must hold g.mu.
func (g *Generator) uint64Locked() (uint64, error) {
	if err := g.buf.ensure(8, g.source); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(g.buf.consume(8)), nil
}

// uniform32RangeLocked returns a value uniform over [min, max], inclusive,
// using rejection sampling over the 32-bit domain. Caller must hold g.mu and
// guarantee min < max.
//
// With n = max-min+1 and span = 2^32, limit = span - (span mod n) is the
// largest multiple of n within the domain. A raw draw r is accepted iff
// r < limit and mapped to min + (r mod n); draws at or above limit are
// redrawn. Each output value is then reachable from exactly limit/n raw
// values, so all are equally likely.
func (g *Generator) uniform32RangeLocked(min, max uint32) (uint32, error) {
	n := uint64(max) - uint64(min) + 1
	const span = uint64(1) << 32
	if n == span {
		// Full-domain request; the raw draw already is the answer.
		return g.uint32Locked()
	}
	limit := span - span%n
	for i := 0; i <= maxRejectionRetries; i++ {
		r, err := g.uint32Locked()
		if err != nil {
			return 0, err
		}
		if uint64(r) < limit {
			return min + uint32(uint64(r)%n), nil
		}
	}
	return 0, ErrEntropyExhausted
}

// uniform64RangeLocked returns a value uniform over [min, max], inclusive,
// using rejection sampling over the 64-bit domain. Caller must hold g.mu and
// guarantee min < max.
//
// Same accept condition as the 32-bit path (r < limit, limit the largest
// multiple of n = max-min+1 within the domain), except that span = 2^64 is
// not representable: span mod n is computed as -n mod n in uint64
// arithmetic, and limit as span - that threshold.
func (g *Generator) uniform64RangeLocked(min, max uint64) (uint64, error) {
	n := max - min + 1
	if n == 0 {
		// n wrapped: the request covers the full 64-bit domain.
		return g.uint64Locked()
	}
	thresh := -n % n // span mod n
	if thresh == 0 {
		// n divides the span exactly; every raw draw is acceptable.
		r, err := g.uint64Locked()
		if err != nil {
			return 0, err
		}
		return min + r%n, nil
	}
	limit := ^uint64(0) - thresh + 1 // span - thresh
	for i := 0; i <= maxRejectionRetries; i++ {
		r, err := g.uint64Locked()
		if err != nil {
			return 0, err
		}
		if r < limit {
			return min + r%n, nil
		}
	}
	return 0, ErrEntropyExhausted
}

// foldBound32 maps a signed bound to the unsigned magnitude the sampler
// works with. Negative bounds are replaced by their absolute values;
// math.MinInt32 has no representable absolute value and folds to
// math.MaxInt32.
func foldBound32(v int32) uint32 {
	if v >= 0 {
		return uint32(v)
	}
	if v == math.MinInt32 {
		return math.MaxInt32
	}
	return uint32(-v)
}

// foldBound64 is the 64-bit analogue of foldBound32.
func foldBound64(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	if v == math.MinInt64 {
		return math.MaxInt64
	}
	return uint64(-v)
}

// boundedInt32Locked validates a signed range request, folds negative bounds
// to their magnitudes, and delegates to the unsigned sampler. Folding may
// invert the pair, in which case it is swapped; an inverted pair of
// non-negative bounds is the caller's error. Caller must hold g.mu.
func (g *Generator) boundedInt32Locked(lo, hi int32) (int32, error) {
	folded := lo < 0 || hi < 0
	if !folded && lo > hi {
		return 0, ErrInvalidRange
	}
	ulo, uhi := foldBound32(lo), foldBound32(hi)
	if ulo > uhi {
		ulo, uhi = uhi, ulo
	}
	if ulo == uhi {
		return 0, ErrDeterminableOutput
	}
	v, err := g.uniform32RangeLocked(ulo, uhi)
	return int32(v), err
}

// boundedInt64Locked is the 64-bit analogue of boundedInt32Locked.
func (g *Generator) boundedInt64Locked(lo, hi int64) (int64, error) {
	folded := lo < 0 || hi < 0
	if !folded && lo > hi {
		return 0, ErrInvalidRange
	}
	ulo, uhi := foldBound64(lo), foldBound64(hi)
	if ulo > uhi {
		ulo, uhi = uhi, ulo
	}
	if ulo == uhi {
		return 0, ErrDeterminableOutput
	}
	v, err := g.uniform64RangeLocked(ulo, uhi)
	return int64(v), err
}
