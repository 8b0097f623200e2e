package securerand

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when the minimum of a requested range
	// exceeds the maximum
	ErrInvalidRange = errors.New("invalid range: minimum exceeds maximum")

	// ErrDeterminableOutput is returned when a request's result would be
	// fully predictable from its inputs alone and therefore carries no
	// entropy (single-valued range, zero-length output, one-symbol alphabet)
	ErrDeterminableOutput = errors.New("determinable output: result carries no entropy")

	// ErrCapacityExceeded is returned when a single request needs more fresh
	// bytes than the configured buffer capacity; reconstruct the generator
	// with a larger capacity
	ErrCapacityExceeded = errors.New("requested byte count exceeds buffer capacity")

	// ErrEntropyExhausted is returned when the rejection-sampling loop gives
	// up after too many consecutive rejected draws, which indicates a byte
	// source that is not producing uniform output
	ErrEntropyExhausted = errors.New("entropy exhausted: rejection sampling exceeded retry ceiling")

	// ErrSourceFailure is returned when the underlying secure byte source
	// fails to fill the buffer
	ErrSourceFailure = errors.New("secure byte source failed")

	// ErrClosed is returned when a generator is used after Close
	ErrClosed = errors.New("generator is closed")
)

var (
	// ErrInvalidAlphabet is returned when a charset has fewer than 2
	// distinct symbols; it matches ErrDeterminableOutput under errors.Is
	ErrInvalidAlphabet = fmt.Errorf("%w: alphabet must contain at least 2 distinct symbols", ErrDeterminableOutput)

	// ErrAlphabetTooLarge is returned when a charset holds more symbols
	// than a single byte draw can index
	ErrAlphabetTooLarge = errors.New("alphabet exceeds 256 symbols")

	// ErrInvalidLength is returned for a zero-length byte array request; it
	// matches ErrDeterminableOutput under errors.Is
	ErrInvalidLength = fmt.Errorf("%w: length must be non-zero", ErrDeterminableOutput)
)
