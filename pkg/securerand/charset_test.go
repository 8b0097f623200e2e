package securerand

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Caqil/securerand/pkg/logger"
)

func TestDedupRunesKeepsFirstOccurrenceOrder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "abcabc", want: "abc"},
		{in: "banana", want: "ban"},
		{in: "aAbB", want: "aAbB"},
		{in: "zzyyxx", want: "zyx"},
	}
	for _, tt := range tests {
		if got := string(dedupRunes(tt.in)); got != tt.want {
			t.Errorf("dedupRunes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAlphabet(t *testing.T) {
	big := make([]rune, 300)
	for i := range big {
		big[i] = rune('a' + i) // 300 distinct runes
	}

	tests := []struct {
		name             string
		charset          string
		removeDuplicates bool
		wantLen          int
		wantErr          error
	}{
		{name: "empty", charset: "", removeDuplicates: true, wantErr: ErrInvalidAlphabet},
		{name: "single symbol", charset: "a", removeDuplicates: true, wantErr: ErrInvalidAlphabet},
		{name: "single symbol repeated", charset: "aaaa", removeDuplicates: true, wantErr: ErrInvalidAlphabet},
		{name: "single symbol repeated without dedup", charset: "aaaa", removeDuplicates: false, wantErr: ErrInvalidAlphabet},
		{name: "two symbols", charset: "ab", removeDuplicates: true, wantLen: 2},
		{name: "duplicates removed", charset: "aabbcc", removeDuplicates: true, wantLen: 3},
		{name: "duplicates kept", charset: "aabbcc", removeDuplicates: false, wantLen: 6},
		{name: "too many distinct symbols", charset: string(big), removeDuplicates: true, wantErr: ErrAlphabetTooLarge},
		{name: "too many with multiplicity", charset: strings.Repeat("ab", 200), removeDuplicates: false, wantErr: ErrAlphabetTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alphabet, err := normalizeAlphabet(tt.charset, tt.removeDuplicates)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(alphabet) != tt.wantLen {
				t.Errorf("alphabet length = %d, want %d", len(alphabet), tt.wantLen)
			}
		})
	}
}

func TestInvalidAlphabetIsDeterminableOutput(t *testing.T) {
	g := newTestGenerator(DefaultBufferCapacity, DefaultSource())
	_, err := g.StringFrom(10, "xxxx", true)
	if !errors.Is(err, ErrInvalidAlphabet) {
		t.Fatalf("expected ErrInvalidAlphabet, got %v", err)
	}
	if !errors.Is(err, ErrDeterminableOutput) {
		t.Error("ErrInvalidAlphabet should match ErrDeterminableOutput")
	}
}

func TestDefaultAlphabet(t *testing.T) {
	distinct := dedupRunes(DefaultAlphabet)
	if len(distinct) != 64 {
		t.Fatalf("DefaultAlphabet has %d distinct symbols, want 64", len(distinct))
	}
	if 256%len(distinct) != 0 {
		t.Error("DefaultAlphabet size must divide 256 so output is skew-free")
	}
}

func TestStringLengthAndMembership(t *testing.T) {
	g := newTestGenerator(DefaultBufferCapacity, DefaultSource())

	tests := []struct {
		name    string
		length  int
		charset string
	}{
		{name: "default alphabet", length: 32, charset: DefaultAlphabet},
		{name: "hex", length: 64, charset: HexAlphabet},
		{name: "tiny alphabet", length: 100, charset: "01"},
		{name: "single symbol output", length: 1, charset: AlphanumericAlphabet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := g.StringFrom(tt.length, tt.charset, true)
			if err != nil {
				t.Fatalf("StringFrom failed: %v", err)
			}
			if got := len([]rune(s)); got != tt.length {
				t.Fatalf("length = %d, want %d", got, tt.length)
			}
			allowed := make(map[rune]bool)
			for _, r := range tt.charset {
				allowed[r] = true
			}
			for _, r := range s {
				if !allowed[r] {
					t.Fatalf("output contains %q, not in charset %q", r, tt.charset)
				}
			}
		})
	}
}

func TestStringDegenerateLengths(t *testing.T) {
	g := newTestGenerator(DefaultBufferCapacity, DefaultSource())

	if _, err := g.String(0); !errors.Is(err, ErrDeterminableOutput) {
		t.Errorf("String(0) error = %v, want ErrDeterminableOutput", err)
	}

	// Negative lengths fold to their absolute value.
	s, err := g.String(-5)
	if err != nil {
		t.Fatalf("String(-5) failed: %v", err)
	}
	if len(s) != 5 {
		t.Errorf("String(-5) length = %d, want 5", len(s))
	}

	// math.MinInt survives negation still negative; it must fail cleanly,
	// never panic.
	if _, err := g.StringFrom(math.MinInt, "ab", true); !errors.Is(err, ErrDeterminableOutput) {
		t.Errorf("StringFrom(MinInt) error = %v, want ErrDeterminableOutput", err)
	}
}

// With dedup off, repeated symbols keep their slots: bytes 0,1,2 index
// "aab" directly. With dedup on, the same charset collapses to "ab" first.
func TestDuplicateMultiplicityWeighting(t *testing.T) {
	src := &scriptedSource{data: []byte{0, 1, 2}}
	g := newTestGenerator(4, src)
	s, err := g.StringFrom(3, "aab", false)
	if err != nil {
		t.Fatalf("StringFrom failed: %v", err)
	}
	if s != "aab" {
		t.Errorf("weighted assembly = %q, want %q", s, "aab")
	}

	src = &scriptedSource{data: []byte{0, 1, 2}}
	g = newTestGenerator(4, src)
	s, err = g.StringFrom(3, "aab", true)
	if err != nil {
		t.Fatalf("StringFrom failed: %v", err)
	}
	// Alphabet is "ab"; indexes 0, 1, 2 reduce to 0, 1, 0.
	if s != "aba" {
		t.Errorf("deduplicated assembly = %q, want %q", s, "aba")
	}
}

func TestSkewAdvisory(t *testing.T) {
	var out bytes.Buffer
	log := logger.New(&logger.Config{Level: "warn", Output: &out})
	g := New(&Config{
		BufferCapacity: 64,
		Source:         DefaultSource(),
		Logger:         log,
	})

	// 3 does not divide 256: advisory expected, generation still succeeds.
	if _, err := g.StringFrom(8, "abc", true); err != nil {
		t.Fatalf("StringFrom failed: %v", err)
	}
	if !strings.Contains(out.String(), "skew") {
		t.Errorf("expected skew advisory in log output, got %q", out.String())
	}

	// 16 divides 256: no advisory.
	out.Reset()
	if _, err := g.StringFrom(8, HexAlphabet, true); err != nil {
		t.Fatalf("StringFrom failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected advisory for even-divisor alphabet: %q", out.String())
	}
}
