// Package main demonstrates generating passwords and API tokens with
// different alphabets.
package main

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/Caqil/securerand/pkg/securerand"
)

func main() {
	fmt.Println("=== Password Generation Demo ===")

	gen := securerand.New(nil)
	defer gen.Close()

	// Step 1: URL-safe password from the default 64-symbol alphabet.
	fmt.Println("\nStep 1: Default alphabet (a-z A-Z 0-9 - _)...")
	password, err := gen.String(24)
	if err != nil {
		log.Fatalf("Failed to generate password: %v", err)
	}
	fmt.Printf("  ✓ Password: %s\n", password)
	fmt.Println("    64 symbols divide 256 evenly, so output is skew-free")

	// Step 2: PIN from a digit alphabet. 10 does not divide 256, so the
	// library emits a skew advisory on stderr but still generates.
	fmt.Println("\nStep 2: Numeric PIN (watch for the skew advisory)...")
	pin, err := gen.StringFrom(6, "0123456789", true)
	if err != nil {
		log.Fatalf("Failed to generate PIN: %v", err)
	}
	fmt.Printf("  ✓ PIN: %s\n", pin)

	// Step 3: Hex API token from raw bytes.
	fmt.Println("\nStep 3: 32-byte API token...")
	token, err := gen.Bytes(32)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Printf("  ✓ Token: %s\n", hex.EncodeToString(token))

	// Step 4: Weighted alphabet escape hatch: keeping duplicates makes
	// vowels three times as likely as every other letter.
	fmt.Println("\nStep 4: Pronounceable-ish string via weighted alphabet...")
	weighted, err := gen.StringFrom(16, "aaaeeeiiiooouuubcdfghjklmnpqrstvwxyz", false)
	if err != nil {
		log.Fatalf("Failed to generate weighted string: %v", err)
	}
	fmt.Printf("  ✓ Output: %s\n", weighted)

	fmt.Println("\n=== Demo complete ===")
}
