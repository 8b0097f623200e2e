// Package main demonstrates unbiased bounded integers by rolling dice and
// printing the observed distribution.
package main

import (
	"fmt"
	"log"

	"github.com/Caqil/securerand/pkg/securerand"
)

func main() {
	fmt.Println("=== Dice Roll Demo ===")

	gen := securerand.New(nil)
	defer gen.Close()

	const rolls = 60000
	counts := make(map[int32]int, 6)

	fmt.Printf("\nRolling a d6 %d times...\n", rolls)
	for i := 0; i < rolls; i++ {
		face, err := gen.Int32Range(1, 6)
		if err != nil {
			log.Fatalf("Roll failed: %v", err)
		}
		counts[face]++
	}

	// Rejection sampling keeps every face at 1/6 even though 6 does not
	// divide 2^32. A naive modulo reduction would visibly favor low faces.
	fmt.Println("\nFace  Count   Share")
	for face := int32(1); face <= 6; face++ {
		c := counts[face]
		fmt.Printf("  %d   %5d   %.4f\n", face, c, float64(c)/rolls)
	}

	coin, err := gen.Bool()
	if err != nil {
		log.Fatalf("Coin flip failed: %v", err)
	}
	fmt.Printf("\nBonus coin flip: %v\n", map[bool]string{true: "heads", false: "tails"}[coin])
}
