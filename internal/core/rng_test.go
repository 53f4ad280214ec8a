package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	NewRNG(5).FillBytes(a)
	NewRNG(5).FillBytes(b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different bytes")
	}
	NewRNG(6).FillBytes(b)
	if slices.Equal(a, b) {
		t.Fatal("different seeds produced identical bytes")
	}
}
