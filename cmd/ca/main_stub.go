//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "ca: this binary was built without a window (missing -tags ebiten).")
	fmt.Fprintln(os.Stderr, "Run the arena with `go run -tags ebiten ./cmd/ca`, or headless with `go run ./cmd/bout-run -out run1`.")
	os.Exit(2)
}
