package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/itohio/wavescope/pkg/config"
	"github.com/itohio/wavescope/pkg/palette"
)

// chooseColors runs the terminal picker for the three display colors.
// The configured values double as the fallback defaults.
func chooseColors(cfg *config.Config) {
	in := bufio.NewScanner(os.Stdin)
	listPalette(os.Stdout)

	cfg.Colors.Background = promptColor(in, os.Stdout, "Overall background #: ", cfg.Colors.Background)
	cfg.Colors.Positive = promptColor(in, os.Stdout, "Positive wave #:    ", cfg.Colors.Positive)
	cfg.Colors.Negative = promptColor(in, os.Stdout, "Negative wave #:    ", cfg.Colors.Negative)
}

// listPalette prints the fixed palette with color blocks.
func listPalette(w io.Writer) {
	fmt.Fprintln(w, "Available colors:")
	for i, e := range palette.Table {
		fmt.Fprintf(w, " %2d. %s: %s %s\n", i+1, e.Name, e.Hex, palette.Swatch(e.Hex, 4))
	}
}

// promptColor reads a 1-based palette index from in. Non-numeric input
// and out-of-range indices fall back to def with a warning.
func promptColor(in *bufio.Scanner, w io.Writer, prompt, def string) string {
	fmt.Fprint(w, prompt)

	if in.Scan() {
		if idx, err := strconv.Atoi(strings.TrimSpace(in.Text())); err == nil {
			if hex, err := palette.ByIndex(idx); err == nil {
				return hex
			}
		}
	}

	fmt.Fprintln(w, "Using default:", def)
	return def
}
