package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-quest/internal/core"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show the color palette",
	Long:  `Shows every color a tile can carry, with its display value.`,
	Args:  cobra.NoArgs,
	Run:   runColors,
}

func runColors(_ *cobra.Command, _ []string) {
	fmt.Println("Palette:")
	fmt.Println()

	for _, c := range core.AllColors() {
		r, g, b := c.RGB()
		swatch := color.BgRGB(int(r), int(g), int(b)).Sprint("      ")
		fmt.Printf("  %s  %-8s %s\n", swatch, c.Name(), c.Hex())
	}

	fmt.Println()
	fmt.Println("Run 'colorquest play' to start a game.")
}
