package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/tarot-assets/internal/ansi"
	"github.com/arcanaland/tarot-assets/internal/deck"
)

var previewCmd = &cobra.Command{
	Use:   "preview [card_name]",
	Short: "Display a downloaded card image as ANSI art",
	Long: `Preview renders a card downloaded by 'tarot-assets fetch' in the terminal.
Use the card's file name without extension, as stored in data/image/cards.

Examples:
  tarot-assets preview the-fool
  tarot-assets preview ace-of-wands --width 60 --height 48`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		if width <= 0 || height <= 0 {
			return fmt.Errorf("width and height must be positive")
		}

		imagePath := filepath.Join(appConfig.Fetch.SaveDir, name+".png")
		if _, err := os.Stat(imagePath); os.IsNotExist(err) {
			return fmt.Errorf("card image not found: %s (run 'tarot-assets fetch' first)", imagePath)
		}

		art, err := ansi.RenderFile(imagePath, width, height)
		if err != nil {
			return fmt.Errorf("error rendering card: %w", err)
		}

		displayCard(cmd.OutOrStdout(), name, imagePath, art)

		return nil
	},
}

func init() {
	previewCmd.Flags().Int("width", ansi.DefaultWidth, "Width of the rendered card in terminal cells")
	previewCmd.Flags().Int("height", ansi.DefaultHeight, "Height of the rendered card in terminal cells")
}

// cardInfo returns the lines printed next to the card art
func cardInfo(name, imagePath string) []string {
	var infoLines []string

	a, ok := deck.BySlug(name)
	if !ok {
		infoLines = append(infoLines, colorize.CyanString("Card: ")+colorize.HiWhiteString(name))
		infoLines = append(infoLines, colorize.YellowString("Not a card of the standard deck"))
	} else {
		infoLines = append(infoLines, colorize.CyanString("Card: ")+colorize.HiWhiteString(a.Name))
		infoLines = append(infoLines, colorize.CyanString("ID:   ")+colorize.HiWhiteString(a.ID))
		if a.Type == "major_arcana" {
			infoLines = append(infoLines, colorize.CyanString("Type: ")+colorize.HiWhiteString("Major Arcana"))
		} else {
			infoLines = append(infoLines, colorize.CyanString("Type: ")+colorize.HiWhiteString("Minor Arcana"))
			infoLines = append(infoLines, colorize.CyanString("Suit: ")+colorize.HiWhiteString(a.Suit))
			infoLines = append(infoLines, colorize.CyanString("Rank: ")+colorize.HiWhiteString(a.Rank))
		}
	}

	infoLines = append(infoLines, colorize.CyanString("File: ")+colorize.HiWhiteString(imagePath))

	return infoLines
}

// displayCard prints the ANSI art on the left and the card info on the right
func displayCard(out io.Writer, name, imagePath, art string) {
	artLines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		// Calculate the visible width (excluding ANSI escape sequences)
		if w := len([]rune(ansi.Strip(line))); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	infoLines := cardInfo(name, imagePath)
	infoStartCol := maxArtWidth + 4

	fmt.Fprintln(out)

	for i := 0; i < max(len(artLines), len(infoLines)); i++ {
		fmt.Fprint(out, "  ")
		if i < len(artLines) {
			fmt.Fprint(out, artLines[i])
			visibleWidth := len([]rune(ansi.Strip(artLines[i])))
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(out, infoLines[i])
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
}
