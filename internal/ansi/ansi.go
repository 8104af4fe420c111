// Package ansi turns card images into truecolor terminal art.
package ansi

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Default dimensions of a rendered card, in terminal cells
const (
	DefaultWidth  = 40
	DefaultHeight = 32
)

// RenderFile decodes the image at path and renders it. The downloaded cards
// are JPEG data stored under a .png name, so the format is sniffed from the
// content rather than the extension.
func RenderFile(path string, width, height int) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return Render(img, width, height), nil
}

// Render converts an image to width x height cells of upper half blocks,
// each cell averaging a 2x2 block of the resized image.
func Render(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder

	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			c1, _ := colorful.MakeColor(colorAt(resized, x, y))
			c2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			c3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			c4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			// Top pixels as foreground, bottom pixels as background
			fg := toRGBA(average(c1, c2))
			bg := toRGBA(average(c3, c4))

			buffer.WriteString(cell('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns black outside the image bounds
func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func cell(char rune, fg, bg color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}

// Strip removes ANSI escape sequences from a string
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
