package ansi

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(c color.Color, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRender(t *testing.T) {
	art := Render(solid(color.RGBA{255, 0, 0, 255}, 16, 16), 4, 3)

	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, "▀▀▀▀", Strip(line))
		assert.Regexp(t, `^\x1b\[38;2;25[45];0;0m\x1b\[48;2;25[45];0;0m▀`, line)
	}
}

func TestRenderFile(t *testing.T) {
	// Stored under .png like the downloaded cards; the decoder sniffs the format
	path := filepath.Join(t.TempDir(), "the-fool.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(color.RGBA{0, 0, 255, 255}, 8, 8)))
	require.NoError(t, f.Close())

	art, err := RenderFile(path, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "▀▀\n▀▀\n", Strip(art))

	_, err = RenderFile(filepath.Join(t.TempDir(), "missing.png"), 2, 2)
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0644))
	_, err = RenderFile(garbage, 2, 2)
	assert.ErrorContains(t, err, "failed to decode image")
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "abc", Strip("\x1b[31ma\x1b[0mb\x1b[1;32mc"))
}
