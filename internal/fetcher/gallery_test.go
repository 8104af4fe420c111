package fetcher

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arcanaland/tarot-assets/internal/card"
	"github.com/arcanaland/tarot-assets/internal/log"
)

func init() {
	logger := zap.NewExample()
	log.SetLogger(logger.Sugar())
}

const samplePage = `<!DOCTYPE html>
<html><body>
<ul class="gallery mw-gallery-traditional">
  <li class="gallerybox" title="Not a card">
    <img src="//upload.wikimedia.org/wikipedia/commons/thumb/a/ab/Other.jpg/120px-Other.jpg">
  </li>
</ul>
<ul class="gallery mw-gallery-nolines" id="major">
  <li class="gallerybox" title="0 – The Fool">
    <div class="thumb"><img src="//upload.wikimedia.org/wikipedia/commons/thumb/9/90/RWS_Tarot_00_Fool.jpg/120px-RWS_Tarot_00_Fool.jpg"></div>
  </li>
  <li class="gallerybox">
    <div class="thumb"><img src="//upload.wikimedia.org/wikipedia/commons/thumb/d/de/RWS_Tarot_01_Magician.jpg/96px-RWS_Tarot_01_Magician.jpg"></div>
    <div class="gallerytext">
      <p>I – The Magician</p>
    </div>
  </li>
  <li class="gallerybox" title="II - The High Priestess">
    <img src="/w/images/thumb/High_Priestess.jpg/120px-High_Priestess.jpg">
  </li>
  <li class="gallerybox" title="Missing image"></li>
</ul>
<ul class="mw-gallery-nolines gallery">
  <li class="gallerybox" title="Ace of Wändś">
    <img src="https://upload.wikimedia.org/wikipedia/commons/thumb/1/11/Wands01.jpg/120px-Wands01.jpg">
  </li>
</ul>
</body></html>`

func TestParseGallery(t *testing.T) {
	base, err := url.Parse("https://en.wikipedia.org/wiki/Rider%E2%80%93Waite_Tarot")
	require.NoError(t, err)

	cards, err := ParseGallery(strings.NewReader(samplePage), base, 250)
	require.NoError(t, err)

	expected := []card.Card{
		{
			Name:      "the-fool",
			SourceURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/9/90/RWS_Tarot_00_Fool.jpg/250px-RWS_Tarot_00_Fool.jpg",
		},
		{
			Name:      "the-magician",
			SourceURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/d/de/RWS_Tarot_01_Magician.jpg/250px-RWS_Tarot_01_Magician.jpg",
		},
		{
			Name:      "the-high-priestess",
			SourceURL: "https://en.wikipedia.org/w/images/thumb/High_Priestess.jpg/250px-High_Priestess.jpg",
		},
		{
			Name:      "ace-of-wands",
			SourceURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/1/11/Wands01.jpg/250px-Wands01.jpg",
		},
	}

	assert.Equal(t, expected, cards)
}

func TestParseGalleryNoGallery(t *testing.T) {
	cards, err := ParseGallery(strings.NewReader("<html><body><p>moved</p></body></html>"), nil, 250)
	assert.NoError(t, err)
	assert.Empty(t, cards)
}

func TestParseGalleryItemWithoutTitle(t *testing.T) {
	page := `<ul class="gallery mw-gallery-nolines"><li class="gallerybox"><img src="//x/1px-a.jpg"></li></ul>`

	_, err := ParseGallery(strings.NewReader(page), nil, 250)
	assert.ErrorContains(t, err, "no title attribute and no caption")
}

func TestCleanTitle(t *testing.T) {
	tests := map[string]string{
		"0 – The Fool":            "The Fool",
		"21 — The World":          "The World",
		"10-Wheel of Fortune":     "Wheel of Fortune",
		"II - The High Priestess": "The High Priestess",
		"III – The Empress":       "The Empress",
		"IV – The Emperor":        "IV – The Emperor",
		"Ace of Cups":             "Ace of Cups",
		"Isis":                    "Isis",
	}

	for in, want := range tests {
		assert.Equal(t, want, CleanTitle(in), in)
	}
}

func TestImageURL(t *testing.T) {
	src, err := imageURL("//upload.wikimedia.org/thumb/a/b.jpg/120px-b.jpg", nil, 500)
	require.NoError(t, err)
	assert.Equal(t, "https://upload.wikimedia.org/thumb/a/b.jpg/500px-b.jpg", src)

	src, err = imageURL("https://upload.wikimedia.org/commons/a/b.jpg", nil, 250)
	require.NoError(t, err)
	assert.Equal(t, "https://upload.wikimedia.org/commons/a/b.jpg", src)

	_, err = imageURL("", nil, 250)
	assert.Error(t, err)
}
