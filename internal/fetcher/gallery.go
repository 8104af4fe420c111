package fetcher

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"

	"github.com/arcanaland/tarot-assets/internal/card"
	"github.com/arcanaland/tarot-assets/internal/log"
	"github.com/arcanaland/tarot-assets/internal/slug"
)

var (
	galleryXPath *xpath.Expr
	itemXPath    *xpath.Expr
	captionXPath *xpath.Expr
	imageXPath   *xpath.Expr

	// "0 – The Fool", "12 - The Hanged Man"
	ordinalPrefix = regexp.MustCompile(`^\d+\s*[-–—]\s*`)
	// "II – The High Priestess"
	romanPrefix = regexp.MustCompile(`^\s*I+\s*[-–—]\s*`)
	// Last path segment of a MediaWiki thumbnail, e.g. /120px-RWS_Tarot_00_Fool.jpg
	thumbSegment = regexp.MustCompile(`/\d+px-([^/]+)$`)
)

func init() {
	galleryXPath = xpath.MustCompile(`//ul[` + hasClass("gallery") + ` and ` + hasClass("mw-gallery-nolines") + `]`)
	itemXPath = xpath.MustCompile(`.//li[` + hasClass("gallerybox") + `]`)
	captionXPath = xpath.MustCompile(`.//*[` + hasClass("gallerytext") + `]`)
	imageXPath = xpath.MustCompile(`.//img`)
}

// hasClass builds an XPath predicate matching one token of the class attribute
func hasClass(class string) string {
	return `contains(concat(' ', normalize-space(@class), ' '), ' ` + class + ` ')`
}

// ParseGallery extracts the cards of every MediaWiki "nolines" gallery in the
// page, in document order. Image URLs are rewritten to the width px rendition
// and resolved against base.
func ParseGallery(r io.Reader, base *url.URL, width int) ([]card.Card, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse HTML: %w", err)
	}

	var cards []card.Card

	galleries := htmlquery.QuerySelectorAll(doc, galleryXPath)
	log.Debugf("Found %d galleries", len(galleries))

	for _, gallery := range galleries {
		for i, item := range htmlquery.QuerySelectorAll(gallery, itemXPath) {
			title, err := itemTitle(item)
			if err != nil {
				return nil, fmt.Errorf("gallery item %d: %w", i+1, err)
			}

			img := htmlquery.QuerySelector(item, imageXPath)
			if img == nil {
				log.Debugw("Skipping gallery item without image", "title", title)
				continue
			}

			src, err := imageURL(htmlquery.SelectAttr(img, "src"), base, width)
			if err != nil {
				return nil, fmt.Errorf("gallery item %q: %w", title, err)
			}

			cards = append(cards, card.Card{
				Name:      slug.Make(CleanTitle(title)),
				SourceURL: src,
			})
		}
	}

	return cards, nil
}

// itemTitle returns the title attribute of the item, falling back to its
// caption text
func itemTitle(item *html.Node) (string, error) {
	if title := htmlquery.SelectAttr(item, "title"); title != "" {
		return title, nil
	}

	caption := htmlquery.QuerySelector(item, captionXPath)
	if caption == nil {
		return "", fmt.Errorf("no title attribute and no caption")
	}

	return strings.TrimSpace(htmlquery.InnerText(caption)), nil
}

// CleanTitle removes a leading card number ("0 – ") and then a leading roman
// numeral made of I's ("II – ") from a gallery title.
func CleanTitle(title string) string {
	title = ordinalPrefix.ReplaceAllString(title, "")
	return romanPrefix.ReplaceAllString(title, "")
}

func imageURL(src string, base *url.URL, width int) (string, error) {
	if src == "" {
		return "", fmt.Errorf("image has no src attribute")
	}

	src = thumbSegment.ReplaceAllString(src, fmt.Sprintf("/%dpx-${1}", width))

	if strings.HasPrefix(src, "//") {
		return "https:" + src, nil
	}

	ref, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("invalid image URL %s: %w", src, err)
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}

	return ref.String(), nil
}
