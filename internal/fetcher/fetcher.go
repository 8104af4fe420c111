// Package fetcher scrapes the tarot gallery page and downloads the card
// images it references.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/arcanaland/tarot-assets/internal/card"
	"github.com/arcanaland/tarot-assets/internal/config"
	"github.com/arcanaland/tarot-assets/internal/deck"
	"github.com/arcanaland/tarot-assets/internal/log"
)

// chunkSize is the size of the buffer image bodies are streamed through
const chunkSize = 8192

var (
	// ErrCardCount is returned when the gallery page doesn't yield the
	// expected number of cards, which means the page layout changed.
	ErrCardCount = errors.New("unexpected number of cards")
	// ErrHTTPStatus is returned for any non-2xx response.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
)

// Fetcher collects cards from the gallery page and saves their images.
type Fetcher struct {
	client    *http.Client
	pageURL   string
	userAgent string
	saveDir   string
	width     int
	expected  int
}

// New creates a Fetcher from the fetch configuration. If client is nil, a
// client with the configured per-request timeout is used.
func New(cfg config.FetchConfig, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}

	return &Fetcher{
		client:    client,
		pageURL:   cfg.WikiURL,
		userAgent: cfg.UserAgent,
		saveDir:   cfg.SaveDir,
		width:     cfg.ThumbWidth,
		expected:  cfg.ExpectedCards,
	}
}

// SaveDir returns the directory images are written to
func (f *Fetcher) SaveDir() string {
	return f.saveDir
}

// CollectCards downloads the gallery page and returns its cards in page
// order. It fails with ErrCardCount unless exactly the expected number of
// cards is found.
func (f *Fetcher) CollectCards(ctx context.Context) ([]card.Card, error) {
	base, err := url.Parse(f.pageURL)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse URL %s: %w", f.pageURL, err)
	}

	log.Infof("Fetching gallery page %s", f.pageURL)

	resp, err := f.get(ctx, f.pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	cards, err := ParseGallery(resp.Body, base, f.width)
	if err != nil {
		return nil, fmt.Errorf("couldn't read gallery from %s: %w", f.pageURL, err)
	}

	if len(cards) != f.expected {
		return nil, fmt.Errorf("%w: expected %d cards, got %d", ErrCardCount, f.expected, len(cards))
	}

	f.warnSuspiciousNames(cards)

	return cards, nil
}

// warnSuspiciousNames logs slugs that would overwrite each other on disk or
// that match no card of the standard deck.
func (f *Fetcher) warnSuspiciousNames(cards []card.Card) {
	names := make([]string, 0, len(cards))
	seen := make(map[string]bool, len(cards))

	for _, c := range cards {
		if seen[c.Name] {
			log.Warnw("Duplicate card name, image will be overwritten", "name", c.Name)
		}
		seen[c.Name] = true
		names = append(names, c.Name)
	}

	for _, name := range deck.Unknown(names) {
		log.Warnw("Card name doesn't match the standard deck", "name", name)
	}
}

// Download saves the card image as <save dir>/<name>.png. An existing file
// is left untouched and no request is made; the returned bool reports
// whether the image was downloaded.
func (f *Fetcher) Download(ctx context.Context, c card.Card) (bool, error) {
	if err := os.MkdirAll(f.saveDir, 0755); err != nil {
		return false, fmt.Errorf("error creating directory %s: %w", f.saveDir, err)
	}

	path := filepath.Join(f.saveDir, c.FileName())
	if _, err := os.Stat(path); err == nil {
		log.Debugw("Image already present, skipping", "card", c.Name, "path", path)
		return false, nil
	}

	log.Debugw("Downloading image", "card", c.Name, "url", c.SourceURL)

	resp, err := f.get(ctx, c.SourceURL)
	if err != nil {
		return false, fmt.Errorf("error downloading %s: %w", c.Name, err)
	}
	defer resp.Body.Close()

	// Write next to the target and rename, so an interrupted download
	// never leaves a truncated image that a rerun would skip
	tmp, err := os.CreateTemp(f.saveDir, "."+c.Name+"-*.part")
	if err != nil {
		return false, fmt.Errorf("error creating file for %s: %w", c.Name, err)
	}
	defer os.Remove(tmp.Name())

	// Hide tmp's ReaderFrom so the copy goes through the fixed-size buffer
	written, err := io.CopyBuffer(struct{ io.Writer }{tmp}, resp.Body, make([]byte, chunkSize))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return false, fmt.Errorf("error saving %s: %w", c.Name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, fmt.Errorf("error saving %s: %w", c.Name, err)
	}

	log.Debugw("Image saved", "card", c.Name, "path", path, "bytes", written)

	return true, nil
}

// get issues a GET request carrying the identifying User-Agent. Any non-2xx
// response is turned into an ErrHTTPStatus error.
func (f *Fetcher) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request for %s: %w", target, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("couldn't query %s: %w", target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s: %s", ErrHTTPStatus, target, resp.Status)
	}

	return resp, nil
}
