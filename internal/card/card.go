package card

// Card represents a tarot card scraped from the gallery page
type Card struct {
	Name      string // Slug derived from the gallery title (e.g., the-fool)
	SourceURL string // Absolute https URL of the resized image
}

// FileName returns the name the card image is stored under
func (c Card) FileName() string {
	return c.Name + ".png"
}
