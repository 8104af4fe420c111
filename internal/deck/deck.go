package deck

import (
	"fmt"
	"strings"

	"github.com/arcanaland/tarot-assets/internal/slug"
)

// Arcanum is one card of the canonical Rider-Waite-Smith deck
type Arcanum struct {
	ID     string // Canonical ID (e.g., major_arcana.00, minor_arcana.wands.ace)
	Name   string // English name
	Type   string // major_arcana or minor_arcana
	Number string // For major arcana (00-21)
	Suit   string // For minor arcana (wands, cups, swords, pentacles)
	Rank   string // For minor arcana (ace, two, ..., king)
}

// Slug returns the file slug the gallery scraper derives for this card
func (a Arcanum) Slug() string {
	return slug.Make(a.Name)
}

var (
	suits = []string{"wands", "cups", "swords", "pentacles"}
	ranks = []string{
		"ace", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		"page", "knight", "queen", "king",
	}
	majorArcanaNames = []string{
		"The Fool",
		"The Magician",
		"The High Priestess",
		"The Empress",
		"The Emperor",
		"The Hierophant",
		"The Lovers",
		"The Chariot",
		"Strength",
		"The Hermit",
		"Wheel of Fortune",
		"Justice",
		"The Hanged Man",
		"Death",
		"Temperance",
		"The Devil",
		"The Tower",
		"The Star",
		"The Moon",
		"The Sun",
		"Judgement",
		"The World",
	}
)

// Size is the number of cards in a full deck
const Size = 78

// Standard returns the 78 cards of the Rider-Waite-Smith deck, major arcana
// first, then each suit from ace to king.
func Standard() []Arcanum {
	cards := make([]Arcanum, 0, Size)

	for i, name := range majorArcanaNames {
		number := fmt.Sprintf("%02d", i)
		cards = append(cards, Arcanum{
			ID:     "major_arcana." + number,
			Name:   name,
			Type:   "major_arcana",
			Number: number,
		})
	}

	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, Arcanum{
				ID:   fmt.Sprintf("minor_arcana.%s.%s", suit, rank),
				Name: minorArcanaName(rank, suit),
				Type: "minor_arcana",
				Suit: suit,
				Rank: rank,
			})
		}
	}

	return cards
}

// BySlug looks a card up by its file slug
func BySlug(s string) (Arcanum, bool) {
	for _, a := range Standard() {
		if a.Slug() == s {
			return a, true
		}
	}
	return Arcanum{}, false
}

// Unknown returns the slugs that match no canonical card, in input order
func Unknown(slugs []string) []string {
	known := make(map[string]struct{}, Size)
	for _, a := range Standard() {
		known[a.Slug()] = struct{}{}
	}

	var unknown []string
	for _, s := range slugs {
		if _, ok := known[s]; !ok {
			unknown = append(unknown, s)
		}
	}
	return unknown
}

// minorArcanaName returns the English name for a minor arcana card
func minorArcanaName(rank, suit string) string {
	return fmt.Sprintf("%s of %s", capitalize(rank), capitalize(suit))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
