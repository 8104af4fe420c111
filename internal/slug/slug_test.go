package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Fool", "the-fool"},
		{"Wheel of Fortune", "wheel-of-fortune"},
		{"  Ace  of   Wands ", "ace-of-wands"},
		{"Pagé of Cups", "page-of-cups"},
		{"Judgement!", "judgement"},
		{"Knight -- of - Swords", "knight-of-swords"},
		{"The Hanged\tMan", "the-hanged-man"},
		{"ﬁve of Pentacles", "five-of-pentacles"},
		{"日本", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestASCII(t *testing.T) {
	assert.Equal(t, "Tarot de Marseille", ASCII("Tarot de Marseillé"))
	assert.Equal(t, "RiderWaite", ASCII("Rider–Waite"))
}
