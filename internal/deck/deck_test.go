package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard(t *testing.T) {
	cards := Standard()
	require.Len(t, cards, Size)

	assert.Equal(t, Arcanum{
		ID:     "major_arcana.00",
		Name:   "The Fool",
		Type:   "major_arcana",
		Number: "00",
	}, cards[0])
	assert.Equal(t, "The World", cards[21].Name)
	assert.Equal(t, Arcanum{
		ID:   "minor_arcana.wands.ace",
		Name: "Ace of Wands",
		Type: "minor_arcana",
		Suit: "wands",
		Rank: "ace",
	}, cards[22])
	assert.Equal(t, "King of Pentacles", cards[77].Name)

	seen := map[string]bool{}
	for _, c := range cards {
		assert.False(t, seen[c.Slug()], "duplicate slug %s", c.Slug())
		seen[c.Slug()] = true
	}
}

func TestBySlug(t *testing.T) {
	a, ok := BySlug("the-high-priestess")
	require.True(t, ok)
	assert.Equal(t, "major_arcana.02", a.ID)

	a, ok = BySlug("queen-of-swords")
	require.True(t, ok)
	assert.Equal(t, "minor_arcana.swords.queen", a.ID)

	_, ok = BySlug("the-happy-squirrel")
	assert.False(t, ok)
}

func TestUnknown(t *testing.T) {
	assert.Nil(t, Unknown([]string{"the-fool", "ace-of-cups"}))
	assert.Equal(t, []string{"fool", "x"}, Unknown([]string{"fool", "the-sun", "x"}))
}
