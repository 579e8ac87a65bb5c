package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogComposition(t *testing.T) {
	catalog := NewCatalog()
	require.Equal(t, 78, catalog.Size())

	majors := 0
	minors := 0
	suitCounts := map[string]int{}
	ids := map[string]bool{}
	for _, c := range catalog.Cards() {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true

		switch c.Arcana {
		case ArcanaMajor:
			majors++
			require.True(t, c.HasNumber())
			assert.GreaterOrEqual(t, *c.Number, 0)
			assert.LessOrEqual(t, *c.Number, 21)
			assert.Empty(t, c.Suit)
			assert.Empty(t, c.Element)
		case ArcanaMinor:
			minors++
			suitCounts[c.Suit]++
			assert.NotEmpty(t, c.Element)
		default:
			t.Fatalf("unexpected arcana %q", c.Arcana)
		}

		assert.NotEmpty(t, c.Keywords.Upright)
		assert.NotEmpty(t, c.Keywords.Reversed)
		assert.NotEmpty(t, c.Meanings.Upright.General)
		assert.NotEmpty(t, c.Meanings.Reversed.Spirituality)
	}

	assert.Equal(t, 22, majors)
	assert.Equal(t, 56, minors)
	for _, suit := range []string{SuitWands, SuitCups, SuitSwords, SuitPentacles} {
		assert.Equal(t, 14, suitCounts[suit], "suit %s", suit)
	}
}

func TestSuitElements(t *testing.T) {
	wants := map[string]string{
		SuitWands:     ElementFire,
		SuitCups:      ElementWater,
		SuitSwords:    ElementAir,
		SuitPentacles: ElementEarth,
	}

	for _, c := range NewCatalog().Cards() {
		if c.Arcana != ArcanaMinor {
			continue
		}
		assert.Equal(t, wants[c.Suit], c.Element, "card %s", c.Name)
	}
}

func TestMinorNumbers(t *testing.T) {
	catalog := NewCatalog()

	ace, ok := catalog.FindByName("Ace of Wands")
	require.True(t, ok)
	require.True(t, ace.HasNumber())
	assert.Equal(t, 1, *ace.Number)

	ten, ok := catalog.FindByName("Ten of Pentacles")
	require.True(t, ok)
	require.True(t, ten.HasNumber())
	assert.Equal(t, 10, *ten.Number)

	// 宫廷牌没有数字
	for _, name := range []string{"Page of Cups", "Knight of Swords", "Queen of Wands", "King of Pentacles"} {
		c, ok := catalog.FindByName(name)
		require.True(t, ok, name)
		assert.False(t, c.HasNumber(), name)
	}
}

func TestFindByName(t *testing.T) {
	catalog := NewCatalog()

	c, ok := catalog.FindByName("the fool")
	require.True(t, ok)
	assert.Equal(t, "The Fool", c.Name)

	c, ok = catalog.FindByName("  THE HIGH PRIESTESS  ")
	require.True(t, ok)
	assert.Equal(t, "The High Priestess", c.Name)

	_, ok = catalog.FindByName("The Lost Card")
	assert.False(t, ok)
}

func TestSampleDistinct(t *testing.T) {
	catalog := NewCatalog()

	for _, n := range []int{1, 3, 10, 78} {
		cards, err := catalog.Sample(n)
		require.NoError(t, err)
		require.Len(t, cards, n)

		seen := map[string]bool{}
		for _, c := range cards {
			assert.False(t, seen[c.ID], "duplicate %s at n=%d", c.ID, n)
			seen[c.ID] = true
		}
	}
}

func TestSampleRejectsBadCounts(t *testing.T) {
	catalog := NewCatalog()

	for _, n := range []int{0, -1, 79} {
		_, err := catalog.Sample(n)
		assert.ErrorIs(t, err, ErrNotEnoughCards, "n=%d", n)
	}
}

func TestSampleDeterministicWithFixedIntn(t *testing.T) {
	catalog := NewCatalog()
	catalog.intn = func(n int) int { return 0 }

	cards, err := catalog.Sample(3)
	require.NoError(t, err)

	// intn 恒为 0 时按目录原序抽取
	all := catalog.Cards()
	for i := range cards {
		assert.Equal(t, all[i].ID, cards[i].ID)
	}
}
