package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udisondev/mangod/internal/parse"
)

func testEgoCatalog() *Catalog {
	c := testKindCatalog()
	c.Kinds = []ObjectKind{
		{Name: "<unknown item>", Kidx: 0, Tval: TvNone},
		{Name: "& Dagger~", Kidx: 1, Tval: TvSword, Sval: 1},
		{Name: "& Long Sword~", Kidx: 2, Tval: TvSword, Sval: 2},
		{Name: "& Pair~ of Leather Boots", Kidx: 3, Tval: TvBoots, Sval: 1},
	}
	return c
}

func TestEgoTypeExpandsCategory(t *testing.T) {
	src := "name:of Slay Evil\ntype:sword\n"
	b := &egoBuilder{cat: testEgoCatalog()}
	require.NoError(t, newEgoParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	e := out[0]
	require.Equal(t, 0, e.Eidx)

	// Kinds are prepended in table order, so the head is the last match.
	require.Equal(t, 2, e.PossItems.Kidx)
	require.Equal(t, 1, e.PossItems.Next.Kidx)
	require.Nil(t, e.PossItems.Next.Next)
}

func TestEgoTypeEmptyCategory(t *testing.T) {
	src := "name:of Nothing\ntype:ring\n"
	b := &egoBuilder{cat: testEgoCatalog()}
	err := newEgoParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.NoKindForEgoType, parse.CodeOf(err))
}

func TestEgoItemLookup(t *testing.T) {
	src := "name:of Protection\nitem:boots:Pair of Leather Boots\n"
	b := &egoBuilder{cat: testEgoCatalog()}
	require.NoError(t, newEgoParser(b).ParseAll(strings.NewReader(src)))
	require.Equal(t, 3, b.finish()[0].PossItems.Kidx)
}

func TestEgoItemUnknown(t *testing.T) {
	src := "name:of Protection\nitem:sword:Scimitar\n"
	b := &egoBuilder{cat: testEgoCatalog()}
	err := newEgoParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.InvalidItemNumber, parse.CodeOf(err))
}

func TestEgoAllocBounds(t *testing.T) {
	src := "name:of Depth\nalloc:5:10 to 300\n"
	b := &egoBuilder{cat: testEgoCatalog()}
	err := newEgoParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.OutOfBounds, parse.CodeOf(err))
}

func TestEgoInfoValuesAndMins(t *testing.T) {
	src := `name:of Extra Attacks
info:10000:20
combat:0:0:1d5
min-combat:0:0:1
values:BLOWS[d2]
min-values:BLOWS[1]
`
	b := &egoBuilder{cat: testEgoCatalog()}
	require.NoError(t, newEgoParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	e := out[0]
	require.Equal(t, 10000, e.Cost)
	require.Equal(t, 20, e.Rating)
	require.Equal(t, parse.Random{Dice: 1, Sides: 5}, e.ToA)
	require.Equal(t, 1, e.MinToA)
	require.Equal(t, parse.Random{Dice: 1, Sides: 2}, e.Modifiers[ModBlows])
	require.Equal(t, 1, e.MinModifiers[ModBlows])
}

func TestEgoOptionalFlagsLine(t *testing.T) {
	src := "name:of Stealth\nflags:\n"
	b := &egoBuilder{cat: testEgoCatalog()}
	require.NoError(t, newEgoParser(b).ParseAll(strings.NewReader(src)))
	require.Zero(t, b.finish()[0].Flags)
}
