package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udisondev/mangod/internal/parse"
)

// testKindCatalog has the reference tables the object stage resolves against.
func testKindCatalog() *Catalog {
	c := testEffectCatalog()
	c.Bases = make([]ObjectBase, TvMax)
	for i := range c.Bases {
		c.Bases[i].Tval = i
	}
	c.Slays = []Slay{{Code: "EVIL_2"}, {Code: "DEMON_3"}}
	c.Brands = []Brand{{Code: "FIRE_2"}}
	c.Curses = []Curse{{Name: "teleportation"}}
	c.Activations = []Activation{{Name: "ILLUMINATION"}}
	return c
}

func TestObjectSvalSequencePerCategory(t *testing.T) {
	src := `name:& Dagger~
type:sword
name:& Long Sword~
type:sword
name:& Cloak~
type:cloak
`
	cat := testKindCatalog()
	b := &objectBuilder{cat: cat}
	require.NoError(t, newObjectParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Len(t, out, 3)
	for i := range out {
		require.Equal(t, i, out[i].Kidx)
	}

	// Subtype ids run sequentially within each category, in file order.
	require.Equal(t, 1, out[0].Sval)
	require.Equal(t, 2, out[1].Sval)
	require.Equal(t, 1, out[2].Sval)
	require.Equal(t, 2, cat.Bases[TvSword].NumSvals)
	require.Equal(t, 1, cat.Bases[TvCloak].NumSvals)
	require.Same(t, &cat.Bases[TvSword], out[0].Base)
}

func TestObjectInheritsBaseKindFlags(t *testing.T) {
	cat := testKindCatalog()
	cat.Bases[TvSword].KindFlags.On(KfGood)

	src := "name:& Dagger~\ntype:sword\nflags:SHOW_DICE\n"
	b := &objectBuilder{cat: cat}
	require.NoError(t, newObjectParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.True(t, out[0].KindFlags.Has(KfShowDice))
	require.True(t, out[0].KindFlags.Has(KfGood))
}

func TestObjectHeaderRequired(t *testing.T) {
	b := &objectBuilder{cat: testKindCatalog()}
	err := newObjectParser(b).ParseAll(strings.NewReader("type:sword\n"))
	require.Equal(t, parse.MissingRecordHeader, parse.CodeOf(err))
}

func TestObjectAllocRange(t *testing.T) {
	src := "name:& Dagger~\ntype:sword\nalloc:40:10 to 75\n"
	b := &objectBuilder{cat: testKindCatalog()}
	require.NoError(t, newObjectParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Equal(t, 40, out[0].AllocProb)
	require.Equal(t, 10, out[0].AllocMin)
	require.Equal(t, 75, out[0].AllocMax)
}

func TestObjectBadAllocRange(t *testing.T) {
	src := "name:& Dagger~\ntype:sword\nalloc:40:deep\n"
	b := &objectBuilder{cat: testKindCatalog()}
	err := newObjectParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.InvalidAllocation, parse.CodeOf(err))
}

func TestObjectAttackDice(t *testing.T) {
	src := "name:& Dagger~\ntype:sword\nattack:2d5:0:1d4\n"
	b := &objectBuilder{cat: testKindCatalog()}
	require.NoError(t, newObjectParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Equal(t, 2, out[0].DD)
	require.Equal(t, 5, out[0].DS)
	require.Equal(t, parse.Random{}, out[0].ToH)
	require.Equal(t, parse.Random{Dice: 1, Sides: 4}, out[0].ToD)
}

func TestObjectSlayBrandCurse(t *testing.T) {
	src := `name:& Dagger~
type:sword
slay:DEMON_3
brand:FIRE_2
curse:teleportation:40
`
	cat := testKindCatalog()
	b := &objectBuilder{cat: cat}
	require.NoError(t, newObjectParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	k := out[0]
	require.Equal(t, []bool{false, true}, k.Slays)
	require.Equal(t, []bool{true}, k.Brands)
	require.Equal(t, []int{40}, k.Curses)
}

func TestObjectUnknownReferences(t *testing.T) {
	tests := []struct {
		line string
		want parse.Code
	}{
		{"slay:NOPE", parse.UnrecognisedSlay},
		{"brand:NOPE", parse.UnrecognisedBrand},
		{"curse:nope:10", parse.UnrecognisedCurse},
		{"type:gizmo", parse.UnrecognisedTval},
	}
	for _, tt := range tests {
		b := &objectBuilder{cat: testKindCatalog()}
		p := newObjectParser(b)
		require.NoError(t, p.Parse("name:& Dagger~"))
		err := p.Parse(tt.line)
		require.Equal(t, tt.want, parse.CodeOf(err), "line %q", tt.line)
	}
}

func TestObjectActivationByName(t *testing.T) {
	cat := testKindCatalog()
	src := "name:& Staff~ of Light\ntype:staff\nact:ILLUMINATION\n"
	b := &objectBuilder{cat: cat}
	require.NoError(t, newObjectParser(b).ParseAll(strings.NewReader(src)))
	require.Same(t, &cat.Activations[0], b.finish()[0].Activation)

	// An unknown activation name leaves the kind without one.
	b = &objectBuilder{cat: cat}
	src = "name:& Staff~\ntype:staff\nact:MISSING\n"
	require.NoError(t, newObjectParser(b).ParseAll(strings.NewReader(src)))
	require.Nil(t, b.finish()[0].Activation)
}
