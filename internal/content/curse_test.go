package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udisondev/mangod/internal/dice"
	"github.com/udisondev/mangod/internal/parse"
)

// testEffectCatalog carries just enough projections for effect subtypes to
// resolve against.
func testEffectCatalog() *Catalog {
	c := &Catalog{}
	for i := 0; i <= ElemPois; i++ {
		c.Projections = append(c.Projections, Projection{Index: i, Code: ElementName(i)})
	}
	return c
}

func TestCursePossAndCombat(t *testing.T) {
	src := `name:vulnerability
type:shield
type:soft armor
combat:0:0:-15
desc:attracts monsters
`
	b := &curseBuilder{cat: testEffectCatalog()}
	require.NoError(t, newCurseParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Len(t, out, 1)
	c := out[0]
	require.Len(t, c.Poss, TvMax)
	require.True(t, c.Poss[TvShield])
	require.True(t, c.Poss[TvSoftArmor])
	require.False(t, c.Poss[TvSword])
	require.Equal(t, -15, c.Obj.ToA)
	require.Equal(t, "attracts monsters", c.Desc)
}

func TestCurseEffectListHeadIsMostRecent(t *testing.T) {
	src := `name:poison
effect:TIMED_INC:POISONED
dice:10+d10
effect:DAMAGE
dice:5
msg:It hurts!
time:d100
`
	b := &curseBuilder{cat: testEffectCatalog()}
	require.NoError(t, newCurseParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	head := out[0].Obj.Effect
	require.NotNil(t, head)
	require.Equal(t, effectByName("DAMAGE"), head.Index)
	require.Equal(t, dice.Value{Base: 5}, head.Dice.Evaluate())
	require.Equal(t, "It hurts!", head.SelfMsg)

	tail := head.Next
	require.NotNil(t, tail)
	require.Equal(t, effectByName("TIMED_INC"), tail.Index)
	require.Equal(t, lookupFlag(timedNames, "POISONED")-1, tail.Subtype)
	require.Equal(t, dice.Value{Base: 10, Dice: 1, Sides: 10}, tail.Dice.Evaluate())
	require.Nil(t, tail.Next)

	require.Equal(t, parse.Random{Dice: 1, Sides: 100}, out[0].Obj.Time)
}

func TestCurseMsgWithoutEffect(t *testing.T) {
	src := "name:quiet\nmsg:You feel fine.\n"
	b := &curseBuilder{cat: testEffectCatalog()}
	require.NoError(t, newCurseParser(b).ParseAll(strings.NewReader(src)))
	require.Nil(t, b.finish()[0].Obj.Effect)
}

func TestCursePartialFlagLine(t *testing.T) {
	b := &curseBuilder{cat: testEffectCatalog()}
	p := newCurseParser(b)
	require.NoError(t, p.Parse("name:burning"))

	err := p.Parse("flags:SEE_INVIS | NOT_A_FLAG")
	require.Equal(t, parse.InvalidFlag, parse.CodeOf(err))

	// Tokens before the bad one are already applied.
	require.True(t, b.cur.Obj.Flags.Has(OfSeeInvis))
}

func TestCurseConflictBrackets(t *testing.T) {
	src := `name:burning up
conflict:chilled to the bone
conflict:freezing
conflict-flags:NO_TELEPORT
`
	b := &curseBuilder{cat: testEffectCatalog()}
	require.NoError(t, newCurseParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Equal(t, "|chilled to the bone|freezing|", out[0].Conflict)
	require.True(t, out[0].ConflictFlags.Has(OfNoTeleport))
}

func TestCurseValues(t *testing.T) {
	src := "name:enveloping\nvalues:DEX[-5] | RES_FIRE[-1]\n"
	b := &curseBuilder{cat: testEffectCatalog()}
	require.NoError(t, newCurseParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Equal(t, -5, out[0].Obj.Modifiers[ModDex])
	require.Equal(t, -1, out[0].Obj.El[ElemFire].ResLevel)
}

func TestCurseUnknownCategory(t *testing.T) {
	src := "name:vulnerability\ntype:gizmo\n"
	b := &curseBuilder{cat: testEffectCatalog()}
	err := newCurseParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.UnrecognisedTval, parse.CodeOf(err))
}
