package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udisondev/mangod/internal/parse"
)

func TestObjBaseDefaultsCarryForward(t *testing.T) {
	src := `default:break-chance:10
default:max-stack:40
name:light:light source
graphics:yellow
flags:HATES_FIRE | IGNORE_ELEC | EASY_KNOW
name:sword
default:break-chance:50
name:hafted
`
	b := &objBaseBuilder{}
	require.NoError(t, newObjBaseParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Len(t, out, TvMax)
	for i := range out {
		require.Equal(t, i, out[i].Tval)
	}

	light := out[TvLight]
	require.Equal(t, "light source", light.Name)
	require.Equal(t, 10, light.BreakPerc)
	require.Equal(t, 40, light.MaxStack)
	require.Equal(t, ColorYellow, light.Attr)
	require.NotZero(t, light.El[ElemFire].Flags&ElHates)
	require.NotZero(t, light.El[ElemElec].Flags&ElIgnore)
	require.True(t, light.KindFlags.Has(KfEasyKnow))

	// A later default only affects records declared after it.
	require.Equal(t, 10, out[TvSword].BreakPerc)
	require.Equal(t, 50, out[TvHafted].BreakPerc)

	// Categories never declared keep zero values.
	require.Equal(t, 0, out[TvRing].BreakPerc)
	require.Equal(t, "", out[TvRing].Name)
}

func TestObjBaseBadDefaultLabel(t *testing.T) {
	b := &objBaseBuilder{}
	err := newObjBaseParser(b).ParseAll(strings.NewReader("default:armor-class:5\n"))
	require.Equal(t, parse.UndefinedDirective, parse.CodeOf(err))
}

func TestObjBaseUnknownCategory(t *testing.T) {
	b := &objBaseBuilder{}
	err := newObjBaseParser(b).ParseAll(strings.NewReader("name:gizmo\n"))
	require.Equal(t, parse.UnrecognisedTval, parse.CodeOf(err))
}

func TestObjBaseInvalidFlag(t *testing.T) {
	src := "name:sword\nflags:NOT_A_FLAG\n"
	b := &objBaseBuilder{}
	err := newObjBaseParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.InvalidFlag, parse.CodeOf(err))
}
