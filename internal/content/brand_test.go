package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udisondev/mangod/internal/parse"
)

func TestBrandRecord(t *testing.T) {
	src := `code:FIRE_2
name:fire
verb:burns
multiplier:20
power:63
resist-flag:IM_FIRE
active-verb:flares
active-verb-plural:flare
desc-adjective:fiery
`
	b := &brandBuilder{}
	require.NoError(t, newBrandParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Len(t, out, 1)
	br := out[0]
	require.Equal(t, "FIRE_2", br.Code)
	require.Equal(t, "fire", br.Name)
	require.Equal(t, "burns", br.Verb)
	require.Equal(t, 20, br.Multiplier)
	require.Equal(t, 63, br.Power)
	require.Equal(t, RfImFire, br.ResistFlag)
	require.Equal(t, "flares", br.ActiveVerb)
	require.Equal(t, "flare", br.ActiveVerbPlural)
	require.Equal(t, "fiery", br.DescAdjective)
}

func TestBrandHeaderRequired(t *testing.T) {
	b := &brandBuilder{}
	err := newBrandParser(b).ParseAll(strings.NewReader("name:fire\n"))
	require.Equal(t, parse.MissingRecordHeader, parse.CodeOf(err))
}

func TestBrandUnknownResistFlag(t *testing.T) {
	src := "code:FIRE_2\nresist-flag:IM_LAVA\n"
	b := &brandBuilder{}
	err := newBrandParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.InvalidFlag, parse.CodeOf(err))
}
