package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/udisondev/mangod/internal/parse"
)

func TestSlayRecord(t *testing.T) {
	src := `code:TROLL_3
name:trolls
race-flag:TROLL
multiplier:25
power:101
melee-verb:smite
range-verb:deeply pierces
esp-chance:17
esp-flag:ESP_TROLL
`
	b := &slayBuilder{}
	require.NoError(t, newSlayParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Len(t, out, 1)
	s := out[0]
	require.Equal(t, "TROLL_3", s.Code)
	require.Equal(t, "trolls", s.Name)
	require.Equal(t, RfTroll, s.RaceFlag)
	require.Equal(t, "", s.Base)
	require.Equal(t, 25, s.Multiplier)
	require.Equal(t, 101, s.Power)
	require.Equal(t, "smite", s.MeleeVerb)
	require.Equal(t, 17, s.EspChance)
	require.Equal(t, OfEspTroll, s.EspFlag)
}

func TestSlayMonsterBase(t *testing.T) {
	src := "code:SPIDER_2\nbase:spider\nmultiplier:20\n"
	b := &slayBuilder{}
	require.NoError(t, newSlayParser(b).ParseAll(strings.NewReader(src)))
	out := b.finish()

	require.Equal(t, "spider", out[0].Base)
	require.Zero(t, out[0].RaceFlag)
}

func TestSlayFlagAndBaseExclusive(t *testing.T) {
	src := "code:SPIDER_2\nrace-flag:ANIMAL\nbase:spider\n"
	b := &slayBuilder{}
	err := newSlayParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.InvalidSlay, parse.CodeOf(err))
}

func TestSlayUnknownMonsterBase(t *testing.T) {
	src := "code:GREMLIN_2\nbase:gremlin\n"
	b := &slayBuilder{}
	err := newSlayParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.InvalidMonsterBase, parse.CodeOf(err))
}

func TestSlayUnknownRaceFlag(t *testing.T) {
	src := "code:FLUFFY_2\nrace-flag:FLUFFY\n"
	b := &slayBuilder{}
	err := newSlayParser(b).ParseAll(strings.NewReader(src))
	require.Equal(t, parse.InvalidFlag, parse.CodeOf(err))
}
