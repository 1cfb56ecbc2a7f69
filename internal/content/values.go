package content

import (
	"strconv"
	"strings"

	"github.com/udisondev/mangod/internal/parse"
)

// Object modifiers (stats first, then the derived modifiers).
const (
	ModStr = iota
	ModInt
	ModWis
	ModDex
	ModCon
	ModStealth
	ModSearch
	ModInfra
	ModTunnel
	ModSpeed
	ModBlows
	ModShots
	ModMight
	ModLight
	ModDamRed
	ModMoves

	ModMax
)

// StatMax — число модификаторов-характеристик в начале списка.
const StatMax = ModCon + 1

var modNames = [ModMax]string{
	"STR", "INT", "WIS", "DEX", "CON",
	"STEALTH", "SEARCH", "INFRA", "TUNNEL", "SPEED",
	"BLOWS", "SHOTS", "MIGHT", "LIGHT", "DAM_RED", "MOVES",
}

// ModByName resolves a modifier code, -1 if unknown.
func ModByName(name string) int {
	for i, n := range modNames {
		if n == name {
			return i
		}
	}
	return -1
}

// ModName returns the code of a modifier.
func ModName(mod int) string {
	if mod < 0 || mod >= ModMax {
		return ""
	}
	return modNames[mod]
}

// Value tokens have the shape NAME[value]: "STR[1]", "RES_FIRE[3]",
// "SPEED[1+d4]". The bracket content is an int or a random range depending
// on the owning table.

func splitValueToken(token string) (name, val string, ok bool) {
	open := strings.IndexByte(token, '[')
	if open <= 0 || !strings.HasSuffix(token, "]") {
		return "", "", false
	}
	return token[:open], token[open+1 : len(token)-1], true
}

// grabIndexAndInt matches NAME against names (after stripping prefix) and
// parses an integer value.
func grabIndexAndInt(names []string, prefix, token string) (index, value int, ok bool) {
	name, val, ok := splitValueToken(token)
	if !ok {
		return 0, 0, false
	}
	if prefix != "" {
		if !strings.HasPrefix(name, prefix) {
			return 0, 0, false
		}
		name = name[len(prefix):]
	}
	index = -1
	for i, n := range names {
		if n == name {
			index = i
			break
		}
	}
	if index < 0 {
		return 0, 0, false
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return 0, 0, false
	}
	return index, v, true
}

// grabIntValue writes an integer modifier value into mods.
func grabIntValue(mods []int, token string) bool {
	i, v, ok := grabIndexAndInt(modNames[:], "", token)
	if !ok {
		return false
	}
	mods[i] = v
	return true
}

// grabRandValue writes a random-range modifier value into mods.
func grabRandValue(mods []parse.Random, token string) bool {
	name, val, ok := splitValueToken(token)
	if !ok {
		return false
	}
	i := ModByName(name)
	if i < 0 {
		return false
	}
	rv, ok := parse.ParseRandom(val)
	if !ok {
		return false
	}
	mods[i] = rv
	return true
}

// grabResValue recognises RES_<elem>[n] tokens.
func grabResValue(el []ElementInfo, token string) bool {
	i, v, ok := grabIndexAndInt(elementNames[:], "RES_", token)
	if !ok {
		return false
	}
	el[i].ResLevel = v
	return true
}
