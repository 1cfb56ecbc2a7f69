package parse

import (
	"strconv"
	"strings"
)

// Random is a textual random-range value: Base + Dice rolls of Sides, plus a
// magic bonus MBonus. Accepted shapes: "5", "2d8", "3+1d6", "d4", "1d4M6".
type Random struct {
	Base   int
	Dice   int
	Sides  int
	MBonus int
}

// ParseRandom parses the "[base][+][XdY][Mm]" shape.
func ParseRandom(s string) (Random, bool) {
	var rv Random
	s = strings.TrimSpace(s)
	if s == "" {
		return rv, false
	}

	// Split off the magic bonus first: "1d4M6".
	if i := strings.IndexByte(s, 'M'); i >= 0 {
		m, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return rv, false
		}
		rv.MBonus = m
		s = s[:i]
	}

	base, dice, ok := strings.Cut(s, "+")
	if !ok {
		// A single part is either a dice term or a plain base.
		if strings.ContainsRune(base, 'd') {
			dice, base = base, ""
		}
	}

	if base != "" {
		b, err := strconv.Atoi(base)
		if err != nil {
			return rv, false
		}
		rv.Base = b
	}

	if dice != "" {
		x, y, found := strings.Cut(dice, "d")
		if !found {
			return rv, false
		}
		if x == "" {
			rv.Dice = 1
		} else {
			n, err := strconv.Atoi(x)
			if err != nil {
				return rv, false
			}
			rv.Dice = n
		}
		n, err := strconv.Atoi(y)
		if err != nil {
			return rv, false
		}
		rv.Sides = n
	}

	return rv, true
}
