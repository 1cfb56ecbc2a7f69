// Package dice implements the formula sub-language of the content files:
// compact dice expressions ("2+1d6", "$B+$Dd$S") whose named variables are
// bound to base-value providers combined through small operation strings.
package dice

import (
	"math/rand"
	"strconv"
	"strings"
)

// Aspect slots of a dice expression. Each holds either a literal number or
// the name of a bound variable.
type term struct {
	lit      int
	variable string
}

func (t term) isVar() bool { return t.variable != "" }

// Dice is a parsed dice expression: base + XdY + magic bonus, any of which
// may be a named variable resolved through a bound Expression.
type Dice struct {
	base   term
	dice   term
	sides  term
	mBonus term

	exprs map[string]*Expression
}

// Value is a fully resolved dice expression.
type Value struct {
	Base   int
	Dice   int
	Sides  int
	MBonus int
}

// New returns an empty dice object. Use Parse to fill it from text.
func New() *Dice {
	return &Dice{exprs: make(map[string]*Expression)}
}

// Parse fills d from the textual grammar: '+'-separated parts, each either a
// base number, an XdY dice term, or an M-prefixed magic bonus; every number
// may instead be a $NAME variable. Returns false on a malformed string.
func (d *Dice) Parse(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	var haveBase, haveDice, haveBonus bool
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			return false
		}
		switch {
		case part[0] == 'M' || part[0] == 'm':
			if haveBonus {
				return false
			}
			t, ok := parseTerm(part[1:])
			if !ok {
				return false
			}
			d.mBonus = t
			haveBonus = true
		case containsDiceSep(part):
			if haveDice {
				return false
			}
			x, y, ok := splitDice(part)
			if !ok {
				return false
			}
			d.dice, d.sides = x, y
			haveDice = true
		default:
			if haveBase {
				return false
			}
			t, ok := parseTerm(part)
			if !ok {
				return false
			}
			d.base = t
			haveBase = true
		}
	}
	return true
}

// containsDiceSep reports whether part has a 'd' separating two number or
// variable tokens ("2d8", "$Dd$S", "d4"). A lone variable like "$DAM" has no
// separator.
func containsDiceSep(part string) bool {
	if part[0] == '$' {
		// Variable first: a separator 'd' can only follow the variable name.
		for i := 1; i < len(part); i++ {
			if part[i] == 'd' && i > 1 {
				return true
			}
			if !isVarChar(part[i]) {
				return false
			}
		}
		return false
	}
	return strings.ContainsRune(part, 'd')
}

func splitDice(part string) (x, y term, ok bool) {
	var i int
	if part[0] == '$' {
		i = 1
		for i < len(part) && part[i] != 'd' {
			i++
		}
	} else {
		i = strings.IndexByte(part, 'd')
	}
	if i < 0 || i >= len(part) {
		return x, y, false
	}
	left, right := part[:i], part[i+1:]
	if left == "" {
		x = term{lit: 1}
	} else {
		x, ok = parseTerm(left)
		if !ok {
			return x, y, false
		}
	}
	y, ok = parseTerm(right)
	return x, y, ok
}

func parseTerm(s string) (term, bool) {
	if s == "" {
		return term{}, false
	}
	if s[0] == '$' {
		name := s[1:]
		if name == "" {
			return term{}, false
		}
		for i := 0; i < len(name); i++ {
			if !isVarChar(name[i]) {
				return term{}, false
			}
		}
		return term{variable: name}, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return term{}, false
	}
	return term{lit: n}, true
}

func isVarChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c == '_'
}

// BindExpression attaches expr to the named variable. The dice object keeps
// its own deep copy; the caller's handle must not be reused afterwards.
// Binding a name that appears nowhere in the expression fails.
func (d *Dice) BindExpression(name string, expr *Expression) bool {
	if !d.hasVariable(name) {
		return false
	}
	d.exprs[name] = expr.copy()
	return true
}

func (d *Dice) hasVariable(name string) bool {
	for _, t := range []term{d.base, d.dice, d.sides, d.mBonus} {
		if t.variable == name {
			return true
		}
	}
	return false
}

func (d *Dice) resolve(t term) int {
	if !t.isVar() {
		return t.lit
	}
	if e, ok := d.exprs[t.variable]; ok {
		return int(e.Evaluate())
	}
	return 0
}

// Evaluate resolves every aspect through its bound expression. Unbound
// variables resolve to zero.
func (d *Dice) Evaluate() Value {
	return Value{
		Base:   d.resolve(d.base),
		Dice:   d.resolve(d.dice),
		Sides:  d.resolve(d.sides),
		MBonus: d.resolve(d.mBonus),
	}
}

// Roll evaluates the expression and rolls it.
func (d *Dice) Roll(rng *rand.Rand) int {
	v := d.Evaluate()
	total := v.Base
	for i := 0; i < v.Dice && v.Sides > 0; i++ {
		total += rng.Intn(v.Sides) + 1
	}
	if v.MBonus > 0 {
		total += rng.Intn(v.MBonus + 1)
	}
	return total
}
