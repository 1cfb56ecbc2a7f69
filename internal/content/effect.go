package content

import (
	"github.com/udisondev/mangod/internal/dice"
	"github.com/udisondev/mangod/internal/parse"
)

// Effect kinds an object, curse or activation may carry. Only the names
// matter to the compiler; the runtime dispatch lives with the consumers.
var effectNames = []string{
	"DAMAGE", "HEAL_HP", "CURE", "TIMED_INC", "TIMED_DEC",
	"BOLT", "BEAM", "BALL", "BREATH", "ARC", "TOUCH", "PROJECT_LOS",
	"DRAIN_STAT", "RESTORE_STAT", "GAIN_STAT", "LOSE_RANDOM_STAT",
	"NOURISH", "TELEPORT", "TELEPORT_TO", "TELEPORT_LEVEL",
	"DETECT_MONSTERS", "DETECT_TREASURES", "DETECT_INVISIBLE",
	"LIGHT_AREA", "DARKEN_AREA", "LIGHT_LEVEL", "EARTHQUAKE",
	"RECALL", "GLYPH", "SUMMON", "BANISH", "MASS_BANISH", "DESTRUCTION",
	"ENCHANT", "RECHARGE", "BRAND_AMMO", "BRAND_WEAPON", "REMOVE_CURSE",
	"MAP_AREA", "IDENTIFY", "ACQUIRE", "WAKE", "AGGRAVATE",
}

func effectByName(name string) int {
	for i, n := range effectNames {
		if n == name {
			return i
		}
	}
	return -1
}

// Timed condition names an effect subtype may reference.
var timedNames = []string{
	"FAST", "SLOW", "BLIND", "PARALYZED", "CONFUSED", "AFRAID", "POISONED",
	"CUT", "STUN", "PROTEVIL", "INVULN", "HERO", "SHERO", "SHIELD",
	"BLESSED", "SINVIS", "INFRA", "OPP_ACID", "OPP_ELEC", "OPP_FIRE",
	"OPP_COLD", "OPP_POIS", "IMAGE", "AMNESIA", "BOLD",
}

// grabEffectData builds one effect node from the shared
// "effect sym eff ?sym type ?int radius ?int other" directive. The optional
// subtype resolves against, in order: projection codes, timed condition
// names, stat names.
func grabEffectData(c *Catalog, ln *parse.Line) (*Effect, error) {
	eff := effectByName(ln.Sym("eff"))
	if eff < 0 {
		return nil, parse.NewError(parse.InvalidEffect)
	}

	e := &Effect{Index: eff}

	if ln.Has("type") {
		sub := ln.Sym("type")
		idx := c.ProjectionByCode(sub)
		if idx < 0 {
			idx = lookupFlag(timedNames, sub) - 1
		}
		if idx < 0 {
			idx = ModByName(sub)
			if idx >= StatMax {
				idx = -1
			}
		}
		if idx < 0 {
			return nil, parse.NewError(parse.InvalidValue)
		}
		e.Subtype = idx
	}
	if ln.Has("radius") {
		e.Radius = ln.Int("radius")
	}
	if ln.Has("other") {
		e.Other = ln.Int("other")
	}
	return e, nil
}

// applyEffectYX positions the most recent effect. Arriving before any effect
// is treated as an authoring slip, not an error.
func applyEffectYX(e *Effect, ln *parse.Line) error {
	if e == nil {
		return nil
	}
	e.Y = ln.Int("y")
	e.X = ln.Int("x")
	return nil
}

// applyEffectDice parses a dice string onto the most recent effect, same
// soft-fail policy as applyEffectYX.
func applyEffectDice(e *Effect, ln *parse.Line) error {
	if e == nil {
		return nil
	}
	d := dice.New()
	if !d.Parse(ln.Str("dice")) {
		return parse.NewError(parse.InvalidDice)
	}
	e.Dice = d
	return nil
}

// applyEffectExpr binds one named variable of the effect's dice expression
// to a base-value provider from the spell registry. Ownership of the
// transient expression passes to the dice object, which keeps its own copy.
func applyEffectExpr(e *Effect, ln *parse.Line) error {
	if e == nil {
		return nil
	}
	if e.Dice == nil {
		return nil
	}

	expr := dice.NewExpression()
	expr.SetBaseValue(dice.SpellBaseByName(ln.Sym("base")))
	if !expr.AddOperationsString(ln.Str("expr")) {
		return parse.NewError(parse.BadExpressionString)
	}
	if !e.Dice.BindExpression(ln.Sym("name"), expr) {
		return parse.NewError(parse.UnboundExpression)
	}
	return nil
}
