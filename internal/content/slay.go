package content

import "github.com/udisondev/mangod/internal/parse"

type slayBuilder struct {
	recs []*Slay
	cur  *Slay
}

func newSlayParser(b *slayBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("code str code", b.code)
	p.Reg("name str name", b.name)
	p.Reg("race-flag sym flag", b.raceFlag)
	p.Reg("base sym base", b.base)
	p.Reg("multiplier uint multiplier", b.multiplier)
	p.Reg("power uint power", b.power)
	p.Reg("melee-verb str verb", b.meleeVerb)
	p.Reg("range-verb str verb", b.rangeVerb)
	p.Reg("esp-chance uint chance", b.espChance)
	p.Reg("esp-flag sym flag", b.espFlag)
	return p
}

func (b *slayBuilder) code(ln *parse.Line) error {
	s := &Slay{Code: ln.Str("code")}
	b.recs = append(b.recs, s)
	b.cur = s
	return nil
}

func (b *slayBuilder) name(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Name = ln.Str("name")
	return nil
}

func (b *slayBuilder) raceFlag(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	f := lookupFlag(raceFlagNames, ln.Sym("flag"))
	if f == 0 {
		return parse.NewError(parse.InvalidFlag)
	}
	b.cur.RaceFlag = f

	// Flag or base, not both.
	if b.cur.RaceFlag != 0 && b.cur.Base != "" {
		return parse.NewError(parse.InvalidSlay)
	}
	return nil
}

func (b *slayBuilder) base(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Base = ln.Sym("base")
	if !validMonsterBase(b.cur.Base) {
		return parse.NewError(parse.InvalidMonsterBase)
	}

	// Flag or base, not both.
	if b.cur.RaceFlag != 0 && b.cur.Base != "" {
		return parse.NewError(parse.InvalidSlay)
	}
	return nil
}

func (b *slayBuilder) multiplier(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Multiplier = ln.Uint("multiplier")
	return nil
}

func (b *slayBuilder) power(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Power = ln.Uint("power")
	return nil
}

func (b *slayBuilder) meleeVerb(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.MeleeVerb = ln.Str("verb")
	return nil
}

func (b *slayBuilder) rangeVerb(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.RangeVerb = ln.Str("verb")
	return nil
}

func (b *slayBuilder) espChance(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.EspChance = ln.Uint("chance")
	return nil
}

func (b *slayBuilder) espFlag(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	f := lookupFlag(objFlagNames, ln.Sym("flag"))
	if f == 0 {
		return parse.NewError(parse.InvalidFlag)
	}
	b.cur.EspFlag = f
	return nil
}

func (b *slayBuilder) finish() []Slay {
	out := make([]Slay, len(b.recs))
	for i, s := range b.recs {
		out[i] = *s
	}
	b.recs, b.cur = nil, nil
	return out
}
