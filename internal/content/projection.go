package content

import "github.com/udisondev/mangod/internal/parse"

// projectionBuilder accumulates projection records in declaration order.
// The explicit cur pointer is the only cursor; there is no shared state.
type projectionBuilder struct {
	recs []*Projection
	cur  *Projection
}

func newProjectionParser(b *projectionBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("code str code", b.code)
	p.Reg("name str name", b.name)
	p.Reg("type str type", b.typ)
	p.Reg("desc str desc", b.desc)
	p.Reg("blind-desc str desc", b.blindDesc)
	p.Reg("lash-desc str desc", b.lashDesc)
	p.Reg("numerator uint num", b.numerator)
	p.Reg("denominator rand denom", b.denominator)
	p.Reg("divisor uint div", b.divisor)
	p.Reg("damage-cap uint cap", b.damageCap)
	p.Reg("msgt sym type", b.msgType)
	p.Reg("obvious uint answer", b.obvious)
	p.Reg("color sym color", b.color)
	p.Reg("pvp-flags ?str flags", b.pvpFlags)
	p.Reg("threat str threat", b.threat)
	p.Reg("threat-flag sym flag", b.threatFlag)
	return p
}

func (b *projectionBuilder) code(ln *parse.Line) error {
	pr := &Projection{Index: len(b.recs), Code: ln.Str("code")}

	// The first ElemMax records double as the element table and must keep
	// the canonical codes in canonical order.
	if pr.Index < ElemMax && pr.Code != ElementName(pr.Index) {
		return parse.NewError(parse.ElementNameMismatch)
	}

	b.recs = append(b.recs, pr)
	b.cur = pr
	return nil
}

func (b *projectionBuilder) name(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Name = ln.Str("name")
	return nil
}

func (b *projectionBuilder) typ(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Type = ln.Str("type")
	return nil
}

func (b *projectionBuilder) desc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Desc = ln.Str("desc")
	return nil
}

func (b *projectionBuilder) blindDesc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.BlindDesc = ln.Str("desc")
	return nil
}

func (b *projectionBuilder) lashDesc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.LashDesc = ln.Str("desc")
	return nil
}

func (b *projectionBuilder) numerator(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Numerator = ln.Uint("num")
	return nil
}

func (b *projectionBuilder) denominator(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Denominator = ln.Rand("denom")
	return nil
}

func (b *projectionBuilder) divisor(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Divisor = ln.Uint("div")
	return nil
}

func (b *projectionBuilder) damageCap(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.DamageCap = ln.Uint("cap")
	return nil
}

func (b *projectionBuilder) msgType(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.MsgType = ln.Sym("type")
	return nil
}

func (b *projectionBuilder) obvious(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Obvious = ln.Uint("answer") == 1
	return nil
}

func (b *projectionBuilder) color(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	attr := ColorFromText(ln.Sym("color"))
	if attr < 0 {
		return parse.NewError(parse.InvalidColor)
	}
	b.cur.Color = attr
	return nil
}

func (b *projectionBuilder) pvpFlags(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if !ln.Has("flags") {
		return nil
	}
	for _, tok := range splitFlagTokens(ln.Str("flags")) {
		if !grabFlag(&b.cur.PvPFlags, attackFlagNames, tok) {
			return parse.NewError(parse.InvalidFlag)
		}
	}
	return nil
}

func (b *projectionBuilder) threat(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Threat = ln.Str("threat")
	return nil
}

func (b *projectionBuilder) threatFlag(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	f := lookupFlag(raceFlagNames, ln.Sym("flag"))
	if f == 0 {
		return parse.NewError(parse.InvalidFlag)
	}
	b.cur.ThreatFlag = f
	return nil
}

// finish freezes the table: one contiguous slice in declaration order, each
// element's index equal to its slot.
func (b *projectionBuilder) finish() []Projection {
	out := make([]Projection, len(b.recs))
	for i, pr := range b.recs {
		out[i] = *pr
		out[i].Index = i
	}
	b.recs, b.cur = nil, nil
	return out
}
