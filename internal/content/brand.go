package content

import "github.com/udisondev/mangod/internal/parse"

type brandBuilder struct {
	recs []*Brand
	cur  *Brand
}

func newBrandParser(b *brandBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("code str code", b.code)
	p.Reg("name str name", b.name)
	p.Reg("verb str verb", b.verb)
	p.Reg("multiplier uint multiplier", b.multiplier)
	p.Reg("power uint power", b.power)
	p.Reg("resist-flag sym flag", b.resistFlag)
	p.Reg("active-verb str verb", b.activeVerb)
	p.Reg("active-verb-plural str verb", b.activeVerbPlural)
	p.Reg("desc-adjective str adj", b.descAdjective)
	return p
}

func (b *brandBuilder) code(ln *parse.Line) error {
	br := &Brand{Code: ln.Str("code")}
	b.recs = append(b.recs, br)
	b.cur = br
	return nil
}

func (b *brandBuilder) name(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Name = ln.Str("name")
	return nil
}

func (b *brandBuilder) verb(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Verb = ln.Str("verb")
	return nil
}

func (b *brandBuilder) multiplier(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Multiplier = ln.Uint("multiplier")
	return nil
}

func (b *brandBuilder) power(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Power = ln.Uint("power")
	return nil
}

func (b *brandBuilder) resistFlag(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	f := lookupFlag(raceFlagNames, ln.Sym("flag"))
	if f == 0 {
		return parse.NewError(parse.InvalidFlag)
	}
	b.cur.ResistFlag = f
	return nil
}

func (b *brandBuilder) activeVerb(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.ActiveVerb = ln.Str("verb")
	return nil
}

func (b *brandBuilder) activeVerbPlural(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.ActiveVerbPlural = ln.Str("verb")
	return nil
}

func (b *brandBuilder) descAdjective(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.DescAdjective = ln.Str("adj")
	return nil
}

func (b *brandBuilder) finish() []Brand {
	out := make([]Brand, len(b.recs))
	for i, br := range b.recs {
		out[i] = *br
	}
	b.recs, b.cur = nil, nil
	return out
}
