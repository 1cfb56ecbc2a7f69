package content

import "github.com/udisondev/mangod/internal/parse"

// objBaseBuilder carries running defaults forward into every new base
// record: a "default" directive changes what later "name" records start
// from, not what earlier ones already got.
type objBaseBuilder struct {
	defaults ObjectBase
	recs     []*ObjectBase
	cur      *ObjectBase
}

func newObjBaseParser(b *objBaseBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("default sym label int value", b.def)
	p.Reg("name sym tval ?str name", b.name)
	p.Reg("graphics sym color", b.graphics)
	p.Reg("break int breakage", b.breakChance)
	p.Reg("max-stack int size", b.maxStack)
	p.Reg("flags str flags", b.flags)
	return p
}

func (b *objBaseBuilder) def(ln *parse.Line) error {
	switch ln.Sym("label") {
	case "break-chance":
		b.defaults.BreakPerc = ln.Int("value")
	case "max-stack":
		b.defaults.MaxStack = ln.Int("value")
	default:
		return parse.NewError(parse.UndefinedDirective)
	}
	return nil
}

func (b *objBaseBuilder) name(ln *parse.Line) error {
	kb := new(ObjectBase)
	*kb = b.defaults

	kb.Tval = TvalFromName(ln.Sym("tval"))
	if kb.Tval == -1 {
		return parse.NewError(parse.UnrecognisedTval)
	}
	if ln.Has("name") {
		kb.Name = ln.Str("name")
	}
	kb.NumSvals = 0

	b.recs = append(b.recs, kb)
	b.cur = kb
	return nil
}

func (b *objBaseBuilder) graphics(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Attr = ColorFromText(ln.Sym("color"))
	return nil
}

func (b *objBaseBuilder) breakChance(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.BreakPerc = ln.Int("breakage")
	return nil
}

func (b *objBaseBuilder) maxStack(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.MaxStack = ln.Int("size")
	return nil
}

func (b *objBaseBuilder) flags(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	for _, tok := range splitFlagTokens(ln.Str("flags")) {
		found := grabFlag(&b.cur.Flags, objFlagNames, tok)
		found = grabFlag(&b.cur.KindFlags, kindFlagNames, tok) || found
		found = grabElementFlag(b.cur.El[:], tok) || found
		if !found {
			return parse.NewError(parse.InvalidFlag)
		}
	}
	return nil
}

// finish lays the bases out indexed by tval. Exactly one slot per category;
// categories never declared keep zero values.
func (b *objBaseBuilder) finish() []ObjectBase {
	out := make([]ObjectBase, TvMax)
	for i := range out {
		out[i].Tval = i
	}
	for _, kb := range b.recs {
		if kb.Tval >= TvMax {
			continue
		}
		out[kb.Tval] = *kb
	}
	b.recs, b.cur = nil, nil
	return out
}
