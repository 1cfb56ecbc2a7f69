package content

import "github.com/udisondev/mangod/internal/parse"

type propertyBuilder struct {
	recs []*ObjProperty
	cur  *ObjProperty
}

func newPropertyParser(b *propertyBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("name str name", b.name)
	p.Reg("code str code", b.code)
	p.Reg("type str type", b.typ)
	p.Reg("subtype str subtype", b.subtype)
	p.Reg("id-type str id", b.idType)
	p.Reg("power int power", b.power)
	p.Reg("mult int mult", b.mult)
	p.Reg("type-mult sym type int mult", b.typeMult)
	p.Reg("adjective str adj", b.adjective)
	p.Reg("neg-adjective str neg_adj", b.negAdjective)
	p.Reg("msg str msg", b.msg)
	p.Reg("desc str desc", b.desc)
	p.Reg("short-desc str desc", b.shortDesc)
	return p
}

func (b *propertyBuilder) name(ln *parse.Line) error {
	prop := &ObjProperty{Name: ln.Str("name")}

	// Множители по категориям по умолчанию единичные.
	for i := range prop.TypeMult {
		prop.TypeMult[i] = 1
	}

	b.recs = append(b.recs, prop)
	b.cur = prop
	return nil
}

func (b *propertyBuilder) typ(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	switch ln.Str("type") {
	case "stat":
		b.cur.Type = PropStat
	case "mod":
		b.cur.Type = PropMod
	case "flag":
		b.cur.Type = PropFlag
	case "ignore":
		b.cur.Type = PropIgnore
	case "resistance":
		b.cur.Type = PropResist
	case "vulnerability":
		b.cur.Type = PropVuln
	case "immunity":
		b.cur.Type = PropImm
	default:
		return parse.NewError(parse.InvalidProperty)
	}
	return nil
}

func (b *propertyBuilder) subtype(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	switch ln.Str("subtype") {
	case "sustain":
		b.cur.Subtype = SubSustain
	case "protection":
		b.cur.Subtype = SubProtection
	case "misc ability":
		b.cur.Subtype = SubMisc
	case "light":
		b.cur.Subtype = SubLight
	case "melee":
		b.cur.Subtype = SubMelee
	case "bad":
		b.cur.Subtype = SubBad
	case "dig":
		b.cur.Subtype = SubDig
	case "throw":
		b.cur.Subtype = SubThrow
	case "other":
		b.cur.Subtype = SubOther
	case "ESP flag":
		b.cur.Subtype = SubEsp
	default:
		return parse.NewError(parse.InvalidSubtype)
	}
	return nil
}

func (b *propertyBuilder) idType(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	switch ln.Str("id") {
	case "on effect":
		b.cur.IDType = IDNormal
	case "timed":
		b.cur.IDType = IDTimed
	case "on wield":
		b.cur.IDType = IDWield
	default:
		return parse.NewError(parse.InvalidIDType)
	}
	return nil
}

// code resolves the property's index in the namespace its type selects.
func (b *propertyBuilder) code(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Type == PropNone {
		return parse.NewError(parse.MissingObjPropType)
	}

	code := ln.Str("code")
	index := -1
	switch b.cur.Type {
	case PropStat, PropMod:
		index = ModByName(code)
	case PropFlag:
		index = lookupFlag(objFlagNames, code) - 1
	case PropIgnore, PropResist, PropVuln, PropImm:
		index = ElementByName(code)
	}
	if index < 0 {
		return parse.NewError(parse.InvalidObjPropCode)
	}
	b.cur.Index = index
	return nil
}

func (b *propertyBuilder) power(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Power = ln.Int("power")
	return nil
}

func (b *propertyBuilder) mult(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Mult = ln.Int("mult")
	return nil
}

func (b *propertyBuilder) typeMult(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	tval := TvalFromName(ln.Sym("type"))
	if tval < 0 {
		return parse.NewError(parse.UnrecognisedTval)
	}
	b.cur.TypeMult[tval] = ln.Int("mult")
	return nil
}

func (b *propertyBuilder) adjective(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Adjective = ln.Str("adj")
	return nil
}

func (b *propertyBuilder) negAdjective(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.NegAdj = ln.Str("neg_adj")
	return nil
}

func (b *propertyBuilder) msg(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Msg = ln.Str("msg")
	return nil
}

func (b *propertyBuilder) desc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Desc = ln.Str("desc")
	return nil
}

func (b *propertyBuilder) shortDesc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.ShortDesc = ln.Str("desc")
	return nil
}

func (b *propertyBuilder) finish() []ObjProperty {
	out := make([]ObjProperty, len(b.recs))
	for i, prop := range b.recs {
		out[i] = *prop
	}
	b.recs, b.cur = nil, nil
	return out
}
