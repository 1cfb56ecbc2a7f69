package content

import "github.com/udisondev/mangod/internal/parse"

// Trailing reserved artifact slots, filled by other subsystems after load.
const artifactReserved = 9

type artifactBuilder struct {
	cat  *Catalog
	recs []*Artifact
	cur  *Artifact
}

func newArtifactParser(b *artifactBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("name str name", b.name)
	p.Reg("base-object sym tval sym sval", b.baseObject)
	p.Reg("graphics char glyph sym color", b.graphics)
	p.Reg("level int level", b.level)
	p.Reg("weight int weight", b.weight)
	p.Reg("alloc int common str minmax", b.alloc)
	p.Reg("attack rand hd int to-h int to-d", b.attack)
	p.Reg("armor int ac int to-a", b.armor)
	p.Reg("flags ?str flags", b.flags)
	p.Reg("act str name", b.act)
	p.Reg("time rand time", b.time)
	p.Reg("msg str text", b.msg)
	p.Reg("values str values", b.values)
	p.Reg("desc str text", b.desc)
	p.Reg("slay str code", b.slay)
	p.Reg("brand str code", b.brand)
	p.Reg("curse sym name int power", b.curse)
	return p
}

func (b *artifactBuilder) name(ln *parse.Line) error {
	a := &Artifact{Name: ln.Str("name")}

	// Артефакты не разрушаются базовыми стихиями.
	for i := ElemBaseMin; i < ElemHighMin; i++ {
		a.El[i].Flags |= ElIgnore
	}

	b.recs = append(b.recs, a)
	b.cur = a
	return nil
}

// baseObject binds the artifact to its kind. Нет такого вида — синтезируем
// временный (special artifacts live on kinds of their own).
func (b *artifactBuilder) baseObject(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	tval := TvalFromName(ln.Sym("tval"))
	if tval < 0 {
		return parse.NewError(parse.UnrecognisedTval)
	}
	b.cur.Tval = tval

	svalName := ln.Sym("sval")
	sval := b.cat.LookupSval(tval, svalName)
	if sval < 0 {
		return b.cat.writeDummyObjectRecord(b.cur, svalName)
	}
	b.cur.Sval = sval
	return nil
}

func (b *artifactBuilder) graphics(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	k := b.cat.LookupKind(b.cur.Tval, b.cur.Sval)
	if k == nil {
		return parse.NewError(parse.Internal)
	}
	if !k.KindFlags.Has(KfInstaArt) {
		return parse.NewError(parse.NotSpecialArtifact)
	}
	k.Glyph = ln.Char("glyph")
	k.Attr = ColorFromText(ln.Sym("color"))
	return nil
}

func (b *artifactBuilder) level(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Level = ln.Int("level")

	// Synthesized kinds carry -1 until the artifact supplies the value.
	if k := b.cat.LookupKind(b.cur.Tval, b.cur.Sval); k != nil && k.Level == -1 {
		k.Level = b.cur.Level
	}
	return nil
}

func (b *artifactBuilder) weight(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Weight = ln.Int("weight")

	if k := b.cat.LookupKind(b.cur.Tval, b.cur.Sval); k != nil && k.Weight == -1 {
		k.Weight = b.cur.Weight
	}
	return nil
}

func (b *artifactBuilder) alloc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.AllocProb = ln.Int("common")
	amin, amax, err := parseMinMax(ln.Str("minmax"))
	if err != nil {
		return err
	}
	if amin > 255 || amax > 255 || amin < 0 || amax < 0 {
		return parse.NewError(parse.OutOfBounds)
	}
	b.cur.AllocMin = amin
	b.cur.AllocMax = amax
	return nil
}

func (b *artifactBuilder) attack(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	hd := ln.Rand("hd")
	b.cur.DD = hd.Dice
	b.cur.DS = hd.Sides
	b.cur.ToH = ln.Int("to-h")
	b.cur.ToD = ln.Int("to-d")
	return nil
}

func (b *artifactBuilder) armor(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.AC = ln.Int("ac")
	b.cur.ToA = ln.Int("to-a")
	return nil
}

func (b *artifactBuilder) flags(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if !ln.Has("flags") {
		return nil
	}
	for _, tok := range splitFlagTokens(ln.Str("flags")) {
		found := grabFlag(&b.cur.Flags, objFlagNames, tok)
		found = grabElementFlag(b.cur.El[:], tok) || found
		if !found {
			return parse.NewError(parse.InvalidFlag)
		}
	}
	return nil
}

// act resolves the activation by name. Special light activations are a
// property of the base kind, not the artifact.
func (b *artifactBuilder) act(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	act := b.cat.FindActivation(ln.Str("name"))
	if b.cur.Tval == TvLight {
		if k := b.cat.LookupKind(b.cur.Tval, b.cur.Sval); k != nil {
			k.Activation = act
		}
	} else {
		b.cur.Activation = act
	}
	return nil
}

func (b *artifactBuilder) time(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Tval == TvLight {
		if k := b.cat.LookupKind(b.cur.Tval, b.cur.Sval); k != nil {
			k.Time = ln.Rand("time")
		}
	} else {
		b.cur.Time = ln.Rand("time")
	}
	return nil
}

func (b *artifactBuilder) msg(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.AltMsg += ln.Str("text")
	return nil
}

func (b *artifactBuilder) values(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	for _, tok := range splitFlagTokens(ln.Str("values")) {
		found := grabIntValue(b.cur.Modifiers[:], tok)
		found = grabResValue(b.cur.El[:], tok) || found
		if !found {
			return parse.NewError(parse.InvalidValue)
		}
	}
	return nil
}

func (b *artifactBuilder) desc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Text += ln.Str("text")
	return nil
}

func (b *artifactBuilder) slay(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	i := b.cat.slayByCode(ln.Str("code"))
	if i < 0 {
		return parse.NewError(parse.UnrecognisedSlay)
	}
	if b.cur.Slays == nil {
		b.cur.Slays = make([]bool, len(b.cat.Slays))
	}
	b.cur.Slays[i] = true
	return nil
}

func (b *artifactBuilder) brand(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	i := b.cat.brandByCode(ln.Str("code"))
	if i < 0 {
		return parse.NewError(parse.UnrecognisedBrand)
	}
	if b.cur.Brands == nil {
		b.cur.Brands = make([]bool, len(b.cat.Brands))
	}
	b.cur.Brands[i] = true
	return nil
}

func (b *artifactBuilder) curse(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	i := b.cat.lookupCurse(ln.Sym("name"))
	if i == len(b.cat.Curses) {
		return parse.NewError(parse.UnrecognisedCurse)
	}
	if b.cur.Curses == nil {
		b.cur.Curses = make([]int, len(b.cat.Curses))
	}
	b.cur.Curses[i] = ln.Int("power")
	return nil
}

// finish materializes the table with artifactReserved empty trailing slots,
// each with its index pre-assigned.
func (b *artifactBuilder) finish() []Artifact {
	out := make([]Artifact, len(b.recs)+artifactReserved)
	for i, a := range b.recs {
		out[i] = *a
		out[i].Aidx = i
	}
	for i := len(b.recs); i < len(out); i++ {
		out[i].Aidx = i
	}
	b.recs, b.cur = nil, nil
	return out
}
