package content

import "github.com/udisondev/mangod/internal/parse"

// curseBuilder builds curse records. Каждая запись владеет синтетическим
// объектом-носителем: боевые штрафы, флаги и эффекты проклятия живут на нём.
type curseBuilder struct {
	cat  *Catalog
	recs []*Curse
	cur  *Curse
}

func newCurseParser(b *curseBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("name str name", b.name)
	p.Reg("type sym tval", b.typ)
	p.Reg("combat int to-h int to-d int to-a", b.combat)
	p.Reg("effect sym eff ?sym type ?int radius ?int other", b.effect)
	p.Reg("effect-yx int y int x", b.effectYX)
	p.Reg("dice str dice", b.dice)
	p.Reg("expr sym name sym base str expr", b.expr)
	p.Reg("msg str text", b.msg)
	p.Reg("time rand time", b.time)
	p.Reg("flags str flags", b.flags)
	p.Reg("values str values", b.values)
	p.Reg("desc str desc", b.desc)
	p.Reg("conflict str conf", b.conflict)
	p.Reg("conflict-flags str flags", b.conflictFlags)
	return p
}

func (b *curseBuilder) name(ln *parse.Line) error {
	c := &Curse{
		Name: ln.Str("name"),
		Poss: make([]bool, TvMax),
		Obj:  new(Object),
	}
	b.recs = append(b.recs, c)
	b.cur = c
	return nil
}

func (b *curseBuilder) typ(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	tval := TvalFromName(ln.Sym("tval"))
	if tval < 0 || tval >= TvMax {
		return parse.NewError(parse.UnrecognisedTval)
	}
	b.cur.Poss[tval] = true
	return nil
}

func (b *curseBuilder) combat(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Obj.ToH = ln.Int("to-h")
	b.cur.Obj.ToD = ln.Int("to-d")
	b.cur.Obj.ToA = ln.Int("to-a")
	return nil
}

func (b *curseBuilder) effect(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	e, err := grabEffectData(b.cat, ln)
	if err != nil {
		return err
	}
	e.Next = b.cur.Obj.Effect
	b.cur.Obj.Effect = e
	return nil
}

func (b *curseBuilder) effectYX(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectYX(b.cur.Obj.Effect, ln)
}

func (b *curseBuilder) dice(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectDice(b.cur.Obj.Effect, ln)
}

func (b *curseBuilder) expr(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectExpr(b.cur.Obj.Effect, ln)
}

func (b *curseBuilder) msg(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Obj.Effect == nil {
		return nil
	}
	b.cur.Obj.Effect.SelfMsg = ln.Str("text")
	return nil
}

func (b *curseBuilder) time(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Obj.Time = ln.Rand("time")
	return nil
}

func (b *curseBuilder) flags(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	for _, tok := range splitFlagTokens(ln.Str("flags")) {
		found := grabFlag(&b.cur.Obj.Flags, objFlagNames, tok)
		found = grabElementFlag(b.cur.Obj.El[:], tok) || found
		if !found {
			return parse.NewError(parse.InvalidFlag)
		}
	}
	return nil
}

func (b *curseBuilder) values(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	for _, tok := range splitFlagTokens(ln.Str("values")) {
		found := grabIntValue(b.cur.Obj.Modifiers[:], tok)
		found = grabResValue(b.cur.Obj.El[:], tok) || found
		if !found {
			return parse.NewError(parse.InvalidValue)
		}
	}
	return nil
}

func (b *curseBuilder) desc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Desc += ln.Str("desc")
	return nil
}

// conflict accumulates "|"-bracketed names so that a substring search for
// "|name|" never matches a prefix of a longer curse name.
func (b *curseBuilder) conflict(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Conflict == "" {
		b.cur.Conflict = "|"
	}
	b.cur.Conflict += ln.Str("conf") + "|"
	return nil
}

func (b *curseBuilder) conflictFlags(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	for _, tok := range splitFlagTokens(ln.Str("flags")) {
		if !grabFlag(&b.cur.ConflictFlags, objFlagNames, tok) {
			return parse.NewError(parse.InvalidFlag)
		}
	}
	return nil
}

func (b *curseBuilder) finish() []Curse {
	out := make([]Curse, len(b.recs))
	for i, c := range b.recs {
		out[i] = *c
	}
	b.recs, b.cur = nil, nil
	return out
}
