package content

import "github.com/udisondev/mangod/internal/parse"

type egoBuilder struct {
	cat  *Catalog
	recs []*EgoItem
	cur  *EgoItem
}

func newEgoParser(b *egoBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("name str name", b.name)
	p.Reg("info int cost int rating", b.info)
	p.Reg("alloc int common str minmax", b.alloc)
	p.Reg("type sym tval", b.typ)
	p.Reg("item sym tval sym sval", b.item)
	p.Reg("combat rand th rand td rand ta", b.combat)
	p.Reg("min-combat int th int td int ta", b.minCombat)
	p.Reg("act str name", b.act)
	p.Reg("time rand time", b.time)
	p.Reg("flags ?str flags", b.flags)
	p.Reg("values str values", b.values)
	p.Reg("min-values str min_values", b.minValues)
	p.Reg("desc str text", b.desc)
	p.Reg("slay str code", b.slay)
	p.Reg("brand str code", b.brand)
	p.Reg("curse sym name int power", b.curse)
	return p
}

func (b *egoBuilder) name(ln *parse.Line) error {
	e := &EgoItem{Name: ln.Str("name")}
	b.recs = append(b.recs, e)
	b.cur = e
	return nil
}

func (b *egoBuilder) info(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Cost = ln.Int("cost")
	b.cur.Rating = ln.Int("rating")
	return nil
}

func (b *egoBuilder) alloc(ln *parse.Line) error {
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

// typ admits every kind of one category. Категория без единого вида — ошибка:
// эго-предмету не на что лечь.
func (b *egoBuilder) typ(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	tval := TvalFromName(ln.Sym("tval"))
	if tval < 0 {
		return parse.NewError(parse.UnrecognisedTval)
	}

	found := false
	for i := range b.cat.Kinds {
		if b.cat.Kinds[i].Tval != tval {
			continue
		}
		b.cur.PossItems = &PossItem{Kidx: i, Next: b.cur.PossItems}
		found = true
	}
	if !found {
		return parse.NewError(parse.NoKindForEgoType)
	}
	return nil
}

func (b *egoBuilder) item(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	tval := TvalFromName(ln.Sym("tval"))
	if tval < 0 {
		return parse.NewError(parse.UnrecognisedTval)
	}
	sval := b.cat.LookupSval(tval, ln.Sym("sval"))
	kidx := b.cat.lookupKidx(tval, sval)
	b.cur.PossItems = &PossItem{Kidx: kidx, Next: b.cur.PossItems}
	if kidx <= 0 {
		return parse.NewError(parse.InvalidItemNumber)
	}
	return nil
}

func (b *egoBuilder) combat(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.ToH = ln.Rand("th")
	b.cur.ToD = ln.Rand("td")
	b.cur.ToA = ln.Rand("ta")
	return nil
}

func (b *egoBuilder) minCombat(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.MinToH = ln.Int("th")
	b.cur.MinToD = ln.Int("td")
	b.cur.MinToA = ln.Int("ta")
	return nil
}

func (b *egoBuilder) act(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Activation = b.cat.FindActivation(ln.Str("name"))
	return nil
}

func (b *egoBuilder) time(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Time = ln.Rand("time")
	return nil
}

func (b *egoBuilder) flags(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if !ln.Has("flags") {
		return nil
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

func (b *egoBuilder) values(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	for _, tok := range splitFlagTokens(ln.Str("values")) {
		found := grabRandValue(b.cur.Modifiers[:], tok)
		found = grabResValue(b.cur.El[:], tok) || found
		if !found {
			return parse.NewError(parse.InvalidValue)
		}
	}
	return nil
}

func (b *egoBuilder) minValues(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	for _, tok := range splitFlagTokens(ln.Str("min_values")) {
		if !grabIntValue(b.cur.MinModifiers[:], tok) {
			return parse.NewError(parse.InvalidValue)
		}
	}
	return nil
}

func (b *egoBuilder) desc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Text += ln.Str("text")
	return nil
}

func (b *egoBuilder) slay(ln *parse.Line) error {
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

func (b *egoBuilder) brand(ln *parse.Line) error {
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

func (b *egoBuilder) curse(ln *parse.Line) error {
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

func (b *egoBuilder) finish() []EgoItem {
	out := make([]EgoItem, len(b.recs))
	for i, e := range b.recs {
		out[i] = *e
		out[i].Eidx = i
	}
	b.recs, b.cur = nil, nil
	return out
}
