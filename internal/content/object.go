package content

import (
	"fmt"

	"github.com/udisondev/mangod/internal/parse"
)

// objectBuilder builds object kinds. Требует уже собранных таблиц базовых
// категорий, slay/brand/curse и активаций — на них резолвятся ссылки.
type objectBuilder struct {
	cat  *Catalog
	recs []*ObjectKind
	cur  *ObjectKind
}

func newObjectParser(b *objectBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("name str name", b.name)
	p.Reg("graphics char glyph sym color", b.graphics)
	p.Reg("type sym tval", b.typ)
	p.Reg("level int level", b.level)
	p.Reg("weight int weight", b.weight)
	p.Reg("cost int cost", b.cost)
	p.Reg("alloc int common str minmax", b.alloc)
	p.Reg("attack rand hd rand to-h rand to-d", b.attack)
	p.Reg("armor int ac rand to-a", b.armor)
	p.Reg("charges rand charges", b.charges)
	p.Reg("pile int prob rand stack", b.pile)
	p.Reg("flags str flags", b.flags)
	p.Reg("effect sym eff ?sym type ?int radius ?int other", b.effect)
	p.Reg("effect-yx int y int x", b.effectYX)
	p.Reg("dice str dice", b.dice)
	p.Reg("expr sym name sym base str expr", b.expr)
	p.Reg("msg_self str msg_self", b.msgSelf)
	p.Reg("msg_other str msg_other", b.msgOther)
	p.Reg("act str name", b.act)
	p.Reg("time rand time", b.time)
	p.Reg("pval rand pval", b.pval)
	p.Reg("values str values", b.values)
	p.Reg("desc str text", b.desc)
	p.Reg("slay str code", b.slay)
	p.Reg("brand str code", b.brand)
	p.Reg("curse sym name int power", b.curse)
	return p
}

func (b *objectBuilder) name(ln *parse.Line) error {
	k := &ObjectKind{Name: ln.Str("name")}
	b.recs = append(b.recs, k)
	b.cur = k
	return nil
}

func (b *objectBuilder) graphics(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Glyph = ln.Char("glyph")
	b.cur.Attr = ColorFromText(ln.Sym("color"))
	return nil
}

// typ binds the kind to its category and claims the next sequential subtype
// id. Порядок объявления в файле и есть порядок sval внутри категории.
func (b *objectBuilder) typ(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	tval := TvalFromName(ln.Sym("tval"))
	if tval < 0 {
		return parse.NewError(parse.UnrecognisedTval)
	}
	b.cur.Tval = tval
	b.cur.Base = &b.cat.Bases[tval]
	b.cur.Base.NumSvals++
	b.cur.Sval = b.cur.Base.NumSvals
	return nil
}

func (b *objectBuilder) level(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Level = ln.Int("level")
	return nil
}

func (b *objectBuilder) weight(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Weight = ln.Int("weight")
	return nil
}

func (b *objectBuilder) cost(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Cost = ln.Int("cost")
	return nil
}

func (b *objectBuilder) alloc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.AllocProb = ln.Int("common")
	amin, amax, err := parseMinMax(ln.Str("minmax"))
	if err != nil {
		return err
	}
	b.cur.AllocMin = amin
	b.cur.AllocMax = amax
	return nil
}

// parseMinMax reads the "%d to %d" shape of allocation depth ranges.
func parseMinMax(s string) (int, int, error) {
	var amin, amax int
	if n, err := fmt.Sscanf(s, "%d to %d", &amin, &amax); n != 2 || err != nil {
		return 0, 0, parse.NewError(parse.InvalidAllocation)
	}
	return amin, amax, nil
}

func (b *objectBuilder) attack(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	hd := ln.Rand("hd")
	b.cur.DD = hd.Dice
	b.cur.DS = hd.Sides
	b.cur.ToH = ln.Rand("to-h")
	b.cur.ToD = ln.Rand("to-d")
	return nil
}

func (b *objectBuilder) armor(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.AC = ln.Int("ac")
	b.cur.ToA = ln.Rand("to-a")
	return nil
}

func (b *objectBuilder) charges(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Charge = ln.Rand("charges")
	return nil
}

func (b *objectBuilder) pile(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.GenMultProb = ln.Int("prob")
	b.cur.StackSize = ln.Rand("stack")
	return nil
}

func (b *objectBuilder) flags(ln *parse.Line) error {
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

func (b *objectBuilder) effect(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	e, err := grabEffectData(b.cat, ln)
	if err != nil {
		return err
	}
	e.Next = b.cur.Effect
	b.cur.Effect = e
	return nil
}

func (b *objectBuilder) effectYX(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectYX(b.cur.Effect, ln)
}

func (b *objectBuilder) dice(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectDice(b.cur.Effect, ln)
}

func (b *objectBuilder) expr(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectExpr(b.cur.Effect, ln)
}

func (b *objectBuilder) msgSelf(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Effect == nil {
		return nil
	}
	b.cur.Effect.SelfMsg = ln.Str("msg_self")
	return nil
}

func (b *objectBuilder) msgOther(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Effect == nil {
		return nil
	}
	b.cur.Effect.OtherMsg = ln.Str("msg_other")
	return nil
}

// act resolves an activation by name. A miss leaves the kind without an
// activation, it is not an error.
func (b *objectBuilder) act(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Activation = b.cat.FindActivation(ln.Str("name"))
	return nil
}

func (b *objectBuilder) time(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Time = ln.Rand("time")
	return nil
}

func (b *objectBuilder) pval(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Pval = ln.Rand("pval")
	return nil
}

func (b *objectBuilder) values(ln *parse.Line) error {
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

func (b *objectBuilder) desc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Text += ln.Str("text")
	return nil
}

func (b *objectBuilder) slay(ln *parse.Line) error {
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

func (b *objectBuilder) brand(ln *parse.Line) error {
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

func (b *objectBuilder) curse(ln *parse.Line) error {
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

// finish assigns kidx by file order and folds each base category's kind
// flags into its kinds.
func (b *objectBuilder) finish() []ObjectKind {
	out := make([]ObjectKind, len(b.recs))
	for i, k := range b.recs {
		out[i] = *k
		out[i].Kidx = i
		if k.Base != nil {
			out[i].KindFlags.Union(k.Base.KindFlags)
		}
	}
	b.recs, b.cur = nil, nil
	return out
}
