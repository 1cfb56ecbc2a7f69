package content

import (
	"github.com/udisondev/mangod/internal/dice"
	"github.com/udisondev/mangod/internal/parse"
)

type powerBuilder struct {
	cat  *Catalog
	recs []*PowerCalc
	cur  *PowerCalc
}

func newPowerParser(b *powerBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("name str name", b.name)
	p.Reg("type sym tval", b.typ)
	p.Reg("item sym tval sym sval", b.item)
	p.Reg("dice str dice", b.dice)
	p.Reg("expr sym name sym base str expr", b.expr)
	p.Reg("operation str op", b.operation)
	p.Reg("iterate str iter", b.iterate)
	p.Reg("apply-to str apply", b.applyTo)
	return p
}

func (b *powerBuilder) name(ln *parse.Line) error {
	c := &PowerCalc{
		Name:    ln.Str("name"),
		Iterate: PowerIterate{PropertyType: PropNone, Max: 1},
	}
	b.recs = append(b.recs, c)
	b.cur = c
	return nil
}

// typ admits every kind of one category. Unlike egos, an empty category is
// fine here: the term simply never applies.
func (b *powerBuilder) typ(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	tval := TvalFromName(ln.Sym("tval"))
	if tval < 0 {
		return parse.NewError(parse.UnrecognisedTval)
	}
	for i := range b.cat.Kinds {
		if b.cat.Kinds[i].Tval != tval {
			continue
		}
		b.cur.PossItems = &PossItem{Kidx: i, Next: b.cur.PossItems}
	}
	return nil
}

func (b *powerBuilder) item(ln *parse.Line) error {
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

func (b *powerBuilder) dice(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	d := dice.New()
	if !d.Parse(ln.Str("dice")) {
		return parse.NewError(parse.InvalidDice)
	}
	b.cur.Dice = d
	return nil
}

// expr binds a named dice variable to a provider from the power registry.
func (b *powerBuilder) expr(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Dice == nil {
		return nil
	}

	expr := dice.NewExpression()
	expr.SetBaseValue(dice.PowerBaseByName(ln.Sym("base")))
	if !expr.AddOperationsString(ln.Str("expr")) {
		return parse.NewError(parse.BadExpressionString)
	}
	if !b.cur.Dice.BindExpression(ln.Sym("name"), expr) {
		return parse.NewError(parse.UnboundExpression)
	}
	return nil
}

func (b *powerBuilder) operation(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	switch ln.Str("op") {
	case "add":
		b.cur.Operation = PowerCalcAdd
	case "add if positive":
		b.cur.Operation = PowerCalcAddIfPositive
	case "square and add if positive":
		b.cur.Operation = PowerCalcSquareAddIfPositive
	case "multiply":
		b.cur.Operation = PowerCalcMultiply
	case "divide":
		b.cur.Operation = PowerCalcDivide
	default:
		return parse.NewError(parse.InvalidOperation)
	}
	return nil
}

func (b *powerBuilder) iterate(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	switch ln.Str("iter") {
	case "modifier":
		b.cur.Iterate = PowerIterate{PropertyType: PropMod, Max: ModMax}
	case "resistance":
		b.cur.Iterate = PowerIterate{PropertyType: PropResist, Max: ElemXHighMax + 1}
	case "vulnerability":
		b.cur.Iterate = PowerIterate{PropertyType: PropVuln, Max: ElemBaseMax + 1}
	case "immunity":
		b.cur.Iterate = PowerIterate{PropertyType: PropImm, Max: ElemBaseMax + 1}
	case "ignore":
		b.cur.Iterate = PowerIterate{PropertyType: PropIgnore, Max: ElemBaseMax + 1}
	case "flag":
		b.cur.Iterate = PowerIterate{PropertyType: PropFlag, Max: OfMax}
	default:
		return parse.NewError(parse.InvalidIterate)
	}
	return nil
}

func (b *powerBuilder) applyTo(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.ApplyTo = ln.Str("apply")
	return nil
}

func (b *powerBuilder) finish() []PowerCalc {
	out := make([]PowerCalc, len(b.recs))
	for i, c := range b.recs {
		out[i] = *c
	}
	b.recs, b.cur = nil, nil
	return out
}
