package content

import "github.com/udisondev/mangod/internal/parse"

type activationBuilder struct {
	cat  *Catalog
	recs []*Activation
	cur  *Activation
}

func newActivationParser(b *activationBuilder) *parse.Parser {
	p := parse.New()
	p.Reg("name str name", b.name)
	p.Reg("aim uint aim", b.aim)
	p.Reg("power uint power", b.power)
	p.Reg("effect sym eff ?sym type ?int radius ?int other", b.effect)
	p.Reg("effect-yx int y int x", b.effectYX)
	p.Reg("dice str dice", b.dice)
	p.Reg("expr sym name sym base str expr", b.expr)
	p.Reg("msg_self str msg_self", b.msgSelf)
	p.Reg("msg_other str msg_other", b.msgOther)
	p.Reg("msg str msg", b.msg)
	p.Reg("desc str desc", b.desc)
	return p
}

func (b *activationBuilder) name(ln *parse.Line) error {
	a := &Activation{Name: ln.Str("name")}
	b.recs = append(b.recs, a)
	b.cur = a
	return nil
}

func (b *activationBuilder) aim(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Aim = ln.Uint("aim") != 0
	return nil
}

func (b *activationBuilder) power(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Power = ln.Uint("power")
	return nil
}

func (b *activationBuilder) effect(ln *parse.Line) error {
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

func (b *activationBuilder) effectYX(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectYX(b.cur.Effect, ln)
}

func (b *activationBuilder) dice(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectDice(b.cur.Effect, ln)
}

func (b *activationBuilder) expr(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	return applyEffectExpr(b.cur.Effect, ln)
}

func (b *activationBuilder) msgSelf(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Effect == nil {
		return nil
	}
	b.cur.Effect.SelfMsg = ln.Str("msg_self")
	return nil
}

func (b *activationBuilder) msgOther(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	if b.cur.Effect == nil {
		return nil
	}
	b.cur.Effect.OtherMsg = ln.Str("msg_other")
	return nil
}

func (b *activationBuilder) msg(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Message += ln.Str("msg")
	return nil
}

func (b *activationBuilder) desc(ln *parse.Line) error {
	if b.cur == nil {
		return parse.NewError(parse.MissingRecordHeader)
	}
	b.cur.Desc += ln.Str("desc")
	return nil
}

// finish materializes the table and, unlike every other table, re-points each
// entry's Next into the array itself: entry i links to entry i+1, the last to
// nil. Consumers traverse from any activation to the end of the table.
func (b *activationBuilder) finish() []Activation {
	out := make([]Activation, len(b.recs))
	for i, a := range b.recs {
		out[i] = *a
		out[i].Index = i
	}
	for i := range out {
		if i+1 < len(out) {
			out[i].Next = &out[i+1]
		} else {
			out[i].Next = nil
		}
	}
	b.recs, b.cur = nil, nil
	return out
}
