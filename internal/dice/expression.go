package dice

import (
	"strconv"
	"strings"
)

// BaseValue supplies the starting value of an expression, typically read from
// game state (player level, dungeon depth, weapon damage).
type BaseValue func() int32

type opCode byte

const (
	opAdd opCode = '+'
	opSub opCode = '-'
	opMul opCode = '*'
	opDiv opCode = '/'
	opNeg opCode = 'n'
)

type operation struct {
	op      opCode
	operand int32
}

// Expression is a base value combined with a sequence of arithmetic
// operations parsed from a compact operation string such as "- 1 / 2 + 25".
type Expression struct {
	base BaseValue
	ops  []operation
}

func NewExpression() *Expression {
	return &Expression{}
}

// SetBaseValue attaches the provider. A nil provider is allowed: the base
// value is then zero.
func (e *Expression) SetBaseValue(f BaseValue) {
	e.base = f
}

// AddOperationsString parses an operation string: operator tokens (+ - * /)
// each followed by an integer operand, or the lone negation token n.
func (e *Expression) AddOperationsString(s string) bool {
	toks := strings.Fields(s)
	for i := 0; i < len(toks); i++ {
		switch toks[i] {
		case "n", "N":
			e.ops = append(e.ops, operation{op: opNeg})
		case "+", "-", "*", "/":
			if i+1 >= len(toks) {
				return false
			}
			v, err := strconv.Atoi(toks[i+1])
			if err != nil {
				return false
			}
			op := opCode(toks[i][0])
			if op == opDiv && v == 0 {
				return false
			}
			e.ops = append(e.ops, operation{op: op, operand: int32(v)})
			i++
		default:
			return false
		}
	}
	return true
}

// Evaluate computes the expression value.
func (e *Expression) Evaluate() int32 {
	var v int32
	if e.base != nil {
		v = e.base()
	}
	for _, op := range e.ops {
		switch op.op {
		case opAdd:
			v += op.operand
		case opSub:
			v -= op.operand
		case opMul:
			v *= op.operand
		case opDiv:
			v /= op.operand
		case opNeg:
			v = -v
		}
	}
	return v
}

func (e *Expression) copy() *Expression {
	c := &Expression{base: e.base}
	c.ops = append(c.ops, e.ops...)
	return c
}

// Base-value providers live in two registries: one for ordinary effect
// formulas, one for power-score calculations. Content loading only needs the
// names; consumers register the real providers before evaluation.

var (
	spellBases = map[string]BaseValue{}
	powerBases = map[string]BaseValue{}
)

// RegisterSpellBase registers a provider for effect expressions.
func RegisterSpellBase(name string, f BaseValue) {
	spellBases[name] = f
}

// RegisterPowerBase registers a provider for power-calculation expressions.
func RegisterPowerBase(name string, f BaseValue) {
	powerBases[name] = f
}

// SpellBaseByName returns the registered provider, or nil. An unknown name is
// not an error: the expression then evaluates from a zero base.
func SpellBaseByName(name string) BaseValue {
	return spellBases[name]
}

// PowerBaseByName mirrors SpellBaseByName for the power registry.
func PowerBaseByName(name string) BaseValue {
	return powerBases[name]
}
