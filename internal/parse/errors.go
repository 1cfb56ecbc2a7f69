package parse

import (
	"errors"
	"fmt"
)

// Code — закрытое перечисление ошибок директив. Любой код кроме None
// фатален для загрузки текущего файла.
type Code int

const (
	None Code = iota
	UndefinedDirective
	MissingField
	MissingRecordHeader
	NotANumber
	NotRandom
	UnrecognisedTval
	UnrecognisedSlay
	UnrecognisedBrand
	UnrecognisedCurse
	InvalidFlag
	InvalidValue
	InvalidOperation
	InvalidIterate
	InvalidSubtype
	InvalidIDType
	InvalidProperty
	InvalidObjPropCode
	MissingObjPropType
	InvalidAllocation
	OutOfBounds
	InvalidDice
	InvalidExpression
	BadExpressionString
	UnboundExpression
	NotSpecialArtifact
	NoKindForEgoType
	InvalidItemNumber
	InvalidColor
	InvalidEffect
	InvalidMonsterBase
	InvalidSlay
	ElementNameMismatch
	Internal
)

var codeNames = map[Code]string{
	None:                "none",
	UndefinedDirective:  "undefined directive",
	MissingField:        "missing field",
	MissingRecordHeader: "missing record header",
	NotANumber:          "not a number",
	NotRandom:           "not a random value",
	UnrecognisedTval:    "unrecognised tval",
	UnrecognisedSlay:    "unrecognised slay",
	UnrecognisedBrand:   "unrecognised brand",
	UnrecognisedCurse:   "unrecognised curse",
	InvalidFlag:         "invalid flag",
	InvalidValue:        "invalid value",
	InvalidOperation:    "invalid operation",
	InvalidIterate:      "invalid iterate",
	InvalidSubtype:      "invalid subtype",
	InvalidIDType:       "invalid id type",
	InvalidProperty:     "invalid property",
	InvalidObjPropCode:  "invalid object property code",
	MissingObjPropType:  "missing object property type",
	InvalidAllocation:   "invalid allocation",
	OutOfBounds:         "value out of bounds",
	InvalidDice:         "invalid dice",
	InvalidExpression:   "invalid expression",
	BadExpressionString: "bad expression string",
	UnboundExpression:   "unbound expression",
	NotSpecialArtifact:  "not a special artifact",
	NoKindForEgoType:    "no kind for ego type",
	InvalidItemNumber:   "invalid item number",
	InvalidColor:        "invalid color",
	InvalidEffect:       "invalid effect",
	InvalidMonsterBase:  "invalid monster base",
	InvalidSlay:         "invalid slay",
	ElementNameMismatch: "element name mismatch",
	Internal:            "internal error",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("parse code %d", int(c))
}

// Error is a directive-level failure. File, Line and Directive are filled in
// by the Parser when a handler returns the error.
type Error struct {
	Code      Code
	File      string
	Line      int
	Directive string
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: directive %q: %s", e.File, e.Line, e.Directive, e.Code)
	}
	if e.Directive != "" {
		return fmt.Sprintf("directive %q: %s", e.Directive, e.Code)
	}
	return e.Code.String()
}

// NewError возвращает ошибку с заданным кодом. Контекст (файл, строка,
// директива) заполняет Parser.
func NewError(c Code) *Error {
	return &Error{Code: c}
}

// CodeOf extracts the parse code from err, or None if err carries no code.
func CodeOf(err error) Code {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return None
}
