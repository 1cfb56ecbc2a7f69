// Package parse reads declarative content files: one registered directive per
// line, colon-separated typed fields. Directive grammars are registered up
// front ("name sym tval ?str name"); handlers pull fields through the typed
// getters on the current Line.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type fieldType int

const (
	fieldInt fieldType = iota
	fieldUint
	fieldStr
	fieldSym
	fieldChar
	fieldRand
)

type field struct {
	name     string
	typ      fieldType
	optional bool
}

// Handler — семантическое действие одной директивы.
type Handler func(ln *Line) error

type directive struct {
	fields  []field
	handler Handler
}

// Parser dispatches lines of a content file to registered directive handlers.
type Parser struct {
	directives map[string]*directive
}

func New() *Parser {
	return &Parser{directives: make(map[string]*directive)}
}

// Reg registers a directive grammar string: the directive keyword followed by
// "type name" pairs. Types: int, uint, str, sym, char, rand; a '?' prefix
// marks the field optional. str consumes the rest of the line and must be
// last. Malformed grammars are programmer errors and panic.
func (p *Parser) Reg(grammar string, h Handler) {
	parts := strings.Fields(grammar)
	if len(parts) == 0 || len(parts)%2 != 1 {
		panic(fmt.Sprintf("parse: malformed grammar %q", grammar))
	}
	name := parts[0]
	if _, dup := p.directives[name]; dup {
		panic(fmt.Sprintf("parse: duplicate directive %q", name))
	}

	d := &directive{handler: h}
	for i := 1; i < len(parts); i += 2 {
		spec, fname := parts[i], parts[i+1]
		var f field
		if strings.HasPrefix(spec, "?") {
			f.optional = true
			spec = spec[1:]
		}
		switch spec {
		case "int":
			f.typ = fieldInt
		case "uint":
			f.typ = fieldUint
		case "str":
			f.typ = fieldStr
		case "sym":
			f.typ = fieldSym
		case "char":
			f.typ = fieldChar
		case "rand":
			f.typ = fieldRand
		default:
			panic(fmt.Sprintf("parse: unknown field type %q in grammar %q", spec, grammar))
		}
		if len(d.fields) > 0 && d.fields[len(d.fields)-1].typ == fieldStr {
			panic(fmt.Sprintf("parse: str field must be last in grammar %q", grammar))
		}
		f.name = fname
		d.fields = append(d.fields, f)
	}
	p.directives[name] = d
}

// Parse tokenizes and dispatches a single line. Blank lines and '#' comments
// are skipped.
func (p *Parser) Parse(line string) error {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	name, rest, avail := strings.Cut(line, ":")
	d, ok := p.directives[name]
	if !ok {
		return &Error{Code: UndefinedDirective, Directive: name}
	}

	ln := &Line{directive: name, vals: make(map[string]any, len(d.fields))}
	for _, f := range d.fields {
		if !avail {
			if f.optional {
				continue
			}
			return &Error{Code: MissingField, Directive: name}
		}
		var tok string
		if f.typ == fieldStr {
			tok, rest, avail = rest, "", false
		} else {
			tok, rest, avail = strings.Cut(rest, ":")
		}
		if tok == "" && f.typ != fieldStr {
			if f.optional {
				continue
			}
			return &Error{Code: MissingField, Directive: name}
		}
		if err := ln.set(f, tok); err != nil {
			var pe *Error
			if ok := asParseError(err, &pe); ok {
				pe.Directive = name
			}
			return err
		}
	}

	if err := d.handler(ln); err != nil {
		var pe *Error
		if ok := asParseError(err, &pe); ok && pe.Directive == "" {
			pe.Directive = name
		}
		return err
	}
	return nil
}

// ParseAll reads r line by line until EOF or the first directive error.
func (p *Parser) ParseAll(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		if err := p.Parse(sc.Text()); err != nil {
			var pe *Error
			if ok := asParseError(err, &pe); ok {
				pe.Line = n
			}
			return err
		}
	}
	return sc.Err()
}

// ParseFile loads one content file. A missing file is an error: content
// catalogs are build-time data, not user input.
func (p *Parser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening content file: %w", err)
	}
	defer f.Close()

	if err := p.ParseAll(f); err != nil {
		var pe *Error
		if ok := asParseError(err, &pe); ok {
			pe.File = path
			return pe
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func asParseError(err error, target **Error) bool {
	pe, ok := err.(*Error)
	if ok {
		*target = pe
	}
	return ok
}

// Line holds the typed field values of the directive being handled.
type Line struct {
	directive string
	vals      map[string]any
}

func (ln *Line) set(f field, tok string) error {
	switch f.typ {
	case fieldInt:
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return &Error{Code: NotANumber}
		}
		ln.vals[f.name] = v
	case fieldUint:
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || v < 0 {
			return &Error{Code: NotANumber}
		}
		ln.vals[f.name] = v
	case fieldSym:
		ln.vals[f.name] = tok
	case fieldStr:
		ln.vals[f.name] = tok
	case fieldChar:
		rs := []rune(tok)
		if len(rs) != 1 {
			return &Error{Code: InvalidValue}
		}
		ln.vals[f.name] = rs[0]
	case fieldRand:
		rv, ok := ParseRandom(tok)
		if !ok {
			return &Error{Code: NotRandom}
		}
		ln.vals[f.name] = rv
	}
	return nil
}

// Directive returns the keyword of the current line.
func (ln *Line) Directive() string { return ln.directive }

// Has reports whether an optional field was present on the line.
func (ln *Line) Has(name string) bool {
	_, ok := ln.vals[name]
	return ok
}

// The typed getters panic on a missing or mistyped field: grammar and line are
// validated before the handler runs, so a failure here is a programming error,
// not bad content.

func (ln *Line) Str(name string) string {
	v, ok := ln.vals[name].(string)
	if !ok {
		panic(fmt.Sprintf("parse: directive %q has no str field %q", ln.directive, name))
	}
	return v
}

func (ln *Line) Sym(name string) string {
	v, ok := ln.vals[name].(string)
	if !ok {
		panic(fmt.Sprintf("parse: directive %q has no sym field %q", ln.directive, name))
	}
	return v
}

func (ln *Line) Int(name string) int {
	v, ok := ln.vals[name].(int)
	if !ok {
		panic(fmt.Sprintf("parse: directive %q has no int field %q", ln.directive, name))
	}
	return v
}

func (ln *Line) Uint(name string) int {
	return ln.Int(name)
}

func (ln *Line) Char(name string) rune {
	v, ok := ln.vals[name].(rune)
	if !ok {
		panic(fmt.Sprintf("parse: directive %q has no char field %q", ln.directive, name))
	}
	return v
}

func (ln *Line) Rand(name string) Random {
	v, ok := ln.vals[name].(Random)
	if !ok {
		panic(fmt.Sprintf("parse: directive %q has no rand field %q", ln.directive, name))
	}
	return v
}
