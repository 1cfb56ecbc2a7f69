package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDispatchesTypedFields(t *testing.T) {
	p := New()

	var gotName, gotTval string
	var gotLevel int
	p.Reg("name sym tval ?str name", func(ln *Line) error {
		gotTval = ln.Sym("tval")
		if ln.Has("name") {
			gotName = ln.Str("name")
		}
		return nil
	})
	p.Reg("level int level", func(ln *Line) error {
		gotLevel = ln.Int("level")
		return nil
	})

	require.NoError(t, p.Parse("name:sword:Long Sword"))
	require.Equal(t, "sword", gotTval)
	require.Equal(t, "Long Sword", gotName)

	require.NoError(t, p.Parse("level:-3"))
	require.Equal(t, -3, gotLevel)
}

func TestParseStrConsumesRestOfLine(t *testing.T) {
	p := New()

	var got string
	p.Reg("desc str text", func(ln *Line) error {
		got = ln.Str("text")
		return nil
	})

	require.NoError(t, p.Parse("desc:one:two:three"))
	require.Equal(t, "one:two:three", got)
}

func TestParseOptionalFieldAbsent(t *testing.T) {
	p := New()

	called := false
	p.Reg("name sym tval ?str name", func(ln *Line) error {
		called = true
		require.False(t, ln.Has("name"))
		return nil
	})

	require.NoError(t, p.Parse("name:light"))
	require.True(t, called)
}

func TestParseMissingRequiredField(t *testing.T) {
	p := New()
	p.Reg("combat int to-h int to-d int to-a", func(ln *Line) error { return nil })

	err := p.Parse("combat:1:2")
	require.Error(t, err)
	require.Equal(t, MissingField, CodeOf(err))
}

func TestParseUndefinedDirective(t *testing.T) {
	p := New()
	p.Reg("name str name", func(ln *Line) error { return nil })

	err := p.Parse("bogus:value")
	require.Equal(t, UndefinedDirective, CodeOf(err))
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	p := New()
	p.Reg("name str name", func(ln *Line) error { return nil })

	require.NoError(t, p.Parse("# a comment"))
	require.NoError(t, p.Parse(""))
	require.NoError(t, p.Parse("   "))
}

func TestParseAllReportsLine(t *testing.T) {
	p := New()
	p.Reg("name str name", func(ln *Line) error { return nil })
	p.Reg("power uint power", func(ln *Line) error { return nil })

	src := "name:first\n\npower:oops\n"
	err := p.ParseAll(strings.NewReader(src))
	require.Error(t, err)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, NotANumber, pe.Code)
	require.Equal(t, 3, pe.Line)
	require.Equal(t, "power", pe.Directive)
}

func TestParseHandlerErrorGetsDirective(t *testing.T) {
	p := New()
	p.Reg("name str name", func(ln *Line) error {
		return NewError(InvalidValue)
	})

	err := p.Parse("name:whatever")
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, InvalidValue, pe.Code)
	require.Equal(t, "name", pe.Directive)
}

func TestRegPanicsOnStrNotLast(t *testing.T) {
	p := New()
	require.Panics(t, func() {
		p.Reg("bad str text int value", func(ln *Line) error { return nil })
	})
}

func TestRegPanicsOnDuplicate(t *testing.T) {
	p := New()
	p.Reg("name str name", func(ln *Line) error { return nil })
	require.Panics(t, func() {
		p.Reg("name str name", func(ln *Line) error { return nil })
	})
}

func TestUintRejectsNegative(t *testing.T) {
	p := New()
	p.Reg("power uint power", func(ln *Line) error { return nil })

	err := p.Parse("power:-1")
	require.Equal(t, NotANumber, CodeOf(err))
}

func TestCodeOfUnrelatedError(t *testing.T) {
	require.Equal(t, None, CodeOf(nil))
	require.Equal(t, None, CodeOf(errors.New("plain")))
}
