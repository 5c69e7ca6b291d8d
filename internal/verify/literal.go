package verify

import (
	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/lexer"
	"github.com/mouse-blink/sjavac/internal/symtab"
)

// terminators may follow a numeric literal.
var terminators = []string{";", ")", ",", "|", "&"}

// parseValue reads the value assigned to target, starting on its first token
// and stopping on its last. A variable reference is replaced by the
// variable's current value.
func (e *Engine) parseValue(target string, typ symtab.Type) (symtab.Value, error) {
	tok := e.cur()

	if tok.Kind == lexer.Identifier {
		if sym, ok := e.symbols.Lookup(tok.Text); ok {
			if !sym.Type.AssignableTo(typ) {
				return symtab.Absent, e.fail(diag.New(diag.InvalidValueType).
					WithName(target).WithToken(tok.Text).WithType(string(typ)))
			}

			return sym.Value, nil
		}
	}

	text, ok := e.parseLiteral(typ)
	if !ok {
		return symtab.Absent, e.fail(diag.New(diag.InvalidValueType).
			WithName(target).WithToken(tok.Text).WithType(string(typ)))
	}

	return symtab.Known(text), nil
}

// parseLiteral reconstructs a literal of type typ from the token stream.
// On success the cursor rests on the literal's last token.
func (e *Engine) parseLiteral(typ symtab.Type) (string, bool) {
	switch typ {
	case symtab.Int:
		return e.signed(e.parseInt)
	case symtab.Double:
		return e.signed(e.parseDouble)
	case symtab.Boolean:
		if tok := e.cur(); tok.IsAny("true", "false") {
			return tok.Text, true
		}

		return e.signed(e.parseDouble)
	case symtab.Char:
		return e.parseChar()
	case symtab.String:
		return e.parseString()
	default:
		return "", false
	}
}

func (e *Engine) signed(parse func() (string, bool)) (string, bool) {
	sign := ""
	if tok := e.cur(); tok.IsAny("+", "-") {
		sign = tok.Text
		e.next()
	}

	text, ok := parse()
	if !ok {
		return "", false
	}

	return sign + text, true
}

func (e *Engine) terminated() bool {
	return e.tokens.Peek().IsAny(terminators...)
}

// parseInt accepts a digit run that is not the integral part of a double.
func (e *Engine) parseInt() (string, bool) {
	tok := e.cur()
	if tok.Kind != lexer.Number || e.tokens.Peek().Is(".") {
		return "", false
	}

	return tok.Text, true
}

// parseDouble accepts `d`, `d.`, `d.d` and `.d` followed by a terminator.
func (e *Engine) parseDouble() (string, bool) {
	tok := e.cur()

	var text string

	switch {
	case tok.Kind == lexer.Number:
		text = tok.Text

		if e.tokens.Peek().Is(".") {
			e.next()
			text += "."

			if e.tokens.Peek().Kind == lexer.Number {
				text += e.next().Text
			}
		}
	case tok.Is("."):
		if e.tokens.Peek().Kind != lexer.Number {
			return "", false
		}

		text = "." + e.next().Text
	default:
		return "", false
	}

	return text, e.terminated()
}

// parseChar accepts a single character between single quotes.
func (e *Engine) parseChar() (string, bool) {
	if !e.cur().Is("'") {
		return "", false
	}

	ch := e.next()
	if ch.Kind == lexer.EOF || len(ch.Text) != 1 || ch.Is("'") {
		return "", false
	}

	if !e.next().Is("'") {
		return "", false
	}

	return "'" + ch.Text + "'", true
}

// parseString accepts at most one token between double quotes.
func (e *Engine) parseString() (string, bool) {
	if !e.cur().Is(`"`) {
		return "", false
	}

	tok := e.next()
	if tok.Is(`"`) {
		return `""`, true
	}

	if tok.Kind == lexer.EOF || !e.next().Is(`"`) {
		return "", false
	}

	return `"` + tok.Text + `"`, true
}
