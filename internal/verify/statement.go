package verify

import (
	"fmt"

	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/lexer"
	"github.com/mouse-blink/sjavac/internal/symtab"
)

// verifyStatement checks one statement inside a function or block body and
// leaves the cursor on the first token after it.
func (e *Engine) verifyStatement() error {
	tok := e.cur()

	switch {
	case tok.Is("final") || isType(tok):
		return e.verifyDeclaration()
	case tok.IsAny("if", "while"):
		return e.verifyBlock()
	case tok.Is("void"):
		return e.fail(diag.New(diag.InnerMethodDeclaration))
	case tok.Is("return"):
		return e.verifyReturn()
	case tok.Kind == lexer.Identifier && e.tokens.Peek().Is("("):
		if !e.funcs.Has(tok.Text) {
			return e.fail(diag.New(diag.NonExistingFunction).WithName(tok.Text))
		}

		return e.verifyCall()
	case tok.Kind == lexer.Identifier && e.symbols.ScopeOf(tok.Text) != 0:
		return e.verifyAssignment()
	default:
		return e.fail(diag.New(diag.IllegalInnerBlock).WithToken(tok.Text))
	}
}

func (e *Engine) verifyReturn() error {
	if tok := e.next(); !tok.Is(";") {
		return e.fail(diag.New(diag.IllegalReturnFormat).WithToken(tok.Text))
	}

	e.next()

	return nil
}

// verifyBlock checks `if|while ( CONDITION ) { BODY }` in its own scope.
func (e *Engine) verifyBlock() error {
	block := e.cur().Text

	if tok := e.next(); !tok.Is("(") {
		return e.fail(diag.New(diag.IllegalCondition).WithBlock(block).WithToken(tok.Text))
	}

	if e.next().Is(")") {
		return e.fail(diag.New(diag.EmptyCondition).WithBlock(block))
	}

	if err := e.verifyCondition(block); err != nil {
		return err
	}

	if tok := e.next(); !tok.Is("{") {
		return e.fail(diag.New(diag.IllegalInnerBlock).WithToken(tok.Text))
	}

	e.next()

	e.symbols.EnterScope()
	defer e.symbols.ExitScope()

	for {
		tok := e.cur()

		switch {
		case tok.Kind == lexer.EOF:
			return e.fail(diag.New(diag.UnbalancedParentheses))
		case tok.Is("}"):
			e.next()
			return nil
		}

		if err := e.verifyStatement(); err != nil {
			return err
		}
	}
}

// verifyCondition checks `atom ((&& | ||) atom)*` and stops on `)`.
func (e *Engine) verifyCondition(block string) error {
	for {
		if err := e.verifyAtom(block); err != nil {
			return err
		}

		tok := e.next()

		switch {
		case tok.Is(")"):
			return nil
		case tok.IsAny("&", "|"):
			if second := e.next(); !second.Is(tok.Text) {
				return e.fail(diag.New(diag.IllegalCondition).WithBlock(block).WithToken(second.Text))
			}

			e.next()
		default:
			return e.fail(diag.New(diag.IllegalCondition).WithBlock(block).WithToken(tok.Text))
		}
	}
}

func (e *Engine) verifyAtom(block string) error {
	tok := e.cur()

	if tok.IsAny("true", "false") {
		return nil
	}

	if tok.Kind == lexer.Identifier {
		sym, ok := e.symbols.Lookup(tok.Text)
		if !ok {
			return e.fail(diag.New(diag.IllegalCondition).WithBlock(block).WithToken(tok.Text))
		}

		switch sym.Type {
		case symtab.Boolean, symtab.Int, symtab.Double:
		default:
			return e.fail(diag.New(diag.IllegalVarTypeInCondition).
				WithName(tok.Text).WithType(string(sym.Type)).WithBlock(block))
		}

		if !sym.Value.IsKnown() {
			return e.fail(diag.New(diag.UninitializedVariableInCondition).WithName(tok.Text).WithBlock(block))
		}

		return nil
	}

	if tok.IsAny("+", "-") {
		e.next()
	}

	if _, ok := e.parseDouble(); !ok {
		return e.fail(diag.New(diag.IllegalCondition).WithBlock(block).WithToken(tok.Text))
	}

	return nil
}

// verifyDeclaration checks `[final] TYPE name [= value] (, name [= value])* ;`.
func (e *Engine) verifyDeclaration() error {
	constant := false
	if e.cur().Is("final") {
		constant = true
		e.next()
	}

	tok := e.cur()
	if !isType(tok) {
		return e.fail(diag.New(diag.InvalidVariableDeclaration).WithToken(tok.Text))
	}

	typ, _ := symtab.ParseType(tok.Text)

	for {
		name := e.next()
		if name.Kind != lexer.Identifier {
			return e.fail(diag.New(diag.InvalidVariableName).WithToken(name.Text))
		}

		value := symtab.Absent

		sep := e.next()
		if sep.Is("=") {
			e.next()

			v, err := e.parseValue(name.Text, typ)
			if err != nil {
				return err
			}

			value = v
			sep = e.next()
		}

		if !sep.IsAny(";", ",") {
			return e.fail(diag.New(diag.InvalidVariableDeclaration).WithName(name.Text).WithToken(sep.Text))
		}

		if err := e.symbols.Declare(name.Text, typ, value, constant, false); err != nil {
			return e.locate(err)
		}

		if sep.Is(";") {
			e.next()
			return nil
		}
	}
}

// verifyAssignment checks `name = value (, name = value)* ;`.
func (e *Engine) verifyAssignment() error {
	for {
		name := e.cur()
		if name.Kind != lexer.Identifier {
			return e.fail(diag.New(diag.InvalidVariableName).WithToken(name.Text))
		}

		sym, ok := e.symbols.Lookup(name.Text)
		if !ok {
			return e.fail(diag.New(diag.UnknownVariable).WithName(name.Text))
		}

		if tok := e.next(); !tok.Is("=") {
			return e.fail(diag.New(diag.InvalidVariableAssignment).WithName(name.Text).WithToken(tok.Text))
		}

		if tok := e.next(); tok.IsAny(";", ",") || tok.Kind == lexer.EOF {
			return e.fail(diag.New(diag.InvalidVariableAssignment).WithName(name.Text).WithToken(tok.Text))
		}

		value, err := e.parseValue(name.Text, sym.Type)
		if err != nil {
			return err
		}

		if err := e.symbols.Assign(name.Text, value); err != nil {
			return e.locate(err)
		}

		switch sep := e.next(); {
		case sep.Is(";"):
			e.next()
			return nil
		case sep.Is(","):
			e.next()
		default:
			return e.fail(diag.New(diag.InvalidVariableAssignment).WithName(name.Text).WithToken(sep.Text))
		}
	}
}

// verifyCall checks `name ( args ) ;` against the callee's signature.
// Identifier arguments are checked by type, never by value.
func (e *Engine) verifyCall() error {
	name := e.cur().Text
	sig, _ := e.funcs.Lookup(name)

	e.next()

	tok := e.next()
	if tok.Is(")") {
		if sig.Arity() > 0 {
			return e.fail(diag.New(diag.NumberOfVarsInFuncCall).WithName(name).WithDetail("fewer"))
		}
	} else {
		for i := 0; ; i++ {
			if i >= sig.Arity() {
				return e.fail(diag.New(diag.NumberOfVarsInFuncCall).WithName(name).WithDetail("more"))
			}

			if err := e.verifyArgument(name, i, sig.Params[i]); err != nil {
				return err
			}

			sep := e.next()
			if sep.Is(")") {
				if i+1 < sig.Arity() {
					return e.fail(diag.New(diag.NumberOfVarsInFuncCall).WithName(name).WithDetail("fewer"))
				}

				break
			}

			if !sep.Is(",") {
				return e.fail(diag.New(diag.IllegalInnerBlock).WithToken(sep.Text))
			}

			e.next()
		}
	}

	if tok := e.next(); !tok.Is(";") {
		return e.fail(diag.New(diag.IllegalInnerBlock).WithToken(tok.Text))
	}

	e.next()

	return nil
}

func (e *Engine) verifyArgument(function string, index int, typ symtab.Type) error {
	tok := e.cur()
	slot := fmt.Sprintf("argument %d of %s", index+1, function)

	if tok.Kind == lexer.Identifier {
		if sym, ok := e.symbols.Lookup(tok.Text); ok && sym.Type.AssignableTo(typ) {
			return nil
		}

		return e.fail(diag.New(diag.InvalidValueType).WithName(slot).WithToken(tok.Text).WithType(string(typ)))
	}

	if _, ok := e.parseLiteral(typ); !ok {
		return e.fail(diag.New(diag.InvalidValueType).WithName(slot).WithToken(tok.Text).WithType(string(typ)))
	}

	return nil
}
