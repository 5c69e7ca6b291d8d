// Package verify walks the token stream of a cleaned S-Java program and
// enforces every syntactic and semantic rule, stopping at the first
// violation.
package verify

import (
	"errors"

	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/lexer"
	"github.com/mouse-blink/sjavac/internal/symtab"
)

// Engine verifies one cleaned program against its function table.
type Engine struct {
	lines []string
	funcs *symtab.FunctionTable

	tokens  *lexer.Tokenizer
	symbols *symtab.SymbolTable
}

// New returns an engine for lines. funcs is only read.
func New(lines []string, funcs *symtab.FunctionTable) *Engine {
	if funcs == nil {
		funcs = symtab.NewFunctionTable()
	}

	return &Engine{lines: lines, funcs: funcs}
}

// Lines verifies lines in one call.
func Lines(lines []string, funcs *symtab.FunctionTable) error {
	return New(lines, funcs).Verify()
}

// Verify runs a fresh verification and returns the first violation as a
// *diag.Error, or nil when the program is accepted. Calling it again
// restarts from the first token with an empty symbol table.
func (e *Engine) Verify() error {
	e.tokens = lexer.New(e.lines)
	e.symbols = symtab.New()

	e.tokens.Advance()

	return e.verifyGlobal()
}

func (e *Engine) cur() lexer.Token {
	return e.tokens.Current()
}

func (e *Engine) next() lexer.Token {
	return e.tokens.Advance()
}

// fail pins err to the line of the current token.
func (e *Engine) fail(err *diag.Error) error {
	return err.At(e.cur().Line)
}

// locate pins a symbol table error to the current token's line.
func (e *Engine) locate(err error) error {
	var d *diag.Error
	if errors.As(err, &d) {
		d.At(e.cur().Line)
	}

	return err
}

func isType(tok lexer.Token) bool {
	if tok.Kind != lexer.Keyword {
		return false
	}

	_, ok := symtab.ParseType(tok.Text)

	return ok
}

func (e *Engine) verifyGlobal() error {
	for tok := e.cur(); tok.Kind != lexer.EOF; tok = e.cur() {
		var err error

		switch {
		case tok.Is("final") || isType(tok):
			err = e.verifyDeclaration()
		case tok.Is("void"):
			err = e.verifyFunction()
		case tok.Kind == lexer.Identifier && e.symbols.DeclaredInCurrent(tok.Text):
			err = e.verifyAssignment()
		case tok.Kind == lexer.Identifier && e.funcs.Has(tok.Text) && e.tokens.Peek().Is("("):
			err = e.fail(diag.New(diag.CallFunctionFromGlobal).WithName(tok.Text))
		case tok.IsAny("if", "while"):
			err = e.fail(diag.New(diag.IllegalBlockInGlobalScope).WithBlock(tok.Text))
		case tok.Kind == lexer.Identifier:
			err = e.fail(diag.New(diag.UnknownVariable).WithName(tok.Text))
		case tok.Is("}"):
			e.next()
		default:
			err = e.fail(diag.New(diag.GlobalScope).WithToken(tok.Text))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// verifyFunction checks `void NAME ( PARAMS ) { BODY }` starting at `void`.
func (e *Engine) verifyFunction() error {
	name := e.next()
	if !e.funcs.Has(name.Text) {
		return e.fail(diag.New(diag.InvalidFunctionDeclaration).WithName(name.Text).WithToken(name.Text))
	}

	if tok := e.next(); !tok.Is("(") {
		return e.fail(diag.New(diag.InvalidFunctionDeclaration).WithName(name.Text).WithToken(tok.Text))
	}

	e.symbols.EnterScope()
	defer e.symbols.ExitScope()

	if err := e.verifyParameters(name.Text); err != nil {
		return err
	}

	if tok := e.next(); !tok.Is("{") {
		return e.fail(diag.New(diag.InvalidFunctionDeclaration).WithName(name.Text).WithToken(tok.Text))
	}

	e.next()

	return e.verifyFunctionBody(name.Text)
}

// verifyParameters declares each parameter in the function scope. It starts
// on `(` and stops on `)`.
func (e *Engine) verifyParameters(function string) error {
	tok := e.next()
	if tok.Is(")") {
		return nil
	}

	for {
		constant := false
		if tok.Is("final") {
			constant = true
			tok = e.next()
		}

		typ, ok := symtab.ParseType(tok.Text)
		if !ok || tok.Kind != lexer.Keyword {
			if tok.Kind == lexer.Identifier {
				return e.fail(diag.New(diag.MissingParameterType).WithName(function).WithToken(tok.Text))
			}

			return e.fail(diag.New(diag.InvalidFunctionDeclaration).WithName(function).WithToken(tok.Text))
		}

		name := e.next()
		if name.Kind != lexer.Identifier {
			return e.fail(diag.New(diag.InvalidVariableName).WithToken(name.Text))
		}

		if err := e.symbols.Declare(name.Text, typ, symtab.Absent, constant, true); err != nil {
			return e.locate(err)
		}

		switch sep := e.next(); {
		case sep.Is(")"):
			return nil
		case sep.Is(","):
			tok = e.next()
		default:
			return e.fail(diag.New(diag.InvalidFunctionDeclaration).WithName(function).WithToken(sep.Text))
		}
	}
}

// verifyFunctionBody runs statements up to and including the closing brace.
// The body must end with `return;`.
func (e *Engine) verifyFunctionBody(function string) error {
	returned := false

	for {
		tok := e.cur()

		switch {
		case tok.Kind == lexer.EOF:
			return e.fail(diag.New(diag.MissingFinalReturn).WithName(function))
		case tok.Is("}"):
			if !returned {
				return e.fail(diag.New(diag.MissingFinalReturn).WithName(function))
			}

			e.next()

			return nil
		}

		returned = tok.Is("return")

		if err := e.verifyStatement(); err != nil {
			return err
		}
	}
}
