// Package diag defines the single error type reported by every sjavac stage.
//
// Each violation is a *Error carrying a Kind discriminant plus the context
// needed to reproduce it (offending name or token, expected type, block kind).
package diag

import (
	"errors"
	"fmt"
)

// Kind identifies which rule a source file violated.
type Kind int

// Structural kinds are raised by the preprocessor, semantic kinds by the
// verification engine and the symbol table.
const (
	_ Kind = iota

	// Structural tier.
	InvalidComment
	EndOfLine
	ClosingBrace
	InvalidLineFormat
	InvalidFunctionHeader
	IllegalFunctionName
	InvalidFunctionParameter
	FunctionAlreadyDeclared
	UnbalancedParentheses

	// Semantic tier.
	VariableAlreadyDeclared
	ConstantAssignment
	ConstantNonAssignment
	UninitializedGlobalVariable
	InvalidVariableName
	InvalidValueType
	InvalidVariableDeclaration
	InvalidVariableAssignment
	NonExistingFunction
	NumberOfVarsInFuncCall
	CallFunctionFromGlobal
	IllegalBlockInGlobalScope
	IllegalCondition
	EmptyCondition
	IllegalVarTypeInCondition
	UninitializedVariableInCondition
	InnerMethodDeclaration
	InvalidFunctionDeclaration
	MissingParameterType
	MissingFinalReturn
	IllegalReturnFormat
	IllegalInnerBlock
	UnknownVariable
	GlobalScope

	kindCount
)

// Tier groups kinds by the stage that raises them.
type Tier int

// Available tiers.
const (
	Structural Tier = iota + 1
	Semantic
)

var kindNames = [kindCount]string{
	InvalidComment:                   "InvalidComment",
	EndOfLine:                        "EndOfLine",
	ClosingBrace:                     "ClosingBrace",
	InvalidLineFormat:                "InvalidLineFormat",
	InvalidFunctionHeader:            "InvalidFunctionHeader",
	IllegalFunctionName:              "IllegalFunctionName",
	InvalidFunctionParameter:         "InvalidFunctionParameter",
	FunctionAlreadyDeclared:          "FunctionAlreadyDeclared",
	UnbalancedParentheses:            "UnbalancedParentheses",
	VariableAlreadyDeclared:          "VariableAlreadyDeclared",
	ConstantAssignment:               "ConstantAssignment",
	ConstantNonAssignment:            "ConstantNonAssignment",
	UninitializedGlobalVariable:      "UninitializedGlobalVariable",
	InvalidVariableName:              "InvalidVariableName",
	InvalidValueType:                 "InvalidValueType",
	InvalidVariableDeclaration:       "InvalidVariableDeclaration",
	InvalidVariableAssignment:        "InvalidVariableAssignment",
	NonExistingFunction:              "NonExistingFunction",
	NumberOfVarsInFuncCall:           "NumberOfVarsInFuncCall",
	CallFunctionFromGlobal:           "CallFunctionFromGlobal",
	IllegalBlockInGlobalScope:        "IllegalBlockInGlobalScope",
	IllegalCondition:                 "IllegalCondition",
	EmptyCondition:                   "EmptyCondition",
	IllegalVarTypeInCondition:        "IllegalVarTypeInCondition",
	UninitializedVariableInCondition: "UninitializedVariableInCondition",
	InnerMethodDeclaration:           "InnerMethodDeclaration",
	InvalidFunctionDeclaration:       "InvalidFunctionDeclaration",
	MissingParameterType:             "MissingParameterType",
	MissingFinalReturn:               "MissingFinalReturn",
	IllegalReturnFormat:              "IllegalReturnFormat",
	IllegalInnerBlock:                "IllegalInnerBlock",
	UnknownVariable:                  "UnknownVariable",
	GlobalScope:                      "GlobalScope",
}

// String returns the kind's name, e.g. "ConstantAssignment".
func (k Kind) String() string {
	if k <= 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Tier reports which stage raises the kind.
func (k Kind) Tier() Tier {
	if k < VariableAlreadyDeclared {
		return Structural
	}

	return Semantic
}

// Error is a tagged verification failure. Only the fields relevant to Kind
// are set.
type Error struct {
	Kind   Kind
	Name   string // variable or function name
	Token  string // offending token
	Type   string // expected or offending type
	Block  string // "if" or "while"
	Detail string // "more"/"fewer" for call arity, the raw line for structural kinds
	Line   int    // zero-based line index, -1 when unknown
}

// New returns an error of the given kind with no position.
func New(kind Kind) *Error {
	return &Error{Kind: kind, Line: -1}
}

// WithName sets the offending name.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithToken sets the offending token.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithType sets the type involved in the violation.
func (e *Error) WithType(typ string) *Error {
	e.Type = typ
	return e
}

// WithBlock sets the block keyword ("if" or "while").
func (e *Error) WithBlock(block string) *Error {
	e.Block = block
	return e
}

// WithDetail sets free-form context.
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// At sets the line index if it is not already known.
func (e *Error) At(line int) *Error {
	if e.Line < 0 {
		e.Line = line
	}

	return e
}

//nolint:cyclop,funlen // One case per kind keeps the message table exhaustive.
func (e *Error) Error() string {
	var msg string

	switch e.Kind {
	case InvalidComment:
		msg = fmt.Sprintf("invalid comment %q, only lines starting with // are comments", e.Detail)
	case EndOfLine:
		msg = fmt.Sprintf("line %q must end with ';', '{' or '}'", e.Detail)
	case ClosingBrace:
		msg = fmt.Sprintf("closing brace must be alone on its line: %q", e.Detail)
	case InvalidLineFormat:
		msg = fmt.Sprintf("only one statement per line is allowed: %q", e.Detail)
	case InvalidFunctionHeader:
		msg = fmt.Sprintf("illegal function declaration %q", e.Detail)
	case IllegalFunctionName:
		msg = fmt.Sprintf("illegal function name %q", e.Name)
	case InvalidFunctionParameter:
		msg = fmt.Sprintf("invalid function parameter in %q", e.Detail)
	case FunctionAlreadyDeclared:
		msg = fmt.Sprintf("function %s is declared twice", e.Name)
	case UnbalancedParentheses:
		msg = "unbalanced parentheses"
	case VariableAlreadyDeclared:
		msg = fmt.Sprintf("variable %s is already declared in this scope", e.Name)
	case ConstantAssignment:
		msg = fmt.Sprintf("%s is constant and cannot be assigned", e.Name)
	case ConstantNonAssignment:
		msg = fmt.Sprintf("constant %s must be initialized", e.Name)
	case UninitializedGlobalVariable:
		msg = fmt.Sprintf("global variable %s is uninitialized and cannot be assigned from an inner scope", e.Name)
	case InvalidVariableName:
		msg = fmt.Sprintf("illegal variable name %q", e.Token)
	case InvalidValueType:
		msg = fmt.Sprintf("value %q is not a valid %s for %s", e.Token, e.Type, e.Name)
	case InvalidVariableDeclaration:
		msg = fmt.Sprintf("unexpected token %q in declaration of %s", e.Token, e.Name)
	case InvalidVariableAssignment:
		msg = fmt.Sprintf("%s was not assigned properly, unexpected token %q", e.Name, e.Token)
	case NonExistingFunction:
		msg = fmt.Sprintf("function %s does not exist", e.Name)
	case NumberOfVarsInFuncCall:
		msg = fmt.Sprintf("%s arguments than needed in call to %s", e.Detail, e.Name)
	case CallFunctionFromGlobal:
		msg = fmt.Sprintf("function %s cannot be called from the global scope", e.Name)
	case IllegalBlockInGlobalScope:
		msg = fmt.Sprintf("%s block can appear only inside a function", e.Block)
	case IllegalCondition:
		msg = fmt.Sprintf("illegal condition in %s block at %q", e.Block, e.Token)
	case EmptyCondition:
		msg = fmt.Sprintf("empty condition in %s block", e.Block)
	case IllegalVarTypeInCondition:
		msg = fmt.Sprintf("%s is an illegal variable type for the condition of %s block (%s)", e.Type, e.Block, e.Name)
	case UninitializedVariableInCondition:
		msg = fmt.Sprintf("variable %s is uninitialized in the %s condition", e.Name, e.Block)
	case InnerMethodDeclaration:
		msg = "methods cannot be declared inside a method"
	case InvalidFunctionDeclaration:
		msg = fmt.Sprintf("malformed declaration of function %s at %q", e.Name, e.Token)
	case MissingParameterType:
		msg = fmt.Sprintf("missing type for parameter %q of function %s", e.Token, e.Name)
	case MissingFinalReturn:
		msg = fmt.Sprintf("function %s is missing its final return statement", e.Name)
	case IllegalReturnFormat:
		msg = fmt.Sprintf("illegal return format at %q, must be written as: return;", e.Token)
	case IllegalInnerBlock:
		msg = fmt.Sprintf("illegal statement in block at %q", e.Token)
	case UnknownVariable:
		msg = fmt.Sprintf("variable %s does not exist in this scope or any enclosing one", e.Name)
	case GlobalScope:
		msg = fmt.Sprintf("illegal statement %q in the global scope", e.Token)
	default:
		msg = "unknown violation"
	}

	return e.Kind.String() + ": " + msg
}

// KindOf extracts the kind of a *Error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

// Exit codes shared by the CLI and the library entry points.
const (
	CodeAccepted  = 0
	CodeRejected  = 1
	CodeIOFailure = 2
)

// Code maps a run's error onto its exit code: nil is accepted, a *Error is a
// rejection, anything else is an I/O failure.
func Code(err error) int {
	if err == nil {
		return CodeAccepted
	}

	if _, ok := KindOf(err); ok {
		return CodeRejected
	}

	return CodeIOFailure
}
