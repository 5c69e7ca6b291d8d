// Package lexer splits cleaned S-Java lines into classified tokens.
package lexer

import "regexp"

// Kind classifies a token.
type Kind int

// Token kinds, in classification order.
const (
	Keyword Kind = iota + 1
	Identifier
	Symbol
	Number
	EOF
)

func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case Symbol:
		return "symbol"
	case Number:
		return "number"
	case EOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Token is an immutable classified lexical unit.
type Token struct {
	Text string
	Kind Kind
	Line int // index of the cleaned line the token came from
}

// Is reports whether the token's text equals s.
func (t Token) Is(s string) bool {
	return t.Kind != EOF && t.Text == s
}

// IsAny reports whether the token's text equals one of set.
func (t Token) IsAny(set ...string) bool {
	for _, s := range set {
		if t.Is(s) {
			return true
		}
	}

	return false
}

const symbolChars = `{}()[],;.+-*/%^$#@~&|<>="'`

// splitPattern matches one symbol character, a maximal word run, or any other
// single non-blank character.
var splitPattern = regexp.MustCompile(`[{}()\[\],;.+\-*/%^$#@~&|<>="']|\w+|\S`)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	numberPattern     = regexp.MustCompile(`^[0-9]+$`)
	underscoresOnly   = regexp.MustCompile(`^_+$`)
)

var keywords = map[string]struct{}{
	"int":     {},
	"double":  {},
	"boolean": {},
	"char":    {},
	"String":  {},
	"void":    {},
	"final":   {},
	"if":      {},
	"while":   {},
	"true":    {},
	"false":   {},
	"return":  {},
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsIdentifier reports whether s is a legal S-Java name, ignoring reserved
// words. A name starts with a letter or '_', is not made only of underscores
// and does not start with "__".
func IsIdentifier(s string) bool {
	if !identifierPattern.MatchString(s) || underscoresOnly.MatchString(s) {
		return false
	}

	return len(s) < 2 || s[:2] != "__"
}

// IsNumber reports whether s is an unsigned run of digits.
func IsNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// Classify returns the kind of s, checking keyword, identifier, symbol and
// number in that order. Anything else is reported as a symbol.
func Classify(s string) Kind {
	switch {
	case IsKeyword(s):
		return Keyword
	case IsIdentifier(s):
		return Identifier
	case len(s) == 1 && containsByte(symbolChars, s[0]):
		return Symbol
	case IsNumber(s):
		return Number
	default:
		return Symbol
	}
}

func containsByte(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}

	return false
}

// Split tokenizes a single line.
func Split(line string, index int) []Token {
	words := splitPattern.FindAllString(line, -1)

	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, Token{Text: w, Kind: Classify(w), Line: index})
	}

	return tokens
}
