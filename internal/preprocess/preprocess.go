// Package preprocess turns raw S-Java source into the cleaned line stream and
// function table consumed by the verification engine.
package preprocess

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/lexer"
	"github.com/mouse-blink/sjavac/internal/symtab"
)

// Result is the cleaned program.
type Result struct {
	// Lines holds the source lines that survived comment and blank-line
	// stripping, with trailing whitespace removed.
	Lines []string
	// Origins maps each entry of Lines to its 1-based line in the input.
	Origins []int
	// Functions holds every function signature declared in the file.
	Functions *symtab.FunctionTable
}

// Origin returns the 1-based input line of cleaned line i, or 0 if i is out
// of range.
func (r *Result) Origin(i int) int {
	if i < 0 || i >= len(r.Origins) {
		return 0
	}

	return r.Origins[i]
}

var (
	skippablePattern = regexp.MustCompile(`^(\s*//.*|\s*)$`)
	functionPattern  = regexp.MustCompile(`^void\s+(\w*)\s*\(([^)]*)\)`)
	functionName     = regexp.MustCompile(`^[a-zA-Z]\w*$`)
)

var brackets = map[rune]rune{')': '(', '}': '{', ']': '['}

// Process reads src and validates its line structure. Structural violations
// are returned as *diag.Error carrying the cleaned line index, together with
// the partial result so callers can map that index back to the input. Read
// failures are wrapped and returned with a nil result.
func Process(src io.Reader) (*Result, error) {
	res := &Result{Functions: symtab.NewFunctionTable()}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	number := 0
	for scanner.Scan() {
		number++
		line := scanner.Text()

		if skippablePattern.MatchString(line) {
			continue
		}

		res.Lines = append(res.Lines, strings.TrimRight(line, " \t\r"))
		res.Origins = append(res.Origins, number)

		if isInvalidComment(line) {
			return res, diag.New(diag.InvalidComment).WithDetail(line).At(len(res.Lines) - 1)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	if err := res.validate(); err != nil {
		return res, err
	}

	return res, nil
}

func isInvalidComment(line string) bool {
	if strings.HasPrefix(line, "/") && !strings.HasPrefix(line, "//") {
		return true
	}

	return strings.HasSuffix(strings.TrimRight(line, " \t\r"), "*/")
}

func (r *Result) validate() error {
	var stack []rune

	for i, line := range r.Lines {
		trimmed := strings.TrimSpace(line)

		if !strings.HasSuffix(trimmed, ";") && !strings.HasSuffix(trimmed, "{") && !strings.HasSuffix(trimmed, "}") {
			return diag.New(diag.EndOfLine).WithDetail(trimmed).At(i)
		}

		if strings.Contains(trimmed, "}") && trimmed != "}" {
			return diag.New(diag.ClosingBrace).WithDetail(trimmed).At(i)
		}

		if strings.Count(trimmed, ";") > 1 {
			return diag.New(diag.InvalidLineFormat).WithDetail(trimmed).At(i)
		}

		if strings.HasPrefix(trimmed, "void") {
			if err := r.collectFunction(trimmed); err != nil {
				return err.At(i)
			}
		}

		for _, ch := range trimmed {
			switch ch {
			case '(', '{', '[':
				stack = append(stack, ch)
			case ')', '}', ']':
				if len(stack) == 0 || stack[len(stack)-1] != brackets[ch] {
					return diag.New(diag.UnbalancedParentheses).At(i)
				}

				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) > 0 {
		return diag.New(diag.UnbalancedParentheses).At(len(r.Lines) - 1)
	}

	return nil
}

func (r *Result) collectFunction(line string) *diag.Error {
	match := functionPattern.FindStringSubmatch(line)
	if match == nil {
		return diag.New(diag.InvalidFunctionHeader).WithDetail(line)
	}

	name := match[1]
	if !functionName.MatchString(name) || lexer.IsKeyword(name) {
		return diag.New(diag.IllegalFunctionName).WithName(name)
	}

	params, err := parseParameterTypes(match[2])
	if err != nil {
		return err.WithDetail(line)
	}

	if err := r.Functions.Add(name, params); err != nil {
		e, _ := err.(*diag.Error) //nolint:errorlint // Add only returns *diag.Error.
		return e
	}

	return nil
}

func parseParameterTypes(params string) ([]symtab.Type, *diag.Error) {
	if strings.TrimSpace(params) == "" {
		return nil, nil
	}

	var types []symtab.Type

	for _, param := range strings.Split(params, ",") {
		parts := strings.Fields(param)
		if len(parts) == 3 && parts[0] == "final" {
			parts = parts[1:]
		}

		if len(parts) != 2 {
			return nil, diag.New(diag.InvalidFunctionParameter)
		}

		typ, ok := symtab.ParseType(parts[0])
		if !ok || !lexer.IsIdentifier(parts[1]) || lexer.IsKeyword(parts[1]) {
			return nil, diag.New(diag.InvalidFunctionParameter)
		}

		types = append(types, typ)
	}

	return types, nil
}
