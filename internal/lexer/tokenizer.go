package lexer

// Tokenizer produces tokens lazily, one line at a time, with one token of
// speculative look-ahead.
type Tokenizer struct {
	lines   []string
	line    int
	pending []Token
	current Token
	spec    *Speculation
}

// New returns a tokenizer positioned before the first token of lines.
func New(lines []string) *Tokenizer {
	t := &Tokenizer{lines: lines, current: Token{Kind: EOF, Line: -1}}
	if len(lines) > 0 {
		t.pending = Split(lines[0], 0)
	}

	return t
}

// Current returns the token under the cursor.
func (t *Tokenizer) Current() Token {
	return t.current
}

// Advance discards the current token and returns the next one, or an EOF
// token once every line is consumed.
func (t *Tokenizer) Advance() Token {
	for len(t.pending) == 0 {
		if t.line+1 >= len(t.lines) {
			t.line = len(t.lines)
			t.current = Token{Kind: EOF, Line: len(t.lines)}

			return t.current
		}

		t.line++
		t.pending = Split(t.lines[t.line], t.line)
	}

	// pending is only ever re-sliced, so a snapshot of the header is enough
	// to restore it later.
	t.current = t.pending[0]
	t.pending = t.pending[1:]

	return t.current
}

// Speculation is an outstanding look-ahead. It must be settled with Retreat
// or Commit before the tokenizer accepts another LookAhead.
type Speculation struct {
	t       *Tokenizer
	line    int
	pending []Token
	current Token
}

// LookAhead snapshots the cursor and advances one token. The returned
// speculation owns the tokenizer's single look-ahead slot.
func (t *Tokenizer) LookAhead() *Speculation {
	if t.spec != nil {
		panic("lexer: LookAhead called with a speculation outstanding")
	}

	s := &Speculation{t: t, line: t.line, pending: t.pending, current: t.current}
	t.spec = s
	t.Advance()

	return s
}

// Peek returns the token after the current one without moving the cursor.
func (t *Tokenizer) Peek() Token {
	s := t.LookAhead()
	next := t.current
	s.Retreat()

	return next
}

// Retreat restores the cursor to where LookAhead was called.
func (s *Speculation) Retreat() {
	if s.t == nil {
		return
	}

	s.t.line = s.line
	s.t.pending = s.pending
	s.t.current = s.current
	s.release()
}

// Commit keeps the advanced position and frees the look-ahead slot.
func (s *Speculation) Commit() {
	if s.t == nil {
		return
	}

	s.release()
}

func (s *Speculation) release() {
	s.t.spec = nil
	s.t = nil
}
