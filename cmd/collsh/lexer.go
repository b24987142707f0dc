package main

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the command language.
const (
	tokWord int = iota + 1
	tokNumber
	tokString
	tokSemicolon
)

var tokenNames = map[int]string{
	tokWord:      "word",
	tokNumber:    "number",
	tokString:    "string",
	tokSemicolon: ";",
}

// token is a scanned lexeme of a command line.
type token struct {
	typ    int
	lexeme string
	col    int
}

// Value returns the lexeme, with quotes removed from strings.
func (t token) Value() string {
	if t.typ == tokString {
		return strings.Trim(t.lexeme, `"`)
	}
	return t.lexeme
}

func (t token) String() string {
	return fmt.Sprintf("%s(%s)@%d", tokenNames[t.typ], t.lexeme, t.col)
}

// lexer wraps a compiled lexmachine DFA for command lines.
type lexer struct {
	lm *lexmachine.Lexer
}

// newLexer compiles the DFA. Commands and container names are scanned as words;
// the shell interprets them.
func newLexer() (*lexer, error) {
	lm := lexmachine.NewLexer()
	lm.Add([]byte(`( |\t)+`), skip)
	lm.Add([]byte(`\;`), makeToken(tokSemicolon))
	lm.Add([]byte(`\-?[0-9]+`), makeToken(tokNumber))
	lm.Add([]byte(`"[^"]*"`), makeToken(tokString))
	lm.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeToken(tokWord))
	if err := lm.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &lexer{lm: lm}, nil
}

// Tokenize scans a command line. Input the DFA cannot consume is reported as an error,
// together with the column it starts at.
func (lx *lexer) Tokenize(line string) ([]token, error) {
	scanner, err := lx.lm.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return toks, fmt.Errorf("unexpected input at column %d: %q", ui.FailTC+1,
				line[ui.FailTC:])
		} else if err != nil {
			return toks, err
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, token{typ: t.Type, lexeme: string(t.Lexeme), col: t.StartColumn})
	}
	tracer().Debugf("tokens = %v", toks)
	return toks, nil
}

// splitCommands splits a token sequence at semicolons, dropping empty commands.
func splitCommands(toks []token) [][]token {
	var cmds [][]token
	start := 0
	for i := 0; i <= len(toks); i++ {
		if i == len(toks) || toks[i].typ == tokSemicolon {
			if i > start {
				cmds = append(cmds, toks[start:i])
			}
			start = i + 1
		}
	}
	return cmds
}

// skip is a lexmachine action which ignores the match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexmachine action which wraps a match into a token of type id.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
