package x86

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
	"unicode"
)

const (
	LINE_LIMIT = 1 << 20 // Longest accepted source line, in bytes.
)

// Lexer splits source text into tokens.
type Lexer struct {
	Path    string // Source path recorded in token locations.
	Verbose bool   // If set, logs every line and its tokens.
}

// Tokenize reads all lines of input and returns their tokens in source order.
func (lex *Lexer) Tokenize(input io.Reader) (tokens []Token, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), LINE_LIMIT)

	var lineno int
	for scanner.Scan() {
		lineno += 1

		var line []Token
		line, err = lex.TokenizeLine(scanner.Text(), lineno)
		if err != nil {
			return
		}

		tokens = append(tokens, line...)
	}

	err = scanner.Err()

	return
}

// findCol returns the first rune index at or after col for which pred
// holds, or len(line).
func findCol(line []rune, col int, pred func(rune) bool) int {
	for ; col < len(line); col++ {
		if pred(line[col]) {
			return col
		}
	}
	return len(line)
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// TokenizeLine tokenizes a single line. Columns are rune positions.
func (lex *Lexer) TokenizeLine(text string, lineno int) (tokens []Token, err error) {
	line := []rune(text)

	col := findCol(line, 0, notSpace)
	for col < len(line) {
		end := findCol(line, col, unicode.IsSpace)
		loc := Location{Path: lex.Path, Line: lineno, Column: col + 1}

		var tok Token
		tok, err = makeToken(string(line[col:end]), loc)
		if err != nil {
			return
		}
		tokens = append(tokens, tok)

		// Step over the separator, then any further blanks.
		col = findCol(line, end+1, notSpace)
	}

	if lex.Verbose {
		log.Printf("%v:%d: %q %v", lex.Path, lineno, text, tokens)
	}

	return
}

// makeToken classifies a single word.
func makeToken(word string, loc Location) (tok Token, err error) {
	switch {
	case strings.HasPrefix(word, "#"):
		var value int64
		value, err = parseImmediate(word[1:])
		if err != nil {
			err = &ErrLex{Loc: loc, Text: word, Err: ErrParseNumber(word)}
			return
		}
		tok = MakeTokenImm(word, loc, value)
	case strings.HasPrefix(word, "%"):
		reg, ok := LookupRegister(strings.ToLower(word[1:]))
		tok = MakeTokenReg(word, loc, reg, ok)
	default:
		op, ok := LookupMnemonic(word)
		tok = MakeTokenOp(word, loc, op, ok)
	}

	return
}

// parseImmediate parses a decimal number, or a hexadecimal one after '0x'.
func parseImmediate(num string) (value int64, err error) {
	base := 10
	if strings.HasPrefix(num, "0x") {
		base = 16
		num = num[2:]
	}

	value, err = strconv.ParseInt(num, base, 64)

	return
}
