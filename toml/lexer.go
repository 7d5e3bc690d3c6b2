package toml

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lexer splits input into tokens one call at a time
type Lexer struct {
	input []byte
	pos   int
	line  int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input, line: 1}
}

// NextToken returns the next token; EOF repeats once input is exhausted
func (l *Lexer) NextToken() Token {
	l.skipBlanks()
	if l.pos >= len(l.input) {
		return l.token(TokenEOF, "")
	}

	ch := l.peek()
	switch {
	case ch == '\n':
		l.advance()
		tok := l.token(TokenNewline, "\n")
		tok.Line-- // newline belongs to the line it ends
		return tok
	case ch == '#':
		return l.readComment()
	case ch == '=':
		l.advance()
		return l.token(TokenEqual, "=")
	case ch == '.':
		l.advance()
		return l.token(TokenDot, ".")
	case ch == '[':
		l.advance()
		return l.token(TokenLBracket, "[")
	case ch == ']':
		l.advance()
		return l.token(TokenRBracket, "]")
	case ch == '"':
		return l.readString()
	case isBareChar(ch) || ch == '+':
		return l.readBare()
	}

	l.advance()
	return l.token(TokenError, fmt.Sprintf("unexpected character %q", ch))
}

func (l *Lexer) token(typ TokenType, lit string) Token {
	return Token{Type: typ, Literal: lit, Line: l.line}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, w := utf8.DecodeRune(l.input[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) skipBlanks() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) readComment() Token {
	l.advance() // #
	start := l.pos
	for l.pos < len(l.input) && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenComment, string(l.input[start:l.pos]))
}

func (l *Lexer) readString() Token {
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.advance()
		switch ch {
		case '\n':
			return l.token(TokenError, "newline in basic string")
		case '"':
			return l.token(TokenString, sb.String())
		case '\\':
			esc := l.advance()
			switch esc {
			case '"', '\\':
				sb.WriteRune(esc)
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				return l.token(TokenError, fmt.Sprintf("unsupported escape \\%c", esc))
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return l.token(TokenError, "unterminated string")
}

// readBare reads a bare key, number or boolean and classifies it
func (l *Lexer) readBare() Token {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.peek()
		// '.' only continues a token that started as a number
		if isBareChar(ch) || ch == '+' || (ch == '.' && looksNumeric(l.input[start:l.pos])) {
			l.advance()
			continue
		}
		break
	}
	lit := string(l.input[start:l.pos])

	switch {
	case lit == "true" || lit == "false":
		return l.token(TokenBool, lit)
	case looksNumeric([]byte(lit)):
		if strings.ContainsAny(lit, ".eE") {
			return l.token(TokenFloat, lit)
		}
		return l.token(TokenInteger, strings.ReplaceAll(lit, "_", ""))
	}
	return l.token(TokenIdent, lit)
}

// looksNumeric reports whether s is digits with optional sign, underscores, '.' and exponent
func looksNumeric(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	if i >= len(s) || !isDigit(rune(s[i])) {
		return false
	}
	for ; i < len(s); i++ {
		c := rune(s[i])
		if !isDigit(c) && c != '_' && c != '.' && c != 'e' && c != 'E' && c != '+' && c != '-' {
			return false
		}
	}
	return true
}

func isBareChar(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '-'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
