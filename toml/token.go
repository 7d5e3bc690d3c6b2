package toml

import "fmt"

// TokenType classifies a lexical token
type TokenType int

const (
	TokenError TokenType = iota
	TokenEOF
	TokenComment
	TokenNewline

	TokenIdent   // bare key
	TokenString  // "basic string"
	TokenInteger // 123
	TokenFloat   // 1.5
	TokenBool    // true/false

	TokenEqual    // =
	TokenDot      // .
	TokenLBracket // [
	TokenRBracket // ]
)

// Token is a lexeme with its source position
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "newline"
	case TokenError:
		return fmt.Sprintf("error(%s)", t.Literal)
	}
	return fmt.Sprintf("%q", t.Literal)
}
