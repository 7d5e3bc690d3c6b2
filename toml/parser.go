package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser builds a map[string]any tree from tokens
// Supported: comments, [table] and [dotted.table] headers, dotted keys,
// basic strings, integers, floats and booleans
type Parser struct {
	lexer    *Lexer
	cur      Token
	peek     Token
	root     map[string]any
	scope    map[string]any
	declared map[string]bool
}

func NewParser(input []byte) *Parser {
	p := &Parser{
		lexer:    NewLexer(input),
		root:     make(map[string]any),
		declared: make(map[string]bool),
	}
	p.scope = p.root
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lexer.NextToken()
	for p.peek.Type == TokenComment {
		p.peek = p.lexer.NextToken()
	}
}

// Parse consumes the whole input
func (p *Parser) Parse() (map[string]any, error) {
	for p.cur.Type != TokenEOF {
		switch p.cur.Type {
		case TokenNewline:
			p.next()
			continue
		case TokenLBracket:
			if err := p.parseTableHeader(); err != nil {
				return nil, err
			}
		case TokenIdent, TokenString:
			if err := p.parseKeyValue(); err != nil {
				return nil, err
			}
		case TokenError:
			return nil, fmt.Errorf("line %d: %s", p.cur.Line, p.cur.Literal)
		default:
			return nil, fmt.Errorf("line %d: unexpected %s", p.cur.Line, p.cur)
		}

		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
	}
	return p.root, nil
}

func (p *Parser) expectLineEnd() error {
	switch p.cur.Type {
	case TokenNewline:
		p.next()
		return nil
	case TokenEOF:
		return nil
	}
	return fmt.Errorf("line %d: expected end of line, got %s", p.cur.Line, p.cur)
}

func (p *Parser) parseTableHeader() error {
	line := p.cur.Line
	p.next() // [
	if p.cur.Type == TokenLBracket {
		return fmt.Errorf("line %d: arrays of tables are not supported", line)
	}

	keys, err := p.parseKey()
	if err != nil {
		return err
	}
	if p.cur.Type != TokenRBracket {
		return fmt.Errorf("line %d: expected ']' after table name", line)
	}
	p.next() // ]

	path := strings.Join(keys, ".")
	if p.declared[path] {
		return fmt.Errorf("line %d: table [%s] defined twice", line, path)
	}
	p.declared[path] = true

	table, err := descend(p.root, keys)
	if err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	p.scope = table
	return nil
}

func (p *Parser) parseKeyValue() error {
	line := p.cur.Line
	keys, err := p.parseKey()
	if err != nil {
		return err
	}
	if p.cur.Type != TokenEqual {
		return fmt.Errorf("line %d: expected '=' after key, got %s", line, p.cur)
	}
	p.next() // =

	val, err := p.parseValue()
	if err != nil {
		return err
	}

	table, err := descend(p.scope, keys[:len(keys)-1])
	if err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	last := keys[len(keys)-1]
	if _, exists := table[last]; exists {
		return fmt.Errorf("line %d: duplicate key %s", line, strings.Join(keys, "."))
	}
	table[last] = val
	return nil
}

// parseKey reads key ('.' key)*
func (p *Parser) parseKey() ([]string, error) {
	var keys []string
	for {
		if p.cur.Type != TokenIdent && p.cur.Type != TokenString && p.cur.Type != TokenInteger {
			return nil, fmt.Errorf("line %d: expected key, got %s", p.cur.Line, p.cur)
		}
		keys = append(keys, p.cur.Literal)
		p.next()
		if p.cur.Type != TokenDot {
			return keys, nil
		}
		p.next()
	}
}

func (p *Parser) parseValue() (any, error) {
	tok := p.cur
	p.next()

	switch tok.Type {
	case TokenString:
		return tok.Literal, nil
	case TokenBool:
		return tok.Literal == "true", nil
	case TokenInteger:
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid integer %s", tok.Line, tok.Literal)
		}
		return v, nil
	case TokenFloat:
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.Literal, "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid float %s", tok.Line, tok.Literal)
		}
		return v, nil
	case TokenLBracket:
		return nil, fmt.Errorf("line %d: arrays are not supported", tok.Line)
	case TokenError:
		return nil, fmt.Errorf("line %d: %s", tok.Line, tok.Literal)
	}
	return nil, fmt.Errorf("line %d: unexpected value %s", tok.Line, tok)
}

// descend walks or creates nested tables along keys
func descend(table map[string]any, keys []string) (map[string]any, error) {
	for _, k := range keys {
		existing, ok := table[k]
		if !ok {
			child := make(map[string]any)
			table[k] = child
			table = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %s is not a table", k)
		}
		table = child
	}
	return table, nil
}
