// Package parser implements GILL's hand-written recursive-descent parser:
// a one-token lookahead cursor over the full token sequence, a
// precedence-climbing expression grammar (boolean > expr > term > factor),
// and a block-structured statement grammar, producing a top-level
// ast.BlockNode (spec.md §4.2).
//
// Grounded on akashmaji946/go-mix's parser/parser.go for the overall
// struct shape (a cursor over tokens with current/peek/advance/expect
// primitives feeding per-concern parse*.go files), generalized from
// go-mix's Pratt/precedence-table dispatch to GILL's fixed four-level
// grammar, since spec.md names the levels explicitly rather than leaving
// them to a runtime precedence table.
package parser

import (
	"fmt"

	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/token"
)

// ParseError reports a token that does not match the expected grammar
// production, carrying the offending token's kind and source position
// (spec.md §4.2).
type ParseError struct {
	Message string
	Kind    token.Kind
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ParseError: %s (token %s, line %d, column %d)", e.Message, e.Kind, e.Line, e.Column)
}

// Parser walks a fully-lexed token sequence and builds the AST. No
// lexing happens during parsing and no evaluation happens here — the
// pipeline stages are strictly separated (spec.md §2).
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over a complete token sequence (including the
// trailing EOF token the lexer always appends).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, pos: 0}
}

func (p *Parser) current() token.Token { return p.peek(0) }

// peek returns the token `offset` positions ahead of the cursor, clamped
// to the final (EOF) token so lookahead never runs off the slice.
func (p *Parser) peek(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) check(kind token.Kind) bool { return p.current().Kind == kind }

func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect advances past the current token if it matches kind, or returns
// a ParseError describing the mismatch.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if !p.check(kind) {
		return token.Token{}, &ParseError{
			Message: fmt.Sprintf("expected %s, got %s %q", kind, p.current().Kind, p.current().Value),
			Kind:    p.current().Kind,
			Line:    p.current().Line,
			Column:  p.current().Column,
		}
	}
	return p.advance(), nil
}

func (p *Parser) pos_() ast.Pos {
	return ast.Pos{Line: p.current().Line, Column: p.current().Column}
}

// Parse consumes the full token sequence and returns the top-level Block
// containing every parsed statement (spec.md §2: "parsed in full into a
// top-level BlockNode").
func Parse(tokens []token.Token) (*ast.BlockNode, error) {
	p := New(tokens)
	block := &ast.BlockNode{Pos: p.pos_()}
	for !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}
