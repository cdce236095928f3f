package parser

import (
	"strconv"

	"github.com/gill-lang/gill/ast"
	"github.com/gill-lang/gill/token"
)

// parseStatement dispatches on the current token to one of the fixed
// statement productions named in spec.md §4.2. GILL has no generic
// expression-statement form: every top-level construct is one of the
// productions below.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.current().Kind {
	case token.DEFINE:
		return p.parseDefine()
	case token.ASSIGN:
		return p.parseAssign()
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.SWITCH:
		return p.parseSwitch()
	case token.TRY:
		return p.parseTryCatch()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.FOREACH:
		return p.parseForEach()
	case token.FUNCTION:
		return p.parseFunctionDefinition()
	case token.EXEC:
		return p.parseExecCall()
	case token.RETURN:
		return p.parseReturn()
	case token.OUT:
		return p.parseOutputStatement()
	case token.IMPORT:
		return p.parseImport()
	case token.NAMESPACE:
		return p.parseNamespace()
	case token.IDENTIFIER:
		if p.peek(1).Kind == token.INC || p.peek(1).Kind == token.DEC {
			return p.parseIncDecStatement()
		}
		return nil, p.unexpected("identifier is not a valid statement start (did you mean 'assign'?)")
	default:
		return nil, p.unexpected("expected a statement")
	}
}

func (p *Parser) unexpected(msg string) error {
	return &ParseError{Message: msg, Kind: p.current().Kind, Line: p.current().Line, Column: p.current().Column}
}

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() (*ast.BlockNode, error) {
	pos := p.pos_()
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	block := &ast.BlockNode{Pos: pos}
	for !p.check(token.RBRACE) {
		if p.check(token.EOF) {
			return nil, p.unexpected("unterminated block, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

// parseDefine parses `define name [ [size] ] type value` (spec.md §4.2).
func (p *Parser) parseDefine() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.DEFINE); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	var size *int
	if p.check(token.LBRACKET) {
		p.advance()
		sizeTok, err := p.expect(token.NUMBER_INT)
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.Atoi(sizeTok.Value)
		if convErr != nil {
			return nil, &ParseError{Message: "invalid array size literal", Kind: sizeTok.Kind, Line: sizeTok.Line, Column: sizeTok.Column}
		}
		size = &n
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
	}

	typeTok, err := p.expect(token.TYPE)
	if err != nil {
		return nil, err
	}

	value, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}

	if arr, ok := value.(*ast.ArrayNode); ok {
		if size == nil {
			return nil, &ParseError{Message: "array define requires a bracketed size, e.g. 'define a[3] ...'", Kind: nameTok.Kind, Line: nameTok.Line, Column: nameTok.Column}
		}
		arr.DeclaredSize = *size
	} else if size != nil {
		return nil, &ParseError{Message: "define with a bracketed size requires an array literal value", Kind: nameTok.Kind, Line: nameTok.Line, Column: nameTok.Column}
	}

	return &ast.DefineNode{Pos: pos, Name: nameTok.Value, DeclaredType: typeTok.Value, DeclaredSize: size, Value: value}, nil
}

// parseAssign parses `assign name value`.
func (p *Parser) parseAssign() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	value, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	return &ast.AssignNode{Pos: pos, Name: nameTok.Value, Value: value}, nil
}

// parseIncDecStatement parses the statement forms `name++` / `name--`.
func (p *Parser) parseIncDecStatement() (ast.Node, error) {
	pos := p.pos_()
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if p.check(token.INC) {
		p.advance()
		return &ast.IncNode{Pos: pos, Name: nameTok.Value}, nil
	}
	if _, err := p.expect(token.DEC); err != nil {
		return nil, err
	}
	return &ast.DecNode{Pos: pos, Name: nameTok.Value}, nil
}

// parseIf parses `if cond block (else block)?`.
func (p *Parser) parseIf() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.IF); err != nil {
		return nil, err
	}
	cond, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.BlockNode
	if p.check(token.ELSE) {
		p.advance()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfNode{Pos: pos, Condition: cond, Then: then, Else: elseBlock}, nil
}

// parseWhile parses `while cond block`.
func (p *Parser) parseWhile() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	cond, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileNode{Pos: pos, Condition: cond, Body: body}, nil
}

// parseFor parses `for (define name type N, cond, step_stmt) block`.
func (p *Parser) parseFor() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.FOR); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DEFINE); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	typeTok, err := p.expect(token.TYPE)
	if err != nil {
		return nil, err
	}
	initValue, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	cond, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	step, err := p.parseForStep()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForNode{Pos: pos, InitName: nameTok.Value, InitType: typeTok.Value, InitValue: initValue, Condition: cond, Step: step, Body: body}, nil
}

// parseForStep parses the step statement inside a for-header: an
// Assign, Inc, or Dec (spec.md §3 ForNode: "step_stmt").
func (p *Parser) parseForStep() (ast.Node, error) {
	switch p.current().Kind {
	case token.ASSIGN:
		return p.parseAssign()
	case token.IDENTIFIER:
		return p.parseIncDecStatement()
	default:
		return nil, p.unexpected("for-loop step must be an assign, ++, or --")
	}
}

// parseForEach parses `foreach (define name type : iterable) block`.
func (p *Parser) parseForEach() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.FOREACH); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DEFINE); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	typeTok, err := p.expect(token.TYPE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	iterable, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForEachNode{Pos: pos, IterName: nameTok.Value, IterType: typeTok.Value, Iterable: iterable, Body: body}, nil
}

// parseSwitch parses `switch (expr) { (case (value) block)* (default block)? }`,
// rejecting a default that is not last (spec.md §4.2).
func (p *Parser) parseSwitch() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.SWITCH); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	sw := &ast.SwitchNode{Pos: pos, Expr: expr}
	for !p.check(token.RBRACE) {
		if p.check(token.EOF) {
			return nil, p.unexpected("unterminated switch, expected '}'")
		}
		if p.check(token.DEFAULT) {
			if sw.Default != nil {
				return nil, p.unexpected("switch may have only one default")
			}
			defPos := p.pos_()
			p.advance()
			body, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			sw.Default = &ast.DefaultNode{Pos: defPos, Body: body}
			continue
		}
		if sw.Default != nil {
			return nil, p.unexpected("default must be the last arm of a switch")
		}
		casePos := p.pos_()
		if _, err := p.expect(token.CASE); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		val, err := p.parseBoolean()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		sw.Cases = append(sw.Cases, &ast.CaseNode{Pos: casePos, Value: val, Body: body})
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return sw, nil
}

// parseTryCatch parses `try block catch block (finally block)?`.
func (p *Parser) parseTryCatch() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.TRY); err != nil {
		return nil, err
	}
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.CATCH); err != nil {
		return nil, err
	}
	catchBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var finallyBlock *ast.BlockNode
	if p.check(token.FINALLY) {
		p.advance()
		finallyBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.TryCatchNode{Pos: pos, Try: tryBlock, Catch: catchBlock, Finally: finallyBlock}, nil
}

// parseFunctionDefinition parses
// `function return_type name(type param [default expr], …) block`.
func (p *Parser) parseFunctionDefinition() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.FUNCTION); err != nil {
		return nil, err
	}
	retTypeTok, err := p.expect(token.TYPE)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []*ast.ParameterNode
	for !p.check(token.RPAREN) {
		paramPos := p.pos_()
		ptypeTok, err := p.expect(token.TYPE)
		if err != nil {
			return nil, err
		}
		pnameTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		param := &ast.ParameterNode{Pos: paramPos, Name: pnameTok.Value, DeclaredType: ptypeTok.Value}
		if p.check(token.DEFAULT) {
			p.advance()
			def, err := p.parseBoolean()
			if err != nil {
				return nil, err
			}
			param.Default = def
		}
		params = append(params, param)
		if p.check(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinitionNode{Pos: pos, Name: nameTok.Value, Params: params, Body: body, ReturnType: retTypeTok.Value}, nil
}

// parseExecCall parses `exec name(args)` / `exec module::name(args)`, used
// both as a standalone statement and (via parseFactor) as an expression.
func (p *Parser) parseExecCall() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.EXEC); err != nil {
		return nil, err
	}
	firstTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	name := firstTok.Value
	moduleName := ""
	if p.check(token.SCOPERESOP) {
		p.advance()
		fnTok, err := p.expect(token.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		moduleName = name
		name = fnTok.Value
	}

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Node
	for !p.check(token.RPAREN) {
		arg, err := p.parseBoolean()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.check(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FunctionCallNode{Pos: pos, Name: name, Args: args, ModuleName: moduleName}, nil
}

// parseReturn parses `return expr`.
func (p *Parser) parseReturn() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.RETURN); err != nil {
		return nil, err
	}
	expr, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnNode{Pos: pos, Expr: expr}, nil
}

// parseOutputStatement parses `out expr`.
func (p *Parser) parseOutputStatement() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.OUT); err != nil {
		return nil, err
	}
	expr, err := p.parseBoolean()
	if err != nil {
		return nil, err
	}
	return &ast.OutputNode{Pos: pos, Expr: expr}, nil
}

// parseImport parses `import module_name`.
func (p *Parser) parseImport() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.IMPORT); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return &ast.ImportNode{Pos: pos, ModuleName: nameTok.Value}, nil
}

// parseNamespace parses `namespace name block`.
func (p *Parser) parseNamespace() (ast.Node, error) {
	pos := p.pos_()
	if _, err := p.expect(token.NAMESPACE); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.NamespaceNode{Pos: pos, Name: nameTok.Value, Body: body}, nil
}
