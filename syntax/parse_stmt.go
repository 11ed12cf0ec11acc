package syntax

import (
	"streamc/ast"
	"streamc/report"
)

// NOTE: All parsing functions that are not utility functions are commented
// with the EBNF notation of the production they parse.

// stmt := var_decl | file_decl | file_op | if_stmt | while_stmt | for_stmt ;
func (p *Parser) parseStatement() (ast.ASTNode, error) {
	switch {
	case p.match(TokKeyword, "int"):
		return p.parseVariableDeclaration()
	case p.match(TokKeyword, "ifstream", "ofstream", "fstream"):
		return p.parseFileDeclaration()
	case p.match(TokIdentifier):
		return p.parseFileOperation()
	case p.match(TokKeyword, "if"):
		return p.parseIfStatement()
	case p.match(TokKeyword, "while"):
		return p.parseWhileStatement()
	case p.match(TokKeyword, "for"):
		return p.parseForStatement()
	default:
		return nil, report.UnexpectedToken(p.peek().Line, p.peek().Value)
	}
}

// var_decl := 'int' 'IDENTIFIER' {',' 'IDENTIFIER'} ';' ;
func (p *Parser) parseVariableDeclaration() (ast.ASTNode, error) {
	typeTok := p.prev()

	var names []*ast.Identifier
	for {
		if !p.match(TokIdentifier) {
			return nil, report.ExpectedIdentifier(p.errLine(), "in variable declaration")
		}

		names = append(names, &ast.Identifier{
			ASTBase: ast.NewASTBaseOn(p.prev().Line),
			Name:    p.prev().Value,
		})

		if !p.match(TokPunct, ",") {
			break
		}
	}

	if err := p.expectPunct(";", "at the end of variable declaration"); err != nil {
		return nil, err
	}

	return &ast.Declaration{
		ASTBase:  ast.NewASTBaseOn(typeTok.Line),
		TypeName: typeTok.Value,
		Names:    names,
	}, nil
}

// file_decl := ('ifstream' | 'ofstream' | 'fstream') 'IDENTIFIER' '(' 'LITERAL' ')' ';' ;
func (p *Parser) parseFileDeclaration() (ast.ASTNode, error) {
	if !p.match(TokIdentifier) {
		return nil, report.ExpectedIdentifier(p.errLine(), "after file declaration keyword")
	}

	ident := &ast.Identifier{
		ASTBase: ast.NewASTBaseOn(p.prev().Line),
		Name:    p.prev().Value,
	}

	if err := p.expectPunct("(", "after file declaration identifier"); err != nil {
		return nil, err
	}

	release := p.openBracket()
	defer release()

	if !p.match(TokLiteral) {
		return nil, report.ExpectedToken(p.errLine(), "filename literal", "in file declaration")
	}

	if err := p.expectPunct(")", "after filename literal in file declaration"); err != nil {
		return nil, err
	}
	release()

	if err := p.expectPunct(";", "at the end of file declaration"); err != nil {
		return nil, err
	}

	return ident, nil
}

// file_op := 'IDENTIFIER' '.' 'IDENTIFIER' '(' ')' ';' ;
func (p *Parser) parseFileOperation() (ast.ASTNode, error) {
	identTok := p.prev()

	if !p.match(TokOperator, ".") {
		return nil, report.Raise(report.ErrUnexpectedToken, p.errLine(),
			"Unexpected token after file identifier")
	}

	if !p.match(TokIdentifier) {
		return nil, report.Raise(report.ErrExpectedIdentifier, p.errLine(),
			"Expected method name after '.' in file operation")
	}

	if err := p.expectPunct("(", "after method name in file operation"); err != nil {
		return nil, err
	}

	release := p.openBracket()
	defer release()

	if err := p.expectPunct(")", "in file operation"); err != nil {
		return nil, err
	}
	release()

	if err := p.expectPunct(";", "at the end of file operation"); err != nil {
		return nil, err
	}

	return &ast.Identifier{
		ASTBase: ast.NewASTBaseOn(identTok.Line),
		Name:    identTok.Value,
	}, nil
}

// if_stmt := 'if' '(' expr ')' '{' {stmt} '}' ;
// The grammar has no `else` clause: a trailing `else` keyword is left for the
// next statement dispatch, which rejects it.
func (p *Parser) parseIfStatement() (ast.ASTNode, error) {
	if err := p.expectPunct("(", "after 'if'"); err != nil {
		return nil, err
	}

	release := p.openBracket()
	defer release()

	p.parseExpression()

	if err := p.expectPunct(")", "after condition in 'if' statement"); err != nil {
		return nil, err
	}
	release()

	if err := p.expectPunct("{", "after 'if' condition"); err != nil {
		return nil, err
	}

	releaseBody := p.openBracket()
	defer releaseBody()

	if _, err := p.parseBlock(); err != nil {
		return nil, err
	}
	releaseBody()

	return nil, nil
}

// while_stmt := 'while' '(' expr ')' '{' {stmt} '}' ;
func (p *Parser) parseWhileStatement() (ast.ASTNode, error) {
	line := p.prev().Line

	if err := p.expectPunct("(", "after 'while'"); err != nil {
		return nil, err
	}

	release := p.openBracket()
	defer release()

	cond := p.parseExpression()

	if err := p.expectPunct(")", "after condition in 'while' statement"); err != nil {
		return nil, err
	}
	release()

	if err := p.expectPunct("{", "after 'while' condition"); err != nil {
		return nil, err
	}

	releaseBody := p.openBracket()
	defer releaseBody()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	releaseBody()

	return &ast.WhileLoop{
		ASTBase: ast.NewASTBaseOn(line),
		Cond:    cond,
		Body:    body,
	}, nil
}

// for_stmt := 'for' '(' expr ';' expr ';' expr ')' '{' {stmt} '}' ;
func (p *Parser) parseForStatement() (ast.ASTNode, error) {
	line := p.prev().Line

	if err := p.expectPunct("(", "after 'for'"); err != nil {
		return nil, err
	}

	release := p.openBracket()
	defer release()

	init := p.parseExpression()

	if err := p.expectPunct(";", "after initialization in 'for' statement"); err != nil {
		return nil, err
	}

	cond := p.parseExpression()

	if err := p.expectPunct(";", "after condition in 'for' statement"); err != nil {
		return nil, err
	}

	incr := p.parseExpression()

	if err := p.expectPunct(")", "after increment in 'for' statement"); err != nil {
		return nil, err
	}
	release()

	if err := p.expectPunct("{", "after 'for' header"); err != nil {
		return nil, err
	}

	releaseBody := p.openBracket()
	defer releaseBody()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	releaseBody()

	return &ast.ForLoop{
		ASTBase: ast.NewASTBaseOn(line),
		Init:    init,
		Cond:    cond,
		Incr:    incr,
		Body:    body,
	}, nil
}

// parseBlock parses the statements of a braced body up to and including the
// closing `}`.  Reaching the end of input inside the body is a bracket
// mismatch anchored to the innermost open bracket.
func (p *Parser) parseBlock() ([]ast.ASTNode, error) {
	var body []ast.ASTNode

	for {
		if p.atEnd() {
			return nil, report.MismatchedBrackets(p.openBracketLine())
		}

		if p.match(TokPunct, "}") {
			return body, nil
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		if stmt != nil {
			body = append(body, stmt)
		}
	}
}
