package syntax

import "streamc/ast"

// expr := '!' expr | 'ANY' ;
//
// Expression parsing is intentionally minimal: a leading `!` builds a unary
// operation by recursing, and any other token is consumed blindly with a nil
// placeholder result.  Expressions are not validated beyond consuming a
// bounded number of tokens; only the surrounding delimiters are checked.
// This limit is part of the parser's contract, not a gap to fill in.
func (p *Parser) parseExpression() ast.ASTNode {
	if p.match(TokOperator, "!") {
		op := p.prev()

		return &ast.UnaryOp{
			ASTBase: ast.NewASTBaseOn(op.Line),
			Op:      op.Value,
			Operand: p.parseExpression(),
		}
	}

	p.advance()
	return nil
}
