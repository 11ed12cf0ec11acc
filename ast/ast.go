package ast

// The abstract interface for all AST nodes.
type ASTNode interface {
	// The 1-based source line on which the node begins.
	Line() int
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The source line on which the node begins.
	line int
}

// NewASTBaseOn creates a new AST base anchored to the given source line.
func NewASTBaseOn(line int) ASTBase {
	return ASTBase{line: line}
}

func (ab ASTBase) Line() int {
	return ab.line
}
