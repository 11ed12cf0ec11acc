package ast

// Identifier represents a named value such as a variable or a file stream.
type Identifier struct {
	ASTBase

	// The name of the identifier.
	Name string
}

// NumberLit represents a numeric literal.  The lexer does not yet produce a
// numeric token class, so this node is reserved for future literal support.
type NumberLit struct {
	ASTBase

	// The literal text of the number.
	Value string
}

// UnaryOp represents the application of a unary operator to an operand.
type UnaryOp struct {
	ASTBase

	// The operator text, eg. `!`.
	Op string

	// The operand expression.
	Operand ASTNode
}

// BinaryOp represents the application of a binary operator to two operands.
// The expression grammar cannot yet produce this node: it exists so that the
// node set is closed over every shape the grammar is expected to grow into.
type BinaryOp struct {
	ASTBase

	// The operator text.
	Op string

	// The left and right operand expressions.
	Left, Right ASTNode
}
