package ast

// Declaration represents a variable declaration: a type name followed by one
// or more declared identifiers.
type Declaration struct {
	ASTBase

	// The name of the declared type, eg. `int`.
	TypeName string

	// The identifiers declared, in source order.
	Names []*Identifier
}

// Assignment represents an assignment statement.  The statement grammar cannot
// yet produce this node; see BinaryOp.
type Assignment struct {
	ASTBase

	// The identifier being assigned to.
	Target *Identifier

	// The assigned expression.
	Value ASTNode
}

// WhileLoop represents a while statement: a condition and a braced body.
type WhileLoop struct {
	ASTBase

	// The loop condition.  This may be nil: the expression grammar only
	// materializes unary-not applications.
	Cond ASTNode

	// The statements of the loop body, in source order.
	Body []ASTNode
}

// ForLoop represents a for statement: an initializer, condition, and
// increment clause followed by a braced body.
type ForLoop struct {
	ASTBase

	// The three header clauses.  Any of these may be nil; see WhileLoop.Cond.
	Init, Cond, Incr ASTNode

	// The statements of the loop body, in source order.
	Body []ASTNode
}
