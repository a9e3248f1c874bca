package lang

// Node is the interface all AST nodes implement.
type Node interface {
	nodeTag()
}

// NumberLit represents a numeric literal.
type NumberLit struct {
	Value float64
}

// BinaryExpr represents a binary operation.
type BinaryExpr struct {
	Op    TokenType // TOKEN_PLUS, TOKEN_MINUS, TOKEN_STAR, TOKEN_SLASH
	Left  Node
	Right Node
}

func (*NumberLit) nodeTag()  {}
func (*BinaryExpr) nodeTag() {}
