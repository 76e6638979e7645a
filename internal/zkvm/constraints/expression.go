// Package constraints synthesizes and evaluates the algebraic constraints
// an execution trace must satisfy: a symbolic expression tree over named
// witness cells, and a small set of constraint kinds built from it.
package constraints

import "fmt"

// ExprKind tags the variant of an Expression node.
type ExprKind int

const (
	ExprConstant ExprKind = iota
	ExprVariable
	ExprAdd
	ExprSub
	ExprMul
)

// Expression is a node in the symbolic expression tree: a tagged variant
// over Constant(u32) | Variable(name) | Add | Sub | Mul. Prefer this tagged
// shape over an inheritance hierarchy; recursion here is shallow but a
// reader should not assume that holds for every tree this system builds.
type Expression struct {
	Kind     ExprKind
	Constant uint32
	Name     string
	Left     *Expression
	Right    *Expression
}

// Const builds a constant expression.
func Const(value uint32) *Expression {
	return &Expression{Kind: ExprConstant, Constant: value}
}

// Var builds a variable reference.
func Var(name string) *Expression {
	return &Expression{Kind: ExprVariable, Name: name}
}

// Add builds left + right.
func Add(left, right *Expression) *Expression {
	return &Expression{Kind: ExprAdd, Left: left, Right: right}
}

// Sub builds left - right.
func Sub(left, right *Expression) *Expression {
	return &Expression{Kind: ExprSub, Left: left, Right: right}
}

// Mul builds left * right.
func Mul(left, right *Expression) *Expression {
	return &Expression{Kind: ExprMul, Left: left, Right: right}
}

// Witness maps variable names to concrete 32-bit values taken from a trace.
type Witness map[string]uint32

// Eval evaluates e against witness using 32-bit wrapping arithmetic. It
// returns ok=false if a referenced variable is missing.
func (e *Expression) Eval(witness Witness) (value uint32, ok bool) {
	switch e.Kind {
	case ExprConstant:
		return e.Constant, true
	case ExprVariable:
		v, present := witness[e.Name]
		return v, present
	case ExprAdd:
		l, lok := e.Left.Eval(witness)
		r, rok := e.Right.Eval(witness)
		if !lok || !rok {
			return 0, false
		}
		return l + r, true
	case ExprSub:
		l, lok := e.Left.Eval(witness)
		r, rok := e.Right.Eval(witness)
		if !lok || !rok {
			return 0, false
		}
		return l - r, true
	case ExprMul:
		l, lok := e.Left.Eval(witness)
		r, rok := e.Right.Eval(witness)
		if !lok || !rok {
			return 0, false
		}
		return l * r, true
	default:
		panic(fmt.Sprintf("constraints: unknown expression kind %d", e.Kind))
	}
}
