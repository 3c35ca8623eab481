package boolexpr

import (
	"strings"
)

// Render returns the canonical infix form of node, e.g. `p ⇒ ¬q`. Every binary
// sub-expression is parenthesized except the outermost one.
func Render(node *Node) string {
	return removeWrappingParentheses(render(node))
}

func (n *Node) String() string {
	return Render(n)
}

func render(node *Node) string {
	switch node.operator {
	case VARIABLE:
		return string(node.label)
	case NEGATION:
		return NegationSymbol + render(node.left)
	}

	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(render(node.left))
	sb.WriteString(" ")
	sb.WriteString(node.operator.Symbol())
	sb.WriteString(" ")
	sb.WriteString(render(node.right))
	sb.WriteString(")")
	return sb.String()
}

// removeWrappingParentheses only looks at the first and last character, it
// doesn't check that they belong together. `(p ∨ q) ∨ (r ∨ s)` becomes
// `p ∨ q) ∨ (r ∨ s`. Rendered strings never hit that case since the outermost
// binary node always wraps the whole string.
func removeWrappingParentheses(expression string) string {
	if len(expression) > 0 && expression[0] == '(' && expression[len(expression)-1] == ')' {
		return expression[1 : len(expression)-1]
	}
	return expression
}
