package boolexpr

import (
	"fmt"
)

// Eval solves node under the given bindings. See (*Node).Solve.
func Eval(node *Node, bindings Bindings) (bool, error) {
	return node.Solve(bindings)
}

// Solve evaluates the expression using the values in bindings. Both sides of a
// binary node are always evaluated, left first, and the first error found is
// returned as is.
func (n *Node) Solve(bindings Bindings) (bool, error) {
	if n.operator == VARIABLE {
		value, ok := bindings[n.label]
		if !ok {
			return false, NewBindingError(n.label)
		}
		return value, nil
	}

	if n.operator == NEGATION {
		result, err := n.left.Solve(bindings)
		if err != nil {
			return false, err
		}
		return !result, nil
	}

	op, ok := binaryOperators[n.operator]
	if !ok {
		return false, fmt.Errorf("unknown operator: %v", n.operator)
	}

	leftResult, leftErr := n.left.Solve(bindings)
	rightResult, rightErr := n.right.Solve(bindings)
	if leftErr != nil {
		return false, leftErr
	}
	if rightErr != nil {
		return false, rightErr
	}

	return op.combine(leftResult, rightResult), nil
}
