package boolexpr

import (
	"github.com/samber/lo"
)

// VarNames returns the distinct variable labels used by node, in the order
// they first appear when reading the expression from left to right.
func VarNames(node *Node) []rune {
	return lo.Uniq(collectLabels(node, nil))
}

func collectLabels(node *Node, acc []rune) []rune {
	switch node.operator {
	case VARIABLE:
		return append(acc, node.label)
	case NEGATION:
		return collectLabels(node.left, acc)
	default:
		acc = collectLabels(node.left, acc)
		return collectLabels(node.right, acc)
	}
}
