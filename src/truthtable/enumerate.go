package truthtable

import (
	"github.com/edwingeng/deque"
	"github.com/samber/lo"

	"github.com/eriklarko/proplogic/src/boolexpr"
)

// Enumerate returns every combination of n boolean values, 2^n rows in total.
// The first value changes slowest and the last value alternates on every row:
//
//	Enumerate(2) // [[true true] [true false] [false true] [false false]]
//
// Enumerate(0) returns a single empty row.
func Enumerate(n int) [][]bool {
	if n <= 0 {
		return [][]bool{{}}
	}

	rows := deque.NewDeque()
	rows.PushBack([]bool{true})
	rows.PushBack([]bool{false})

	for width := 1; width < n; width++ {
		// every row currently in the queue has `width` values. Replace each of
		// them, in order, with its true and false extensions
		for count := rows.Len(); count > 0; count-- {
			parent := rows.PopFront().([]bool)
			rows.PushBack(extend(parent, true))
			rows.PushBack(extend(parent, false))
		}
	}

	result := make([][]bool, 0, rows.Len())
	for rows.Len() > 0 {
		result = append(result, rows.PopFront().([]bool))
	}
	return result
}

// extend copies row so that siblings never share a backing array.
func extend(row []bool, value bool) []bool {
	extended := make([]bool, len(row), len(row)+1)
	copy(extended, row)
	return append(extended, value)
}

// Build returns one set of bindings per row of the truth table of node, in the
// order given by Enumerate.
func Build(node *boolexpr.Node) []boolexpr.Bindings {
	variables := boolexpr.VarNames(node)
	return lo.Map(Enumerate(len(variables)), func(row []bool, _ int) boolexpr.Bindings {
		return zip(variables, row)
	})
}

func zip(variables []rune, values []bool) boolexpr.Bindings {
	bindings := make(boolexpr.Bindings, len(variables))
	for i, label := range variables {
		bindings[label] = values[i]
	}
	return bindings
}
