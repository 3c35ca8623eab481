package boolexpr_test

import (
	"testing"

	"github.com/eriklarko/proplogic/src/boolexpr"
	"github.com/stretchr/testify/assert"
)

func TestVarNames(t *testing.T) {
	tests := map[string][]rune{
		"p":                 {'p'},
		"¬p":                {'p'},
		"p ⇒ ¬q":            {'p', 'q'},
		"q ∨ p":             {'q', 'p'},
		"(p ∨ q) ∧ (q ⇒ p)": {'p', 'q'},
		"a ∨ (b ∧ (c ⇒ a))": {'a', 'b', 'c'},
	}

	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			node, err := boolexpr.New(expression)
			assert.NoError(t, err)

			assert.Equal(t, expected, boolexpr.VarNames(node))
		})
	}
}

func TestVarNamesIsIdempotent(t *testing.T) {
	node := boolexpr.Impl(boolexpr.Var('p'), boolexpr.Neg(boolexpr.Var('q')))

	first := boolexpr.VarNames(node)
	second := boolexpr.VarNames(node)

	assert.ElementsMatch(t, []rune{'p', 'q'}, first)
	assert.Equal(t, first, second)
}
