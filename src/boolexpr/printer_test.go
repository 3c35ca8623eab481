package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	p, q, r := Var('p'), Var('q'), Var('r')

	tests := map[string]*Node{
		"p":                 p,
		"¬p":                Neg(p),
		"¬¬p":               Neg(Neg(p)),
		"p ⇒ q":             Impl(p, q),
		"¬(p ⇒ q)":          Neg(Impl(p, q)),
		"(p ∨ q) ⇒ r":       Impl(Conj(p, q), r),
		"p ∧ (q ∨ ¬r)":      Disj(p, Conj(q, Neg(r))),
		"(p ⇒ q) ⇒ (q ⇒ r)": Impl(Impl(p, q), Impl(q, r)),
	}

	for expected, node := range tests {
		t.Run(expected, func(t *testing.T) {
			assert.Equal(t, expected, Render(node))
			assert.Equal(t, expected, node.String())
		})
	}
}

// The operator computing `l && r` renders as ∨ and the one computing `l || r`
// renders as ∧. Changing this changes every rendered formula and truth table.
func TestConjunctionAndDisjunctionSymbolPairing(t *testing.T) {
	p, q := Var('p'), Var('q')

	assert.Equal(t, "p ∨ q", Render(Conj(p, q)))
	assert.Equal(t, "p ∧ q", Render(Disj(p, q)))

	bindings := Bindings{'p': true, 'q': false}
	and, err := Conj(p, q).Solve(bindings)
	assert.NoError(t, err)
	assert.False(t, and)

	or, err := Disj(p, q).Solve(bindings)
	assert.NoError(t, err)
	assert.True(t, or)
}

func TestRemoveWrappingParentheses(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"p":       "p",
		"(p ∨ q)": "p ∨ q",
		"((p))":   "(p)",
		"¬(p)":    "¬(p)",

		// only the first and last characters are checked
		"(p ∨ q) ∨ (r ∨ s)": "p ∨ q) ∨ (r ∨ s",
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, removeWrappingParentheses(input))
		})
	}
}
