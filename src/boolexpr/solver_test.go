package boolexpr_test

import (
	"testing"

	"github.com/eriklarko/proplogic/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariables(t *testing.T) {
	bindings := boolexpr.Bindings{
		'A': true,
		'B': false,
	}
	tests := map[string]bool{
		"A": true,  // A is true in the bindings
		"B": false, // B is false in the bindings

		"!A": false,
		"¬B": true,
	}
	runSolverTests(t, tests, bindings)
}

func TestConjunction(t *testing.T) {
	tests := map[string]bool{
		"T ∨ T": true,
		"T ∨ F": false,
		"F ∨ T": false,
		"F ∨ F": false,
	}
	runSolverTests(t, tests, constants())
}

func TestDisjunction(t *testing.T) {
	tests := map[string]bool{
		"T ∧ T": true,
		"T ∧ F": true,
		"F ∧ T": true,
		"F ∧ F": false,
	}
	runSolverTests(t, tests, constants())
}

func TestImplication(t *testing.T) {
	tests := map[string]bool{
		"T ⇒ T": true,
		"T ⇒ F": false,
		"F ⇒ T": true,
		"F ⇒ F": true,
	}
	runSolverTests(t, tests, constants())
}

func TestRecursiveExpressions(t *testing.T) {
	tests := map[string]bool{
		"T && !F": true,
		"!F && T": true,

		"T || (F && F)": true,
		"(T || F) && F": false,

		"T && T && T": true,
		"T && T && F": false,

		"¬(T ⇒ F) ⇒ F": false,
	}
	runSolverTests(t, tests, constants())
}

// constants binds T and F to the values they look like.
func constants() boolexpr.Bindings {
	return boolexpr.Bindings{'T': true, 'F': false}
}

func runSolverTests(t *testing.T, tests map[string]bool, bindings boolexpr.Bindings) {
	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			node, err := boolexpr.New(expression)
			require.NoError(t, err)

			result, err := node.Solve(bindings)
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestImplicationScenario(t *testing.T) {
	formula := boolexpr.Impl(boolexpr.Var('p'), boolexpr.Var('q'))

	result, err := boolexpr.Eval(formula, boolexpr.Bindings{'p': true, 'q': false})
	require.NoError(t, err)
	assert.False(t, result)

	result, err = boolexpr.Eval(formula, boolexpr.Bindings{'p': false, 'q': true})
	require.NoError(t, err)
	assert.True(t, result)

	_, err = boolexpr.Eval(formula, boolexpr.Bindings{'p': true})
	var bindingErr *boolexpr.BindingError
	require.ErrorAs(t, err, &bindingErr)
	assert.Equal(t, 'q', bindingErr.Label)
}

func TestUnboundVariable(t *testing.T) {
	node := boolexpr.Var('A')

	// solve without providing a value for A
	_, err := node.Solve(boolexpr.Bindings{})
	assert.Contains(t, err.Error(), "unbound variable")
	assert.Contains(t, err.Error(), "A")
}

func TestFirstUnboundVariableIsReported(t *testing.T) {
	tests := map[string]struct {
		node     *boolexpr.Node
		expected rune
	}{
		"both sides unbound": {
			node:     boolexpr.Conj(boolexpr.Var('a'), boolexpr.Var('b')),
			expected: 'a',
		},
		"only right unbound": {
			node:     boolexpr.Disj(boolexpr.Var('p'), boolexpr.Var('b')),
			expected: 'b',
		},
		"nested left to right": {
			node: boolexpr.Impl(
				boolexpr.Neg(boolexpr.Conj(boolexpr.Var('p'), boolexpr.Var('x'))),
				boolexpr.Var('y'),
			),
			expected: 'x',
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tc.node.Solve(boolexpr.Bindings{'p': true})

			var bindingErr *boolexpr.BindingError
			require.ErrorAs(t, err, &bindingErr)
			assert.Equal(t, tc.expected, bindingErr.Label)
		})
	}
}

func TestExtraBindingsAreIgnored(t *testing.T) {
	result, err := boolexpr.Neg(boolexpr.Var('p')).Solve(boolexpr.Bindings{'p': false, 'z': true})
	require.NoError(t, err)
	assert.True(t, result)
}

func TestCompleteBindingsNeverFail(t *testing.T) {
	node, err := boolexpr.New("(a ∨ ¬b) ⇒ (c ∧ (a ⇒ d))")
	require.NoError(t, err)

	bindings := boolexpr.Bindings{}
	for _, label := range boolexpr.VarNames(node) {
		bindings[label] = true
	}

	_, err = node.Solve(bindings)
	assert.NoError(t, err)
}
