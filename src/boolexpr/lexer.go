package boolexpr

import (
	"fmt"
	"strings"
	"unicode"
)

// operatorTokens maps the textual operators to the nodes they build. The
// rendered symbols map back to the operator that rendered them, so parsing the
// output of Render gives back the same tree.
var operatorTokens = map[string]Operator{
	"∨":  CONJUNCTION,
	"&&": CONJUNCTION,
	"∧":  DISJUNCTION,
	"||": DISJUNCTION,
	"⇒":  IMPLICATION,
	"=>": IMPLICATION,
}

var negationPrefixes = []string{NegationSymbol, "!"}

// New creates a new solvable expression based on the given input string.
// Operands and binary operators are separated by spaces, binary operators
// group to the right unless parenthesized.
// Example usage:
//
//	tree, err := boolexpr.New("p ⇒ (q && !r)")
//	if err != nil {
//		log.Fatalf("failed to create expression tree: %v", err)
//	}
//	fmt.Println(tree.Solve(boolexpr.Bindings{'p': true, 'q': true, 'r': false})) // Output: true <nil>
func New(expression string) (*Node, error) {
	root, err := buildTree(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for '%s': %w", expression, err)
	}
	return root, nil
}

// This is the entry point of the lexing
func buildTree(expression string) (*Node, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, NewParserError("empty expression")
	}

	parts, err := splitString(expression)
	if err != nil {
		return nil, err
	}

	switch len(parts) {
	case 1:
		if inner, ok := unwrap(expression); ok {
			return buildTree(inner)
		}
		return buildUnary(expression)
	case 3:
		return buildBinary(parts)
	default:
		return nil, NewParserError("incomplete expression '%s'", expression)
	}
}

// splitString splits the expression at the spaces outside of parentheses. It
// returns at most three parts, everything after the second space is the third
// part.
func splitString(expression string) ([]string, error) {
	var parts []string
	var currentPart strings.Builder
	var parenthesesCount int

	for i, r := range expression {
		switch r {
		case ' ':
			if parenthesesCount > 0 {
				currentPart.WriteRune(r)
				continue
			}
			if currentPart.Len() == 0 {
				continue
			}

			parts = append(parts, currentPart.String())
			currentPart.Reset()

			if len(parts) == 2 {
				rest := strings.TrimSpace(expression[i+1:])
				if rest == "" {
					return nil, NewParserError("missing right operand for '%s'", parts[1])
				}
				return append(parts, rest), nil
			}
		case '(':
			parenthesesCount++
			currentPart.WriteRune(r)
		case ')':
			parenthesesCount--
			if parenthesesCount < 0 {
				return nil, NewParserError("unbalanced ')' at offset %d in '%s'", i, expression)
			}
			currentPart.WriteRune(r)
		default:
			currentPart.WriteRune(r)
		}
	}

	if parenthesesCount != 0 {
		return nil, NewParserError("unbalanced '(' in '%s'", expression)
	}

	if currentPart.Len() > 0 {
		parts = append(parts, currentPart.String())
	}

	return parts, nil
}

// unwrap removes the outer parentheses if, and only if, they match each other.
func unwrap(expression string) (string, bool) {
	if !strings.HasPrefix(expression, "(") || !strings.HasSuffix(expression, ")") {
		return "", false
	}

	depth := 0
	for i := 0; i < len(expression); i++ {
		switch expression[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(expression)-1 {
				return "", false
			}
		}
	}
	return expression[1 : len(expression)-1], true
}

func buildUnary(expression string) (*Node, error) {
	for _, prefix := range negationPrefixes {
		if strings.HasPrefix(expression, prefix) {
			return parseNegation(strings.TrimPrefix(expression, prefix))
		}
	}
	return parseVariable(expression)
}

func buildBinary(parts []string) (*Node, error) {
	operator, ok := operatorTokens[parts[1]]
	if !ok {
		return nil, NewParserError("invalid operator '%s'", parts[1])
	}
	return parseBinary(operator, parts[0], parts[2])
}

func parseVariable(expression string) (*Node, error) {
	label := []rune(expression)
	if len(label) != 1 {
		return nil, NewParserError("invalid variable '%s': variables are a single letter", expression)
	}
	if !unicode.IsLetter(label[0]) {
		return nil, NewParserError("invalid variable '%s': not a letter", expression)
	}
	return Var(label[0]), nil
}

func parseNegation(expression string) (*Node, error) {
	inner, err := buildTree(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to build negated subtree: %w", err)
	}
	return Neg(inner), nil
}

func parseBinary(operator Operator, leftExpression, rightExpression string) (*Node, error) {
	left, err := buildTree(leftExpression)
	if err != nil {
		return nil, fmt.Errorf("failed to build left subtree: %w", err)
	}
	right, err := buildTree(rightExpression)
	if err != nil {
		return nil, fmt.Errorf("failed to build right subtree: %w", err)
	}
	return binary(operator, left, right), nil
}
