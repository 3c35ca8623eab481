package truthtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"

	"github.com/eriklarko/proplogic/src/boolexpr"
)

type Row struct {
	Bindings boolexpr.Bindings
	Result   bool
}

// Table is a formula solved for every possible assignment of its variables.
type Table struct {
	Formula   *boolexpr.Node
	Variables []rune
	Rows      []Row

	Report Report
}

// Evaluate solves node once per row returned by Build.
func Evaluate(node *boolexpr.Node) (*Table, error) {
	table := &Table{
		Formula:   node,
		Variables: boolexpr.VarNames(node),
	}

	for i, bindings := range Build(node) {
		result, err := node.Solve(bindings)
		if err != nil {
			// every variable is bound, so this means the tree itself is broken
			return nil, fmt.Errorf("failed solving row %d of '%s': %w", i, node, err)
		}

		table.Rows = append(table.Rows, Row{Bindings: bindings, Result: result})
		table.Report.RecordResult(i, result)
	}

	return table, nil
}

// Header returns the variable labels followed by the rendered formula.
func (t *Table) Header() []string {
	header := lo.Map(t.Variables, func(label rune, _ int) string {
		return string(label)
	})
	return append(header, boolexpr.Render(t.Formula))
}

// WriteCSV writes the header and one record per row, with the variable values
// first and the result of the formula last.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range t.Rows {
		record := make([]string, 0, len(t.Variables)+1)
		for _, label := range t.Variables {
			record = append(record, strconv.FormatBool(row.Bindings[label]))
		}
		record = append(record, strconv.FormatBool(row.Result))

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
