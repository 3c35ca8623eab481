package tui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/eriklarko/proplogic/src/phraser"
	"github.com/eriklarko/proplogic/src/truthtable"
)

type TUI struct {
	input  *bufio.Reader
	output io.Writer

	trueColor  *color.Color
	falseColor *color.Color
	header     *color.Color

	bindingPhrases *phraser.Phraser
}

func New() *TUI {
	return &TUI{
		input:  bufio.NewReader(os.Stdin),
		output: os.Stdout,

		trueColor:  color.New(color.FgGreen),
		falseColor: color.New(color.FgRed),
		header:     color.New(color.Bold),

		bindingPhrases: phraser.New([]string{
			"%c has no value. Should it be true? [y/N]: ",
			"And %c? [y/N]: ",
			"What about %c? [y/N]: ",
			"Is %c true? [y/N]: ",
		}),
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewReader(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// SetColor turns colored output on or off.
func (t *TUI) SetColor(enabled bool) {
	for _, c := range []*color.Color{t.trueColor, t.falseColor, t.header} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// AskForever repeats the yes/no question until it gets an answer it
// understands. An empty answer means no.
func (t *TUI) AskForever(question string, a ...any) (bool, error) {
	for {
		fmt.Fprintf(t.output, question, a...)
		line, err := t.input.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			slog.Error("failed to read user input", "error", err)
			return false, fmt.Errorf("failed to read user input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
	}
}

// AskBinding asks the user for the value of a variable.
func (t *TUI) AskBinding(label rune) (bool, error) {
	return t.AskForever("%s", t.bindingPhrases.Get(label))
}

// PrintResult prints the rendered formula and its value.
func (t *TUI) PrintResult(formula fmt.Stringer, result bool) {
	fmt.Fprintf(t.output, "%s = %s\n", formula, t.value(result))
}

// PrintTable prints one column per variable and a last column with the value
// of the formula.
func (t *TUI) PrintTable(table *truthtable.Table) {
	header := table.Header()
	t.header.Fprintln(t.output, strings.Join(header, " │ "))

	// the formula column can be much wider than a single letter, pad its
	// values so they line up in the middle of it
	formulaWidth := len([]rune(header[len(header)-1]))

	for _, row := range table.Rows {
		cells := make([]string, 0, len(header))
		for _, label := range table.Variables {
			cells = append(cells, t.value(row.Bindings[label]))
		}
		padding := strings.Repeat(" ", max(formulaWidth-1, 0)/2)
		cells = append(cells, padding+t.value(row.Result))

		fmt.Fprintln(t.output, strings.Join(cells, " │ "))
	}
}

func (t *TUI) value(b bool) string {
	if b {
		return t.trueColor.Sprint("T")
	}
	return t.falseColor.Sprint("F")
}
