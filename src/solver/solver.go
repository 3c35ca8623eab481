package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"

	"github.com/eriklarko/proplogic/src/boolexpr"
	"github.com/eriklarko/proplogic/src/config"
	"github.com/eriklarko/proplogic/src/environment"
	"github.com/eriklarko/proplogic/src/truthtable"
	"github.com/eriklarko/proplogic/src/tui"
)

// Solver evaluates formulas against a set of bindings that can grow while it's
// used. When running interactively, unbound variables are asked for instead of
// failing.
type Solver struct {
	config   *config.Config
	tui      *tui.TUI
	bindings boolexpr.Bindings
}

func New(cfg *config.Config, t *tui.TUI, bindings boolexpr.Bindings) *Solver {
	if bindings == nil {
		bindings = make(boolexpr.Bindings)
	}
	return &Solver{
		config:   cfg,
		tui:      t,
		bindings: bindings,
	}
}

// NewFromMap creates a Solver without a bindings file and with the default
// terminal.
func NewFromMap(bindings boolexpr.Bindings) *Solver {
	return New(config.Default(), tui.New(), maps.Clone(bindings))
}

// NewFromFile creates a Solver with the bindings stored in the config's
// bindings file. A missing bindings file means no bindings.
func NewFromFile(cfg *config.Config, t *tui.TUI) (*Solver, error) {
	if cfg.BindingsFile == "" {
		return New(cfg, t, nil), nil
	}

	bindings, err := cfg.ReadBindings()
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("bindings file does not exist yet", "path", cfg.BindingsFile)
		return New(cfg, t, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bindings: %w", err)
	}

	return New(cfg, t, bindings), nil
}

// Bindings returns a copy of the current bindings.
func (s *Solver) Bindings() boolexpr.Bindings {
	return maps.Clone(s.bindings)
}

func (s *Solver) Update(label rune, value bool) {
	s.bindings[label] = value
}

// Solve evaluates node with the current bindings. Unbound variables are asked
// for when running interactively, the answer is remembered and written to the
// bindings file if there is one. Otherwise the *boolexpr.BindingError is
// returned.
func (s *Solver) Solve(node *boolexpr.Node) (bool, error) {
	for {
		result, err := node.Solve(s.bindings)

		var errUnbound *boolexpr.BindingError
		if !errors.As(err, &errUnbound) {
			return result, err
		}

		if !environment.IsInteractive() {
			slog.Warn("Unbound variable. Add it to the bindings file, or run this tool again interactively.",
				"variable", string(errUnbound.Label),
				"formula", node.String(),
			)
			return false, err
		}

		value, askErr := s.tui.AskBinding(errUnbound.Label)
		if askErr != nil {
			return false, fmt.Errorf("failed to ask for the value of %c: %w", errUnbound.Label, askErr)
		}
		s.Update(errUnbound.Label, value)

		if err := s.persist(); err != nil {
			return false, err
		}
	}
}

func (s *Solver) persist() error {
	if s.config.BindingsFile == "" {
		return nil
	}
	if err := s.config.WriteBindings(s.bindings); err != nil {
		return fmt.Errorf("failed to save bindings: %w", err)
	}
	return nil
}

// TruthTable evaluates node for every assignment of its variables. The table is
// also written to the configured truth table file, if any.
func (s *Solver) TruthTable(node *boolexpr.Node) (*truthtable.Table, error) {
	table, err := truthtable.Evaluate(node)
	if err != nil {
		return nil, err
	}
	slog.Debug("evaluated truth table",
		"formula", node.String(),
		"rows", len(table.Rows),
		"satisfying", len(table.Report.Satisfying),
	)

	if s.config.TruthTableFile == "" {
		return table, nil
	}

	file, err := os.Create(s.config.TruthTableFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", s.config.TruthTableFile, err)
	}
	defer file.Close()

	if err := table.WriteCSV(file); err != nil {
		return nil, fmt.Errorf("failed to write truth table to %s: %w", s.config.TruthTableFile, err)
	}

	return table, nil
}
