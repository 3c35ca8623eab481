package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/eriklarko/proplogic/src/boolexpr"
	"github.com/eriklarko/proplogic/src/config"
	"github.com/eriklarko/proplogic/src/environment"
	"github.com/eriklarko/proplogic/src/solver"
	"github.com/eriklarko/proplogic/src/tui"
)

const usage = `usage: proplogic [-c config] [-b bindings.csv] [-o table.csv] [-t] [-v] formula

Evaluates a propositional formula, or prints its truth table with -t.

  -c  config file (default .proplogic.yaml)
  -b  CSV file with one "variable,true|false" record per line
  -o  write the truth table to this CSV file
  -t  print the truth table instead of evaluating the formula
  -v  debug logging
`

type cliOptions struct {
	configPath     string
	bindingsFile   string
	truthTableFile string
	truthTable     bool
	verbose        bool
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	opts, optind, err := getopt.Getopts(args, "c:b:o:tvh")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	options := cliOptions{configPath: config.DefaultPath}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			options.configPath = opt.Value
		case 'b':
			options.bindingsFile = opt.Value
		case 'o':
			options.truthTableFile = opt.Value
		case 't':
			options.truthTable = true
		case 'v':
			options.verbose = true
		case 'h':
			fmt.Print(usage)
			return 0
		}
	}

	formula := strings.Join(args[optind:], " ")
	if strings.TrimSpace(formula) == "" {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	cfg, err := loadConfig(options)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	setUpLogging(cfg, options.verbose)

	if err := evaluate(cfg, formula, options.truthTable); err != nil {
		slog.Error("failed to evaluate formula", "formula", formula, "error", err)
		return 1
	}
	return 0
}

func loadConfig(options cliOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(options.configPath)
	if os.IsNotExist(err) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	// flags win over the config file
	if options.bindingsFile != "" {
		cfg.BindingsFile = options.bindingsFile
	}
	if options.truthTableFile != "" {
		cfg.TruthTableFile = options.truthTableFile
	}
	return cfg, nil
}

func setUpLogging(cfg *config.Config, verbose bool) {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func evaluate(cfg *config.Config, formula string, truthTable bool) error {
	node, err := boolexpr.New(formula)
	if err != nil {
		var parserErr *boolexpr.ParserError
		if errors.As(err, &parserErr) {
			slog.Debug("formula rejected by parser", "message", parserErr.Message)
		}
		return err
	}

	terminal := tui.New()
	terminal.SetColor(environment.UseColor(cfg.Color))

	s, err := solver.NewFromFile(cfg, terminal)
	if err != nil {
		return err
	}

	if truthTable {
		table, err := s.TruthTable(node)
		if err != nil {
			return err
		}
		terminal.PrintTable(table)
		return nil
	}

	result, err := s.Solve(node)
	if err != nil {
		return err
	}
	terminal.PrintResult(node, result)
	return nil
}
