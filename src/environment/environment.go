package environment

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/eriklarko/proplogic/src/config"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, used by tests and by the
// CLI when stdin is piped.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive removes any override set by ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if the code is run by a user with an interactive shell, false otherwise
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// UseColor resolves one of the config.Color* modes. `auto` colors output only
// when stdout is a terminal and NO_COLOR is unset.
func UseColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(os.Stdout)
}
