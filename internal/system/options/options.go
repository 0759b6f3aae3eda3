// Released under an MIT license. See LICENSE.

// Package options parses lash's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	args        []string
	interactive bool
	name        string
	script      string
	sources     []string
	version     bool
	usage       = `lash

Usage:
  lash SCRIPT [ARGUMENTS...]
  lash -e SOURCE...
  lash [-i] [-s [ARGUMENTS...]]
  lash -h
  lash -v

Arguments:
  ARGUMENTS  Positional parameters.
  SCRIPT     Path to lash script. Also used as the value for script-name.
  SOURCE     Source text to evaluate.

Options:
  -e, --evaluate     Evaluate the specified source text.
  -i, --interactive  Invert interactive mode.
  -s, --stdin        Read forms from stdin.
  -h, --help         Display this help.
  -v, --version      Print lash version.

If lash's stdin is a TTY, and lash was invoked with no non-option
operands or lash was explicitly directed to evaluate forms from stdin,
interactive features are enabled. Otherwise, they are disabled.
`
)

func Args() []string {
	return args
}

func Interactive() bool {
	return interactive
}

func Name() string {
	return name
}

func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	name = os.Args[0]

	script, _ = opts.String("SCRIPT")
	if script != "" {
		name = script
	} else if isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	if evaluate, _ := opts.Bool("--evaluate"); evaluate {
		sources, _ = opts["SOURCE"].([]string)
		interactive = false
	}

	args, _ = opts["ARGUMENTS"].([]string)

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	version, _ = opts.Bool("--version")
}

func Script() string {
	return script
}

func Sources() []string {
	return sources
}

func Version() bool {
	return version
}
