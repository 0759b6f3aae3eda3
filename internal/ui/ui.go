// Released under an MIT license. See LICENSE.

// Package ui provides line-edited terminal input for interactive lash.
package ui

import (
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/lash-lang/lash/internal/system/history"
)

// T (ui) wraps a line editor so that it can be used as session input.
type T struct {
	cli *liner.State

	cooked   liner.ModeApplier
	uncooked liner.ModeApplier
}

type ui = T

// New creates a new ui, switching the terminal to line-editing mode.
func New() *T {
	cooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli := liner.NewLiner()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	cli.SetCtrlCAborts(true)

	_ = history.Load(cli.ReadHistory)

	return &ui{cli: cli, cooked: cooked, uncooked: uncooked}
}

// Close saves the input history and restores the terminal.
func (u *ui) Close() {
	_ = history.Save(u.cli.WriteHistory)

	u.cli.Close()
}

// Input prompts for and returns one line of input. The prompt changes
// when the line continues a form started on a previous line.
func (u *ui) Input(continuation bool) (string, error) {
	prompt := "lash> "
	if continuation {
		prompt = "....> "
	}

	merr := u.uncooked.ApplyMode()
	if merr != nil {
		println(merr.Error())
		os.Exit(1)
	}

	line, err := u.cli.Prompt(prompt)

	merr = u.cooked.ApplyMode()
	if merr != nil {
		println(merr.Error())
		os.Exit(1)
	}

	switch err {
	case nil:
		if line != "" {
			u.cli.AppendHistory(line)
		}

		return line, nil

	case io.EOF:
		os.Stdout.Write([]byte("\n"))

		return "", io.EOF
	}

	return "", err
}
