// Released under an MIT license. See LICENSE.

/*
Lash is an interactive shell for a small Lisp.

Forms typed at the prompt are evaluated one round at a time. Each round
runs in isolation: a form that fails to parse or evaluate is reported
and discarded, and the session continues with its state exactly as it
was before the round began.

For more detail, see: https://github.com/lash-lang/lash
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lash-lang/lash/internal/diag"
	"github.com/lash-lang/lash/internal/reader"
	"github.com/lash-lang/lash/internal/session"
	"github.com/lash-lang/lash/internal/system/options"
	"github.com/lash-lang/lash/internal/system/process"
	"github.com/lash-lang/lash/internal/ui"
)

const version = "0.1.0"

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println("lash " + version)

		return
	}

	d := diag.Stderr()

	st := session.NewState(options.Name(), options.Args(), nil)

	if script := options.Script(); script != "" {
		_, _, err := session.RunFile(st, script)

		finish(d, err)
	}

	if sources := options.Sources(); len(sources) > 0 {
		_, _, err := session.RunStrings(st, sources)

		finish(d, err)
	}

	if !options.Interactive() {
		session.New(st, batch(os.Stdin), os.Stdout, d).Loop()

		return
	}

	err := process.BecomeForegroundGroup()
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	defer process.RestoreForegroundGroup()

	u := ui.New()
	defer u.Close()

	session.New(st, u.Input, os.Stdout, d).Loop()
}

// batch turns a stream of text into session input, one line at a time.
func batch(r io.Reader) reader.Input {
	s := bufio.NewScanner(r)

	return func(_ bool) (string, error) {
		if !s.Scan() {
			err := s.Err()
			if err == nil {
				err = io.EOF
			}

			return "", err
		}

		return s.Text(), nil
	}
}

func finish(d diag.I, err error) {
	if err != nil {
		d.Print(nil, options.Name(), err.Error())

		os.Exit(1)
	}

	os.Exit(0)
}
