// Released under an MIT license. See LICENSE.

// Package slurp compiles external source so that a session can load its
// definitions (slurp) or execute it as a script (run).
//
// Compilation here is deliberately shallow: a file's forms are parsed
// and deep-expanded in a scratch environment, and its function, import,
// and module declarations are collected. Nothing is evaluated and the
// calling session's state is never touched; the caller decides what to
// merge and when.
package slurp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lash-lang/lash/internal/common"
	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/rational"
	"github.com/lash-lang/lash/internal/common/type/pair"
	"github.com/lash-lang/lash/internal/common/type/sym"
	"github.com/lash-lang/lash/internal/engine"
	"github.com/lash-lang/lash/internal/env"
	"github.com/lash-lang/lash/internal/fault"
	"github.com/lash-lang/lash/internal/reader/lexer"
	"github.com/lash-lang/lash/internal/reader/parser"
)

// The leading line of a script is skipped when it starts with this.
const shebang = "#!"

// T (slurp) is the result of compiling a file for loading: the modules
// the file declares and an environment holding their function and
// import bindings, ready to be merged into a session's environment.
type T struct {
	Modules []string
	Env     *env.T
}

// Load compiles the file at path and collects its definitions.
// Any parse or expansion failure aborts the whole load; the returned
// fault aggregates one diagnostic per failing form, labelled with the
// file and the module being compiled.
func Load(path string) (*T, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.New(fault.Slurp, err.Error())
	}

	forms, err := Forms(path, string(text))
	if err != nil {
		return nil, fault.New(fault.Slurp, path+": "+err.Error())
	}

	loaded := &T{Env: env.New()}

	scratch := env.New()
	module := base(path)
	problems := []string{}

	for _, form := range forms {
		expanded, err := engine.Expand(form, scratch)
		if err != nil {
			problems = append(problems, path+": module "+module+": "+err.Error())

			continue
		}

		for _, c := range expanded {
			module, scratch = loaded.collect(c, module, scratch)
		}
	}

	if len(problems) > 0 {
		return nil, fault.New(fault.Slurp, strings.Join(problems, "\n"))
	}

	if len(loaded.Modules) == 0 {
		loaded.Modules = []string{module}
	}

	return loaded, nil
}

// Script reads an ordered sequence of forms from the file at path,
// skipping one leading interpreter-directive line if present.
func Script(path string) ([]cell.I, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.New(fault.ScriptRead, err.Error())
	}

	source := string(text)
	if strings.HasPrefix(source, shebang) {
		if i := strings.IndexByte(source, '\n'); i >= 0 {
			source = source[i+1:]
		} else {
			source = ""
		}
	}

	forms, err := Forms(path, source)
	if err != nil {
		return nil, fault.New(fault.ScriptRead, path+": "+err.Error())
	}

	return forms, nil
}

// Strings parses each in-memory source whole. No shebang handling.
func Strings(sources []string) ([]cell.I, error) {
	forms := []cell.I{}

	for _, source := range sources {
		parsed, err := Forms("lash", source)
		if err != nil {
			return nil, fault.New(fault.ScriptRead, err.Error())
		}

		forms = append(forms, parsed...)
	}

	return forms, nil
}

// Forms parses every form in text synchronously.
func Forms(name, text string) ([]cell.I, error) {
	l := lexer.New(name)
	l.Scan(text + "\n")

	forms := []cell.I{}

	p := parser.New(func(c cell.I) {
		forms = append(forms, c)
	}, l.Token)

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return forms, nil
}

// collect records what one expanded top-level form declares and returns
// the module the next form belongs to.
func (loaded *T) collect(c cell.I, module string, scratch *env.T) (string, *env.T) {
	if !pair.Is(c) || c == pair.Null || !sym.Is(pair.Car(c)) {
		return module, scratch
	}

	switch common.String(pair.Car(c)) {
	case "defmodule":
		module = common.String(pair.Cadr(c))
		loaded.Modules = append(loaded.Modules, module)

		loaded.imports(pair.Cddr(c))
	case "defun":
		n, sig, _ := engine.Define(c, scratch)
		scratch = n

		body, _ := n.FetchFunction(sig.Name, sig.Arity)

		loaded.Env = loaded.Env.AddFunction(sig.Name, sig.Arity, body)
		loaded.Env = loaded.Env.AddFunction(module+":"+sig.Name, sig.Arity, body)
	case "defmacro", "defrecord":
		// Compile-time only; used while expanding the rest of the
		// file but never merged into the session.
		n, _, _ := engine.Define(c, scratch)
		scratch = n
	}

	return module, scratch
}

// imports walks a defmodule body for (import (from module (name arity)...))
// declarations.
func (loaded *T) imports(c cell.I) {
	for ; c != pair.Null; c = pair.Cdr(c) {
		decl := pair.Car(c)
		if !pair.Is(decl) || decl == pair.Null || !sym.Is(pair.Car(decl)) {
			continue
		}

		if common.String(pair.Car(decl)) != "import" {
			continue
		}

		for spec := pair.Cdr(decl); spec != pair.Null; spec = pair.Cdr(spec) {
			loaded.from(pair.Car(spec))
		}
	}
}

func (loaded *T) from(c cell.I) {
	if !pair.Is(c) || c == pair.Null || !sym.Is(pair.Car(c)) {
		return
	}

	if common.String(pair.Car(c)) != "from" {
		return
	}

	module := common.String(pair.Cadr(c))

	for fns := pair.Cddr(c); fns != pair.Null; fns = pair.Cdr(fns) {
		f := pair.Car(fns)

		name := common.String(pair.Car(f))
		arity := atoi(pair.Cadr(f))

		loaded.Env = loaded.Env.AddImport(module, name, arity, name)
	}
}

func atoi(c cell.I) int {
	return int(rational.Number(c).Num().Int64())
}

func base(path string) string {
	name := filepath.Base(path)

	return strings.TrimSuffix(name, filepath.Ext(name))
}
