// Released under an MIT license. See LICENSE.

// Package env provides lash's versioned, layered binding store.
//
// An env value is one version of a session's bindings. Versions are never
// mutated: every Add/Delete returns a new version sharing unchanged layers
// with its parent. This is what makes a session round atomic - a failed
// round's env versions are simply dropped.
package env

import (
	"sort"
	"strconv"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/struct/hash"
)

const name = "environment"

// Signature identifies a function by name and arity.
type Signature struct {
	Name  string
	Arity int
}

// Import records where an imported function call should be directed.
type Import struct {
	Module string
	Name   string
}

// T (env) is one immutable version of the binding store.
type T struct {
	variables *hash.T
	functions map[Signature]cell.I
	macros    *hash.T
	imports   map[Signature]Import
	records   map[string][]string
}

type env = T

// New creates a new, empty env.
func New() *env {
	return &env{
		variables: hash.New(),
		functions: map[Signature]cell.I{},
		macros:    hash.New(),
		imports:   map[Signature]Import{},
		records:   map[string][]string{},
	}
}

// Merge creates a new env containing the bindings of both a and b.
// Where a and b bind the same name, b's binding wins.
func Merge(a, b *env) *env {
	m := &env{
		variables: a.variables.Copy(),
		functions: copyFunctions(a.functions),
		macros:    a.macros.Copy(),
		imports:   copyImports(a.imports),
		records:   copyRecords(a.records),
	}

	for _, k := range b.variables.Keys() {
		m.variables.Set(k, b.variables.Get(k))
	}

	for k, v := range b.functions {
		m.functions[k] = v
	}

	for _, k := range b.macros.Keys() {
		m.macros.Set(k, b.macros.Get(k))
	}

	for k, v := range b.imports {
		m.imports[k] = v
	}

	for k, v := range b.records {
		m.records[k] = v
	}

	return m
}

// AddVariable binds the name k to the cell v in a new version of the env e.
func (e *env) AddVariable(k string, v cell.I) *env {
	n := e.shallow()
	n.variables = e.variables.Copy()
	n.variables.Set(k, v)

	return n
}

// DeleteVariable removes the name k from a new version of the env e.
func (e *env) DeleteVariable(k string) *env {
	n := e.shallow()
	n.variables = e.variables.Copy()
	n.variables.Del(k)

	return n
}

// FetchVariable retrieves the value bound to the name k, if any.
func (e *env) FetchVariable(k string) (cell.I, bool) {
	v := e.variables.Get(k)

	return v, v != nil
}

// AddFunction binds (k, arity) to the function body in a new version of the env e.
func (e *env) AddFunction(k string, arity int, body cell.I) *env {
	n := e.shallow()
	n.functions = copyFunctions(e.functions)
	n.functions[Signature{k, arity}] = body

	return n
}

// FetchFunction retrieves the function bound to (k, arity), if any.
func (e *env) FetchFunction(k string, arity int) (cell.I, bool) {
	v, ok := e.functions[Signature{k, arity}]

	return v, ok
}

// AddMacro binds the name k to the macro body in a new version of the env e.
func (e *env) AddMacro(k string, body cell.I) *env {
	n := e.shallow()
	n.macros = e.macros.Copy()
	n.macros.Set(k, body)

	return n
}

// FetchMacro retrieves the macro bound to the name k, if any.
func (e *env) FetchMacro(k string) (cell.I, bool) {
	v := e.macros.Get(k)

	return v, v != nil
}

// AddImport exposes module:k/arity under the local name exposed
// in a new version of the env e.
func (e *env) AddImport(module, k string, arity int, exposed string) *env {
	n := e.shallow()
	n.imports = copyImports(e.imports)
	n.imports[Signature{exposed, arity}] = Import{Module: module, Name: k}

	return n
}

// FetchImport retrieves the import exposed as (k, arity), if any.
func (e *env) FetchImport(k string, arity int) (Import, bool) {
	v, ok := e.imports[Signature{k, arity}]

	return v, ok
}

// AddRecord binds the record shape k to fields in a new version of the env e.
func (e *env) AddRecord(k string, fields []string) *env {
	n := e.shallow()
	n.records = copyRecords(e.records)
	n.records[k] = fields

	return n
}

// FetchRecord retrieves the fields of the record shape k, if any.
func (e *env) FetchRecord(k string) ([]string, bool) {
	v, ok := e.records[k]

	return v, ok
}

// Functions returns every (name, arity) pair bound to a function in the env e.
func (e *env) Functions() []Signature {
	keys := make([]Signature, 0, len(e.functions))
	for k := range e.functions {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}

		return keys[i].Arity < keys[j].Arity
	})

	return keys
}

// Imports returns every exposed (name, arity) pair bound to an import in the env e.
func (e *env) Imports() []Signature {
	keys := make([]Signature, 0, len(e.imports))
	for k := range e.imports {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}

		return keys[i].Arity < keys[j].Arity
	})

	return keys
}

// Variables returns every name bound to a variable in the env e.
func (e *env) Variables() []string {
	keys := e.variables.Keys()

	sort.Strings(keys)

	return keys
}

// Equal returns true if c is an env binding the same names to equal values.
func (e *env) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if e == o {
		return true
	}

	if !hashEqual(e.variables, o.variables) || !hashEqual(e.macros, o.macros) {
		return false
	}

	if len(e.functions) != len(o.functions) {
		return false
	}

	for k, v := range e.functions {
		w, ok := o.functions[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}

	if len(e.imports) != len(o.imports) {
		return false
	}

	for k, v := range e.imports {
		if w, ok := o.imports[k]; !ok || v != w {
			return false
		}
	}

	if len(e.records) != len(o.records) {
		return false
	}

	for k, v := range e.records {
		w, ok := o.records[k]
		if !ok || len(v) != len(w) {
			return false
		}

		for i := range v {
			if v[i] != w[i] {
				return false
			}
		}
	}

	return true
}

// Literal returns the literal representation of the env e.
func (e *env) Literal() string {
	return "#env[" + strconv.Itoa(e.variables.Size()) + " variables, " +
		strconv.Itoa(len(e.functions)) + " functions]"
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// String returns the text of the env e.
func (e *env) String() string {
	return e.Literal()
}

// Is returns true if c is an env.
func Is(c cell.I) bool {
	_, ok := c.(*env)

	return ok
}

// To returns an env if c is an env; Otherwise it panics.
func To(c cell.I) *env {
	if t, ok := c.(*env); ok {
		return t
	}

	panic(c.Name() + " cannot be used in an environment context")
}

func copyFunctions(m map[Signature]cell.I) map[Signature]cell.I {
	c := make(map[Signature]cell.I, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}

func copyImports(m map[Signature]Import) map[Signature]Import {
	c := make(map[Signature]Import, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}

func copyRecords(m map[string][]string) map[string][]string {
	c := make(map[string][]string, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}

func hashEqual(a, b *hash.T) bool {
	if a.Size() != b.Size() {
		return false
	}

	for _, k := range a.Keys() {
		w := b.Get(k)
		if w == nil || !a.Get(k).Equal(w) {
			return false
		}
	}

	return true
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)
}

func (e *env) shallow() *env {
	n := *e

	return &n
}
