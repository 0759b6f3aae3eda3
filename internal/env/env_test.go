package env

import (
	"testing"

	"github.com/lash-lang/lash/internal/common/type/num"
	"github.com/lash-lang/lash/internal/common/type/sym"
)

func TestVersioning(t *testing.T) {
	a := New().AddVariable("x", num.Int(1))
	b := a.AddVariable("x", num.Int(2))

	v, found := a.FetchVariable("x")
	if !found || !v.Equal(num.Int(1)) {
		t.Fatalf("Expected x = 1 in the old version; got %v", v)
	}

	v, found = b.FetchVariable("x")
	if !found || !v.Equal(num.Int(2)) {
		t.Fatalf("Expected x = 2 in the new version; got %v", v)
	}
}

func TestDeleteVariable(t *testing.T) {
	a := New().AddVariable("x", num.Int(1))
	b := a.DeleteVariable("x")

	if _, found := b.FetchVariable("x"); found {
		t.Fatalf("Expected x to be gone from the new version")
	}

	if _, found := a.FetchVariable("x"); !found {
		t.Fatalf("Expected x to remain in the old version")
	}
}

func TestFunctionsByArity(t *testing.T) {
	e := New()
	e = e.AddFunction("f", 1, sym.New("one"))
	e = e.AddFunction("f", 2, sym.New("two"))

	v, found := e.FetchFunction("f", 1)
	if !found || !v.Equal(sym.New("one")) {
		t.Fatalf("Expected f/1; got %v", v)
	}

	v, found = e.FetchFunction("f", 2)
	if !found || !v.Equal(sym.New("two")) {
		t.Fatalf("Expected f/2; got %v", v)
	}

	if _, found = e.FetchFunction("f", 3); found {
		t.Fatalf("Expected no f/3")
	}
}

func TestMergePrecedence(t *testing.T) {
	a := New().AddVariable("x", num.Int(1)).AddVariable("y", num.Int(2))
	b := New().AddVariable("x", num.Int(3))

	m := Merge(a, b)

	v, _ := m.FetchVariable("x")
	if !v.Equal(num.Int(3)) {
		t.Fatalf("Expected the second env to win; got x = %v", v)
	}

	v, _ = m.FetchVariable("y")
	if !v.Equal(num.Int(2)) {
		t.Fatalf("Expected y to survive the merge; got %v", v)
	}
}

func TestMergeLeavesOperandsUntouched(t *testing.T) {
	a := New().AddVariable("x", num.Int(1))
	b := New().AddVariable("x", num.Int(2))

	_ = Merge(a, b)

	v, _ := a.FetchVariable("x")
	if !v.Equal(num.Int(1)) {
		t.Fatalf("Expected merge to leave a untouched; got x = %v", v)
	}
}

func TestRecords(t *testing.T) {
	e := New().AddRecord("point", []string{"x", "y"})

	fields, found := e.FetchRecord("point")
	if !found || len(fields) != 2 || fields[0] != "x" || fields[1] != "y" {
		t.Fatalf("Expected point record with fields x, y; got %v", fields)
	}
}

func TestImports(t *testing.T) {
	e := New().AddImport("lists", "map", 2, "map")

	i, found := e.FetchImport("map", 2)
	if !found || i.Module != "lists" || i.Name != "map" {
		t.Fatalf("Expected map/2 to come from lists; got %v", i)
	}

	if _, found = e.FetchImport("map", 3); found {
		t.Fatalf("Expected no import for map/3")
	}
}

func TestEqual(t *testing.T) {
	a := New().AddVariable("x", num.Int(1)).AddFunction("f", 1, sym.New("b"))
	b := New().AddVariable("x", num.Int(1)).AddFunction("f", 1, sym.New("b"))

	if !a.Equal(b) {
		t.Fatalf("Expected structurally identical envs to be equal")
	}

	if a.Equal(b.AddVariable("y", num.Int(2))) {
		t.Fatalf("Expected envs with different bindings to differ")
	}

	if a.Equal(b.AddMacro("m", sym.New("b"))) {
		t.Fatalf("Expected envs with different macros to differ")
	}
}

func TestVariablesSorted(t *testing.T) {
	e := New().AddVariable("b", num.Int(2)).AddVariable("a", num.Int(1))

	keys := e.Variables()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("Expected sorted keys [a b]; got %v", keys)
	}
}
