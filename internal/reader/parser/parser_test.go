package parser

import (
	"testing"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/literal"
	"github.com/lash-lang/lash/internal/reader/lexer"
)

func TestAtoms(t *testing.T) {
	expect(t, "42\n", "42")
	expect(t, "-7\n", "-7")
	expect(t, "1/3\n", "1/3")
	expect(t, "foo\n", "foo")
	expect(t, "true\n", "true")
	expect(t, "false\n", "false")
	expect(t, `"a b"`+"\n", `"a b"`)
}

func TestList(t *testing.T) {
	expect(t, "(+ 1 2)\n", "(+ 1 2)")
	expect(t, "()\n", "()")
	expect(t, "(a (b c) d)\n", "(a (b c) d)")
}

func TestQuote(t *testing.T) {
	expect(t, "'x\n", "(quote x)")
	expect(t, "'(1 2)\n", "(quote (1 2))")
	expect(t, "''x\n", "(quote (quote x))")
}

func TestStringEscapes(t *testing.T) {
	expect(t, `"a\nb"`+"\n", "\"a\\nb\"")
	expect(t, `"say \"hi\""`+"\n", `"say \"hi\""`)
}

func TestMultipleForms(t *testing.T) {
	forms, err := parse(t, "(a) (b)\n(c)\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(forms) != 3 {
		t.Fatalf("Expected 3 forms; got %d", len(forms))
	}
}

func TestUnexpectedClose(t *testing.T) {
	_, err := parse(t, ")\n")
	if err == nil {
		t.Fatalf("Expected an error for unexpected ')'")
	}
}

func TestUnterminatedList(t *testing.T) {
	_, err := parse(t, "(a b\n")
	if err == nil {
		t.Fatalf("Expected an error for unterminated list")
	}
}

func TestReparse(t *testing.T) {
	for _, s := range []string{
		"(defun add (a b) (+ a b))\n",
		"(set (tuple a b) (tuple 1 2))\n",
		"(if (< x 0) 'neg 'pos)\n",
		"(let ((x 1) (y 2)) (+ x y))\n",
	} {
		check(t, s)
	}
}

// check parses s, prints every form, and verifies that parsing the
// printed output reproduces it exactly.
func check(t *testing.T, s string) {
	forms, err := parse(t, s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p := ""
	for _, c := range forms {
		p += literal.String(c) + "\n"
	}

	reparsed, err := parse(t, p)
	if err != nil {
		t.Fatalf("Unexpected error reparsing %q: %v", p, err)
	}

	r := ""
	for _, c := range reparsed {
		r += literal.String(c) + "\n"
	}

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func expect(t *testing.T, s, want string) {
	forms, err := parse(t, s)
	if err != nil {
		t.Fatalf("Unexpected error parsing %q: %v", s, err)
	}

	if len(forms) != 1 {
		t.Fatalf("Expected 1 form parsing %q; got %d", s, len(forms))
	}

	got := literal.String(forms[0])
	if got != want {
		t.Fatalf("Expected %q; got %q", want, got)
	}
}

func parse(t *testing.T, s string) ([]cell.I, error) {
	t.Helper()

	l := lexer.New("test")
	l.Scan(s)

	forms := []cell.I{}

	err := New(func(c cell.I) {
		forms = append(forms, c)
	}, l.Token).Parse()

	return forms, err
}
