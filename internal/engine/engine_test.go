package engine

import (
	"strings"
	"testing"

	"github.com/lash-lang/lash/internal/common/interface/cell"
	"github.com/lash-lang/lash/internal/common/interface/literal"
	"github.com/lash-lang/lash/internal/common/type/num"
	"github.com/lash-lang/lash/internal/env"
	"github.com/lash-lang/lash/internal/reader/lexer"
	"github.com/lash-lang/lash/internal/reader/parser"
)

func TestSelfEvaluating(t *testing.T) {
	h := setup(t)

	h.evaluates("42", "42")
	h.evaluates("true", "true")
	h.evaluates(`"hello"`, `"hello"`)
	h.evaluates("()", "()")
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.evaluates("(+ 1 2)", "3")
	h.evaluates("(- 10 4)", "6")
	h.evaluates("(* 2 3 4)", "24")
	h.evaluates("(/ 1 3)", "1/3")
	h.evaluates("(rem 7 3)", "1")
	h.evaluates("(+ 1 (* 2 3))", "7")
}

func TestComparison(t *testing.T) {
	h := setup(t)

	h.evaluates("(< 1 2)", "true")
	h.evaluates("(> 1 2)", "false")
	h.evaluates("(== 1 1)", "true")
	h.evaluates("(=/= 1 1)", "false")
	h.evaluates("(<= 2 2)", "true")
}

func TestQuote(t *testing.T) {
	h := setup(t)

	h.evaluates("'x", "x")
	h.evaluates("'(1 2 3)", "(1 2 3)")
	h.evaluates("(quote (a b))", "(a b)")
}

func TestIf(t *testing.T) {
	h := setup(t)

	h.evaluates("(if true 1 2)", "1")
	h.evaluates("(if false 1 2)", "2")
	h.evaluates("(if false 1)", "()")
	h.evaluates("(if (< 1 2) 'yes 'no)", "yes")
}

func TestLet(t *testing.T) {
	h := setup(t)

	h.evaluates("(let ((x 2)) (* x x))", "4")
	h.evaluates("(let ((x 1) (y (+ x 1))) (+ x y))", "3")
}

func TestLambda(t *testing.T) {
	h := setup(t)

	h.evaluates("((lambda (x) (* x x)) 5)", "25")
	h.evaluates("((lambda () 7))", "7")
}

func TestLambdaCapturesScope(t *testing.T) {
	h := setup(t)

	h.env = h.env.AddVariable("y", num.Int(10))

	h.evaluates("((lambda (x) (+ x y)) 1)", "11")
}

func TestListBuiltins(t *testing.T) {
	h := setup(t)

	h.evaluates("(car '(1 2 3))", "1")
	h.evaluates("(cdr '(1 2 3))", "(2 3)")
	h.evaluates("(cons 1 '(2 3))", "(1 2 3)")
	h.evaluates("(list 1 (+ 1 1) 3)", "(1 2 3)")
	h.evaluates("(length '(a b c))", "3")
	h.evaluates("(is-null '())", "true")
	h.evaluates("(is-list '(1))", "true")
	h.evaluates("(not true)", "false")
}

func TestTupleBuiltins(t *testing.T) {
	h := setup(t)

	h.evaluates("(tuple 1 2)", "#(1 2)")
	h.evaluates("(element 2 (tuple 'a 'b 'c))", "b")
}

func TestUnboundSymbol(t *testing.T) {
	h := setup(t)

	h.faults("x", "unbound")
}

func TestUndefinedFunction(t *testing.T) {
	h := setup(t)

	h.faults("(frobnicate 1 2)", "frobnicate/2 is undefined")
}

func TestArityDispatch(t *testing.T) {
	h := setup(t)

	h.define("(defun f (x) 'one)")
	h.define("(defun f (x y) 'two)")

	h.evaluates("(f 1)", "one")
	h.evaluates("(f 1 2)", "two")
	h.faults("(f 1 2 3)", "f/3 is undefined")
}

func TestDefunShadowsBuiltin(t *testing.T) {
	h := setup(t)

	h.define("(defun + (a b) 'shadowed)")

	h.evaluates("(+ 1 2)", "shadowed")
	h.evaluates("(- 1 2)", "-1")
}

func TestMultiClause(t *testing.T) {
	h := setup(t)

	h.define(`(defun sign
		((0) 'zero)
		((n) (when (> n 0)) 'pos)
		((_) 'neg))`)

	h.evaluates("(sign 0)", "zero")
	h.evaluates("(sign 3)", "pos")
	h.evaluates("(sign -3)", "neg")
}

func TestNoMatchingClause(t *testing.T) {
	h := setup(t)

	h.define("(defun only-zero ((0) 'zero))")

	h.faults("(only-zero 1)", "no matching clause")
}

func TestRecursion(t *testing.T) {
	h := setup(t)

	h.define(`(defun fact
		((0) 1)
		((n) (* n (fact (- n 1)))))`)

	h.evaluates("(fact 5)", "120")
}

func TestMacroExpansion(t *testing.T) {
	h := setup(t)

	h.define("(defmacro unless (c b) (list 'if c ''skipped b))")

	forms, err := Expand(h.one("(unless false 42)"), h.env)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(forms) != 1 {
		t.Fatalf("Expected 1 expanded form; got %d", len(forms))
	}

	if got := literal.String(forms[0]); got != "(if false (quote skipped) 42)" {
		t.Fatalf("Expected (if false (quote skipped) 42); got %s", got)
	}

	v, err := Evaluate(forms[0], h.env)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := literal.String(v); got != "42" {
		t.Fatalf("Expected 42; got %s", got)
	}
}

func TestMacroFlattensProgn(t *testing.T) {
	h := setup(t)

	h.define("(defmacro both (a b) (list 'progn a b))")

	forms, err := Expand(h.one("(both 1 2)"), h.env)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(forms) != 2 {
		t.Fatalf("Expected progn to flatten into 2 forms; got %d", len(forms))
	}
}

func TestMacroExpandsInSubforms(t *testing.T) {
	h := setup(t)

	h.define("(defmacro double (x) (list '* 2 x))")

	forms, err := Expand(h.one("(defun quad (x) (double (double x)))"), h.env)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := literal.String(forms[0]); got != "(defun quad (x) (* 2 (* 2 x)))" {
		t.Fatalf("Expected (defun quad (x) (* 2 (* 2 x))); got %s", got)
	}
}

func TestMacroLeavesQuotedForms(t *testing.T) {
	h := setup(t)

	h.define("(defmacro double (x) (list '* 2 x))")

	forms, err := Expand(h.one("'(double 3)"), h.env)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := literal.String(forms[0]); got != "(quote (double 3))" {
		t.Fatalf("Expected (quote (double 3)); got %s", got)
	}
}

func TestRunawayMacro(t *testing.T) {
	h := setup(t)

	h.define("(defmacro loop (x) (list 'loop x))")

	_, err := Expand(h.one("(loop 1)"), h.env)
	if err == nil || !strings.Contains(err.Error(), "does not terminate") {
		t.Fatalf("Expected a non-termination error; got %v", err)
	}
}

func TestRunawayMacroInSubform(t *testing.T) {
	h := setup(t)

	h.define("(defmacro loop (x) (list 'loop x))")

	_, err := Expand(h.one("(defun spin () (loop 1))"), h.env)
	if err == nil || !strings.Contains(err.Error(), "expansion of loop") {
		t.Fatalf("Expected a non-termination error naming the macro; got %v", err)
	}
}

func TestRecordConstructorAndAccessors(t *testing.T) {
	h := setup(t)

	h.define("(defrecord point x y)")

	h.evaluates("(make-point 1 2)", "#(point 1 2)")
	h.evaluates("(point-x (make-point 1 2))", "1")
	h.evaluates("(point-y (make-point 1 2))", "2")
}

func TestUndeclaredRecord(t *testing.T) {
	h := setup(t)

	h.faults("(make-point 1 2)", "make-point/2 is undefined")
}

func TestMatchVariable(t *testing.T) {
	h := setup(t)

	b := h.match("x", "42", "")
	if !b["x"].Equal(num.Int(42)) {
		t.Fatalf("Expected x = 42; got %v", b["x"])
	}
}

func TestMatchWildcard(t *testing.T) {
	h := setup(t)

	b := h.match("_", "42", "")
	if len(b) != 0 {
		t.Fatalf("Expected no bindings for _; got %v", b)
	}
}

func TestMatchTuple(t *testing.T) {
	h := setup(t)

	b := h.match("(tuple a b)", "(tuple 1 2)", "")
	if !b["a"].Equal(num.Int(1)) || !b["b"].Equal(num.Int(2)) {
		t.Fatalf("Expected a = 1, b = 2; got %v", b)
	}

	h.misses("(tuple a b)", "(tuple 1 2 3)", "")
	h.misses("(tuple a b)", "'(1 2)", "")
}

func TestMatchList(t *testing.T) {
	h := setup(t)

	b := h.match("(list a b)", "'(1 2)", "")
	if !b["a"].Equal(num.Int(1)) || !b["b"].Equal(num.Int(2)) {
		t.Fatalf("Expected a = 1, b = 2; got %v", b)
	}

	h.misses("(list a b)", "'(1 2 3)", "")
}

func TestMatchCons(t *testing.T) {
	h := setup(t)

	b := h.match("(cons h rest)", "'(1 2 3)", "")
	if !b["h"].Equal(num.Int(1)) {
		t.Fatalf("Expected h = 1; got %v", b["h"])
	}

	if got := literal.String(b["rest"]); got != "(2 3)" {
		t.Fatalf("Expected rest = (2 3); got %s", got)
	}
}

func TestMatchRepeatedVariable(t *testing.T) {
	h := setup(t)

	b := h.match("(list a a)", "'(1 1)", "")
	if !b["a"].Equal(num.Int(1)) {
		t.Fatalf("Expected a = 1; got %v", b["a"])
	}

	h.misses("(list a a)", "'(1 2)", "")
}

func TestMatchLiteral(t *testing.T) {
	h := setup(t)

	h.match("'ok", "'ok", "")
	h.misses("'ok", "'error", "")
	h.match("42", "42", "")
	h.misses("42", "43", "")
}

func TestMatchGuard(t *testing.T) {
	h := setup(t)

	h.match("n", "5", "(> n 0)")
	h.misses("n", "-5", "(> n 0)")
}

type harness struct {
	env *env.T
	t   *testing.T
}

func setup(t *testing.T) *harness {
	return &harness{env: env.New(), t: t}
}

// define runs a definition form and commits the new env version.
func (h *harness) define(src string) {
	h.t.Helper()

	n, _, ok := Define(h.one(src), h.env)
	if !ok {
		h.t.Fatalf("Expected %q to be a definition", src)
	}

	h.env = n
}

func (h *harness) evaluates(src, want string) {
	h.t.Helper()

	v, err := Evaluate(h.one(src), h.env)
	if err != nil {
		h.t.Fatalf("Unexpected error evaluating %q: %v", src, err)
	}

	if got := literal.String(v); got != want {
		h.t.Fatalf("Expected %q to evaluate to %s; got %s", src, want, got)
	}
}

func (h *harness) faults(src, fragment string) {
	h.t.Helper()

	_, err := Evaluate(h.one(src), h.env)
	if err == nil {
		h.t.Fatalf("Expected %q to fail", src)
	}

	if !strings.Contains(err.Error(), fragment) {
		h.t.Fatalf("Expected error containing %q; got %v", fragment, err)
	}
}

// match evaluates value, destructures it, and returns the bindings.
// An empty guard means the pattern has no guard.
func (h *harness) match(pattern, value, guard string) map[string]cell.I {
	h.t.Helper()

	ok, b := h.try(pattern, value, guard)
	if !ok {
		h.t.Fatalf("Expected %q to match %q", pattern, value)
	}

	return b
}

func (h *harness) misses(pattern, value, guard string) {
	h.t.Helper()

	ok, _ := h.try(pattern, value, guard)
	if ok {
		h.t.Fatalf("Expected %q not to match %q", pattern, value)
	}
}

func (h *harness) one(src string) cell.I {
	h.t.Helper()

	l := lexer.New("test")
	l.Scan(src + "\n")

	forms := []cell.I{}

	err := parser.New(func(c cell.I) {
		forms = append(forms, c)
	}, l.Token).Parse()
	if err != nil {
		h.t.Fatalf("Unexpected error parsing %q: %v", src, err)
	}

	if len(forms) != 1 {
		h.t.Fatalf("Expected 1 form parsing %q; got %d", src, len(forms))
	}

	return forms[0]
}

func (h *harness) try(pattern, value, guard string) (bool, map[string]cell.I) {
	h.t.Helper()

	v, err := Evaluate(h.one(value), h.env)
	if err != nil {
		h.t.Fatalf("Unexpected error evaluating %q: %v", value, err)
	}

	var g cell.I
	if guard != "" {
		g = h.one(guard)
	}

	ok, b, err := Match(h.one(pattern), v, g, h.env)
	if err != nil {
		h.t.Fatalf("Unexpected error matching %q: %v", pattern, err)
	}

	return ok, b
}
