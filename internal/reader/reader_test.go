package reader

import (
	"io"
	"testing"

	"github.com/lash-lang/lash/internal/common/interface/literal"
	"github.com/lash-lang/lash/internal/fault"
)

func TestReadForms(t *testing.T) {
	r := New("test", scripted("(+ 1 2)", "'done"))
	defer r.Close()

	c, err := r.Read()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := literal.String(c); got != "(+ 1 2)" {
		t.Fatalf("Expected (+ 1 2); got %s", got)
	}

	c, err = r.Read()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := literal.String(c); got != "(quote done)" {
		t.Fatalf("Expected (quote done); got %s", got)
	}

	if _, err = r.Read(); err != io.EOF {
		t.Fatalf("Expected EOF; got %v", err)
	}
}

func TestContinuation(t *testing.T) {
	lines := []string{"(+ 1", "2)"}
	continuations := []bool{}

	i := 0
	r := New("test", func(continuation bool) (string, error) {
		continuations = append(continuations, continuation)

		if i >= len(lines) {
			return "", io.EOF
		}

		line := lines[i]
		i++

		return line, nil
	})
	defer r.Close()

	c, err := r.Read()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := literal.String(c); got != "(+ 1 2)" {
		t.Fatalf("Expected the form to span both lines; got %s", got)
	}

	// Wait for the worker to finish before inspecting what it asked for.
	if _, err = r.Read(); err != io.EOF {
		t.Fatalf("Expected EOF; got %v", err)
	}

	if len(continuations) != 3 || continuations[0] || !continuations[1] || continuations[2] {
		t.Fatalf("Expected prompts [first continuation first]; got %v", continuations)
	}
}

func TestParseFault(t *testing.T) {
	r := New("test", scripted(")"))
	defer r.Close()

	_, err := r.Read()

	f, is := err.(*fault.T)
	if !is || f.Kind() != fault.Parse {
		t.Fatalf("Expected a parse fault; got %v", err)
	}
}

func TestInterruptedInput(t *testing.T) {
	r := New("test", func(bool) (string, error) {
		return "", io.ErrUnexpectedEOF
	})
	defer r.Close()

	_, err := r.Read()

	f, is := err.(*fault.T)
	if !is || f.Kind() != fault.Parse {
		t.Fatalf("Expected the worker to die with a fault; got %v", err)
	}
}

// scripted supplies each line once and then reports end of input.
func scripted(lines ...string) Input {
	i := 0

	return func(bool) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}

		line := lines[i]
		i++

		return line, nil
	}
}
