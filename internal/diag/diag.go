// Released under an MIT license. See LICENSE.

// Package diag provides the sink for diagnostics produced by a session.
// Rendering beyond a plain text line is the consumer's concern.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lash-lang/lash/internal/common/struct/loc"
)

// I (diag) is anything that can receive a diagnostic.
type I interface {
	Print(source *loc.T, name, message string)
}

// T (diag) writes diagnostics to a writer, one per line.
type T struct {
	sync.Mutex
	w io.Writer
}

type diag = T

// New creates a new diag writing to w.
func New(w io.Writer) *T {
	return &diag{w: w}
}

// Stderr creates a new diag writing to standard error.
func Stderr() *T {
	return New(os.Stderr)
}

// Print writes one diagnostic line.
func (d *diag) Print(source *loc.T, name, message string) {
	d.Lock()
	defer d.Unlock()

	switch {
	case source != nil:
		fmt.Fprintf(d.w, "%s: %s\n", source.String(), message)
	case name != "":
		fmt.Fprintf(d.w, "%s: %s\n", name, message)
	default:
		fmt.Fprintln(d.w, message)
	}
}

// Discard creates a new diag that swallows every diagnostic.
func Discard() *T {
	return New(io.Discard)
}
