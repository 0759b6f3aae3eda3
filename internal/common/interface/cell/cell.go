// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lash types.
package cell

// I (cell) is the basic unit of storage in lash.
type I interface {
	Equal(c I) bool
	Name() string
}
