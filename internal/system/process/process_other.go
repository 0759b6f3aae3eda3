// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package process

// BecomeForegroundGroup is a no-op on platforms without process groups.
func BecomeForegroundGroup() error {
	return nil
}

// ForegroundGroup returns 0 on platforms without process groups.
func ForegroundGroup() int {
	return 0
}

// Group returns 0 on platforms without process groups.
func Group() int {
	return 0
}

// ID returns 0 on platforms without process groups.
func ID() int {
	return 0
}

// RestoreForegroundGroup is a no-op on platforms without process groups.
func RestoreForegroundGroup() {}

// SetForegroundGroup is a no-op on platforms without process groups.
func SetForegroundGroup(g int) {}
