//go:build assertions_disabled

package assert

// True is a no-op when assertions are disabled.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False is a no-op when assertions are disabled.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// NotNil is a no-op when assertions are disabled.
func NotNil(value any, args ...any) {
	// Intentionally left blank
}
