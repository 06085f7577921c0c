package assert

import (
	"fmt"
)

// NotNil panics with the formatted message if value is nil.
// Use it for wiring mistakes that must surface while setting up the engine.
func NotNil[T any](value *T, format string, args ...any) {
	if value == nil {
		panic(fmt.Sprintf(format, args...))
	}
}

// That panics with the formatted message if condition does not hold.
func That(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
