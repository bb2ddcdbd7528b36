package gomerr

import "errors"

// ErrorAs returns the first error in err's chain that is a T, or T's zero value if there is none.
func ErrorAs[T error](err error) T {
	var target T
	if errors.As(err, &target) {
		return target
	}

	var zero T
	return zero
}
