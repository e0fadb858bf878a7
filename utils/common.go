package utils

import "fmt"

// CheckMethod validates a finite-difference method code against the closed
// set a solver supports. Validation happens before any numeric work.
func CheckMethod(method string, methods []string) error {
	for _, m := range methods {
		if method == m {
			return nil
		}
	}
	return fmt.Errorf("value %q for argument method is not valid, must be one of %v", method, methods)
}
