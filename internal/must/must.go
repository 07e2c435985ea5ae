// Package must turns errors into panics for command line code.
package must

import "fmt"

// Must panics if err != nil.
// If a format is provided the panic value wraps err with that context.
func Must(err error, format ...any) {
	if err == nil {
		return
	}
	if len(format) > 0 {
		err = fmt.Errorf("%v: %w", fmt.Sprintf(format[0].(string), format[1:]...), err)
	}
	panic(err)
}

// Must1 calls Must(err), then returns v.
func Must1[T any](v T, err error) T { Must(err); return v }
