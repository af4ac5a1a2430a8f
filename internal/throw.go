package internal

import "github.com/pkg/errors"

// Geometric failures that callers are expected to handle are returned as
// errors. Broken internal invariants panic instead, and the public API recovers
// to convert them to an error.

type BilliardsError error

// Panic with a BilliardsError.
func Fatalf(format string, args ...interface{}) {
	panic(BilliardsError(errors.Errorf(format, args...)))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if billiardsError, ok := r.(BilliardsError); ok {
			return billiardsError
		}
		panic(r)
	}
	return nil
}
