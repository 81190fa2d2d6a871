package errors

import (
	"fmt"
)

// InternalError reports an enumerated tag outside its closed domain.
// It always signals a programming error.
type InternalError struct {
	Domain string
	Value  int
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s %d is outside its domain", e.Domain, e.Value)
}

// UnimplementedError reports a well-formed node kind that rendering does not
// cover yet.
type UnimplementedError struct {
	Kind   string
	Detail string
}

func (e *UnimplementedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("TODO more ast rendering: %s", e.Kind)
	}
	return fmt.Sprintf("TODO more ast rendering: %s (%s)", e.Kind, e.Detail)
}

func Internal(domain string, value int) *InternalError {
	return &InternalError{Domain: domain, Value: value}
}

func Unimplemented(kind string) *UnimplementedError {
	return &UnimplementedError{Kind: kind}
}

// AsFault reports whether r, a recovered panic value, is one of the faults
// raised by this module.
func AsFault(r interface{}) (error, bool) {
	switch e := r.(type) {
	case *InternalError:
		return e, true
	case *UnimplementedError:
		return e, true
	}
	return nil, false
}
