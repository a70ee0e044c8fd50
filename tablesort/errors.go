package tablesort

import (
	"errors"
	"fmt"
)

// Sort specification errors
var (
	ErrEmptySpec     = errors.New("sort specification has no keys")
	ErrNilComparator = errors.New("sort key has no comparator")
)

//
// MalformedValueError - a comparator was handed a value it cannot parse
// into the shape it orders (an IPv4 address without four octets, an email
// address without '@', ...).
//
type MalformedValueError struct {
	Kind   string
	Value  string
	Reason string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed %s value %q: %s", e.Kind, e.Value, e.Reason)
}

//
// MissingFieldError - a row lacks a field named by the sort specification.
//
type MissingFieldError struct {
	RowID int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("row %d: missing field %q", e.RowID, e.Field)
}

func malformed(kind, value, reason string) error {
	return &MalformedValueError{Kind: kind, Value: value, Reason: reason}
}
