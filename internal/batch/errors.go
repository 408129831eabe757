package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput matches any *MissingInputError
	ErrMissingInput = errors.New("missing input")
	// ErrMalformedRecord matches any *MalformedRecordError
	ErrMalformedRecord = errors.New("malformed record")
)

// MissingInputError reports an expected batch that is absent before evaluation starts
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing expected batch file: %s (fail-fast is enabled, aborting evaluation)", e.Path)
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// MalformedRecordError reports a batch value that cannot be parsed into its field type.
// Path and Line are zero when the values did not come from a file.
type MalformedRecordError struct {
	Err   error
	Path  string
	Field string
	Value string
	Line  int
}

func (e *MalformedRecordError) Error() string {
	var where string
	switch {
	case e.Path != "" && e.Line > 0:
		where = fmt.Sprintf(" in %s line %d", e.Path, e.Line)
	case e.Path != "":
		where = " in " + e.Path
	}

	if e.Field == "" {
		return fmt.Sprintf("malformed record%s: %v", where, e.Err)
	}
	return fmt.Sprintf("malformed record%s: field %s value %q: %v", where, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}
