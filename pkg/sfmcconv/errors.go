package sfmcconv

import (
	"errors"
	"fmt"
)

// Kind classifies conversion failures.
type Kind string

const (
	// KindIO is a file open, read, decode or write failure.
	KindIO Kind = "io"
	// KindFormat is a workbook missing an expected sheet or column.
	KindFormat Kind = "format"
	// KindConfig is an input or replacement map that makes the run meaningless.
	KindConfig Kind = "config"
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrIO     = errors.New("i/o error")
	ErrFormat = errors.New("format error")
	ErrConfig = errors.New("config error")
)

// Error represents a failure that aborted a conversion run.
type Error struct {
	Kind Kind
	// Step names the pipeline step that failed, e.g. "read", "replacements".
	Step string
	// Path is the file involved, if any.
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error in %s (%s): %v", e.Kind, e.Step, e.Path, e.Err)
	}
	return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrFormat:
		return e.Kind == KindFormat
	case ErrConfig:
		return e.Kind == KindConfig
	}
	return false
}

func newError(kind Kind, step, path string, err error) *Error {
	return &Error{Kind: kind, Step: step, Path: path, Err: err}
}
