package common

import (
	"errors"
	"fmt"
	"github.com/chrisdone/redex/internal/pkg/ast"
	"runtime"
)

// Location points into a document that an expression tree was loaded from.
type Location struct {
	FilePath string
	Line     int
	Column   int
}

func (loc Location) IsEmpty() bool {
	return loc.FilePath == "" && loc.Line == 0
}

func (loc Location) CursorString() string {
	if loc.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", loc.FilePath, loc.Line, loc.Column)
}

type Error struct {
	Location Location
	Message  string
}

func NewErrorAt(loc Location, format string, args ...any) error {
	return Error{Location: loc, Message: fmt.Sprintf(format, args...)}
}

func (e Error) Error() string {
	if e.Location.IsEmpty() {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Location.CursorString(), e.Message)
}

// MissingNameError reports a variable that no enclosing binder declares.
type MissingNameError struct {
	Name ast.Name
}

func (e MissingNameError) Error() string {
	return fmt.Sprintf("unbound variable %s", e.Name)
}

var ErrStepLimit = errors.New("step limit reached")

// ErrNamesExhausted is returned when a fresh name counter would wrap around.
var ErrNamesExhausted = errors.New("fresh names exhausted")

type StepLimitError struct {
	Steps int
}

func (e StepLimitError) Error() string {
	return fmt.Sprintf("%v after %d steps", ErrStepLimit, e.Steps)
}

func (e StepLimitError) Unwrap() error {
	return ErrStepLimit
}

func NewSystemError(err error) error {
	return systemError{inner: err}
}

type systemError struct {
	inner error
}

func (e systemError) Error() string {
	return fmt.Sprintf("system error: %v", e.inner)
}

func (e systemError) Unwrap() error {
	return e.inner
}

func NewCompilerError(message string) error {
	_, file, line, _ := runtime.Caller(1)
	return compilerError{message: message, file: file, line: line}
}

type compilerError struct {
	message string
	file    string
	line    int
}

func (e compilerError) Error() string {
	return fmt.Sprintf("%s at %s:%d", e.message, e.file, e.line)
}
