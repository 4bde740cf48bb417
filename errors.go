package kvargs

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/xerrors"
)

// Help keyword was given, and usage was shown.
var ErrHelp = errors.New("help requested")

// Raised by Add when a parameter without a default follows one with a default.
type DeclarationOrderError struct {
	Name string
	// 0-based slot the parameter would have taken.
	Position int
}

func (e DeclarationOrderError) Error() string {
	return fmt.Sprintf("non-default argument %q follows default argument at %d", e.Name, e.Position)
}

// Raised by Add for a declaration that can never be bound.
type DeclarationError struct {
	Name string
	msg  string
}

func (e DeclarationError) Error() string {
	return fmt.Sprintf("bad declaration %q: %s", e.Name, e.msg)
}

// A positional token followed a keyword token.
type OrderError struct {
	Position int
}

func (e OrderError) Error() string {
	return fmt.Sprintf("positional argument %d follows keyword argument", e.Position)
}

type ExcessArgumentError struct {
	Position int
	Value    string
}

func (e ExcessArgumentError) Error() string {
	return fmt.Sprintf("excess argument %d: %q", e.Position, e.Value)
}

type UnknownArgumentError struct {
	Name string
}

func (e UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument: %q", e.Name)
}

type MissingArgumentError struct {
	Name string
	// 1-based.
	Position int
}

func (e MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required positional argument: %q at %d", e.Name, e.Position)
}

// The coercion function for a parameter rejected its raw value.
type ValidationError struct {
	Name  string
	Value string
	Err   error
}

var (
	_ xerrors.Formatter = ValidationError{}
	_ xerrors.Wrapper   = ValidationError{}
)

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for argument %q: %s", e.Value, e.Name, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

func (e ValidationError) Cause() error {
	return e.Err
}

func (e ValidationError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

func (e ValidationError) FormatError(p xerrors.Printer) error {
	p.Printf("invalid value %q for argument %q", e.Value, e.Name)
	return e.Err
}

// Whether err aborts a parse because of what the user typed, as opposed to
// how the Manager was declared.
func isUserError(err error) bool {
	switch errors.Cause(err).(type) {
	case OrderError, ExcessArgumentError, UnknownArgumentError, MissingArgumentError:
		return true
	}
	var ve ValidationError
	return errors.As(err, &ve)
}
