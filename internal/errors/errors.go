// Package errors mirrors the subset of github.com/pkg/errors used by infra
// code, with Is/As taken from the standard library so sentinel matching
// sees through both wrapping styles.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	Is = stderrors.Is
	As = stderrors.As
)

// New returns a sentinel without a stack; wrap it at the failure site instead.
func New(text string) error { return stderrors.New(text) }

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// Cause unwraps pkg/errors annotations down to the original error.
func Cause(err error) error { return pkgerrors.Cause(err) }
