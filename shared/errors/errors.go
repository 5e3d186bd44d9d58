package errors

import (
	gerrors "errors"
	"fmt"
	bugsnagerrors "github.com/bugsnag/bugsnag-go/v2/errors"
)

func New(text string) *bugsnagerrors.Error {
	return bugsnagerrors.New(text, 1)
}

func NewSentinelError(text string) error {
	return gerrors.New(text)
}

func Errorf(format string, a ...any) *bugsnagerrors.Error {
	return bugsnagerrors.New(fmt.Errorf(format, a...), 1)
}

func ErrorfWithSkip(skip int, format string, a ...any) *bugsnagerrors.Error {
	return bugsnagerrors.New(fmt.Errorf(format, a...), 1+skip)
}

type multiUnwrapper interface {
	Unwrap() []error
}

// As walks the chain the same way errors.As does, but also looks inside every *bugsnagerrors.Error
// on the way, since those hide the wrapped error behind their Err field instead of Unwrap.
func As(err error, target interface{}) bool {
	for err != nil {
		if gerrors.As(err, target) {
			return true
		}
		if multi, ok := err.(multiUnwrapper); ok {
			for _, inner := range multi.Unwrap() {
				if As(inner, target) {
					return true
				}
			}
			return false
		}
		err = Unwrap(err)
	}

	return false
}

// Is reports whether any error in e's chain matches original, including errors held by
// *bugsnagerrors.Error wrappers at any depth.
func Is(e error, original error) bool {
	if originalBugsnagErr, ok := original.(*bugsnagerrors.Error); ok {
		original = originalBugsnagErr.Err
	}

	for e != nil {
		if gerrors.Is(e, original) {
			return true
		}
		if multi, ok := e.(multiUnwrapper); ok {
			for _, inner := range multi.Unwrap() {
				if Is(inner, original) {
					return true
				}
			}
			return false
		}
		e = Unwrap(e)
	}

	return false
}

func Unwrap(err error) error {
	if bugsnagErr, ok := err.(*bugsnagerrors.Error); ok {
		return bugsnagErr.Err
	}

	return gerrors.Unwrap(err)
}

func wrapImpl(err error, skip int) *bugsnagerrors.Error {
	if err == nil {
		return nil
	}
	return bugsnagerrors.New(err, skip+1)
}

// Wrap attaches a stack trace to err. Wrapping an error that already carries one keeps the
// original trace, so it is safe to call at every return site.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return wrapImpl(err, 1)
}

func WrapWithSkip(err error, skip int) error {
	if err == nil {
		return nil
	}
	return wrapImpl(err, skip+1)
}
