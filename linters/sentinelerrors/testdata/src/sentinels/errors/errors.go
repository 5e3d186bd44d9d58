package errors

import "fmt"

func NewSentinelError(text string) error { return fmt.Errorf("%s", text) }

func New(text string) error { return fmt.Errorf("%s", text) }

func Errorf(format string, a ...any) error { return fmt.Errorf(format, a...) }

func KindErrorf(kind error, format string, a ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, a...))
}
