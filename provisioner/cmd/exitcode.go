package cmd

import (
	"github.com/otterize/logging-reader-provisioner/shared/errors"
)

const (
	ExitCodeOK               = 0
	ExitCodeUnknownError     = 1
	ExitCodeInvalidInput     = 2
	ExitCodePermissionDenied = 3
	ExitCodeNotFound         = 4
	ExitCodeConflict         = 5
	ExitCodeTransient        = 6
)

var kindToExitCode = map[error]int{
	errors.ErrInvalidInput:     ExitCodeInvalidInput,
	errors.ErrPermissionDenied: ExitCodePermissionDenied,
	errors.ErrNotFound:         ExitCodeNotFound,
	errors.ErrConflict:         ExitCodeConflict,
	errors.ErrTransient:        ExitCodeTransient,
}

func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	if code, ok := kindToExitCode[errors.KindOf(err)]; ok {
		return code
	}
	return ExitCodeUnknownError
}

func errorKindName(err error) string {
	kind := errors.KindOf(err)
	if kind == nil {
		return "unknown"
	}
	return kind.Error()
}
