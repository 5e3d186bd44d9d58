package sentinels

import "sentinels/errors"

var ErrProjectMissing = errors.NewSentinelError("project missing")

var ErrNoMarker = errors.New("no ownership marker") // want `package level error created with errors.New, use errors.NewSentinelError`

var (
	ErrDenied   = errors.KindErrorf(ErrProjectMissing, "denied") // want `package level error created with errors.KindErrorf, use errors.NewSentinelError`
	ErrConflict = errors.NewSentinelError("conflict")
)

func classify() error {
	return errors.Errorf("inside a function is fine: %w", ErrConflict)
}
