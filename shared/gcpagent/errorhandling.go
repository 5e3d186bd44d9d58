package gcpagent

import (
	"context"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"google.golang.org/api/googleapi"
	"net"
	"net/http"
	"strings"
)

func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var apiError *googleapi.Error
	if errors.As(err, &apiError) {
		return apiError.Code == http.StatusNotFound
	}
	return false
}

// isMissingMemberError matches the 400 returned when a policy references a service account the
// IAM backend does not know about yet.
func isMissingMemberError(apiError *googleapi.Error) bool {
	return apiError.Code == http.StatusBadRequest && strings.Contains(apiError.Message, "does not exist")
}

// classifyError maps a provider error onto the error taxonomy. Errors that match no kind are only wrapped.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiError *googleapi.Error
	if errors.As(err, &apiError) {
		switch {
		case isMissingMemberError(apiError):
			return errors.WithKind(errors.ErrNotFound, err)
		case apiError.Code == http.StatusBadRequest:
			return errors.WithKind(errors.ErrInvalidInput, err)
		case apiError.Code == http.StatusUnauthorized, apiError.Code == http.StatusForbidden:
			return errors.WithKind(errors.ErrPermissionDenied, err)
		case apiError.Code == http.StatusNotFound:
			return errors.WithKind(errors.ErrNotFound, err)
		case apiError.Code == http.StatusConflict, apiError.Code == http.StatusPreconditionFailed:
			return errors.WithKind(errors.ErrConflict, err)
		case apiError.Code == http.StatusTooManyRequests, apiError.Code >= http.StatusInternalServerError:
			return errors.WithKind(errors.ErrTransient, err)
		default:
			return errors.Wrap(err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errors.WithKind(errors.ErrTransient, err)
	}

	var netError net.Error
	if errors.As(err, &netError) && netError.Timeout() {
		return errors.WithKind(errors.ErrTransient, err)
	}

	return errors.Wrap(err)
}

// classifyProjectError treats a project the caller cannot see the same as a missing one, since the
// Resource Manager API answers 403 for both.
func classifyProjectError(err error) error {
	var apiError *googleapi.Error
	if errors.As(err, &apiError) && (apiError.Code == http.StatusForbidden || apiError.Code == http.StatusNotFound) {
		return errors.WithKind(errors.ErrNotFound, err)
	}
	return classifyError(err)
}
