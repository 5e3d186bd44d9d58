package gcpagent

import (
	"github.com/asaskevich/govalidator"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"regexp"
	"strings"
)

const (
	memberPrefixUser           = "user:"
	memberPrefixGroup          = "group:"
	memberPrefixServiceAccount = "serviceAccount:"
	memberPrefixDomain         = "domain:"
	memberPrefixPrincipal      = "principal://"
	memberPrefixPrincipalSet   = "principalSet://"
)

// GKE workload identity members look like serviceAccount:my-proj.svc.id.goog[namespace/ksa].
var workloadIdentityMemberPattern = regexp.MustCompile(`^[a-z0-9.:-]+\.svc\.id\.goog\[[^/\[\]]+/[^/\[\]]+\]$`)

// ValidateProjectID rejects project identifiers that cannot name a project.
func ValidateProjectID(projectID string) error {
	if projectID == "" {
		return errors.KindErrorf(errors.ErrInvalidInput, "project ID is required")
	}
	if strings.ContainsAny(projectID, "/ \t\n") {
		return errors.KindErrorf(errors.ErrInvalidInput, "project ID %q must not contain slashes or whitespace", projectID)
	}
	// Domain-scoped projects (example.com:proj) get service account emails of a different form.
	if strings.Contains(projectID, ":") {
		return errors.KindErrorf(errors.ErrInvalidInput, "domain-scoped project ID %q is not supported", projectID)
	}
	return nil
}

// ValidateMember checks that member is an IAM member that may be granted the token creator role.
// The empty string is valid and means no impersonation grant.
func ValidateMember(member string) error {
	if member == "" {
		return nil
	}

	switch {
	case member == "allUsers" || member == "allAuthenticatedUsers":
		return errors.KindErrorf(errors.ErrInvalidInput, "refusing to grant token creation to %s", member)
	case strings.HasPrefix(member, memberPrefixServiceAccount):
		value := strings.TrimPrefix(member, memberPrefixServiceAccount)
		if !govalidator.IsEmail(value) && !workloadIdentityMemberPattern.MatchString(value) {
			return errors.KindErrorf(errors.ErrInvalidInput, "invalid service account member %q", member)
		}
	case strings.HasPrefix(member, memberPrefixUser), strings.HasPrefix(member, memberPrefixGroup):
		value := member[strings.Index(member, ":")+1:]
		if !govalidator.IsEmail(value) {
			return errors.KindErrorf(errors.ErrInvalidInput, "invalid email in member %q", member)
		}
	case strings.HasPrefix(member, memberPrefixDomain):
		if !govalidator.IsDNSName(strings.TrimPrefix(member, memberPrefixDomain)) {
			return errors.KindErrorf(errors.ErrInvalidInput, "invalid domain in member %q", member)
		}
	case strings.HasPrefix(member, memberPrefixPrincipal), strings.HasPrefix(member, memberPrefixPrincipalSet):
		if !govalidator.IsRequestURL(member) {
			return errors.KindErrorf(errors.ErrInvalidInput, "invalid principal identifier %q", member)
		}
	default:
		return errors.KindErrorf(errors.ErrInvalidInput, "unsupported member %q, expected a user:, group:, serviceAccount:, domain:, principal:// or principalSet:// member", member)
	}

	return nil
}
