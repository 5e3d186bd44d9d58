package gcpagent

import (
	"context"
	"fmt"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iamcredentials/v1"
	"google.golang.org/api/logging/v2"
)

const (
	loggingReadScope = "https://www.googleapis.com/auth/logging.read"
	verifyTokenTTL   = "300s"
)

// Verify checks that the caller can create tokens for identity and that those tokens can read the project's
// logs. The check lists at most one log entry; an empty result still counts as success.
func (a *Agent) Verify(ctx context.Context, identity ServiceIdentity) error {
	if err := ValidateProjectID(identity.ProjectID); err != nil {
		return errors.Wrap(err)
	}
	if identity.Email == "" {
		identity = NewServiceIdentity(identity.ProjectID)
	}

	logger := logrus.WithField("project", identity.ProjectID).WithField("serviceAccount", identity.Email)

	if err := a.initVerifyClients(ctx); err != nil {
		return errors.Wrap(err)
	}

	// The "-" wildcard lets the API infer the project from the account email.
	tokenResponse, err := a.credentialsClient.GenerateAccessToken(ctx, fmt.Sprintf("projects/-/serviceAccounts/%s", identity.Email), &iamcredentials.GenerateAccessTokenRequest{
		Scope:    []string{loggingReadScope},
		Lifetime: verifyTokenTTL,
	})
	if err != nil {
		return errors.Errorf("failed to create an access token for %s: %w", identity.Email, classifyError(err))
	}
	logger.Debug("Created access token for service account")

	logEntriesClient, err := a.logEntriesClientFactory(ctx, tokenResponse.AccessToken)
	if err != nil {
		return errors.Wrap(err)
	}

	response, err := logEntriesClient.ListLogEntries(ctx, &logging.ListLogEntriesRequest{
		ResourceNames: []string{generateProjectResourceName(identity.ProjectID)},
		PageSize:      1,
		OrderBy:       "timestamp desc",
	})
	if err != nil {
		return errors.Errorf("failed to list log entries as %s: %w", identity.Email, classifyError(err))
	}

	logger.WithField("entries", len(response.Entries)).Info("Service account can read project logs")
	return nil
}
