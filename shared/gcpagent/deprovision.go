package gcpagent

import (
	"context"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/sirupsen/logrus"
)

// Deprovision removes the token creator bindings, the project log viewer binding and then the service account
// itself. Anything already gone is skipped.
func (a *Agent) Deprovision(ctx context.Context, identity ServiceIdentity) error {
	logger := logrus.WithField("project", identity.ProjectID)

	plan, observed, err := a.planDeprovision(ctx, identity)
	if err != nil {
		return errors.Wrap(err)
	}

	if plan.IsEmpty() {
		logger.Debug("Service account is already deprovisioned")
		return nil
	}

	if _, err := a.apply(ctx, plan, observed); err != nil {
		return errors.Wrap(err)
	}

	logger.WithField("serviceAccount", plan.Identity.Email).Info("Deprovisioned logging reader service account")
	return nil
}
