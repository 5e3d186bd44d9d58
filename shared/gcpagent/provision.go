package gcpagent

import (
	"context"
	"github.com/otterize/logging-reader-provisioner/prometheus"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iam/v1"
)

// Provision ensures the logging reader service account exists in projectID with log viewer access, and that
// impersonator, when set, is the only member allowed to create tokens for it. Only missing changes are applied,
// so calling it repeatedly with the same input is safe.
func (a *Agent) Provision(ctx context.Context, projectID string, impersonator string) (*ServiceIdentity, error) {
	logger := logrus.WithField("project", projectID)

	plan, observed, err := a.plan(ctx, projectID, impersonator)
	if err != nil {
		return nil, errors.Wrap(err)
	}

	if plan.IsEmpty() {
		logger.Debug("Service account and role bindings are up to date")
		return &plan.Identity, nil
	}

	identity, err := a.apply(ctx, plan, observed)
	if err != nil {
		return nil, errors.Wrap(err)
	}

	logger.WithField("serviceAccount", identity.Email).Info("Provisioned logging reader service account")
	return identity, nil
}

// apply runs the plan in order. Consecutive binding changes on the same role share one policy write.
func (a *Agent) apply(ctx context.Context, plan *Plan, observed *observedState) (*ServiceIdentity, error) {
	identity := plan.Identity
	changes := plan.Changes

	for len(changes) > 0 {
		change := changes[0]
		switch change.Action {
		case ChangeCreateServiceAccount:
			serviceAccount, err := a.createServiceAccount(ctx, identity)
			if err != nil {
				return nil, errors.Wrap(err)
			}
			observed.serviceAccount = serviceAccount
			identity.UniqueID = serviceAccount.UniqueId
			if serviceAccount.Email != "" {
				identity.Email = serviceAccount.Email
			}
			if serviceAccount.Name != "" {
				identity.ResourceName = serviceAccount.Name
			}
			changes = changes[1:]
		case ChangeDeleteServiceAccount:
			if err := a.deleteServiceAccount(ctx, identity); err != nil {
				return nil, errors.Wrap(err)
			}
			observed.serviceAccount = nil
			changes = changes[1:]
		case ChangeAddBinding, ChangeRemoveBinding:
			role := change.Binding.Role
			count := 1
			for count < len(changes) && changes[count].Binding != nil && changes[count].Binding.Role == role {
				count++
			}
			if err := a.applyBindingChanges(ctx, identity, role, changes[:count], observed); err != nil {
				return nil, errors.Wrap(err)
			}
			changes = changes[count:]
		default:
			return nil, errors.Errorf("unknown change action %q", change.Action)
		}
	}

	return &identity, nil
}

func (a *Agent) createServiceAccount(ctx context.Context, identity ServiceIdentity) (*iam.ServiceAccount, error) {
	request := &iam.CreateServiceAccountRequest{
		AccountId: identity.AccountID,
		ServiceAccount: &iam.ServiceAccount{
			DisplayName: identity.DisplayName,
			Description: managedByMarker,
		},
	}

	serviceAccount, err := a.iamClient.CreateServiceAccount(ctx, generateProjectResourceName(identity.ProjectID), request)
	if err != nil {
		return nil, classifyError(err)
	}

	logrus.WithField("project", identity.ProjectID).WithField("serviceAccount", serviceAccount.Email).Info("Created service account")
	prometheus.IncrementServiceAccountsCreated(1)
	return serviceAccount, nil
}

func (a *Agent) deleteServiceAccount(ctx context.Context, identity ServiceIdentity) error {
	err := a.iamClient.DeleteServiceAccount(ctx, identity.ResourceName)
	if err != nil {
		if isNotFoundError(err) {
			logrus.WithField("serviceAccount", identity.Email).Debug("Service account already deleted")
			return nil
		}
		return classifyError(err)
	}

	logrus.WithField("project", identity.ProjectID).WithField("serviceAccount", identity.Email).Info("Deleted service account")
	prometheus.IncrementServiceAccountsDeleted(1)
	return nil
}

func applyChangesToPolicy(policy *policyDocument, role Role, changes []Change) (added int, removed int) {
	for _, change := range changes {
		switch change.Action {
		case ChangeAddBinding:
			if policy.addMember(role.GCPRole(), change.Binding.Member) {
				added++
			}
		case ChangeRemoveBinding:
			if policy.removeMember(role.GCPRole(), change.Binding.Member) {
				removed++
			}
		}
	}
	return added, removed
}

// applyBindingChanges writes changes back with the etag of the policy they were computed from, so a concurrent
// policy update fails the write with a conflict instead of being overwritten.
func (a *Agent) applyBindingChanges(ctx context.Context, identity ServiceIdentity, role Role, changes []Change, observed *observedState) error {
	logger := logrus.WithField("project", identity.ProjectID).WithField("role", role.GCPRole())

	switch role {
	case RoleLogViewer:
		added, removed := applyChangesToPolicy(observed.projectPolicy, role, changes)
		if added+removed == 0 {
			return nil
		}
		updated, err := a.projectsClient.SetProjectIAMPolicy(ctx, identity.ProjectID, observed.projectPolicy.toProjectPolicy())
		if err != nil {
			return classifyError(err)
		}
		observed.projectPolicy = fromProjectPolicy(updated)
		logger.WithField("added", added).WithField("removed", removed).Info("Updated project IAM policy")
		recordBindingChanges(role, added, removed)
		return nil
	case RoleTokenCreator:
		if observed.serviceAccountPolicy == nil {
			policy, err := a.iamClient.GetServiceAccountIAMPolicy(ctx, identity.ResourceName)
			if err != nil {
				return classifyError(err)
			}
			observed.serviceAccountPolicy = fromServiceAccountPolicy(policy)
		}
		added, removed := applyChangesToPolicy(observed.serviceAccountPolicy, role, changes)
		if added+removed == 0 {
			return nil
		}
		updated, err := a.iamClient.SetServiceAccountIAMPolicy(ctx, identity.ResourceName, observed.serviceAccountPolicy.toServiceAccountPolicy())
		if err != nil {
			return classifyError(err)
		}
		observed.serviceAccountPolicy = fromServiceAccountPolicy(updated)
		logger.WithField("serviceAccount", identity.Email).WithField("added", added).WithField("removed", removed).Info("Updated service account IAM policy")
		recordBindingChanges(role, added, removed)
		return nil
	default:
		return errors.Errorf("unknown role %q", role)
	}
}

func recordBindingChanges(role Role, added int, removed int) {
	if added > 0 {
		prometheus.IncrementRoleBindingsAdded(role.GCPRole(), added)
	}
	if removed > 0 {
		prometheus.IncrementRoleBindingsRemoved(role.GCPRole(), removed)
	}
}
