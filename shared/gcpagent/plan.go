package gcpagent

import (
	"context"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iam/v1"
	"sort"
	"strings"
)

const projectLifecycleStateActive = "ACTIVE"

// observedState is what the provider currently holds for an identity.
type observedState struct {
	// serviceAccount is nil when the account does not exist.
	serviceAccount       *iam.ServiceAccount
	projectPolicy        *policyDocument
	serviceAccountPolicy *policyDocument
}

func (o *observedState) serviceAccountExists() bool {
	return o.serviceAccount != nil
}

func isManagedServiceAccount(serviceAccount *iam.ServiceAccount) bool {
	return strings.Contains(serviceAccount.Description, managedByMarker)
}

func (a *Agent) observe(ctx context.Context, identity ServiceIdentity) (*observedState, error) {
	logger := logrus.WithField("project", identity.ProjectID).WithField("serviceAccount", identity.Email)

	project, err := a.projectsClient.GetProject(ctx, identity.ProjectID)
	if err != nil {
		return nil, classifyProjectError(err)
	}
	if project.LifecycleState != "" && project.LifecycleState != projectLifecycleStateActive {
		return nil, errors.KindErrorf(errors.ErrNotFound, "project %s is in state %s", identity.ProjectID, project.LifecycleState)
	}

	observed := &observedState{}

	serviceAccount, err := a.iamClient.GetServiceAccount(ctx, identity.ResourceName)
	if err != nil && !isNotFoundError(err) {
		return nil, classifyError(err)
	}
	if err == nil {
		if !isManagedServiceAccount(serviceAccount) {
			return nil, errors.KindErrorf(errors.ErrConflict, "service account %s exists but is not managed by this tool", identity.Email)
		}
		observed.serviceAccount = serviceAccount
	} else {
		logger.Debug("Service account does not exist")
	}

	projectPolicy, err := a.projectsClient.GetProjectIAMPolicy(ctx, identity.ProjectID)
	if err != nil {
		return nil, classifyError(err)
	}
	observed.projectPolicy = fromProjectPolicy(projectPolicy)

	if observed.serviceAccountExists() {
		serviceAccountPolicy, err := a.iamClient.GetServiceAccountIAMPolicy(ctx, identity.ResourceName)
		if err != nil {
			return nil, classifyError(err)
		}
		observed.serviceAccountPolicy = fromServiceAccountPolicy(serviceAccountPolicy)
	}

	return observed, nil
}

// computePlan diffs the desired bindings for impersonator against observed. Changes are ordered so that
// the account exists before anything references it.
func computePlan(identity ServiceIdentity, impersonator string, observed *observedState) *Plan {
	plan := &Plan{Identity: identity, Changes: make([]Change, 0), Bindings: desiredBindings(identity, impersonator)}
	if observed.serviceAccount != nil {
		plan.Identity.UniqueID = observed.serviceAccount.UniqueId
	}

	if !observed.serviceAccountExists() {
		plan.Changes = append(plan.Changes, Change{Action: ChangeCreateServiceAccount})
	}

	logViewerMember := generateServiceAccountMember(identity.Email)
	if !observed.projectPolicy.hasMember(RoleLogViewer.GCPRole(), logViewerMember) {
		plan.Changes = append(plan.Changes, Change{
			Action:  ChangeAddBinding,
			Binding: &RoleBinding{Role: RoleLogViewer, Member: logViewerMember},
		})
	}

	for _, member := range currentTokenCreators(observed) {
		if member == impersonator {
			continue
		}
		plan.Changes = append(plan.Changes, Change{
			Action:  ChangeRemoveBinding,
			Binding: &RoleBinding{Role: RoleTokenCreator, Member: member},
		})
	}

	if impersonator != "" && (observed.serviceAccountPolicy == nil || !observed.serviceAccountPolicy.hasMember(RoleTokenCreator.GCPRole(), impersonator)) {
		plan.Changes = append(plan.Changes, Change{
			Action:  ChangeAddBinding,
			Binding: &RoleBinding{Role: RoleTokenCreator, Member: impersonator},
		})
	}

	return plan
}

// computeDeprovisionPlan removes every binding this tool manages before the account itself.
func computeDeprovisionPlan(identity ServiceIdentity, observed *observedState) *Plan {
	plan := &Plan{Identity: identity, Changes: make([]Change, 0), Bindings: make([]RoleBinding, 0)}

	for _, member := range currentTokenCreators(observed) {
		plan.Changes = append(plan.Changes, Change{
			Action:  ChangeRemoveBinding,
			Binding: &RoleBinding{Role: RoleTokenCreator, Member: member},
		})
	}

	logViewerMember := generateServiceAccountMember(identity.Email)
	if observed.projectPolicy.hasMember(RoleLogViewer.GCPRole(), logViewerMember) {
		plan.Changes = append(plan.Changes, Change{
			Action:  ChangeRemoveBinding,
			Binding: &RoleBinding{Role: RoleLogViewer, Member: logViewerMember},
		})
	}

	if observed.serviceAccountExists() {
		plan.Changes = append(plan.Changes, Change{Action: ChangeDeleteServiceAccount})
	}

	return plan
}

// currentTokenCreators returns the unconditional token creator members, sorted for stable output.
func currentTokenCreators(observed *observedState) []string {
	if observed.serviceAccountPolicy == nil {
		return nil
	}
	members := observed.serviceAccountPolicy.members(RoleTokenCreator.GCPRole()).Items()
	sort.Strings(members)
	return members
}

func validateProvisionInput(projectID string, impersonator string) error {
	if err := ValidateProjectID(projectID); err != nil {
		return errors.Wrap(err)
	}
	if err := ValidateMember(impersonator); err != nil {
		return errors.Wrap(err)
	}
	return nil
}

// Plan reports the changes Provision would apply for projectID and impersonator, without applying them.
func (a *Agent) Plan(ctx context.Context, projectID string, impersonator string) (*Plan, error) {
	plan, _, err := a.plan(ctx, projectID, impersonator)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return plan, nil
}

func (a *Agent) plan(ctx context.Context, projectID string, impersonator string) (*Plan, *observedState, error) {
	if err := validateProvisionInput(projectID, impersonator); err != nil {
		return nil, nil, errors.Wrap(err)
	}

	identity := NewServiceIdentity(projectID)
	observed, err := a.observe(ctx, identity)
	if err != nil {
		return nil, nil, errors.Wrap(err)
	}

	return computePlan(identity, impersonator, observed), observed, nil
}

// PlanDeprovision reports the changes Deprovision would apply for identity, without applying them.
func (a *Agent) PlanDeprovision(ctx context.Context, identity ServiceIdentity) (*Plan, error) {
	plan, _, err := a.planDeprovision(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return plan, nil
}

func (a *Agent) planDeprovision(ctx context.Context, identity ServiceIdentity) (*Plan, *observedState, error) {
	if err := ValidateProjectID(identity.ProjectID); err != nil {
		return nil, nil, errors.Wrap(err)
	}
	if identity.Email == "" || identity.ResourceName == "" {
		identity = NewServiceIdentity(identity.ProjectID)
	}

	observed, err := a.observe(ctx, identity)
	if err != nil {
		return nil, nil, errors.Wrap(err)
	}

	return computeDeprovisionPlan(identity, observed), observed, nil
}
