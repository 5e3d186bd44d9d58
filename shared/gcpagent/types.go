package gcpagent

import (
	"fmt"
	"github.com/vishalkuo/bimap"
)

const (
	// ServiceAccountID is the idempotency key of the provisioned identity; it never changes between runs.
	ServiceAccountID          = "logging-reader-sa"
	ServiceAccountDisplayName = "Logging reader service account"
	// managedByMarker is written to the service account description and checked before any write or delete.
	managedByMarker = "managed-by: logging-reader-provisioner"

	serviceAccountEmailDomain = "iam.gserviceaccount.com"
	serviceAccountMemberType  = "serviceAccount"

	// IAM policy version 3 is required to read conditional bindings without the API rejecting the request.
	iamPolicyVersion = 3
)

type Role string

const (
	RoleLogViewer    Role = "log-viewer"
	RoleTokenCreator Role = "token-creator"
)

var (
	roleToGCPRole = map[Role]string{
		RoleLogViewer:    "roles/logging.viewer",
		RoleTokenCreator: "roles/iam.serviceAccountTokenCreator",
	}
	RoleToGCPRoleBMap = bimap.NewBiMapFromMap(roleToGCPRole)
)

// GCPRole returns the fully qualified GCP role name, e.g. roles/logging.viewer.
func (r Role) GCPRole() string {
	gcpRole, ok := RoleToGCPRoleBMap.Get(r)
	if !ok {
		panic(fmt.Sprintf("unknown role %q", string(r)))
	}
	return gcpRole
}

// ServiceIdentity is the provisioned logging reader service account.
type ServiceIdentity struct {
	ProjectID    string `json:"projectId" yaml:"projectId"`
	AccountID    string `json:"accountId" yaml:"accountId"`
	DisplayName  string `json:"displayName" yaml:"displayName"`
	Email        string `json:"serviceIdentityEmail" yaml:"serviceIdentityEmail"`
	ResourceName string `json:"serviceIdentityName" yaml:"serviceIdentityName"`
	UniqueID     string `json:"uniqueId,omitempty" yaml:"uniqueId,omitempty"`
}

// IdentityOutputs are the values other systems consume after provisioning.
type IdentityOutputs struct {
	Email        string `json:"serviceIdentityEmail" yaml:"serviceIdentityEmail"`
	ResourceName string `json:"serviceIdentityName" yaml:"serviceIdentityName"`
}

type RoleBinding struct {
	Role   Role   `json:"role" yaml:"role"`
	Member string `json:"member" yaml:"member"`
}

func (b RoleBinding) String() string {
	return fmt.Sprintf("%s -> %s", b.Role.GCPRole(), b.Member)
}

type ChangeAction string

const (
	ChangeCreateServiceAccount ChangeAction = "create-service-account"
	ChangeAddBinding           ChangeAction = "add-binding"
	ChangeRemoveBinding        ChangeAction = "remove-binding"
	ChangeDeleteServiceAccount ChangeAction = "delete-service-account"
)

type Change struct {
	Action  ChangeAction `json:"action" yaml:"action"`
	Binding *RoleBinding `json:"binding,omitempty" yaml:"binding,omitempty"`
}

func (c Change) String() string {
	if c.Binding == nil {
		return string(c.Action)
	}
	return fmt.Sprintf("%s %s", c.Action, c.Binding.String())
}

// Plan is the ordered delta between the desired and observed state of the identity.
type Plan struct {
	Identity ServiceIdentity `json:"identity" yaml:"identity"`
	Changes  []Change        `json:"changes" yaml:"changes"`
	// Bindings is the set of bindings that exist once the plan is applied.
	Bindings []RoleBinding `json:"bindings" yaml:"bindings"`
}

func (p *Plan) IsEmpty() bool {
	return len(p.Changes) == 0
}

func (p *Plan) hasChange(action ChangeAction) bool {
	for _, change := range p.Changes {
		if change.Action == action {
			return true
		}
	}
	return false
}
