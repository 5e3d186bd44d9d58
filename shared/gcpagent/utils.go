package gcpagent

import (
	"fmt"
)

func generateServiceAccountEmail(projectID string) string {
	return fmt.Sprintf("%s@%s.%s", ServiceAccountID, projectID, serviceAccountEmailDomain)
}

func generateServiceAccountResourceName(projectID string) string {
	return fmt.Sprintf("projects/%s/serviceAccounts/%s", projectID, generateServiceAccountEmail(projectID))
}

func generateServiceAccountMember(email string) string {
	return fmt.Sprintf("%s:%s", serviceAccountMemberType, email)
}

func generateProjectResourceName(projectID string) string {
	return fmt.Sprintf("projects/%s", projectID)
}

// NewServiceIdentity derives the identity for projectID without calling the provider.
func NewServiceIdentity(projectID string) ServiceIdentity {
	return ServiceIdentity{
		ProjectID:    projectID,
		AccountID:    ServiceAccountID,
		DisplayName:  ServiceAccountDisplayName,
		Email:        generateServiceAccountEmail(projectID),
		ResourceName: generateServiceAccountResourceName(projectID),
	}
}

// Describe returns the outputs of identity. It performs no external calls.
func Describe(identity ServiceIdentity) IdentityOutputs {
	return IdentityOutputs{
		Email:        identity.Email,
		ResourceName: identity.ResourceName,
	}
}

func desiredBindings(identity ServiceIdentity, impersonator string) []RoleBinding {
	bindings := []RoleBinding{
		{Role: RoleLogViewer, Member: generateServiceAccountMember(identity.Email)},
	}
	if impersonator != "" {
		bindings = append(bindings, RoleBinding{Role: RoleTokenCreator, Member: impersonator})
	}
	return bindings
}
