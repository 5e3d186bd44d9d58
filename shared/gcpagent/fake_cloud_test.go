package gcpagent

import (
	"context"
	"fmt"
	gcpagentmocks "github.com/otterize/logging-reader-provisioner/shared/gcpagent/mocks"
	"github.com/samber/lo"
	"go.uber.org/mock/gomock"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iam/v1"
	"net/http"
	"strings"
)

// fakeCloud keeps IAM state in memory behind the client mocks, so scenarios spanning several calls can be
// checked against the resulting state instead of against individual requests.
type fakeCloud struct {
	projectID              string
	serviceAccounts        map[string]*iam.ServiceAccount
	serviceAccountPolicies map[string]*iam.Policy
	projectPolicy          *cloudresourcemanager.Policy
	etagCounter            int
	writes                 int
}

func newFakeCloud(projectID string) *fakeCloud {
	cloud := &fakeCloud{
		projectID:              projectID,
		serviceAccounts:        make(map[string]*iam.ServiceAccount),
		serviceAccountPolicies: make(map[string]*iam.Policy),
	}
	cloud.projectPolicy = &cloudresourcemanager.Policy{
		Version: 1,
		Etag:    cloud.nextEtag(),
		Bindings: []*cloudresourcemanager.Binding{
			{Role: "roles/owner", Members: []string{"user:admin@example.com"}},
		},
	}
	return cloud
}

func (f *fakeCloud) nextEtag() string {
	f.etagCounter++
	return fmt.Sprintf("etag-%d", f.etagCounter)
}

func apiError(code int, message string) error {
	return &googleapi.Error{Code: code, Message: message}
}

func (f *fakeCloud) wire(iamClient *gcpagentmocks.MockIAMClient, projectsClient *gcpagentmocks.MockProjectsClient) {
	projectsClient.EXPECT().GetProject(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, projectID string) (*cloudresourcemanager.Project, error) {
			if projectID != f.projectID {
				return nil, apiError(http.StatusForbidden, "The caller does not have permission")
			}
			return &cloudresourcemanager.Project{ProjectId: projectID, LifecycleState: "ACTIVE"}, nil
		}).AnyTimes()

	projectsClient.EXPECT().GetProjectIAMPolicy(gomock.Any(), f.projectID).DoAndReturn(
		func(_ context.Context, _ string) (*cloudresourcemanager.Policy, error) {
			return copyProjectPolicy(f.projectPolicy), nil
		}).AnyTimes()

	projectsClient.EXPECT().SetProjectIAMPolicy(gomock.Any(), f.projectID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, policy *cloudresourcemanager.Policy) (*cloudresourcemanager.Policy, error) {
			if policy.Etag != f.projectPolicy.Etag {
				return nil, apiError(http.StatusConflict, "There were concurrent policy changes")
			}
			f.writes++
			f.projectPolicy = copyProjectPolicy(policy)
			f.projectPolicy.Etag = f.nextEtag()
			return copyProjectPolicy(f.projectPolicy), nil
		}).AnyTimes()

	iamClient.EXPECT().GetServiceAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (*iam.ServiceAccount, error) {
			serviceAccount, ok := f.serviceAccounts[name]
			if !ok {
				return nil, apiError(http.StatusNotFound, "Unknown service account")
			}
			copied := *serviceAccount
			return &copied, nil
		}).AnyTimes()

	iamClient.EXPECT().CreateServiceAccount(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, projectName string, request *iam.CreateServiceAccountRequest) (*iam.ServiceAccount, error) {
			projectID := strings.TrimPrefix(projectName, "projects/")
			email := fmt.Sprintf("%s@%s.iam.gserviceaccount.com", request.AccountId, projectID)
			name := fmt.Sprintf("%s/serviceAccounts/%s", projectName, email)
			if _, ok := f.serviceAccounts[name]; ok {
				return nil, apiError(http.StatusConflict, "Service account already exists")
			}
			f.writes++
			serviceAccount := &iam.ServiceAccount{
				Name:        name,
				Email:       email,
				ProjectId:   projectID,
				UniqueId:    "104230991542374610392",
				DisplayName: request.ServiceAccount.DisplayName,
				Description: request.ServiceAccount.Description,
			}
			f.serviceAccounts[name] = serviceAccount
			f.serviceAccountPolicies[name] = &iam.Policy{Etag: f.nextEtag()}
			copied := *serviceAccount
			return &copied, nil
		}).AnyTimes()

	iamClient.EXPECT().DeleteServiceAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) error {
			if _, ok := f.serviceAccounts[name]; !ok {
				return apiError(http.StatusNotFound, "Unknown service account")
			}
			f.writes++
			delete(f.serviceAccounts, name)
			delete(f.serviceAccountPolicies, name)
			return nil
		}).AnyTimes()

	iamClient.EXPECT().GetServiceAccountIAMPolicy(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (*iam.Policy, error) {
			policy, ok := f.serviceAccountPolicies[name]
			if !ok {
				return nil, apiError(http.StatusNotFound, "Unknown service account")
			}
			return copyServiceAccountPolicy(policy), nil
		}).AnyTimes()

	iamClient.EXPECT().SetServiceAccountIAMPolicy(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string, policy *iam.Policy) (*iam.Policy, error) {
			current, ok := f.serviceAccountPolicies[name]
			if !ok {
				return nil, apiError(http.StatusNotFound, "Unknown service account")
			}
			if policy.Etag != current.Etag {
				return nil, apiError(http.StatusConflict, "There were concurrent policy changes")
			}
			f.writes++
			stored := copyServiceAccountPolicy(policy)
			stored.Etag = f.nextEtag()
			f.serviceAccountPolicies[name] = stored
			return copyServiceAccountPolicy(stored), nil
		}).AnyTimes()
}

// managedBindings lists the bindings that reference the logging reader account or its policy.
func (f *fakeCloud) managedBindings() []RoleBinding {
	identity := NewServiceIdentity(f.projectID)
	member := generateServiceAccountMember(identity.Email)
	bindings := make([]RoleBinding, 0)

	for _, binding := range f.projectPolicy.Bindings {
		if binding.Role == RoleLogViewer.GCPRole() && lo.Contains(binding.Members, member) {
			bindings = append(bindings, RoleBinding{Role: RoleLogViewer, Member: member})
		}
	}

	if policy, ok := f.serviceAccountPolicies[identity.ResourceName]; ok {
		for _, binding := range policy.Bindings {
			if binding.Role != RoleTokenCreator.GCPRole() || binding.Condition != nil {
				continue
			}
			for _, tokenCreator := range binding.Members {
				bindings = append(bindings, RoleBinding{Role: RoleTokenCreator, Member: tokenCreator})
			}
		}
	}

	return bindings
}

func copyProjectPolicy(policy *cloudresourcemanager.Policy) *cloudresourcemanager.Policy {
	copied := &cloudresourcemanager.Policy{Version: policy.Version, Etag: policy.Etag}
	for _, binding := range policy.Bindings {
		copied.Bindings = append(copied.Bindings, &cloudresourcemanager.Binding{
			Role:      binding.Role,
			Members:   append([]string{}, binding.Members...),
			Condition: binding.Condition,
		})
	}
	return copied
}

func copyServiceAccountPolicy(policy *iam.Policy) *iam.Policy {
	copied := &iam.Policy{Version: policy.Version, Etag: policy.Etag}
	for _, binding := range policy.Bindings {
		copied.Bindings = append(copied.Bindings, &iam.Binding{
			Role:      binding.Role,
			Members:   append([]string{}, binding.Members...),
			Condition: binding.Condition,
		})
	}
	return copied
}
