package gcpagent

import (
	"context"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/iam/v1"
	"google.golang.org/api/iamcredentials/v1"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/option"
	"strings"
)

// IAMClient is the subset of the IAM API used to manage the service account and its own IAM policy.
type IAMClient interface {
	GetServiceAccount(ctx context.Context, name string) (*iam.ServiceAccount, error)
	CreateServiceAccount(ctx context.Context, projectName string, request *iam.CreateServiceAccountRequest) (*iam.ServiceAccount, error)
	DeleteServiceAccount(ctx context.Context, name string) error
	GetServiceAccountIAMPolicy(ctx context.Context, name string) (*iam.Policy, error)
	SetServiceAccountIAMPolicy(ctx context.Context, name string, policy *iam.Policy) (*iam.Policy, error)
}

// ProjectsClient is the subset of the Resource Manager API used to read the project and manage its IAM policy.
type ProjectsClient interface {
	GetProject(ctx context.Context, projectID string) (*cloudresourcemanager.Project, error)
	GetProjectIAMPolicy(ctx context.Context, projectID string) (*cloudresourcemanager.Policy, error)
	SetProjectIAMPolicy(ctx context.Context, projectID string, policy *cloudresourcemanager.Policy) (*cloudresourcemanager.Policy, error)
}

// CredentialsClient mints short-lived credentials for a service account.
type CredentialsClient interface {
	GenerateAccessToken(ctx context.Context, name string, request *iamcredentials.GenerateAccessTokenRequest) (*iamcredentials.GenerateAccessTokenResponse, error)
}

type LogEntriesClient interface {
	ListLogEntries(ctx context.Context, request *logging.ListLogEntriesRequest) (*logging.ListLogEntriesResponse, error)
}

// LogEntriesClientFactory builds a LogEntriesClient authenticated with the given access token.
type LogEntriesClientFactory func(ctx context.Context, accessToken string) (LogEntriesClient, error)

// ClientOptions returns the client options for credentials, which is either JSON content, a path to a
// JSON key file, or empty for Application Default Credentials.
func ClientOptions(credentials string) []option.ClientOption {
	var clientOpts []option.ClientOption

	if credentials != "" {
		if strings.HasPrefix(strings.TrimSpace(credentials), "{") {
			clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(credentials)))
		} else {
			clientOpts = append(clientOpts, option.WithCredentialsFile(credentials))
		}
	}

	return clientOpts
}

type iamClient struct {
	service *iam.Service
}

func newIAMClient(ctx context.Context, opts ...option.ClientOption) (*iamClient, error) {
	service, err := iam.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return &iamClient{service: service}, nil
}

func (c *iamClient) GetServiceAccount(ctx context.Context, name string) (*iam.ServiceAccount, error) {
	return c.service.Projects.ServiceAccounts.Get(name).Context(ctx).Do()
}

func (c *iamClient) CreateServiceAccount(ctx context.Context, projectName string, request *iam.CreateServiceAccountRequest) (*iam.ServiceAccount, error) {
	return c.service.Projects.ServiceAccounts.Create(projectName, request).Context(ctx).Do()
}

func (c *iamClient) DeleteServiceAccount(ctx context.Context, name string) error {
	_, err := c.service.Projects.ServiceAccounts.Delete(name).Context(ctx).Do()
	return err
}

func (c *iamClient) GetServiceAccountIAMPolicy(ctx context.Context, name string) (*iam.Policy, error) {
	return c.service.Projects.ServiceAccounts.GetIamPolicy(name).OptionsRequestedPolicyVersion(iamPolicyVersion).Context(ctx).Do()
}

func (c *iamClient) SetServiceAccountIAMPolicy(ctx context.Context, name string, policy *iam.Policy) (*iam.Policy, error) {
	return c.service.Projects.ServiceAccounts.SetIamPolicy(name, &iam.SetIamPolicyRequest{Policy: policy}).Context(ctx).Do()
}

type projectsClient struct {
	service *cloudresourcemanager.Service
}

func newProjectsClient(ctx context.Context, opts ...option.ClientOption) (*projectsClient, error) {
	service, err := cloudresourcemanager.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return &projectsClient{service: service}, nil
}

func (c *projectsClient) GetProject(ctx context.Context, projectID string) (*cloudresourcemanager.Project, error) {
	return c.service.Projects.Get(projectID).Context(ctx).Do()
}

func (c *projectsClient) GetProjectIAMPolicy(ctx context.Context, projectID string) (*cloudresourcemanager.Policy, error) {
	request := &cloudresourcemanager.GetIamPolicyRequest{
		Options: &cloudresourcemanager.GetPolicyOptions{RequestedPolicyVersion: iamPolicyVersion},
	}
	return c.service.Projects.GetIamPolicy(projectID, request).Context(ctx).Do()
}

func (c *projectsClient) SetProjectIAMPolicy(ctx context.Context, projectID string, policy *cloudresourcemanager.Policy) (*cloudresourcemanager.Policy, error) {
	return c.service.Projects.SetIamPolicy(projectID, &cloudresourcemanager.SetIamPolicyRequest{Policy: policy}).Context(ctx).Do()
}

type credentialsClient struct {
	service *iamcredentials.Service
}

func newCredentialsClient(ctx context.Context, opts ...option.ClientOption) (*credentialsClient, error) {
	service, err := iamcredentials.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return &credentialsClient{service: service}, nil
}

func (c *credentialsClient) GenerateAccessToken(ctx context.Context, name string, request *iamcredentials.GenerateAccessTokenRequest) (*iamcredentials.GenerateAccessTokenResponse, error) {
	return c.service.Projects.ServiceAccounts.GenerateAccessToken(name, request).Context(ctx).Do()
}

type logEntriesClient struct {
	service *logging.Service
}

func (c *logEntriesClient) ListLogEntries(ctx context.Context, request *logging.ListLogEntriesRequest) (*logging.ListLogEntriesResponse, error) {
	return c.service.Entries.List(request).Context(ctx).Do()
}

// newLogEntriesClient authenticates as the impersonated service account, not as the caller.
func newLogEntriesClient(ctx context.Context, accessToken string) (LogEntriesClient, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	service, err := logging.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return &logEntriesClient{service: service}, nil
}
