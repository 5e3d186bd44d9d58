package gcpagent

import (
	"cloud.google.com/go/compute/metadata"
	"context"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/initonce"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type Agent struct {
	iamClient      IAMClient
	projectsClient ProjectsClient

	// Only Verify needs these, so they are created on first use.
	verifyClientsOnce       initonce.InitOnce
	clientOptions           []option.ClientOption
	credentialsClient       CredentialsClient
	logEntriesClientFactory LogEntriesClientFactory
}

// NewGCPAgent creates an Agent backed by the IAM and Resource Manager APIs, authenticated with credentials
// (JSON content, key file path, or empty for Application Default Credentials).
func NewGCPAgent(ctx context.Context, credentials string) (*Agent, error) {
	logrus.Debug("Initializing GCP provisioning agent")

	opts := ClientOptions(credentials)

	iamClient, err := newIAMClient(ctx, opts...)
	if err != nil {
		return nil, errors.Errorf("failed to create IAM client: %w", err)
	}

	projectsClient, err := newProjectsClient(ctx, opts...)
	if err != nil {
		return nil, errors.Errorf("failed to create resource manager client: %w", err)
	}

	return &Agent{
		iamClient:      iamClient,
		projectsClient: projectsClient,
		clientOptions:  opts,
	}, nil
}

// NewAgentWithClients creates an Agent on top of caller-provided clients.
func NewAgentWithClients(iamClient IAMClient, projectsClient ProjectsClient, credentialsClient CredentialsClient, logEntriesClientFactory LogEntriesClientFactory) *Agent {
	agent := &Agent{
		iamClient:               iamClient,
		projectsClient:          projectsClient,
		credentialsClient:       credentialsClient,
		logEntriesClientFactory: logEntriesClientFactory,
	}
	return agent
}

func (a *Agent) initVerifyClients(ctx context.Context) error {
	return a.verifyClientsOnce.Do(func() error {
		if a.credentialsClient == nil {
			client, err := newCredentialsClient(ctx, a.clientOptions...)
			if err != nil {
				return errors.Errorf("failed to create IAM credentials client: %w", err)
			}
			a.credentialsClient = client
		}
		if a.logEntriesClientFactory == nil {
			a.logEntriesClientFactory = newLogEntriesClient
		}
		return nil
	})
}

// ProjectIDFromMetadata returns the project of the GCE instance or GKE node the process runs on.
// It returns an empty string when not running on GCP.
func ProjectIDFromMetadata() string {
	if !metadata.OnGCE() {
		return ""
	}

	projectID, err := metadata.ProjectID()
	if err != nil {
		logrus.WithError(err).Debug("failed to read project ID from the metadata server")
		return ""
	}
	return projectID
}
