package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/gcpagent"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
	"testing"
)

type fakeProvisioner struct {
	provisionErrors []error
	provisionCalls  int
	planCalls       int
	deprovisioned   []gcpagent.ServiceIdentity
	verifyErr       error
	lastProject     string
	lastMember      string
}

func (f *fakeProvisioner) Provision(_ context.Context, projectID string, impersonator string) (*gcpagent.ServiceIdentity, error) {
	f.provisionCalls++
	f.lastProject = projectID
	f.lastMember = impersonator
	if len(f.provisionErrors) > 0 {
		err := f.provisionErrors[0]
		f.provisionErrors = f.provisionErrors[1:]
		return nil, err
	}
	identity := gcpagent.NewServiceIdentity(projectID)
	return &identity, nil
}

func (f *fakeProvisioner) Plan(_ context.Context, projectID string, impersonator string) (*gcpagent.Plan, error) {
	f.planCalls++
	identity := gcpagent.NewServiceIdentity(projectID)
	return &gcpagent.Plan{
		Identity: identity,
		Changes: []gcpagent.Change{
			{Action: gcpagent.ChangeCreateServiceAccount},
			{Action: gcpagent.ChangeAddBinding, Binding: &gcpagent.RoleBinding{Role: gcpagent.RoleTokenCreator, Member: impersonator}},
		},
	}, nil
}

func (f *fakeProvisioner) PlanDeprovision(_ context.Context, identity gcpagent.ServiceIdentity) (*gcpagent.Plan, error) {
	f.planCalls++
	return &gcpagent.Plan{Identity: identity}, nil
}

func (f *fakeProvisioner) Deprovision(_ context.Context, identity gcpagent.ServiceIdentity) error {
	f.deprovisioned = append(f.deprovisioned, identity)
	return nil
}

func (f *fakeProvisioner) Verify(_ context.Context, _ gcpagent.ServiceIdentity) error {
	return f.verifyErr
}

type RootCommandSuite struct {
	suite.Suite
	provisioner         *fakeProvisioner
	connections         int
	metadataProjectID   string
	originalProvisioner func(context.Context, string) (Provisioner, error)
	originalMetadata    func() string
}

func (s *RootCommandSuite) SetupTest() {
	s.provisioner = &fakeProvisioner{}
	s.connections = 0
	s.metadataProjectID = ""
	s.originalProvisioner = newProvisioner
	s.originalMetadata = projectIDFromMetadata

	newProvisioner = func(context.Context, string) (Provisioner, error) {
		s.connections++
		return s.provisioner, nil
	}
	projectIDFromMetadata = func() string {
		return s.metadataProjectID
	}
}

func (s *RootCommandSuite) TearDownTest() {
	newProvisioner = s.originalProvisioner
	projectIDFromMetadata = s.originalMetadata
}

func (s *RootCommandSuite) run(args ...string) (int, string) {
	out := &bytes.Buffer{}
	args = append(args, "--initial-retry-interval", "1ms", "--max-retry-elapsed-time", "1s")
	code := execute(context.Background(), args, out)
	return code, out.String()
}

func (s *RootCommandSuite) TestDescribeJSON() {
	code, out := s.run("describe", "--project-id", "my-proj", "--output", "json")
	s.Require().Equal(ExitCodeOK, code)
	s.Require().Zero(s.connections)

	var outputs map[string]string
	s.Require().NoError(json.Unmarshal([]byte(out), &outputs))
	s.Require().Equal("logging-reader-sa@my-proj.iam.gserviceaccount.com", outputs["serviceIdentityEmail"])
	s.Require().Equal("projects/my-proj/serviceAccounts/logging-reader-sa@my-proj.iam.gserviceaccount.com", outputs["serviceIdentityName"])
}

func (s *RootCommandSuite) TestProvisionText() {
	code, out := s.run("provision", "--project-id", "my-proj", "--impersonator", "group:ops@example.com")
	s.Require().Equal(ExitCodeOK, code)
	s.Require().Equal(1, s.provisioner.provisionCalls)
	s.Require().Equal("group:ops@example.com", s.provisioner.lastMember)
	s.Require().Equal("serviceIdentityEmail: logging-reader-sa@my-proj.iam.gserviceaccount.com\n"+
		"serviceIdentityName: projects/my-proj/serviceAccounts/logging-reader-sa@my-proj.iam.gserviceaccount.com\n", out)
}

func (s *RootCommandSuite) TestProvisionRetriesTransientErrors() {
	s.provisioner.provisionErrors = []error{
		errors.KindErrorf(errors.ErrTransient, "quota exceeded"),
		errors.KindErrorf(errors.ErrTransient, "quota exceeded"),
	}

	code, _ := s.run("provision", "--project-id", "my-proj")
	s.Require().Equal(ExitCodeOK, code)
	s.Require().Equal(3, s.provisioner.provisionCalls)
}

func (s *RootCommandSuite) TestProvisionDoesNotRetryConflict() {
	s.provisioner.provisionErrors = []error{errors.KindErrorf(errors.ErrConflict, "not managed by this tool")}

	code, out := s.run("provision", "--project-id", "my-proj")
	s.Require().Equal(ExitCodeConflict, code)
	s.Require().Equal(1, s.provisioner.provisionCalls)
	s.Require().Empty(out)
}

func (s *RootCommandSuite) TestProvisionDryRunOnlyPlans() {
	code, out := s.run("provision", "--project-id", "my-proj", "--impersonator", "user:x@example.com", "--dry-run")
	s.Require().Equal(ExitCodeOK, code)
	s.Require().Zero(s.provisioner.provisionCalls)
	s.Require().Equal(1, s.provisioner.planCalls)
	s.Require().Contains(out, "+ create-service-account")
	s.Require().Contains(out, "+ add-binding roles/iam.serviceAccountTokenCreator -> user:x@example.com")
}

func (s *RootCommandSuite) TestMissingProjectID() {
	code, _ := s.run("provision")
	s.Require().Equal(ExitCodeInvalidInput, code)
	s.Require().Zero(s.connections)
}

func (s *RootCommandSuite) TestProjectIDFromMetadata() {
	s.metadataProjectID = "gce-proj"

	code, _ := s.run("provision")
	s.Require().Equal(ExitCodeOK, code)
	s.Require().Equal("gce-proj", s.provisioner.lastProject)
}

func (s *RootCommandSuite) TestInvalidImpersonator() {
	code, _ := s.run("provision", "--project-id", "my-proj", "--impersonator", "allUsers")
	s.Require().Equal(ExitCodeInvalidInput, code)
	s.Require().Zero(s.connections)
}

func (s *RootCommandSuite) TestUnboundedRetryBudgetIsRejected() {
	s.provisioner.provisionErrors = []error{errors.KindErrorf(errors.ErrTransient, "quota exceeded")}

	code := execute(context.Background(), []string{"provision", "--project-id", "my-proj", "--max-retry-elapsed-time", "0s"}, &bytes.Buffer{})
	s.Require().Equal(ExitCodeInvalidInput, code)
	s.Require().Zero(s.provisioner.provisionCalls)
}

func (s *RootCommandSuite) TestUnknownOutputFormat() {
	code, _ := s.run("describe", "--project-id", "my-proj", "--output", "xml")
	s.Require().Equal(ExitCodeInvalidInput, code)
}

func (s *RootCommandSuite) TestDeprovisionYAML() {
	code, out := s.run("deprovision", "--project-id", "my-proj", "-o", "yaml")
	s.Require().Equal(ExitCodeOK, code)
	s.Require().Len(s.provisioner.deprovisioned, 1)
	s.Require().Equal("logging-reader-sa@my-proj.iam.gserviceaccount.com", s.provisioner.deprovisioned[0].Email)

	var result deprovisionResult
	s.Require().NoError(yaml.Unmarshal([]byte(out), &result))
	s.Require().True(result.Deprovisioned)
}

func (s *RootCommandSuite) TestDeprovisionDryRun() {
	code, out := s.run("deprovision", "--project-id", "my-proj", "--dry-run")
	s.Require().Equal(ExitCodeOK, code)
	s.Require().Empty(s.provisioner.deprovisioned)
	s.Require().Contains(out, "No changes.")
}

func (s *RootCommandSuite) TestVerifyPermissionDenied() {
	s.provisioner.verifyErr = errors.KindErrorf(errors.ErrPermissionDenied, "iam.serviceAccounts.getAccessToken denied")

	code, _ := s.run("verify", "--project-id", "my-proj")
	s.Require().Equal(ExitCodePermissionDenied, code)
}

func (s *RootCommandSuite) TestExitCodes() {
	s.Require().Equal(ExitCodeOK, ExitCode(nil))
	s.Require().Equal(ExitCodeNotFound, ExitCode(errors.Errorf("lookup: %w", errors.KindErrorf(errors.ErrNotFound, "project my-proj"))))
	s.Require().Equal(ExitCodeTransient, ExitCode(errors.KindErrorf(errors.ErrTransient, "timeout")))
	s.Require().Equal(ExitCodeUnknownError, ExitCode(errors.New("boom")))
}

func TestRootCommandSuite(t *testing.T) {
	suite.Run(t, new(RootCommandSuite))
}
