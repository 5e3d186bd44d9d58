package gcpagent

import (
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/stretchr/testify/suite"
	"testing"
)

type MembersSuite struct {
	suite.Suite
}

func (s *MembersSuite) TestValidMembers() {
	for _, member := range []string{
		"",
		"user:alice@example.com",
		"group:ops@example.com",
		"serviceAccount:ci@build-proj.iam.gserviceaccount.com",
		"serviceAccount:my-proj.svc.id.goog[logging/reader]",
		"domain:example.com",
		"principal://iam.googleapis.com/projects/123/locations/global/workloadIdentityPools/pool/subject/ci",
		"principalSet://iam.googleapis.com/projects/123/locations/global/workloadIdentityPools/pool/*",
	} {
		s.Require().NoError(ValidateMember(member), member)
	}
}

func (s *MembersSuite) TestInvalidMembers() {
	for _, member := range []string{
		"allUsers",
		"allAuthenticatedUsers",
		"ops@example.com",
		"user:not-an-email",
		"group:",
		"serviceAccount:my-proj.svc.id.goog[logging]",
		"domain:not a domain",
		"robot:ops@example.com",
	} {
		err := ValidateMember(member)
		s.Require().Error(err, member)
		s.Require().True(errors.IsInvalidInput(err), member)
	}
}

func (s *MembersSuite) TestValidateProjectID() {
	s.Require().NoError(ValidateProjectID("my-proj"))

	for _, projectID := range []string{"", "projects/my-proj", "my proj", "example.com:my-proj"} {
		err := ValidateProjectID(projectID)
		s.Require().True(errors.IsInvalidInput(err), projectID)
	}
}

func TestMembersSuite(t *testing.T) {
	suite.Run(t, new(MembersSuite))
}
