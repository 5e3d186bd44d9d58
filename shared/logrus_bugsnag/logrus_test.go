package logrus_bugsnag

import (
	"github.com/bugsnag/bugsnag-go/v2"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"testing"
)

type BugsnagHookSuite struct {
	suite.Suite
	notified []error
	metadata []bugsnag.MetaData
	hook     *bugsnagHook
}

func (s *BugsnagHookSuite) SetupTest() {
	s.notified = nil
	s.metadata = nil
	s.hook = &bugsnagHook{notify: func(err error, rawData ...any) error {
		s.notified = append(s.notified, err)
		for _, data := range rawData {
			if metadata, ok := data.(bugsnag.MetaData); ok {
				s.metadata = append(s.metadata, metadata)
			}
		}
		return nil
	}}
}

func (s *BugsnagHookSuite) TestFireWithErrorField() {
	cause := errors.KindErrorf(errors.ErrConflict, "service account is not managed by this tool")
	entry := logrus.WithField("project", "my-proj").WithError(cause)
	entry.Message = "provisioning failed"

	s.Require().NoError(s.hook.Fire(entry))
	s.Require().Len(s.notified, 1)
	s.Require().True(errors.IsConflict(s.notified[0]))
	s.Require().Equal("my-proj", s.metadata[0]["log"]["project"])
	s.Require().Equal("conflict", s.metadata[0]["log"]["errorKind"])
}

func (s *BugsnagHookSuite) TestFireWithMessageOnly() {
	entry := logrus.WithField("project", "my-proj")
	entry.Message = "something went wrong"

	s.Require().NoError(s.hook.Fire(entry))
	s.Require().Len(s.notified, 1)
	s.Require().Contains(s.notified[0].Error(), "something went wrong")
}

func (s *BugsnagHookSuite) TestFireSendFailure() {
	s.hook.notify = func(err error, rawData ...any) error {
		return errors.New("endpoint unreachable")
	}
	entry := logrus.WithField("project", "my-proj")
	entry.Message = "something went wrong"

	err := s.hook.Fire(entry)
	s.Require().ErrorAs(err, &ErrBugsnagSendFailed{})
}

func (s *BugsnagHookSuite) TestNewHookRequiresConfiguration() {
	_, err := NewBugsnagHook()
	s.Require().ErrorIs(err, ErrBugsnagUnconfigured)
}

func TestBugsnagHookSuite(t *testing.T) {
	suite.Run(t, new(BugsnagHookSuite))
}
