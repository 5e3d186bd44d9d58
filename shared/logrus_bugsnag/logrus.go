package logrus_bugsnag

import (
	gerrors "errors"
	"github.com/bugsnag/bugsnag-go/v2"
	bugsnagerrors "github.com/bugsnag/bugsnag-go/v2/errors"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/sirupsen/logrus"
)

// Based on github.com/Shopify/logrus-bugsnag, adapted to bugsnag-go v2.
type bugsnagHook struct {
	notify func(err error, rawData ...any) error
}

// ErrBugsnagUnconfigured is returned if NewBugsnagHook is called before bugsnag.Configure.
var ErrBugsnagUnconfigured = gerrors.New("bugsnag must be configured before installing this logrus hook")

type ErrBugsnagSendFailed struct {
	err error
}

func (e ErrBugsnagSendFailed) Error() string {
	return "failed to send error to Bugsnag: " + e.err.Error()
}

// NewBugsnagHook returns a hook forwarding Error and above entries to Bugsnag. The entry's "error" field is
// reported when present, otherwise the message is.
func NewBugsnagHook() (*bugsnagHook, error) {
	if bugsnag.Config.APIKey == "" {
		return nil, ErrBugsnagUnconfigured
	}
	return &bugsnagHook{notify: bugsnag.Notify}, nil
}

// logrus frames between the caller and Fire
const skipStackFrames = 3
const errorLogKey = "error"

func (hook *bugsnagHook) Fire(entry *logrus.Entry) error {
	errFromLog := bugsnagerrors.New(entry.Message, 1).Err
	if err, ok := entry.Data[errorLogKey].(error); ok {
		errFromLog = err
	}

	metadata := bugsnag.MetaData{}
	for key, val := range entry.Data {
		if key != errorLogKey {
			metadata.Add("log", key, val)
		}
	}
	if kind := errors.KindOf(errFromLog); kind != nil {
		metadata.Add("log", "errorKind", kind.Error())
	}

	errWithStack := errors.WrapWithSkip(errFromLog, skipStackFrames)
	if err := hook.notify(errWithStack, metadata); err != nil {
		return ErrBugsnagSendFailed{err}
	}
	return nil
}

func (hook *bugsnagHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.ErrorLevel,
		logrus.FatalLevel,
		logrus.PanicLevel,
	}
}
