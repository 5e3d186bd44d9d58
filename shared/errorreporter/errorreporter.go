package errorreporter

import (
	"github.com/bugsnag/bugsnag-go/v2"
	"github.com/otterize/logging-reader-provisioner/shared/logrus_bugsnag"
	"github.com/otterize/logging-reader-provisioner/shared/provisionerconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Init configures Bugsnag and installs the logrus hook. Reporting stays off when no API key is configured.
func Init(componentName string, version string, runID string) {
	apiKey := viper.GetString(provisionerconfig.TelemetryErrorsAPIKeyKey)
	if apiKey == "" {
		logrus.Debug("error reporting disabled")
		return
	}

	bugsnag.OnBeforeNotify(func(event *bugsnag.Event, _ *bugsnag.Configuration) error {
		event.MetaData.Add("component", "componentType", componentName)
		event.MetaData.Add("component", "runId", runID)
		event.MetaData.Add("component", "project", viper.GetString(provisionerconfig.ProjectIDKey))
		return nil
	})

	conf := bugsnag.Configuration{
		ReleaseStage:    viper.GetString(provisionerconfig.TelemetryErrorsStageKey),
		APIKey:          apiKey,
		AppVersion:      version,
		AppType:         componentName,
		ProjectPackages: []string{"main*", "github.com/otterize/**"},
		Logger:          logrus.StandardLogger(),
	}
	if address := viper.GetString(provisionerconfig.TelemetryErrorsEndpointKey); address != "" {
		conf.Endpoints = bugsnag.Endpoints{
			Sessions: address + "/sessions",
			Notify:   address + "/notify",
		}
	}
	bugsnag.Configure(conf)

	hook, err := logrus_bugsnag.NewBugsnagHook()
	if err != nil {
		logrus.WithError(err).Panic("failed to initialize bugsnag")
	}
	logrus.AddHook(hook)
}
