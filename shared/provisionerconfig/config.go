package provisionerconfig

import (
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"strings"
	"time"
)

const (
	ProjectIDKey                   = "project-id"   // The GCP project the logging reader service account is provisioned in
	ImpersonatorKey                = "impersonator" // IAM member allowed to mint tokens as the service account, e.g. group:ops@example.com
	CredentialsKey                 = "credentials"  // Service account JSON content or path to a JSON key file. Empty means Application Default Credentials
	OutputFormatKey                = "output"
	OutputFormatDefault            = "text"
	DryRunKey                      = "dry-run"
	DryRunDefault                  = false
	MaxRetryElapsedTimeKey         = "max-retry-elapsed-time" // Upper bound for retrying transient provider errors
	MaxRetryElapsedTimeDefault     = 2 * time.Minute
	InitialRetryIntervalKey        = "initial-retry-interval"
	InitialRetryIntervalDefault    = 1 * time.Second
	MetricsPushgatewayURLKey       = "metrics-pushgateway-url" // When set, run metrics are pushed here before exiting
	DebugLogKey                    = "debug"
	DebugLogDefault                = false
	TelemetryErrorsAPIKeyKey       = "telemetry-errors-api-key"
	TelemetryErrorsAPIKeyDefault   = ""
	TelemetryErrorsStageKey        = "telemetry-errors-stage"
	TelemetryErrorsStageDefault    = "production"
	TelemetryErrorsEndpointKey     = "telemetry-errors-address"
	TelemetryErrorsEndpointDefault = ""
	EnvPrefix                      = "LOGREADER"
	ConfigPath                     = "/etc/logreader"
)

func init() {
	viper.SetDefault(OutputFormatKey, OutputFormatDefault)
	viper.SetDefault(DryRunKey, DryRunDefault)
	viper.SetDefault(MaxRetryElapsedTimeKey, MaxRetryElapsedTimeDefault)
	viper.SetDefault(InitialRetryIntervalKey, InitialRetryIntervalDefault)
	viper.SetDefault(DebugLogKey, DebugLogDefault)
	viper.SetDefault(TelemetryErrorsAPIKeyKey, TelemetryErrorsAPIKeyDefault)
	viper.SetDefault(TelemetryErrorsStageKey, TelemetryErrorsStageDefault)
	viper.SetDefault(TelemetryErrorsEndpointKey, TelemetryErrorsEndpointDefault)
	viper.SetDefault(ProjectIDKey, "")
	viper.SetDefault(ImpersonatorKey, "")
	viper.SetDefault(CredentialsKey, "")
	viper.SetDefault(MetricsPushgatewayURLKey, "")
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// ReadConfigFile loads config.yaml from ConfigPath when it exists. A missing file is not an error.
func ReadConfigFile() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(ConfigPath)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return errors.Errorf("failed to read config file: %w", err)
		}
		logrus.Debugf("no config file found in %s", ConfigPath)
	}
	return nil
}

// InitGlobalFlags registers flags shared by every subcommand.
func InitGlobalFlags(flags *pflag.FlagSet) {
	flags.String(ProjectIDKey, "", "The GCP project to provision the logging reader service account in")
	flags.String(CredentialsKey, "", "Service account JSON content or key file path, defaults to Application Default Credentials")
	flags.StringP(OutputFormatKey, "o", OutputFormatDefault, "Output format: text, json or yaml")
	flags.Duration(MaxRetryElapsedTimeKey, MaxRetryElapsedTimeDefault, "Maximum total time spent retrying transient provider errors")
	flags.Duration(InitialRetryIntervalKey, InitialRetryIntervalDefault, "First delay between retries of transient provider errors")
	flags.String(MetricsPushgatewayURLKey, "", "Prometheus Pushgateway URL to push run metrics to")
	flags.Bool(DebugLogKey, DebugLogDefault, "Enable debug logging")
	flags.String(TelemetryErrorsAPIKeyKey, TelemetryErrorsAPIKeyDefault, "Bugsnag API key for error reporting, empty disables reporting")
	flags.String(TelemetryErrorsStageKey, TelemetryErrorsStageDefault, "Release stage reported with errors")
}

func InitImpersonatorFlag(flags *pflag.FlagSet) {
	flags.String(ImpersonatorKey, "", "IAM member allowed to create tokens for the service account, e.g. group:ops@example.com")
}

func InitDryRunFlag(flags *pflag.FlagSet) {
	flags.Bool(DryRunKey, DryRunDefault, "Print the changes that would be applied without applying them")
}

// BindFlags binds the flags of the command being executed. Several subcommands declare the same
// flag names, so binding happens once the command is known rather than at declaration time.
func BindFlags(flags *pflag.FlagSet) error {
	if err := viper.BindPFlags(flags); err != nil {
		return errors.Wrap(err)
	}
	return nil
}
