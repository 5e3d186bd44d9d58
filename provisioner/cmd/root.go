package cmd

import (
	"context"
	"github.com/bugsnag/bugsnag-go/v2"
	"github.com/google/uuid"
	"github.com/otterize/logging-reader-provisioner/prometheus"
	"github.com/otterize/logging-reader-provisioner/shared/errorreporter"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/gcpagent"
	"github.com/otterize/logging-reader-provisioner/shared/provisionerconfig"
	"github.com/otterize/logging-reader-provisioner/shared/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"os"
)

const componentName = "logging-reader-provisioner"

// Provisioner is implemented by *gcpagent.Agent.
type Provisioner interface {
	Provision(ctx context.Context, projectID string, impersonator string) (*gcpagent.ServiceIdentity, error)
	Plan(ctx context.Context, projectID string, impersonator string) (*gcpagent.Plan, error)
	PlanDeprovision(ctx context.Context, identity gcpagent.ServiceIdentity) (*gcpagent.Plan, error)
	Deprovision(ctx context.Context, identity gcpagent.ServiceIdentity) error
	Verify(ctx context.Context, identity gcpagent.ServiceIdentity) error
}

var (
	newProvisioner = func(ctx context.Context, credentials string) (Provisioner, error) {
		agent, err := gcpagent.NewGCPAgent(ctx, credentials)
		if err != nil {
			return nil, errors.Wrap(err)
		}
		return agent, nil
	}
	projectIDFromMetadata = gcpagent.ProjectIDFromMetadata
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           componentName,
		Short:         "Provisions a least-privilege GCP service account for reading logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := provisionerconfig.BindFlags(cmd.Flags()); err != nil {
				return errors.Wrap(err)
			}
			if err := provisionerconfig.ReadConfigFile(); err != nil {
				return errors.Wrap(err)
			}
			if viper.GetBool(provisionerconfig.DebugLogKey) {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if err := validateRetryBudget(
				viper.GetDuration(provisionerconfig.MaxRetryElapsedTimeKey),
				viper.GetDuration(provisionerconfig.InitialRetryIntervalKey),
			); err != nil {
				return errors.Wrap(err)
			}
			return validateOutputFormat(viper.GetString(provisionerconfig.OutputFormatKey))
		},
	}

	provisionerconfig.InitGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newProvisionCommand(),
		newPlanCommand(),
		newDescribeCommand(),
		newDeprovisionCommand(),
		newVerifyCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return execute(context.Background(), os.Args[1:], os.Stdout)
}

func execute(ctx context.Context, args []string, out io.Writer) int {
	runID := uuid.New().String()
	defer bugsnag.AutoNotify(ctx)

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.PersistentPreRunE = chainPreRun(rootCmd.PersistentPreRunE, func(cmd *cobra.Command, _ []string) error {
		errorreporter.Init(componentName, version.Version(), runID)
		logrus.WithField("runId", runID).WithField("command", cmd.Name()).Debug("Starting")
		return nil
	})

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		prometheus.IncrementProvisioningErrors(errorKindName(err))
		logrus.WithError(err).WithField("runId", runID).Error("Command failed")
	}

	pushMetrics()
	return ExitCode(err)
}

func chainPreRun(first func(*cobra.Command, []string) error, second func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := first(cmd, args); err != nil {
			return errors.Wrap(err)
		}
		return second(cmd, args)
	}
}

func pushMetrics() {
	url := viper.GetString(provisionerconfig.MetricsPushgatewayURLKey)
	if url == "" {
		return
	}
	if err := prometheus.Push(url, componentName); err != nil {
		logrus.WithError(err).Warn("Failed to push metrics")
	}
}

// resolveProjectID falls back to the project of the GCE instance or GKE node when none was configured.
func resolveProjectID() (string, error) {
	projectID := viper.GetString(provisionerconfig.ProjectIDKey)
	if projectID == "" {
		projectID = projectIDFromMetadata()
		if projectID != "" {
			logrus.WithField("project", projectID).Info("Using project ID from the metadata server")
		}
	}
	if err := gcpagent.ValidateProjectID(projectID); err != nil {
		return "", errors.Wrap(err)
	}
	return projectID, nil
}

func outputFormat() string {
	return viper.GetString(provisionerconfig.OutputFormatKey)
}

func connect(ctx context.Context) (Provisioner, error) {
	provisioner, err := newProvisioner(ctx, viper.GetString(provisionerconfig.CredentialsKey))
	if err != nil {
		return nil, errors.Wrap(err)
	}
	return provisioner, nil
}
