package cmd

import (
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/gcpagent"
	"github.com/otterize/logging-reader-provisioner/shared/provisionerconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
)

func newProvisionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create or update the logging reader service account and its role bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID()
			if err != nil {
				return errors.Wrap(err)
			}
			impersonator := viper.GetString(provisionerconfig.ImpersonatorKey)
			if err := gcpagent.ValidateMember(impersonator); err != nil {
				return errors.Wrap(err)
			}

			provisioner, err := connect(cmd.Context())
			if err != nil {
				return errors.Wrap(err)
			}

			if viper.GetBool(provisionerconfig.DryRunKey) {
				return runPlan(cmd, provisioner, projectID, impersonator)
			}

			var identity *gcpagent.ServiceIdentity
			err = withRetry(cmd.Context(), "provision", func() error {
				var err error
				identity, err = provisioner.Provision(cmd.Context(), projectID, impersonator)
				return err
			})
			if err != nil {
				return errors.Wrap(err)
			}

			logrus.WithField("project", projectID).WithField("serviceAccount", identity.Email).Debug("Provisioning finished")
			outputs := gcpagent.Describe(*identity)
			return render(cmd.OutOrStdout(), outputFormat(), outputs, func(out io.Writer) error {
				return writeOutputsText(out, outputs)
			})
		},
	}

	provisionerconfig.InitImpersonatorFlag(cmd.Flags())
	provisionerconfig.InitDryRunFlag(cmd.Flags())
	return cmd
}
