package cmd

import (
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/gcpagent"
	"github.com/otterize/logging-reader-provisioner/shared/provisionerconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
)

func newPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the changes provision would apply",
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
			return runPlan(cmd, provisioner, projectID, impersonator)
		},
	}

	provisionerconfig.InitImpersonatorFlag(cmd.Flags())
	return cmd
}

func runPlan(cmd *cobra.Command, provisioner Provisioner, projectID string, impersonator string) error {
	var plan *gcpagent.Plan
	err := withRetry(cmd.Context(), "plan", func() error {
		var err error
		plan, err = provisioner.Plan(cmd.Context(), projectID, impersonator)
		return err
	})
	if err != nil {
		return errors.Wrap(err)
	}

	return renderPlan(cmd.OutOrStdout(), plan)
}

func renderPlan(out io.Writer, plan *gcpagent.Plan) error {
	return render(out, outputFormat(), plan, func(out io.Writer) error {
		return writePlanText(out, plan)
	})
}
