package cmd

import (
	"fmt"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/gcpagent"
	"github.com/otterize/logging-reader-provisioner/shared/provisionerconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
)

type deprovisionResult struct {
	ServiceIdentityEmail string `json:"serviceIdentityEmail" yaml:"serviceIdentityEmail"`
	Deprovisioned        bool   `json:"deprovisioned" yaml:"deprovisioned"`
}

func newDeprovisionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deprovision",
		Short: "Remove the role bindings and delete the logging reader service account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID()
			if err != nil {
				return errors.Wrap(err)
			}
			identity := gcpagent.NewServiceIdentity(projectID)

			provisioner, err := connect(cmd.Context())
			if err != nil {
				return errors.Wrap(err)
			}

			if viper.GetBool(provisionerconfig.DryRunKey) {
				var plan *gcpagent.Plan
				err := withRetry(cmd.Context(), "plan-deprovision", func() error {
					var err error
					plan, err = provisioner.PlanDeprovision(cmd.Context(), identity)
					return err
				})
				if err != nil {
					return errors.Wrap(err)
				}
				return renderPlan(cmd.OutOrStdout(), plan)
			}

			err = withRetry(cmd.Context(), "deprovision", func() error {
				return provisioner.Deprovision(cmd.Context(), identity)
			})
			if err != nil {
				return errors.Wrap(err)
			}

			result := deprovisionResult{ServiceIdentityEmail: identity.Email, Deprovisioned: true}
			return render(cmd.OutOrStdout(), outputFormat(), result, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "Deprovisioned %s\n", identity.Email)
				return err
			})
		},
	}

	provisionerconfig.InitDryRunFlag(cmd.Flags())
	return cmd
}
