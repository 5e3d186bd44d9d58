package cmd

import (
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/gcpagent"
	"github.com/spf13/cobra"
	"io"
)

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the service account outputs for a project without calling GCP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := resolveProjectID()
			if err != nil {
				return errors.Wrap(err)
			}

			outputs := gcpagent.Describe(gcpagent.NewServiceIdentity(projectID))
			return render(cmd.OutOrStdout(), outputFormat(), outputs, func(out io.Writer) error {
				return writeOutputsText(out, outputs)
			})
		},
	}
}
