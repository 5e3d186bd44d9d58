package cmd

import (
	"fmt"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/gcpagent"
	"github.com/spf13/cobra"
	"io"
)

type verifyResult struct {
	ServiceIdentityEmail string `json:"serviceIdentityEmail" yaml:"serviceIdentityEmail"`
	CanReadLogs          bool   `json:"canReadLogs" yaml:"canReadLogs"`
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the caller can impersonate the service account and read the project's logs with it",
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

			err = withRetry(cmd.Context(), "verify", func() error {
				return provisioner.Verify(cmd.Context(), identity)
			})
			if err != nil {
				return errors.Wrap(err)
			}

			result := verifyResult{ServiceIdentityEmail: identity.Email, CanReadLogs: true}
			return render(cmd.OutOrStdout(), outputFormat(), result, func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "%s can read logs of project %s\n", identity.Email, projectID)
				return err
			})
		},
	}
}
