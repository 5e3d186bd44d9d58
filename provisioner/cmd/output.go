package cmd

import (
	"encoding/json"
	"fmt"
	"github.com/otterize/logging-reader-provisioner/shared/errors"
	"github.com/otterize/logging-reader-provisioner/shared/gcpagent"
	"gopkg.in/yaml.v3"
	"io"
)

const (
	outputFormatText = "text"
	outputFormatJSON = "json"
	outputFormatYAML = "yaml"
)

func validateOutputFormat(format string) error {
	switch format {
	case outputFormatText, outputFormatJSON, outputFormatYAML:
		return nil
	default:
		return errors.KindErrorf(errors.ErrInvalidInput, "unknown output format %q, expected text, json or yaml", format)
	}
}

// render writes value in format. Text output is produced by writeText, since every command prints it differently.
func render(out io.Writer, format string, value any, writeText func(io.Writer) error) error {
	switch format {
	case outputFormatJSON:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return errors.Wrap(err)
		}
		if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return errors.Wrap(err)
		}
		return nil
	case outputFormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return errors.Wrap(err)
		}
		return errors.Wrap(encoder.Close())
	case outputFormatText:
		return errors.Wrap(writeText(out))
	default:
		return validateOutputFormat(format)
	}
}

func writeOutputsText(out io.Writer, outputs gcpagent.IdentityOutputs) error {
	_, err := fmt.Fprintf(out, "serviceIdentityEmail: %s\nserviceIdentityName: %s\n", outputs.Email, outputs.ResourceName)
	return err
}

func writePlanText(out io.Writer, plan *gcpagent.Plan) error {
	if plan.IsEmpty() {
		_, err := fmt.Fprintf(out, "No changes. %s is up to date.\n", plan.Identity.Email)
		return err
	}

	if _, err := fmt.Fprintf(out, "Pending changes for %s:\n", plan.Identity.Email); err != nil {
		return err
	}
	for _, change := range plan.Changes {
		symbol := "~"
		switch change.Action {
		case gcpagent.ChangeCreateServiceAccount, gcpagent.ChangeAddBinding:
			symbol = "+"
		case gcpagent.ChangeDeleteServiceAccount, gcpagent.ChangeRemoveBinding:
			symbol = "-"
		}
		if _, err := fmt.Fprintf(out, "  %s %s\n", symbol, change.String()); err != nil {
			return err
		}
	}
	return nil
}
