package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult is the JSON payload of a successful validate command.
type ValidationResult struct {
	Valid    bool `json:"valid"`
	Synapses int  `json:"synapses"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <records-file|->",
		Short: "Check that a records file decodes",
		Long: `Decode every synapse record without running a simulation.

Reports the number of records, or the first record that failed along
with the field and token at fault. Neuron indices are not checked
against any neuron table.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	n, err := loadRecords(cmd, formatter, path, ExitFailure)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Synapses: n.Len()})
	}
	return formatter.Success(fmt.Sprintf("OK: %d synapse record(s) valid", n.Len()))
}
