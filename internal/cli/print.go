package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PrintResult is the JSON payload of the print command.
type PrintResult struct {
	Printed int `json:"printed"`
}

// NewPrintCommand creates the print command.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <records-file|->",
		Short: "Print synapse configurations to stderr",
		Long: `Decode synapse records and print each synapse's configuration as one
diagnostic line on stderr:

  source target startWeight endWeight startTime endTime

Only a summary goes to stdout, so diagnostics never mix with it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runPrint(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	n, err := loadRecords(cmd, formatter, path, ExitCommandError)
	if err != nil {
		return err
	}

	if err := n.Print(formatter.GetErrWriter()); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeWriteFailed, "failed to print synapses", err, nil)
	}

	if opts.Format == "json" {
		return formatter.Success(PrintResult{Printed: n.Len()})
	}
	return formatter.Success(fmt.Sprintf("printed %d synapse(s)", n.Len()))
}
