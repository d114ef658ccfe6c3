package cli

import (
	"bufio"
	"context"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/synsim/internal/network"
	"github.com/roach88/synsim/internal/synapse"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Start float64
	End   float64
	Step  float64
}

// TraceResult is the JSON payload of the trace command.
type TraceResult struct {
	RunID    string             `json:"run_id"`
	Synapses []synapse.Config   `json:"synapses"`
	Samples  []network.Sample   `json:"samples"`
	Schedule TraceScheduleValue `json:"schedule"`
}

// TraceScheduleValue echoes the schedule the trace was produced with.
type TraceScheduleValue struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Step  float64 `json:"step"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <records-file|->",
		Short: "Evaluate synapse weights over a time schedule",
		Long: `Load synapse records and step every synapse through the time schedule.

The schedule comes from the config file (default 0..100 step 1) and can
be overridden with --start, --end and --step. Text output has one line
per time step with one column per synapse, headed "source->target".

Examples:
  synsim trace net.syn
  synsim trace net.syn --start 0 --end 20 --step 5
  cat net.syn | synsim trace - --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], cmd)
		},
	}

	// Schedule flags; unset flags keep the config value
	cmd.Flags().Float64Var(&opts.Start, "start", 0, "first simulation time (overrides config)")
	cmd.Flags().Float64Var(&opts.End, "end", 0, "last simulation time (overrides config)")
	cmd.Flags().Float64Var(&opts.Step, "step", 0, "time step (overrides config)")

	return cmd
}

// schedule merges the config schedule with any flags set on cmd.
func (opts *TraceOptions) schedule(cmd *cobra.Command) network.Schedule {
	sched := network.Schedule{
		Start: opts.Config.Time.Start,
		End:   opts.Config.Time.End,
		Step:  opts.Config.Time.Step,
	}
	if cmd.Flags().Changed("start") {
		sched.Start = opts.Start
	}
	if cmd.Flags().Changed("end") {
		sched.End = opts.End
	}
	if cmd.Flags().Changed("step") {
		sched.Step = opts.Step
	}
	return sched
}

func runTrace(opts *TraceOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sched := opts.schedule(cmd)
	if err := sched.Validate(); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeScheduleFailed, "invalid schedule", err, nil)
	}

	n, err := loadRecords(cmd, formatter, path, ExitCommandError)
	if err != nil {
		return err
	}

	// Generate run ID
	runIDs := opts.RunIDs
	if runIDs == nil {
		runIDs = network.UUIDv7Generator{}
	}
	runID := runIDs.Generate()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Info("trace starting", "run_id", runID, "synapses", n.Len(),
		"start", sched.Start, "end", sched.End, "step", sched.Step)

	if opts.Format == "json" {
		err = traceJSON(ctx, formatter, n, sched, runID)
	} else {
		err = traceText(ctx, formatter, n, sched, runID)
	}
	if err != nil {
		return err
	}

	slog.Info("trace finished", "run_id", runID)
	return nil
}

func traceJSON(ctx context.Context, formatter *OutputFormatter, n *network.Network, sched network.Schedule, runID string) error {
	result := TraceResult{
		RunID:    runID,
		Synapses: n.Configs(),
		Samples:  []network.Sample{},
		Schedule: TraceScheduleValue{Start: sched.Start, End: sched.End, Step: sched.Step},
	}

	err := n.Run(ctx, sched, func(s network.Sample) error {
		result.Samples = append(result.Samples, s)
		return nil
	})
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, "trace interrupted", err, nil)
	}

	if err := formatter.Success(result); err != nil {
		return WrapExitError(ExitFailure, "failed to write output", err)
	}
	return nil
}

// traceText writes one line per step as the run produces it.
func traceText(ctx context.Context, formatter *OutputFormatter, n *network.Network, sched network.Schedule, runID string) error {
	w := bufio.NewWriter(formatter.Writer)

	// Header
	w.WriteString("# run " + runID + "\n")
	w.WriteString("time")
	for _, c := range n.Configs() {
		w.WriteString(" " + strconv.Itoa(c.Source) + "->" + strconv.Itoa(c.Target))
	}
	w.WriteByte('\n')

	err := n.Run(ctx, sched, func(s network.Sample) error {
		w.WriteString(synapse.FormatReal(s.Time))
		for _, v := range s.Weights {
			w.WriteString(" " + synapse.FormatReal(v))
		}
		return w.WriteByte('\n')
	})
	if flushErr := w.Flush(); err == nil && flushErr != nil {
		return formatter.Fail(ExitFailure, ErrCodeWriteFailed, "failed to write output", flushErr, nil)
	}
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeGeneric, "trace interrupted", err, nil)
	}
	return nil
}
