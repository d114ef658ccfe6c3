package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/synsim/internal/network"
	"github.com/roach88/synsim/internal/synapse"
)

// stdinPath selects standard input as the records source.
const stdinPath = "-"

// ParseErrorDetails is the detail payload for ErrCodeParseFailed.
type ParseErrorDetails struct {
	Code  string `json:"code"`
	Field string `json:"field"`
	Token string `json:"token,omitempty"`
}

// loadRecords decodes every record in path ("-" for stdin). Errors are
// reported through formatter; a record stream that does not decode uses
// parseExit as its exit code.
func loadRecords(cmd *cobra.Command, formatter *OutputFormatter, path string, parseExit int) (*network.Network, error) {
	var r io.Reader
	if path == stdinPath {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("records file not found: %s", path), nil, nil)
			}
			return nil, formatter.Fail(ExitCommandError, ErrCodeGeneric, "failed to open records file", err, nil)
		}
		defer f.Close()
		r = f
	}

	n, err := network.LoadReader(r)
	if err != nil {
		var details interface{}
		var pe *synapse.ParseError
		if errors.As(err, &pe) {
			details = ParseErrorDetails{Code: string(pe.Code), Field: pe.Field, Token: pe.Token}
		}
		return nil, formatter.Fail(parseExit, ErrCodeParseFailed, "failed to decode records", err, details)
	}

	formatter.VerboseLog("Loaded %d synapse(s) from %s", n.Len(), path)
	return n, nil
}
