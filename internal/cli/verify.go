package cli

import (
	"errors"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/pipeline"
)

// verifyCommand creates the verify command, which checks a network document
// against every invariant and prints its statistics.
func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Check a network document against the network invariants",
		Long: `Verify reads a network document (.xml or .json) and checks that:

  - the summary attributes match the number of stations and links
  - every station has 1 to 5 clients with 8-digit phone numbers (digits 1-9)
  - no link joins a station to itself or repeats another link
  - every link endpoint is a known station
  - the link count equals ((N-1)*(N-2))/2 + 1

All violations are listed. The command exits non-zero if any are found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVerify(args[0])
		},
	}
}

func (c *CLI) runVerify(path string) error {
	n, stats, err := pipeline.Verify(path)
	if n == nil {
		return err
	}

	printStats(c.Out, stats)
	printDegrees(c.Out, stats)

	if err == nil {
		printSuccess(c.Out, "%s is valid", path)
		return nil
	}

	var v errs.Violations
	if errors.As(err, &v) {
		for _, msg := range v {
			printError(c.Out, "%s", msg)
		}
	}
	return err
}
