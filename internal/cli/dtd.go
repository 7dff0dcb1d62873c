package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/netgen/pkg/netxml"
	"github.com/matzehuels/netgen/pkg/pipeline"
)

// dtdCommand creates the dtd command, which emits the document type
// definition of network documents.
func (c *CLI) dtdCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dtd",
		Short: "Print or write the network document DTD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" || output == "-" {
				_, err := c.Out.Write(netxml.DTD())
				return err
			}
			if err := pipeline.WriteFile(output, netxml.DTD()); err != nil {
				return err
			}
			printSuccess(c.Out, "Wrote DTD")
			printFile(c.Out, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
