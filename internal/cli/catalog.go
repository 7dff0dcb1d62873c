package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netgen/pkg/network"
)

// catalogCommand creates the catalog command, which prints the station
// catalog and the link counts derived from its size.
func (c *CLI) catalogCommand() *cobra.Command {
	var path string
	var codesOnly bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the station catalog and derived link counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCatalog(path, codesOnly)
		},
	}

	cmd.Flags().StringVar(&path, "catalog", "", "catalog file (.toml, .yaml); default is the built-in catalog")
	cmd.Flags().BoolVar(&codesOnly, "codes", false, "print area codes only, one per line")

	return cmd
}

func (c *CLI) runCatalog(path string, codesOnly bool) error {
	cat, err := c.newRunner().LoadCatalog(path)
	if err != nil {
		return err
	}

	if codesOnly {
		for _, code := range cat.Codes() {
			fmt.Fprintln(c.Out, code)
		}
		return nil
	}

	source := "built-in"
	if path != "" {
		source = path
	}
	fmt.Fprintln(c.Out, StyleTitle.Render("Catalog")+" "+StyleDim.Render("("+source+")"))
	for _, e := range cat.Stations {
		printKeyValue(c.Out, e.Code, e.Name)
	}
	fmt.Fprintln(c.Out)

	printKeyValue(c.Out, "stations", fmt.Sprint(cat.Len()))
	printKeyValue(c.Out, "names", fmt.Sprintf("%d first, %d last", len(cat.FirstNames), len(cat.LastNames)))
	if links, err := network.MinLinks(cat.Len()); err != nil {
		printWarning(c.Out, "%v", err)
	} else {
		printKeyValue(c.Out, "links", fmt.Sprintf("%d of %d possible", links, network.MaxLinks(cat.Len())))
	}
	if path == "" {
		printNextStep(c.Out, "Use your own", fmt.Sprintf("%s --catalog stations.toml", appName))
	}
	return nil
}
