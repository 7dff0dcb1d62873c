package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/netgen/pkg/netxml"
	"github.com/matzehuels/netgen/pkg/network"
	"github.com/matzehuels/netgen/pkg/pipeline"
)

// generateFlags holds the command-line flags of the root (generate) command.
type generateFlags struct {
	output   string
	catalog  string
	seed     uint64
	strategy string
	formats  string
	dtdName  string
	writeDTD bool
	indent   bool
	detailed bool
	dryRun   bool
}

// register adds the generate flags to cmd.
func (f *generateFlags) register(cmd *cobra.Command) {
	strategies := make([]string, len(network.Strategies))
	for i, s := range network.Strategies {
		strategies[i] = string(s)
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", pipeline.DefaultOutput, "XML output file; other formats are written next to it")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "station catalog file (.toml, .yaml); default is the built-in catalog")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for a reproducible network (default: random)")
	cmd.Flags().StringVar(&f.strategy, "strategy", string(pipeline.DefaultStrategy), "link sampling strategy: "+strings.Join(strategies, ", "))
	cmd.Flags().StringVarP(&f.formats, "format", "f", pipeline.FormatXML, "output format(s): xml, json, dot, svg (comma-separated)")
	cmd.Flags().StringVar(&f.dtdName, "dtd-name", netxml.DefaultDTDName, "system identifier written into the DOCTYPE")
	cmd.Flags().BoolVar(&f.writeDTD, "write-dtd", false, "also write the DTD next to the XML document")
	cmd.Flags().BoolVar(&f.indent, "indent", false, "pretty-print the XML document")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "show client counts in dot/svg output")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "generate and check without writing files")

	_ = cmd.RegisterFlagCompletionFunc("strategy", cobra.FixedCompletions(strategies, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("catalog", cobra.FixedCompletions([]string{"toml", "yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
}

// options converts flags into pipeline options. The seed is only set when
// --seed was given explicitly, so that --seed 0 is a valid seed.
func (f *generateFlags) options(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{
		Output:   f.output,
		Catalog:  f.catalog,
		Strategy: f.strategy,
		Formats:  pipeline.ParseFormats(f.formats),
		DTDName:  f.dtdName,
		WriteDTD: f.writeDTD,
		Indent:   f.indent,
		Detailed: f.detailed,
		DryRun:   f.dryRun,
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	return opts
}

// generateCommand creates the generate command. It is the same as running
// netgen without a subcommand.
func (c *CLI) generateCommand() *cobra.Command {
	opts := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a network document (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}
	opts.register(cmd)

	return cmd
}

// runGenerate generates a network and writes the requested artifacts.
func (c *CLI) runGenerate(cmd *cobra.Command, f *generateFlags) error {
	opts := f.options(cmd)
	prog := newProgress(c.Logger)

	result, err := c.newRunner().Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d stations", result.Network.StationCount()))

	if opts.DryRun {
		printSuccess(c.Out, "Generated network (dry run, nothing written)")
	} else {
		printSuccess(c.Out, "Generated network")
	}
	printStats(c.Out, result.Stats.Stats)
	printDetail(c.Out, "seed %d, strategy %s", result.Seed, opts.Strategy)
	for _, path := range result.Files {
		printFile(c.Out, path)
	}
	if !result.Stats.Connected() {
		printWarning(c.Out, "network has %d components; isolated: %s",
			result.Stats.Components, strings.Join(result.Stats.Isolated, ", "))
	}
	if len(result.Files) > 0 && opts.Seed == nil {
		printNextStep(c.Out, "Reproduce", fmt.Sprintf("%s --seed %d", appName, result.Seed))
	}
	return nil
}
