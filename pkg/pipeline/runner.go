package pipeline

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/netgen/pkg/catalog"
	errs "github.com/matzehuels/netgen/pkg/errors"
	"github.com/matzehuels/netgen/pkg/netxml"
	"github.com/matzehuels/netgen/pkg/network"
	"github.com/matzehuels/netgen/pkg/observability"
)

// Runner encapsulates pipeline execution.
// Every CLI command goes through it so generation and output behave the same.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete catalog → generate → check → render → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Catalog
	cat, err := r.LoadCatalog(opts.Catalog)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Generate
	hooks := observability.Pipeline()
	genStart := time.Now()
	seed, err := resolveSeed(opts.Seed)
	if err != nil {
		return nil, err
	}
	result.Seed = seed
	hooks.OnGenerateStart(ctx, cat.Len())
	n, err := r.Generate(cat, seed, network.Strategy(opts.Strategy))
	if err != nil {
		hooks.OnGenerateComplete(ctx, cat.Len(), 0, time.Since(genStart), err)
		return nil, err
	}
	result.Network = n
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.Stats = network.ComputeStats(n)
	hooks.OnGenerateComplete(ctx, n.StationCount(), n.LinkCount(), result.Stats.GenerateTime, nil)

	r.Logger.Info("generated network",
		"stations", n.StationCount(),
		"links", n.LinkCount(),
		"clients", n.ClientCount(),
		"seed", seed,
		"duration", result.Stats.GenerateTime)
	if !result.Stats.Connected() {
		r.Logger.Warn("network is not connected",
			"components", result.Stats.Components,
			"isolated", result.Stats.Isolated)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(ctx, n, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	if opts.DryRun {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Write
	writeStart := time.Now()
	files, err := r.Write(ctx, artifacts, opts)
	if err != nil {
		return nil, err
	}
	result.Files = files
	result.Stats.WriteTime = time.Since(writeStart)

	return result, nil
}

// LoadCatalog returns the catalog stored at path, or the built-in catalog
// when path is empty.
func (r *Runner) LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		c := catalog.Default()
		r.Logger.Debug("using built-in catalog", "stations", c.Len())
		return c, nil
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("loaded catalog", "path", path, "stations", c.Len())
	return c, nil
}

// Generate builds and checks a network. A network that violates any
// invariant is never returned.
func (r *Runner) Generate(c *catalog.Catalog, seed uint64, strategy network.Strategy) (*network.Network, error) {
	gen := network.NewGenerator(network.NewRand(seed), strategy)
	n, err := gen.Generate(c)
	if err != nil {
		return nil, err
	}
	if err := network.Check(n); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "generated network failed its checks")
	}
	return n, nil
}

// Write stores artifacts in canonical format order and, if requested, the
// DTD next to the XML document. It returns the written paths.
func (r *Runner) Write(ctx context.Context, artifacts map[string][]byte, opts Options) ([]string, error) {
	hooks := observability.Pipeline()
	write := func(path string, data []byte) error {
		err := WriteFile(path, data)
		hooks.OnWrite(ctx, path, len(data), err)
		return err
	}

	var files []string
	for _, format := range formatOrder {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := ArtifactPath(opts.Output, format)
		if err := write(path, data); err != nil {
			return files, err
		}
		r.Logger.Info("wrote "+format, "path", path, "bytes", len(data))
		files = append(files, path)
	}
	if opts.WriteDTD {
		path := DTDPath(opts.Output, opts.DTDName)
		if err := write(path, netxml.DTD()); err != nil {
			return files, err
		}
		r.Logger.Info("wrote dtd", "path", path)
		files = append(files, path)
	}
	return files, nil
}

// resolveSeed returns *seed, or a fresh seed from crypto/rand.
func resolveSeed(seed *uint64) (uint64, error) {
	if seed != nil {
		return *seed, nil
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, errs.Wrap(errs.ErrCodeInternal, err, "draw seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// String summarizes the result on one line.
func (r *Result) String() string {
	if r.Network == nil {
		return "no network"
	}
	return fmt.Sprintf("%d stations, %d links, %d clients (seed %d)",
		r.Network.StationCount(), r.Network.LinkCount(), r.Network.ClientCount(), r.Seed)
}
