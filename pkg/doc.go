// Package pkg provides the core libraries for netgen, a generator of random
// telephone network documents.
//
// # Overview
//
// netgen turns a catalog of stations (area code and city name) into a
// network: every station gets a handful of clients, and stations are joined
// by distinct undirected links. The result is written as an XML document
// that validates against Network.dtd.
//
// # Architecture
//
// The typical data flow through netgen:
//
//	Station catalog (built-in or TOML/YAML)
//	         ↓
//	    [catalog] package (parse and validate entries)
//	         ↓
//	    [network] package (clients, links, invariant check)
//	         ↓
//	    [netxml] / [netjson] / [render] packages (encode)
//	         ↓
//	    network.xml (+ json, dot, svg)
//
// # Quick Start
//
// Generate a reproducible network and encode it as XML:
//
//	gen := network.NewGenerator(network.NewRand(42), network.StrategyRejection)
//	n, err := gen.Generate(catalog.Default())
//	if err != nil {
//	    return err
//	}
//	data, err := netxml.Marshal(n, netxml.Options{})
//
// Or run the whole pipeline, including atomic file writes:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Output: "network.xml"})
//
// # Main Packages
//
// [catalog] - Station entries and the name banks used for clients. Catalogs
// load from TOML or YAML and are validated with struct tags.
//
// [network] - The network model and the generator. Links are sampled until
// ((N-1)*(N-2))/2 + 1 distinct pairs exist. [network.Check] asserts every
// invariant of a finished network.
//
// [netxml] - The XML document format and its embedded DTD.
//
// [netjson] - JSON encoding of the same model.
//
// [render] - Graphviz DOT and SVG drawings of the link graph.
//
// [pipeline] - Orchestration (catalog → generate → check → render → write).
//
// [errors] - Coded errors shared by every package.
//
// [catalog]: https://pkg.go.dev/github.com/matzehuels/netgen/pkg/catalog
// [network]: https://pkg.go.dev/github.com/matzehuels/netgen/pkg/network
// [network.Check]: https://pkg.go.dev/github.com/matzehuels/netgen/pkg/network#Check
// [netxml]: https://pkg.go.dev/github.com/matzehuels/netgen/pkg/netxml
// [netjson]: https://pkg.go.dev/github.com/matzehuels/netgen/pkg/netjson
// [render]: https://pkg.go.dev/github.com/matzehuels/netgen/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/netgen/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/netgen/pkg/errors
package pkg
