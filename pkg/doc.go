// Package pkg provides the libraries behind graphprep, which turns raw graph
// datasets into the input files expected by graph-learning tools.
//
// # Overview
//
// A typical dataset starts as a GML file and ends as a directory of derived
// artifacts: a sparse NumPy archive for node classification, a MAGFit input
// directory, adjacency and edge lists, and feature CSVs. The packages are
// organized in layers:
//
//  1. Parsing - [gml], [io]
//  2. Graph model - [graph], [sparse]
//  3. Writers - [archive], [magfit], [features], [render]
//  4. Orchestration - [pipeline], [config], [storage]
//  5. Support - [errors], [fsutil], [observability], [buildinfo]
//
// # Architecture
//
// The data flow through graphprep:
//
//	GML / JSON / edge list / adjacency list
//	         ↓
//	    [io] package (detect format, parse)
//	         ↓
//	    [graph] package (ordered nodes and edges with attributes)
//	         ↓
//	    [archive] / [magfit] / [io] / [render]
//	         ↓
//	    .npz, inti.config + graph.txt, .adjlist, .dot, .svg
//
// # Quick Start
//
// Convert a GML file into a sparse archive:
//
//	path, err := archive.ConvertGML(logger, "raw/polblogs.gml", "data/polblogs", archive.Options{})
//
// Prepare MAGFit input for the same graph:
//
//	g, _ := io.Load("raw/polblogs.gml", io.LoadOptions{})
//	in, err := magfit.PrepareInput(logger, "data/", "polblogs", g, 4)
//
// Run a batch of jobs described in a TOML file:
//
//	jobs, _ := config.LoadJobs("jobs.toml")
//	r, _ := pipeline.NewRunner(logger, pipeline.Options{})
//	report, err := r.Run(ctx, jobs)
//
// # Main Packages
//
// [gml] - Lexer and parser for the Graph Modelling Language, with label and
// id based node naming.
//
// [graph] - Insertion-ordered graph with per-node and per-edge attributes.
// Supports directed, undirected and multigraph variants.
//
// [sparse] - Compressed sparse row matrices built from graphs or dense rows.
//
// [archive] - The sparse dataset archive: adjacency, attribute and label
// arrays stored as .npy members of an .npz file.
//
// [magfit] - MAGFit input directories and result file helpers.
//
// [features] - Numeric and token feature CSV writers.
//
// [io] - Format detection plus JSON, edge list and adjacency list codecs.
//
// [render] - DOT export and Graphviz SVG rendering for quick inspection.
//
// [pipeline] - Batch runner for job files, with a shared parsed-graph cache.
//
// [storage] - Publishing prepared dataset directories to S3-compatible storage.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/archive/...  # Specific package
//	go test -run Example       # Examples only
package pkg
