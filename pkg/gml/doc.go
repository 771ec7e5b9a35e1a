// Package gml reads and writes graphs in the Graph Modelling Language.
//
// The grammar is the one produced by common graph toolkits: nested
// key/value lists with integer, real (including INF and NAN), and quoted
// string values. Strings may contain HTML character entities, which are
// decoded on read. Comments run from '#' to the end of the line.
//
//	graph [
//	  directed 1
//	  node [ id 0 label "a" value 1 ]
//	  node [ id 1 label "b" value 0 ]
//	  edge [ source 0 target 1 ]
//	]
//
// By default nodes are identified by their "label" attribute, and the GML
// id is only used to resolve edge endpoints. See [Options] to keep the
// numeric ids instead.
//
// Everything is parsed in memory; there is no streaming reader.
package gml
