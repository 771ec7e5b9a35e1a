// Package io reads and writes graphs in the plain-text and JSON formats
// graph-learning tools exchange, and dispatches to [gml] for GML.
//
// # Formats
//
//   - Edge list: one "u v" line per edge, topology only ([WriteEdgeList],
//     [ReadEdgeList])
//   - Adjacency list: a three-line comment header, then one line per node
//     listing the node and its neighbors ([WriteAdjList], [ReadAdjList])
//   - Node-link JSON: nodes and edges with their attributes ([WriteJSON],
//     [ReadJSON])
//   - GML: via [gml.Read] and [gml.Write]
//
// # JSON Format
//
//	{
//	  "directed": true,
//	  "multigraph": false,
//	  "nodes": [
//	    {"id": "a", "attrs": {"value": 0}},
//	    {"id": "b", "attrs": {"value": 1}}
//	  ],
//	  "edges": [
//	    {"from": "a", "to": "b"}
//	  ]
//	}
//
// # Files
//
// [Load] picks a reader by file extension and [Save] creates the parent
// directory before writing. Files are always fully rewritten and closed on
// every return path.
//
// Node IDs are written verbatim. The text formats have no quoting, so IDs
// containing whitespace do not survive a round trip through them.
//
// [gml]: github.com/matzehuels/graphprep/pkg/gml
// [gml.Read]: github.com/matzehuels/graphprep/pkg/gml.Read
// [gml.Write]: github.com/matzehuels/graphprep/pkg/gml.Write
package io
