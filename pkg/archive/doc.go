// Package archive converts graphs into compressed sparse archives and reads
// them back.
//
// An archive is a zip of numpy .npy arrays (the .npz layout read by
// numpy.load), deflate-compressed, holding nine fields:
//
//	adj_data, adj_indices, adj_indptr, adj_shape     adjacency matrix (CSR)
//	attr_data, attr_indices, attr_indptr, attr_shape attribute matrix (CSR)
//	labels                                           per-node integer values
//
// Float arrays are float64, index arrays int32, shapes and labels int64.
// Rows of the adjacency matrix follow node order.
//
// # Attribute matrix
//
// [AttrPlaceholder], the default, stores the fixed 1×2 matrix [[0, 1]]
// regardless of the node values, reproducing archives written by earlier
// tooling. [AttrValues] stores an N×1 matrix holding each node's value.
//
// # Reading
//
// [Open] accepts archives written by numpy as well as by [Archive.Save].
// Numeric arrays may use any of float64, float32, int64 and int32. When
// adj_shape is absent the adjacency matrix is taken to be square.
package archive
