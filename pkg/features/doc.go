// Package features writes node feature tables as comma-separated text.
//
// Two row shapes are supported. Numeric rows ([WriteNumeric]) are written
// value by value with default formatting. Token rows ([WriteTokens]) are
// lines of space-separated tokens as emitted by MAGFit, whose last segment
// is a trailer that is dropped before the remaining tokens are joined.
//
// Rows are written in order, one per line, each terminated by "\n". Files
// are truncated on open.
package features
