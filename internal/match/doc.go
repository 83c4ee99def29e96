// Package match ranks specification names by similarity to a misspelled
// one, for "did you mean" hints in diagnostics.
//
// Names are normalized before comparison: case is folded and separators
// (underscores, hyphens, spaces, dots and "::") are dropped, so "record_set",
// "RecordSet" and "recordset" compare equal.
package match
