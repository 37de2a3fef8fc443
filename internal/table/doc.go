// Package table loads whitespace-delimited numeric tables.
//
// A table file holds one sample per line with a fixed number of
// floating-point columns and no header:
//
//	0.0 0.785398 0.0
//	0.1 0.780583 -0.0962
//
// Blank lines and '#' comments are ignored. Any malformed token or ragged
// row aborts the whole load; no partial table is ever returned.
//
//	tbl, err := table.Load("pendel_mp.data")
//	angle, err := tbl.Col(1)
package table
