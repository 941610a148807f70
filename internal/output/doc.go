// Package output renders API responses for photomctl.
//
// JSON values are printed through tidwall/pretty, optionally narrowed with a
// gjson path first. Account lists can also be rendered as a table with
// tokens masked.
package output
