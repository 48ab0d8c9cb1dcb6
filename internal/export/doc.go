// Package export writes generated series for use outside the lab: CSV rows,
// a JSON document of the experiment state, and PNG or SVG line charts.
//
// Output goes to any io.Writer; nothing here is read back.
package export
