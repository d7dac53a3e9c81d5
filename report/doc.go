// Package report renders simulation results as text tables, bar charts and
// JSON documents.
package report
