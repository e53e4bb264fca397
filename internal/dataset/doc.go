// Package dataset loads order-line tables from CSV or XLSX files, appends the
// translated name column and writes the result back atomically.
package dataset
