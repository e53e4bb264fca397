package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingColumn is returned when the name column is not in the header
	ErrMissingColumn = errors.New("column not found")

	// ErrEmptyDataset is returned for files without a header row
	ErrEmptyDataset = errors.New("dataset has no header")
)

// Dataset is a table of string cells with a header row
type Dataset struct {
	Header []string
	Rows   [][]string
}

// Lookup resolves an original name to its translation
type Lookup interface {
	Get(name string) (string, bool)
}

// Load reads the file at path and checks that column exists.
// Files ending in .xlsx are read as spreadsheets, everything else as CSV.
func Load(path, column string) (*Dataset, error) {
	var (
		d   *Dataset
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		d, err = loadXLSX(path)
	default:
		d, err = loadCSV(path, column)
	}
	if err != nil {
		return nil, err
	}

	if _, err := d.ColumnIndex(column); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Len returns the number of data rows
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// ColumnIndex returns the position of the named column
func (d *Dataset) ColumnIndex(name string) (int, error) {
	for i, h := range d.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q (have %s)", ErrMissingColumn, name, strings.Join(d.Header, ", "))
}

// Distinct returns the distinct values of column in first-occurrence order
func (d *Dataset) Distinct(column string) ([]string, error) {
	idx, err := d.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, row := range d.Rows {
		name := cell(row, idx)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

// Broadcast returns a copy of d with newColumn appended. Every row gets the
// translation of its value in column. d itself is not modified.
func (d *Dataset) Broadcast(column, newColumn string, translations Lookup) (*Dataset, error) {
	idx, err := d.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	out := &Dataset{
		Header: append(append(make([]string, 0, len(d.Header)+1), d.Header...), newColumn),
		Rows:   make([][]string, len(d.Rows)),
	}

	for i, row := range d.Rows {
		name := cell(row, idx)
		translated, ok := translations.Get(name)
		if !ok {
			return nil, fmt.Errorf("row %d: no translation for %q", i+1, name)
		}

		newRow := make([]string, len(d.Header)+1)
		copy(newRow, row)
		newRow[len(d.Header)] = translated
		out.Rows[i] = newRow
	}
	return out, nil
}

// Column returns all values of column in row order
func (d *Dataset) Column(column string) ([]string, error) {
	idx, err := d.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = cell(row, idx)
	}
	return values, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
