package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jszwec/csvutil"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// nameRecord receives the name column; every other column is copied from
// the raw record by index.
type nameRecord struct {
	Name string `csv:"name"`
}

func loadCSV(path, column string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	d, err := ReadCSV(file, column)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadCSV parses CSV data from r. Rows must have as many fields as the header
// and header names must be unique.
func ReadCSV(r io.Reader, column string) (*Dataset, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	decoder, err := csvutil.NewDecoder(csv.NewReader(br))
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	decoder.DisallowMissingColumns = true

	d := &Dataset{Header: decoder.Header()}
	if err := decoder.NormalizeHeader(nameColumn(column)); err != nil {
		return nil, fmt.Errorf("duplicate CSV header columns in %s: %w", strings.Join(d.Header, ", "), err)
	}
	idx := slices.Index(d.Header, column)

	for {
		var rec nameRecord
		if err := decoder.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var missing *csvutil.MissingColumnsError
			if errors.As(err, &missing) {
				_, err = d.ColumnIndex(column)
				return nil, err
			}
			return nil, fmt.Errorf("failed to decode CSV row %d: %w", len(d.Rows)+1, err)
		}

		record := decoder.Record()
		row := make([]string, len(record))
		for _, i := range decoder.Unused() {
			row[i] = record[i]
		}
		row[idx] = rec.Name
		d.Rows = append(d.Rows, row)
	}

	// A header-only file never reaches the column check in Decode
	if _, err := d.ColumnIndex(column); err != nil {
		return nil, err
	}
	return d, nil
}

// nameColumn renames column to the nameRecord tag and prefixes every other
// header so none of them can match it.
func nameColumn(column string) func(string) string {
	return func(h string) string {
		if h == column {
			return "name"
		}
		return "col:" + h
	}
}

func writeCSV(w io.Writer, d *Dataset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(d.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writer.WriteAll(d.Rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}
