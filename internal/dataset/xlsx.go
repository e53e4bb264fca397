package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const outputSheet = "Sheet1"

func loadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}

	d := &Dataset{Header: rows[0]}
	width := len(d.Header)
	for _, row := range rows[1:] {
		if len(row) > width {
			return nil, fmt.Errorf("%s: row %d has %d cells, header has %d", path, len(d.Rows)+2, len(row), width)
		}
		// GetRows drops trailing empty cells
		padded := make([]string, width)
		copy(padded, row)
		d.Rows = append(d.Rows, padded)
	}
	return d, nil
}

func writeXLSX(w io.Writer, d *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setRow(f, 1, d.Header); err != nil {
		return err
	}
	for i, row := range d.Rows {
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cellName, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(outputSheet, cellName, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
