package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"codeberg.org/snonux/cattrans/internal/testutil"
)

type mapLookup map[string]string

func (m mapLookup) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func writeOrderDetail(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orderdetail.csv")
	testutil.WriteCSV(t, path, (&testutil.TestDataGenerator{}).OrderDetailRows())
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeOrderDetail(t)

	d, err := Load(path, "productname")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if d.Len() != 6 {
		t.Errorf("Expected 6 rows, got %d", d.Len())
	}
	wantHeader := []string{"orderid", "productname", "quantity", "price"}
	if !reflect.DeepEqual(d.Header, wantHeader) {
		t.Errorf("Header = %v, want %v", d.Header, wantHeader)
	}
	if d.Rows[4][1] != "Sữa  tươi  (Hộp)" {
		t.Errorf("Expected raw name preserved, got %q", d.Rows[4][1])
	}
	if d.Rows[5][3] != "89000" {
		t.Errorf("Expected other cells preserved, got %q", d.Rows[5][3])
	}
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		column  string
		rows    int
		wantErr error
	}{
		{
			name:   "bom stripped",
			input:  "\xEF\xBB\xBFproductname,qty\nNấm,1\n",
			column: "productname",
			rows:   1,
		},
		{
			name:   "header collides with placeholder",
			input:  "name,col0,productname\na,b,Gạo\n",
			column: "productname",
			rows:   1,
		},
		{
			name:   "header only",
			input:  "productname\n",
			column: "productname",
			rows:   0,
		},
		{
			name:    "empty",
			input:   "",
			column:  "productname",
			wantErr: ErrEmptyDataset,
		},
		{
			name:    "missing column",
			input:   "name,qty\nNấm,1\n",
			column:  "productname",
			wantErr: ErrMissingColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ReadCSV(strings.NewReader(tt.input), tt.column)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Len() != tt.rows {
				t.Errorf("Expected %d rows, got %d", tt.rows, d.Len())
			}
			if _, err := d.ColumnIndex(tt.column); err != nil {
				t.Errorf("column lost: %v", err)
			}
		})
	}
}

func TestReadCSVCells(t *testing.T) {
	input := "\xEF\xBB\xBForderid,productname,note\n" +
		"1,\"Gạo, túi 5kg\",\"a, b\"\n" +
		"2,,x\n" +
		"3,  Sữa  tươi ,\n"
	d, err := ReadCSV(strings.NewReader(input), "productname")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	want := [][]string{
		{"1", "Gạo, túi 5kg", "a, b"},
		{"2", "", "x"},
		{"3", "  Sữa  tươi ", ""},
	}
	if !reflect.DeepEqual(d.Header, []string{"orderid", "productname", "note"}) {
		t.Errorf("Header = %q", d.Header)
	}
	if !reflect.DeepEqual(d.Rows, want) {
		t.Errorf("Rows = %q, want %q", d.Rows, want)
	}
}

func TestReadCSVDuplicateHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("productname,qty,qty\nGạo,1,2\n"), "productname")
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Expected duplicate header error, got %v", err)
	}
}

func TestReadCSVRagged(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("productname,qty\nNấm,1\nGạo\n"), "productname")
	if err == nil {
		t.Error("Expected error for ragged row")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), "productname")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestDistinct(t *testing.T) {
	d, err := Load(writeOrderDetail(t), "productname")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names, err := d.Distinct("productname")
	if err != nil {
		t.Fatalf("Distinct failed: %v", err)
	}
	want := []string{"Dưa Hấu Đỏ", "Thịt heo Khay", "", "Sữa  tươi  (Hộp)"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Distinct = %q, want %q", names, want)
	}

	if _, err := d.Distinct("nope"); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("Expected ErrMissingColumn, got %v", err)
	}
}

func TestBroadcast(t *testing.T) {
	d, err := Load(writeOrderDetail(t), "productname")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	lookup := mapLookup{
		"Dưa Hấu Đỏ":       "Red Watermelon",
		"Thịt heo Khay":    "Pork Tray",
		"":                 "",
		"Sữa  tươi  (Hộp)": "Fresh Milk Box",
	}

	out, err := d.Broadcast("productname", "productname_en", lookup)
	if err != nil {
		t.Fatalf("Broadcast failed: %v", err)
	}

	if out.Len() != d.Len() {
		t.Fatalf("Row count changed: %d -> %d", d.Len(), out.Len())
	}
	if got := out.Header[len(out.Header)-1]; got != "productname_en" {
		t.Errorf("Expected new column last, got %q", got)
	}
	if len(d.Header) != 4 {
		t.Error("Broadcast modified the input header")
	}

	// Equal names get equal translations
	byName := map[string]string{}
	for i, row := range out.Rows {
		if !reflect.DeepEqual(row[:4], d.Rows[i]) {
			t.Errorf("row %d: original cells changed: %v", i, row)
		}
		if prev, ok := byName[row[1]]; ok && prev != row[4] {
			t.Errorf("row %d: %q translated inconsistently", i, row[1])
		}
		byName[row[1]] = row[4]
	}
	if out.Rows[2][4] != "Red Watermelon" {
		t.Errorf("Expected 'Red Watermelon', got %q", out.Rows[2][4])
	}
	if out.Rows[3][4] != "" {
		t.Errorf("Expected blank translation, got %q", out.Rows[3][4])
	}
}

func TestBroadcastMissingTranslation(t *testing.T) {
	d := &Dataset{Header: []string{"productname"}, Rows: [][]string{{"Nấm"}}}
	if _, err := d.Broadcast("productname", "productname_en", mapLookup{}); err == nil {
		t.Error("Expected error for a name missing from the mapping")
	}
}

func TestColumn(t *testing.T) {
	d := &Dataset{Header: []string{"a", "b"}, Rows: [][]string{{"1", "x"}, {"2"}}}
	got, err := d.Column("b")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"x", ""}) {
		t.Errorf("Column = %q", got)
	}
}
