package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	outFile := filepath.Join(tmpDir, "orderdetail_en.csv")
	if err := os.WriteFile(outFile, []byte("productname,productname_en\n"), 0644); err != nil {
		t.Fatalf("Failed to create output file: %v", err)
	}

	archived, err := ArchiveFile(outFile)
	if err != nil {
		t.Fatalf("ArchiveFile failed: %v", err)
	}

	// Check that the output no longer exists
	if _, err := os.Stat(outFile); !os.IsNotExist(err) {
		t.Error("Output file still exists after archiving")
	}

	if filepath.Dir(archived) != filepath.Join(tmpDir, "archive") {
		t.Errorf("Archived to unexpected directory: %s", archived)
	}

	name := filepath.Base(archived)
	if !strings.HasPrefix(name, "orderdetail_en-") || !strings.HasSuffix(name, ".csv") {
		t.Errorf("Archive name has wrong format: %s", name)
	}

	// Extract and validate timestamp
	timestamp := strings.TrimSuffix(strings.TrimPrefix(name, "orderdetail_en-"), ".csv")
	if _, err := time.Parse("20060102-150405", timestamp); err != nil {
		t.Errorf("Invalid timestamp format in archive name: %s", timestamp)
	}

	content, err := os.ReadFile(archived)
	if err != nil {
		t.Fatalf("Failed to read archived file: %v", err)
	}
	if string(content) != "productname,productname_en\n" {
		t.Errorf("Archived content changed: %q", content)
	}
}

func TestArchiveFileNonExistent(t *testing.T) {
	archived, err := ArchiveFile(filepath.Join(t.TempDir(), "missing.csv"))
	if err != nil {
		t.Errorf("Expected no error for missing file, got %v", err)
	}
	if archived != "" {
		t.Errorf("Expected empty path, got %q", archived)
	}
}

func TestArchiveFileDirectory(t *testing.T) {
	if _, err := ArchiveFile(t.TempDir()); err == nil {
		t.Error("Expected error when archiving a directory")
	}
}

func TestArchiveFileTwiceSameSecond(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, "out.csv")

	var paths []string
	for i := 0; i < 2; i++ {
		if err := os.WriteFile(outFile, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		archived, err := ArchiveFile(outFile)
		if err != nil {
			t.Fatalf("ArchiveFile failed: %v", err)
		}
		paths = append(paths, archived)
	}

	if paths[0] == paths[1] {
		t.Errorf("Second archive overwrote the first: %s", paths[0])
	}
	entries, err := os.ReadDir(filepath.Join(tmpDir, "archive"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 archived files, got %d", len(entries))
	}
}
