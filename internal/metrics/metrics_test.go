package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCall(t *testing.T) {
	r := NewRegistry()

	r.ObserveCall("google", "ok", 20*time.Millisecond)
	r.ObserveCall("google", "ok", 30*time.Millisecond)
	r.ObserveCall("google", "error", time.Second)
	r.ObserveFallback()

	if got := testutil.ToFloat64(r.ProviderCalls.WithLabelValues("google", "ok")); got != 2 {
		t.Errorf("Expected 2 ok calls, got %v", got)
	}
	if got := testutil.ToFloat64(r.ProviderCalls.WithLabelValues("google", "error")); got != 1 {
		t.Errorf("Expected 1 failed call, got %v", got)
	}
	if got := testutil.ToFloat64(r.Fallbacks); got != 1 {
		t.Errorf("Expected 1 fallback, got %v", got)
	}
	if got := testutil.CollectAndCount(r.ProviderLatency); got != 1 {
		t.Errorf("Expected one latency series, got %d", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.Rows.Add(6)
	r.DistinctNames.Add(4)
	r.RunDurationSec.Set(1.5)

	path := filepath.Join(t.TempDir(), "cattrans.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"cattrans_rows_total 6",
		"cattrans_distinct_names_total 4",
		"cattrans_run_duration_seconds 1.5",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("metrics file missing %q", want)
		}
	}
}

func TestWriteTextfileBadPath(t *testing.T) {
	r := NewRegistry()
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
