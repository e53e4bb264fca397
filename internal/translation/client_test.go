package translation

import (
	"context"
	"errors"
	"testing"
	"time"

	"codeberg.org/snonux/cattrans/internal/normalize"
	"codeberg.org/snonux/cattrans/internal/testutil"
)

func TestClientTranslate(t *testing.T) {
	mock := &testutil.MockTranslator{
		Translations: map[string]string{"Sữa tươi Hộp": "Fresh Milk Box"},
		Errors:       map[string]error{"Cá hồi": errors.New("quota exceeded")},
	}
	throttle := &testutil.CountingThrottle{}
	client := NewClient(mock, ClientConfig{
		Throttle:   throttle,
		Normalizer: normalize.Normalizer{StripBrackets: true},
	})

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"cleaned before translation", "  Sữa  tươi (Hộp) ", "Fresh Milk Box", false},
		{"error passes cleaned input", " Cá  hồi ", "Cá hồi", true},
		{"blank returns raw", "   ", "   ", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := client.Translate(context.Background(), tt.raw)
			if res.Text != tt.want {
				t.Errorf("Translate(%q).Text = %q, want %q", tt.raw, res.Text, tt.want)
			}
			if (res.Err != nil) != tt.wantErr {
				t.Errorf("Translate(%q).Err = %v, wantErr %v", tt.raw, res.Err, tt.wantErr)
			}
		})
	}

	// Blank names never reach the provider or the throttle
	if throttle.Waits != 2 {
		t.Errorf("Expected 2 throttle waits, got %d", throttle.Waits)
	}
	if len(mock.Calls) != 2 || mock.Calls[0] != "Translate: Sữa tươi Hộp (vi->en)" {
		t.Errorf("unexpected provider calls: %v", mock.Calls)
	}
}

func TestResultTranslated(t *testing.T) {
	mock := &testutil.MockTranslator{
		Translations: map[string]string{"Nấm rơm": "Straw Mushroom"},
		Errors:       map[string]error{"Cá hồi": errors.New("quota exceeded")},
		Passthrough:  true,
	}
	client := NewClient(mock, ClientConfig{Normalizer: normalize.Normalizer{StripBrackets: true}})

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"translated", "Nấm  rơm", true},
		{"only cleaned", "  Vinamilk  (Hộp) ", false},
		{"failed", "Cá  hồi", false},
		{"blank", "  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.Translate(context.Background(), tt.raw).Translated(); got != tt.want {
				t.Errorf("Translate(%q).Translated() = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClientLanguages(t *testing.T) {
	mock := &testutil.MockTranslator{}
	client := NewClient(mock, ClientConfig{SourceLang: "de", TargetLang: "fr"})

	client.Translate(context.Background(), "Brot")
	if len(mock.Calls) != 1 || mock.Calls[0] != "Translate: Brot (de->fr)" {
		t.Errorf("unexpected provider calls: %v", mock.Calls)
	}
}

func TestBuildMapping(t *testing.T) {
	mock := &testutil.MockTranslator{
		Translations: map[string]string{
			"Dưa Hấu Đỏ":    "Red Watermelon",
			"Thịt heo Khay": "Pork Tray",
		},
		Errors: map[string]error{"Nấm": errors.New("boom")},
	}
	client := NewClient(mock, ClientConfig{})

	names := []string{"Dưa Hấu Đỏ", "Thịt heo Khay", "Nấm", "", "Dưa Hấu Đỏ"}

	var progress []int
	var failed int
	mapping, err := client.BuildMapping(context.Background(), names, func(done int, name string, res Result) {
		progress = append(progress, done)
		if res.Err != nil {
			failed++
		}
	})
	if err != nil {
		t.Fatalf("BuildMapping failed: %v", err)
	}

	if mapping.Len() != 4 {
		t.Errorf("Expected 4 mapped names, got %d", mapping.Len())
	}
	if mock.CallCount("Dưa Hấu Đỏ") != 1 {
		t.Errorf("Expected one call per distinct name, got %d", mock.CallCount("Dưa Hấu Đỏ"))
	}
	if got, _ := mapping.Get("Nấm"); got != "Nấm" {
		t.Errorf("Expected failed name to pass through, got %q", got)
	}
	if got, ok := mapping.Get(""); !ok || got != "" {
		t.Errorf("Expected blank name mapped to itself, got %q, %v", got, ok)
	}
	if failed != 1 {
		t.Errorf("Expected one failure reported, got %d", failed)
	}
	if len(progress) != 4 || progress[3] != 4 {
		t.Errorf("unexpected progress: %v", progress)
	}
}

func TestBuildMappingCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mock := &testutil.MockTranslator{}
	client := NewClient(mock, ClientConfig{})

	_, err := client.BuildMapping(ctx, []string{"a b", "c d"}, func(done int, _ string, _ Result) {
		if done == 1 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if mock.TotalCalls() != 1 {
		t.Errorf("Expected one call before cancellation, got %d", mock.TotalCalls())
	}
}

func TestNewThrottle(t *testing.T) {
	if NewThrottle(0) != NoThrottle {
		t.Error("Expected NoThrottle for zero interval")
	}

	th := NewThrottle(50 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := th.Wait(ctx); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	// Burst of one: the second and third calls wait one interval each
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Errorf("Expected pacing of about 100ms, got %v", elapsed)
	}
}
