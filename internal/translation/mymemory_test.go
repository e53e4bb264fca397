package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newMyMemoryServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("langpair"); got != "vi|en" {
			t.Errorf("unexpected langpair %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "Nước mắm" {
			t.Errorf("unexpected query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMyMemoryProvider(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr string
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `{"responseData":{"translatedText":"Fish Sauce","match":0.98},"responseStatus":200}`,
			want:   "Fish Sauce",
		},
		{
			name:   "html entities",
			status: http.StatusOK,
			body:   `{"responseData":{"translatedText":"Fish &amp; Sauce"},"responseStatus":"200"}`,
			want:   "Fish & Sauce",
		},
		{
			name:    "quota",
			status:  http.StatusOK,
			body:    `{"responseData":{"translatedText":"MYMEMORY WARNING"},"quotaFinished":true,"responseStatus":200}`,
			wantErr: "quota",
		},
		{
			name:    "api status",
			status:  http.StatusOK,
			body:    `{"responseData":{"translatedText":""},"responseDetails":"INVALID LANGUAGE PAIR","responseStatus":"403"}`,
			wantErr: "status 403",
		},
		{
			name:    "empty",
			status:  http.StatusOK,
			body:    `{"responseData":{"translatedText":"  "},"responseStatus":200}`,
			wantErr: "empty translation",
		},
		{
			name:    "http error",
			status:  http.StatusTooManyRequests,
			body:    `{"responseDetails":"slow down"}`,
			wantErr: "429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newMyMemoryServer(t, tt.status, tt.body)
			p := NewMyMemoryProvider(srv.URL, "", 5*time.Second)

			got, err := p.Translate(context.Background(), "Nước mắm", "vi", "en")
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMyMemoryProviderEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("de"); got != "ops@example.com" {
			t.Errorf("Expected email parameter, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":"Salt"},"responseStatus":200}`))
	}))
	defer srv.Close()

	p := NewMyMemoryProvider(srv.URL+"/", "ops@example.com", 0)
	if p.Name() != "mymemory" {
		t.Errorf("unexpected name %q", p.Name())
	}
	if got, err := p.Translate(context.Background(), "Muối", "vi", "en"); err != nil || got != "Salt" {
		t.Errorf("Translate() = %q, %v", got, err)
	}
}
