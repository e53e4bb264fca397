package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockReply is one scripted answer of a MockTranslator
type MockReply struct {
	Text string
	Err  error
}

// MockTranslator mocks a translation provider
type MockTranslator struct {
	ProviderName string

	// Translations answers every call for a text with the same value
	Translations map[string]string

	// Errors fails every call for a text
	Errors map[string]error

	// Script answers successive calls for a text in order; the last reply repeats
	Script map[string][]MockReply

	// Passthrough echoes unknown texts instead of the default mock translation
	Passthrough bool

	mu    sync.Mutex
	Calls []string
	seen  map[string]int
}

// Name returns the provider name
func (m *MockTranslator) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (%s->%s)", text, fromLang, toLang))
	if m.seen == nil {
		m.seen = make(map[string]int)
	}
	n := m.seen[text]
	m.seen[text] = n + 1

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if replies, ok := m.Script[text]; ok && len(replies) > 0 {
		if n >= len(replies) {
			n = len(replies) - 1
		}
		return replies[n].Text, replies[n].Err
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	if m.Passthrough {
		return text, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// CallCount returns how often text was translated
func (m *MockTranslator) CallCount(text string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seen[text]
}

// TotalCalls returns the number of Translate calls
func (m *MockTranslator) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// RecordingSleeper records requested sleeps instead of sleeping
type RecordingSleeper struct {
	mu     sync.Mutex
	Sleeps []time.Duration
}

// Sleep records d and returns immediately
func (s *RecordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sleeps = append(s.Sleeps, d)
	return ctx.Err()
}

// CountingThrottle counts Wait calls
type CountingThrottle struct {
	mu    sync.Mutex
	Waits int
}

// Wait records the call
func (c *CountingThrottle) Wait(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Waits++
	return ctx.Err()
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// OrderDetailRows returns a small order-line table with repeated and blank names
func (g *TestDataGenerator) OrderDetailRows() [][]string {
	return [][]string{
		{"orderid", "productname", "quantity", "price"},
		{"1", "Dưa Hấu Đỏ", "2", "35000"},
		{"1", "Thịt heo Khay", "1", "89000"},
		{"2", "Dưa Hấu Đỏ", "1", "35000"},
		{"3", "", "4", "1000"},
		{"3", "Sữa  tươi  (Hộp)", "6", "32000"},
		{"4", "Thịt heo Khay", "2", "89000"},
	}
}
