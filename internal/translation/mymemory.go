package translation

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultMyMemoryURL = "https://api.mymemory.translated.net"

// MyMemoryProvider calls the MyMemory translation memory API
type MyMemoryProvider struct {
	email string
	http  *resty.Client
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	QuotaFinished   bool           `json:"quotaFinished"`
	ResponseDetails string         `json:"responseDetails"`
	ResponseStatus  myMemoryStatus `json:"responseStatus"`
}

// myMemoryStatus accepts both 200 and "403": the API is not consistent
type myMemoryStatus int

func (s *myMemoryStatus) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid mymemory status %s: %w", b, err)
	}
	*s = myMemoryStatus(n)
	return nil
}

// NewMyMemoryProvider creates a MyMemory provider. An email raises the daily quota.
func NewMyMemoryProvider(baseURL, email string, timeout time.Duration) *MyMemoryProvider {
	if baseURL == "" {
		baseURL = defaultMyMemoryURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &MyMemoryProvider{
		email: email,
		http:  resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")).SetTimeout(timeout),
	}
}

// Name returns the provider name
func (p *MyMemoryProvider) Name() string {
	return "mymemory"
}

// Translate translates text
func (p *MyMemoryProvider) Translate(ctx context.Context, text, srcLang, dstLang string) (string, error) {
	params := map[string]string{
		"q":        text,
		"langpair": srcLang + "|" + dstLang,
	}
	if p.email != "" {
		params["de"] = p.email
	}

	var resp myMemoryResponse
	r, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&resp).
		Get("/get")
	if err != nil {
		return "", fmt.Errorf("mymemory request: %w", err)
	}
	if r.IsError() {
		return "", fmt.Errorf("mymemory translate: %s; body: %s", r.Status(), r.String())
	}
	if resp.QuotaFinished {
		return "", fmt.Errorf("mymemory translate: daily quota finished")
	}
	if resp.ResponseStatus != 200 {
		return "", fmt.Errorf("mymemory translate: status %d: %s", resp.ResponseStatus, resp.ResponseDetails)
	}

	translated := html.UnescapeString(strings.TrimSpace(resp.ResponseData.TranslatedText))
	if translated == "" {
		return "", fmt.Errorf("mymemory translate: empty translation")
	}
	return translated, nil
}
