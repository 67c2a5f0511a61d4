package ledger

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTPSource fetches the ledger from a CSV export URL, typically a
// published spreadsheet holding the real-world revenue log.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for the given export URL. A zero
// timeout falls back to 30 seconds.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) (Ledger, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Empty(), fmt.Errorf("failed to build ledger request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Empty(), fmt.Errorf("failed to fetch ledger export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Empty(), fmt.Errorf("ledger export returned status %d", resp.StatusCode)
	}

	return ParseCSV(resp.Body)
}
