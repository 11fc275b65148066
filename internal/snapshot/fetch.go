package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"looper/finance-dashboard/internal/apperror"
	"looper/finance-dashboard/internal/logging"
	"looper/finance-dashboard/internal/models"
)

// Fetcher retrieves the snapshot from the dashboard service with a bearer
// token. The fetch is the only asynchronous boundary of the system: one
// request, one success-or-failure outcome, no partial results.
type Fetcher struct {
	BaseURL string
	Token   string
	Client  *http.Client
	logger  logging.Logger
}

// NewFetcher creates a Fetcher with a default HTTP client.
func NewFetcher(baseURL, token string, logger logging.Logger) *Fetcher {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Fetcher{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Fetch returns the full transaction snapshot. On any failure it returns
// an empty snapshot and a *apperror.FetchError so the pipeline can proceed
// with an empty collection while the message is surfaced to the caller.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.Transaction, error) {
	url := f.BaseURL + "/api/transactions"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return f.failed(url, err)
	}
	req.Header.Set("Authorization", "Bearer "+f.Token)

	resp, err := f.Client.Do(req)
	if err != nil {
		return f.failed(url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return f.failed(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var transactions []models.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return f.failed(url, err)
	}

	f.logger.WithField(logging.FieldCount, len(transactions)).Info("Fetched transaction snapshot")
	return transactions, nil
}

func (f *Fetcher) failed(source string, err error) ([]models.Transaction, error) {
	f.logger.WithError(err).WithField(logging.FieldSource, source).Error("Snapshot fetch failed")
	return []models.Transaction{}, &apperror.FetchError{Source: source, Err: err}
}
