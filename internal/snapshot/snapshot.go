// Package snapshot loads the transaction collection the pipeline consumes.
// A snapshot is fetched or read once, treated as immutable for a session,
// and replaced wholesale on refresh.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"looper/finance-dashboard/internal/categorizer"
	"looper/finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultDescription fills records seeded without one.
const defaultDescription = "Generic transaction"

// flexDate accepts both RFC3339 timestamps and bare ISO dates in seed files.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unable to parse date: %s", raw)
}

// rawRecord is a seed-file record before enrichment.
type rawRecord struct {
	ID          string          `json:"id"`
	Date        flexDate        `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	UserID      string          `json:"user_id"`
	Status      models.Status   `json:"status"`
}

// Load reads an enriched snapshot JSON file.
func Load(path string) ([]models.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot file: %w", err)
	}

	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing snapshot file: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, r := range records {
		transactions = append(transactions, models.Transaction{
			ID:          r.ID,
			Date:        r.Date.Time,
			Amount:      r.Amount,
			Category:    r.Category,
			Description: r.Description,
			UserID:      r.UserID,
			Status:      r.Status,
		})
	}
	return transactions, nil
}

// Seed reads a raw JSON file and enriches each record for the snapshot:
// missing ids get a fresh uuid, missing descriptions get a default, and
// missing categories are resolved by the categorizer from the description.
// Records that already carry a category keep it.
func Seed(path string, cat *categorizer.Categorizer) ([]models.Transaction, error) {
	transactions, err := Load(path)
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		if transactions[i].ID == "" {
			transactions[i].ID = uuid.NewString()
		}
		if transactions[i].Description == "" {
			transactions[i].Description = defaultDescription
		}
		if transactions[i].Category == "" {
			transactions[i].Category = cat.Categorize(transactions[i].Description)
		}
	}
	return transactions, nil
}

// Save writes a snapshot JSON file, creating parent directories as needed.
func Save(path string, transactions []models.Transaction) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing snapshot file: %w", err)
	}
	return nil
}
