// Package export flattens transaction collections into CSV text.
//
// Two field sets exist for different callers and are deliberately not
// unified: the minimal 3-field form serves bulk export of the full
// snapshot, the 6-field display form serves the dashboard's export of the
// currently filtered view.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"looper/finance-dashboard/internal/config"
	"looper/finance-dashboard/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = config.Logger

// Exported files are always named FileName and served as MIMEType.
const (
	FileName = "transactions.csv"
	MIMEType = "text/csv"
)

// displayDateLayout is the date form of the display CSV (YYYY-MM-DD).
const displayDateLayout = "2006-01-02"

// Global CSV delimiter - can be configured via centralized config or environment variable
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// minimalRow maps the 3-field bulk form.
type minimalRow struct {
	Date     string `csv:"date"`
	Amount   string `csv:"amount"`
	Category string `csv:"category"`
}

// Minimal writes the 3-field bulk form (date, amount, category) to w.
// Callers pass the unfiltered snapshot; this form exists for bulk export,
// not for the dashboard view.
func Minimal(w io.Writer, transactions []models.Transaction) error {
	rows := make([]minimalRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, minimalRow{
			Date:     t.Date.Format(time.RFC3339),
			Amount:   t.Amount.String(),
			Category: t.Category,
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// MinimalToFile writes the 3-field bulk form to a file, creating parent
// directories as needed.
func MinimalToFile(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Minimal(file, transactions)
}

// displayHeader is the fixed header row of the display form.
const displayHeader = "User ID,Status,Date,Amount,Category,Description"

// Display returns the 6-field dashboard form over the currently filtered
// collection: a header row, then one comma-joined line per record in input
// order. A missing category renders as "N/A", a missing description as
// "-". Values are assumed simple; embedded commas are not escaped.
func Display(transactions []models.Transaction) string {
	lines := make([]string, 0, len(transactions)+1)
	lines = append(lines, displayHeader)

	for _, t := range transactions {
		category := t.Category
		if category == "" {
			category = "N/A"
		}
		description := t.Description
		if description == "" {
			description = "-"
		}
		lines = append(lines, strings.Join([]string{
			t.UserID,
			string(t.Status),
			t.Date.Format(displayDateLayout),
			t.Amount.String(),
			category,
			description,
		}, ","))
	}

	return strings.Join(lines, "\n")
}
