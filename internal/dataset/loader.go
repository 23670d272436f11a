package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spacesedan/sentimentscope/internal/models"
)

// ErrMissingTextColumn is returned when an uploaded table has no "text"
// column. This is a user-facing validation error, not a crash.
var ErrMissingTextColumn = errors.New("table must include a 'text' column")

const textColumn = "text"

// sampleCSV is the built-in demo table used when no upload is supplied.
const sampleCSV = `text,created_at,source
"I love the coffee and the ambience at BlueBean!",2025-10-01T10:00:00,Tweet
"Terrible service today — waited 45 mins and got the wrong order.",2025-10-02T14:21:00,Review
"Okay experience, pastries were fine.",2025-09-30T08:12:00,Review
"Best pastries in town! Highly recommend.",2025-10-03T09:45:00,Tweet
"Not happy with the new parking policy.",2025-10-04T12:30:00,Comment
"Menu needs more vegan options",2025-09-28T15:00:00,Review
"Staff were very polite and helpful.",2025-10-06T11:20:00,Review
"Food was cold when delivered.",2025-10-07T19:10:00,Comment
`

// Load reads a CSV table with a header row and returns one TextRecord per
// data row. The "text" column is required; every other column passes
// through into Metadata unchanged. Rows shorter than the header are padded
// with empty strings.
func Load(r io.Reader) ([]models.TextRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMissingTextColumn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	textIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == textColumn {
			textIdx = i
			break
		}
	}
	if textIdx == -1 {
		return nil, ErrMissingTextColumn
	}

	var records []models.TextRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV row: %w", err)
		}

		rec := models.TextRecord{}
		for i, col := range header {
			var value string
			if i < len(row) {
				value = row[i]
			}
			if i == textIdx {
				rec.Text = value
				continue
			}
			if rec.Metadata == nil {
				rec.Metadata = make(map[string]string, len(header)-1)
			}
			rec.Metadata[strings.TrimSpace(col)] = value
		}
		records = append(records, rec)
	}

	return records, nil
}

// Sample returns the built-in 8-row demo table.
func Sample() []models.TextRecord {
	records, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		// The sample table is a compile-time constant; failing to parse
		// it is a programming error.
		slog.Error("[Dataset] Failed to parse built-in sample table",
			slog.String("error", err.Error()))
		return nil
	}
	return records
}
