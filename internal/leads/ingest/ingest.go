// Package ingest turns a raw CSV stream into validated lead candidates.
// The stream is consumed exactly once; per-row problems are collected as
// human-readable errors while structural failures abort the whole parse.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Candidate is a parsed lead row that passed validation. Optional fields
// are nil when the column was absent or empty.
type Candidate struct {
	Name        string
	Role        *string
	Company     *string
	Industry    *string
	Location    *string
	LinkedInBio *string
}

// Result holds the accepted candidates and the per-row rejection messages,
// both in source order.
type Result struct {
	Leads  []Candidate
	Errors []string
}

// RowCount reports how many data rows the stream contained, accepted or not.
func (r Result) RowCount() int {
	return len(r.Leads) + len(r.Errors)
}

// Parse drains the CSV stream. The first record is the header; column order
// is irrelevant. A row is accepted only if its "name" column is non-empty.
// Any structural failure of the stream is returned as an error and no
// partial result is produced.
func Parse(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var result Result
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read row: %w", err)
		}

		row := rowValues(columns, record)
		if row["name"] == "" {
			result.Errors = append(result.Errors, "Skipped row with missing name: "+encodeRow(row))
			continue
		}

		result.Leads = append(result.Leads, Candidate{
			Name:        row["name"],
			Role:        optional(row["role"]),
			Company:     optional(row["company"]),
			Industry:    optional(row["industry"]),
			Location:    optional(row["location"]),
			LinkedInBio: optional(row["linkedin_bio"]),
		})
	}

	return result, nil
}

func rowValues(columns map[string]int, record []string) map[string]string {
	row := make(map[string]string, len(columns))
	for name, idx := range columns {
		if idx < len(record) {
			row[name] = record[idx]
		} else {
			row[name] = ""
		}
	}
	return row
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// encodeRow renders the row content for rejection messages so the caller
// can diagnose which source row was dropped.
func encodeRow(row map[string]string) string {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Sprintf("%v", row)
	}
	return string(data)
}
