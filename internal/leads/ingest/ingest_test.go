package ingest

import (
	"strings"
	"testing"
)

func TestParse_AcceptsValidRowsAndCollectsErrors(t *testing.T) {
	csvData := `name,role,company,industry,location,linkedin_bio
Jane,VP of Sales,Acme,software,Berlin,20 years in SaaS
,Engineer,Beta,fintech,London,
Bob,,,,,
`

	result, err := Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(result.Leads))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if result.RowCount() != 3 {
		t.Fatalf("expected row count 3, got %d", result.RowCount())
	}

	if !strings.Contains(result.Errors[0], "missing name") {
		t.Fatalf("error should explain the rejection: %s", result.Errors[0])
	}
	if !strings.Contains(result.Errors[0], "Engineer") {
		t.Fatalf("error should carry the row content: %s", result.Errors[0])
	}

	jane := result.Leads[0]
	if jane.Name != "Jane" || jane.Role == nil || *jane.Role != "VP of Sales" {
		t.Fatalf("unexpected first lead: %+v", jane)
	}

	bob := result.Leads[1]
	if bob.Name != "Bob" {
		t.Fatalf("expected Bob, got %+v", bob)
	}
	if bob.Role != nil || bob.Company != nil || bob.LinkedInBio != nil {
		t.Fatalf("empty fields must normalize to nil: %+v", bob)
	}
}

func TestParse_ColumnOrderIsIrrelevant(t *testing.T) {
	csvData := "industry,name,role\nsoftware,Jane,CEO\n"

	result, err := Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(result.Leads))
	}

	lead := result.Leads[0]
	if lead.Name != "Jane" {
		t.Fatalf("expected name Jane, got %q", lead.Name)
	}
	if lead.Industry == nil || *lead.Industry != "software" {
		t.Fatalf("expected industry software, got %+v", lead.Industry)
	}
	if lead.Location != nil {
		t.Fatalf("absent column must normalize to nil, got %+v", lead.Location)
	}
}

func TestParse_ShortRecordsNormalizeMissingFields(t *testing.T) {
	csvData := "name,role,company\nJane,CEO\n"

	result, err := Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(result.Leads))
	}
	if result.Leads[0].Company != nil {
		t.Fatalf("missing trailing field must be nil, got %+v", result.Leads[0].Company)
	}
}

func TestParse_EmptyStreamYieldsZeroRows(t *testing.T) {
	result, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RowCount() != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestParse_HeaderOnlyYieldsZeroRows(t *testing.T) {
	result, err := Parse(strings.NewReader("name,role\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RowCount() != 0 {
		t.Fatalf("expected zero rows, got %+v", result)
	}
}

func TestParse_StructuralFailureIsFatal(t *testing.T) {
	// An unterminated quoted field is a stream-level failure, not a row error.
	csvData := "name,role\n\"Jane,CEO\nBob,Manager\n"

	_, err := Parse(strings.NewReader(csvData))
	if err == nil {
		t.Fatalf("expected parse error for malformed stream")
	}
}

func TestParse_StripsUTF8BOMFromHeader(t *testing.T) {
	csvData := "\ufeffname,role\nJane,CEO\n"

	result, err := Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Leads) != 1 || result.Leads[0].Name != "Jane" {
		t.Fatalf("BOM header must still map the name column: %+v", result)
	}
}
