package service

import (
	"bytes"
	"strconv"
	"strings"

	"leadscore_backend/internal/scoring/transport"
)

// CSVHeader is the fixed export column order.
const CSVHeader = "Name,Role,Company,Industry,Location,Intent,Score,Reasoning"

// RenderCSV renders result records as a CSV document. Every text field is
// double-quote enclosed with internal quotes doubled; the score is bare.
// encoding/csv is not used here because it only quotes when forced to,
// and the export contract requires enclosed fields unconditionally.
func RenderCSV(records []transport.ResultRecord) []byte {
	var buf bytes.Buffer
	buf.WriteString(CSVHeader)
	buf.WriteString("\n")

	for i, rec := range records {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(csvField(rec.Name))
		buf.WriteString(",")
		buf.WriteString(csvField(derefOr(rec.Role)))
		buf.WriteString(",")
		buf.WriteString(csvField(derefOr(rec.Company)))
		buf.WriteString(",")
		buf.WriteString(csvField(derefOr(rec.Industry)))
		buf.WriteString(",")
		buf.WriteString(csvField(derefOr(rec.Location)))
		buf.WriteString(",")
		buf.WriteString(csvField(rec.Intent))
		buf.WriteString(",")
		buf.WriteString(strconv.Itoa(rec.Score))
		buf.WriteString(",")
		buf.WriteString(csvField(rec.Reasoning))
	}

	return buf.Bytes()
}

func csvField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func derefOr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
