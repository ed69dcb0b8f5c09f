package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
)

// Record is one candidate entity built by applying a mapping to a row:
// canonical field key → raw cell value.
type Record map[string]string

// RowError reports why a row was excluded from the valid set. Row numbers
// are 1-based over the data rows, matching what the user sees in their file
// after the header row.
type RowError struct {
	Row    int      `json:"row"`
	Issues []string `json:"issues"`
}

// dateLayouts accepted for date-kind cells.
var dateLayouts = []string{"2006-01-02", "02.01.2006", "02/01/2006"}

// BuildRecords applies the mapping to every data row, validates each
// candidate against the field schema, and partitions the batch: valid
// records go into the upload set, invalid rows are retained for error
// reporting. A bad row never aborts the batch.
func BuildRecords(t *Table, mapping Mapping, fields []Field) (valid []Record, errs []RowError) {
	for i, row := range t.Rows {
		// Tables built straight from literals carry no RowNums; fall back
		// to the slice position.
		num := i + 1
		if i < len(t.RowNums) {
			num = t.RowNums[i]
		}

		rec := make(Record, len(mapping))
		for key, idx := range mapping {
			if idx >= 0 && idx < len(row) {
				rec[key] = row[idx]
			}
		}

		issues := ValidateRecord(rec, fields)
		if len(issues) > 0 {
			errs = append(errs, RowError{Row: num, Issues: issues})
			continue
		}
		valid = append(valid, rec)
	}
	return valid, errs
}

// ValidateRecord checks one candidate record against the schema and returns
// human-readable issues, empty when the record is acceptable.
func ValidateRecord(rec Record, fields []Field) []string {
	var issues []string
	for _, f := range fields {
		raw := strings.TrimSpace(UnsanitizeCell(rec[f.Key]))
		if raw == "" {
			if f.Required {
				issues = append(issues, fmt.Sprintf("%s is required", f.Label))
			}
			continue
		}
		if msg := checkKind(f, raw); msg != "" {
			issues = append(issues, msg)
		}
	}
	return issues
}

func checkKind(f Field, raw string) string {
	switch f.Kind {
	case KindPhone:
		if _, err := NormalizePhone(raw); err != nil {
			return fmt.Sprintf("%s is not a valid phone number", f.Label)
		}
	case KindEmail:
		at := strings.Index(raw, "@")
		if at <= 0 || !strings.Contains(raw[at+1:], ".") {
			return fmt.Sprintf("%s is not a valid email address", f.Label)
		}
	case KindDate:
		if _, ok := ParseDate(raw); !ok {
			return fmt.Sprintf("%s is not a valid date", f.Label)
		}
	case KindNumber:
		if _, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64); err != nil {
			return fmt.Sprintf("%s is not a number", f.Label)
		}
	}
	return ""
}

// NormalizePhone parses a Turkish phone number and returns it in E.164 form.
func NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, "TR")
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// ParseDate tries the accepted layouts in order.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
