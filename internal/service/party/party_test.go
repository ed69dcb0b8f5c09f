package party

import (
	"strings"
	"testing"

	"github.com/omrozmn/x-ear-sub003/internal/tabular"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		full      string
		wantFirst string
		wantLast  string
	}{
		{"simple", "Ayşe Yılmaz", "Ayşe", "Yılmaz"},
		{"middle name joins first", "Mehmet Ali Kaya", "Mehmet Ali", "Kaya"},
		{"single token", "Ayşe", "Ayşe", ""},
		{"extra whitespace", "  Ayşe   Yılmaz  ", "Ayşe", "Yılmaz"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := splitName(tt.full)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)",
					tt.full, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

// A phone entered with a leading + picks up the formula-injection prefix
// during parsing. Committing must store the E.164 form the patient service
// uses, or re-importing an exported file would duplicate every patient.
func TestRestoreRecordYieldsE164Phone(t *testing.T) {
	csv := "Ad Soyad,Telefon\nAyşe Yılmaz,+905321234567\n"
	table, err := tabular.ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}

	mapping := tabular.AutoMap(PatientImportFields, table.Headers)
	valid, errs := tabular.BuildRecords(table, mapping, PatientImportFields)
	if len(errs) != 0 {
		t.Fatalf("BuildRecords() errors = %v", errs)
	}
	if len(valid) != 1 {
		t.Fatalf("BuildRecords() valid rows = %d, want 1", len(valid))
	}

	// The raw record still carries the protective prefix.
	if valid[0]["phone"] != "'+905321234567" {
		t.Fatalf("raw phone = %q, want sanitized form", valid[0]["phone"])
	}

	rec := restoreRecord(valid[0])
	if rec["phone"] != "+905321234567" {
		t.Errorf("restored phone = %q, want %q", rec["phone"], "+905321234567")
	}

	normalized, err := tabular.NormalizePhone(rec["phone"])
	if err != nil {
		t.Fatalf("NormalizePhone(%q) error = %v", rec["phone"], err)
	}
	if normalized != "+905321234567" {
		t.Errorf("normalized phone = %q, want %q", normalized, "+905321234567")
	}
}

func TestPatientImportFieldsRequired(t *testing.T) {
	var required []string
	for _, f := range PatientImportFields {
		if f.Required {
			required = append(required, f.Key)
		}
	}
	if len(required) != 2 {
		t.Fatalf("expected 2 required fields, got %v", required)
	}
	if required[0] != "name" || required[1] != "phone" {
		t.Errorf("required fields = %v, want [name phone]", required)
	}
}
