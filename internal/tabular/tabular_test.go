package tabular

import (
	"bytes"
	"strings"
	"testing"
)

var patientFields = []Field{
	{Key: "name", Label: "Ad Soyad", Required: true, Kind: KindText},
	{Key: "phone", Label: "Telefon", Required: true, Kind: KindPhone},
	{Key: "email", Label: "E-posta", Kind: KindEmail},
	{Key: "tax_id", Label: "TC Kimlik No", Kind: KindText},
	{Key: "birth_date", Label: "Doğum Tarihi", Kind: KindDate},
	{Key: "address", Label: "Adres", Kind: KindText},
}

func TestParseCSV(t *testing.T) {
	in := "Ad Soyad,Telefon\nAyşe Yılmaz,05321234567\nMehmet Demir,05329876543\n"

	table, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(table.Headers) != 2 {
		t.Fatalf("got %d headers, want 2", len(table.Headers))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if table.Rows[0][0] != "Ayşe Yılmaz" {
		t.Errorf("first cell = %q", table.Rows[0][0])
	}
}

func TestParseCSV_Malformed(t *testing.T) {
	// Unterminated quote: parser must degrade to an empty table, not panic.
	table, err := ParseCSV(strings.NewReader("a,b\n\"broken,1\n"))
	if err != ErrNoRows {
		t.Errorf("ParseCSV(malformed) error = %v, want ErrNoRows", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("malformed input produced %d rows", len(table.Rows))
	}
}

func TestAutoMap_TurkishHeaders(t *testing.T) {
	headers := []string{"AD SOYAD", "telefon", "e-posta", "Adres"}

	m := AutoMap(patientFields, headers)

	if idx, ok := m["name"]; !ok || idx != 0 {
		t.Errorf(`"AD SOYAD" should map to name, got %v`, m)
	}
	if idx, ok := m["phone"]; !ok || idx != 1 {
		t.Errorf("telefon should map to phone, got %v", m)
	}
	if idx, ok := m["email"]; !ok || idx != 2 {
		t.Errorf("e-posta should map to email, got %v", m)
	}
	if _, ok := m["birth_date"]; ok {
		t.Error("birth_date should stay unmapped")
	}
}

func TestAutoMap_Containment(t *testing.T) {
	// Header contains the field label and vice versa.
	m := AutoMap(patientFields, []string{"Hasta Ad Soyad Bilgisi", "Tel"})
	if idx, ok := m["name"]; !ok || idx != 0 {
		t.Errorf("containing header should match name, got %v", m)
	}
	if idx, ok := m["phone"]; !ok || idx != 1 {
		t.Errorf("contained header should match phone, got %v", m)
	}
}

func TestMappingOverride(t *testing.T) {
	m := Mapping{"name": 0, "phone": 1}

	m.Override("email", 1) // steals phone's column
	if _, ok := m["phone"]; ok {
		t.Error("column 1 should have been released from phone")
	}
	if m["email"] != 1 {
		t.Error("email should now bind column 1")
	}

	m.Override("email", -1)
	if _, ok := m["email"]; ok {
		t.Error("negative index should unmap the field")
	}
}

func TestBuildRecords_RowNumbersSurviveBlankLines(t *testing.T) {
	csv := "Ad Soyad,Telefon\nAyşe Yılmaz,05321234567\n,\nAli Kaya,not-a-phone\n"
	table, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2 with the blank row dropped", len(table.Rows))
	}

	valid, errs := BuildRecords(table, AutoMap(patientFields, table.Headers), patientFields)
	if len(valid) != 1 {
		t.Fatalf("got %d valid records, want 1", len(valid))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d row errors, want 1", len(errs))
	}

	// The bad row sits on data row 3 of the file; the dropped blank row on
	// row 2 must not shift its reported position.
	if errs[0].Row != 3 {
		t.Errorf("error row = %d, want 3", errs[0].Row)
	}
}

func TestBuildRecords_InvalidRowsReported(t *testing.T) {
	table := &Table{
		Headers: []string{"Ad Soyad", "Telefon"},
		Rows: [][]string{
			{"Ayşe Yılmaz", "05321234567"},
			{"", "05329876543"},         // missing required name
			{"Ali Kaya", "not-a-phone"}, // bad phone
		},
	}
	mapping := AutoMap(patientFields, table.Headers)

	valid, errs := BuildRecords(table, mapping, patientFields)

	if len(valid) != 1 {
		t.Fatalf("got %d valid records, want 1", len(valid))
	}
	if len(errs) != 2 {
		t.Fatalf("got %d row errors, want 2", len(errs))
	}
	if errs[0].Row != 2 || errs[1].Row != 3 {
		t.Errorf("row numbers = %d, %d; want 1-based 2 and 3", errs[0].Row, errs[1].Row)
	}
	if len(errs[0].Issues) == 0 || !strings.Contains(errs[0].Issues[0], "Ad Soyad") {
		t.Errorf("issue should name the field label, got %v", errs[0].Issues)
	}
}

func TestNormalizePhone(t *testing.T) {
	got, err := NormalizePhone("0532 123 45 67")
	if err != nil {
		t.Fatalf("NormalizePhone() error = %v", err)
	}
	if got != "+905321234567" {
		t.Errorf("NormalizePhone() = %q, want +905321234567", got)
	}

	if _, err := NormalizePhone("12"); err == nil {
		t.Error("expected error for junk phone input")
	}
}

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+90 532", "'+90 532"},
		{"-5", "'-5"},
		{"@handle", "'@handle"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeCell(tt.in); got != tt.want {
			t.Errorf("SanitizeCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := UnsanitizeCell("'-5"); got != "-5" {
		t.Errorf("UnsanitizeCell() = %q, want -5", got)
	}
	if got := UnsanitizeCell("'quoted"); got != "'quoted" {
		t.Errorf("UnsanitizeCell should leave ordinary quotes alone, got %q", got)
	}
}

func TestExportCSV_RoundTrip(t *testing.T) {
	headers := []string{"Ad Soyad", "Telefon", "E-posta", "TC Kimlik No", "Doğum Tarihi", "Adres", "Durum"}
	rows := [][]string{
		{"Ayşe Yılmaz", "+905321234567", "ayse@example.com", "12345678901", "1970-04-12", "İzmir, \"Karşıyaka\"", "active"},
		{"Mehmet Demir", "+905329876543", "", "", "", "", "lead"},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, headers, rows); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	table, err := ParseCSV(&buf)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(table.Rows) != len(rows) {
		t.Fatalf("round-trip produced %d rows, want %d", len(table.Rows), len(rows))
	}
	if table.Rows[0][5] != "İzmir, \"Karşıyaka\"" {
		t.Errorf("quoted field lost in round-trip: %q", table.Rows[0][5])
	}
	// "+90..." cells come back with the protective prefix; stripping it
	// recovers the original value.
	if got := UnsanitizeCell(table.Rows[0][1]); got != "+905321234567" {
		t.Errorf("phone round-trip = %q", got)
	}
}

func TestSession_Flow(t *testing.T) {
	s := NewSession(patientFields)

	if err := s.Next(); err != ErrInvalidTransition {
		t.Error("Next from select_file without a file should fail")
	}

	s.SetFile(&Table{
		Headers: []string{"Ad Soyad", "Telefon"},
		Rows:    [][]string{{"Ayşe Yılmaz", "05321234567"}},
	})
	if s.Stage() != StageMapHeaders {
		t.Fatalf("stage = %s, want map_headers", s.Stage())
	}
	if len(s.Mapping()) == 0 {
		t.Fatal("SetFile should auto-map headers")
	}

	if err := s.Next(); err != nil {
		t.Fatalf("Next to preview: %v", err)
	}
	if s.Stage() != StagePreview || len(s.Valid()) != 1 {
		t.Fatalf("preview stage broken: stage=%s valid=%d", s.Stage(), len(s.Valid()))
	}

	if err := s.Next(); err != nil {
		t.Fatalf("Next to upload: %v", err)
	}
	if s.Stage() != StageUpload {
		t.Fatalf("stage = %s, want upload", s.Stage())
	}

	// Re-selecting a file resets mapping and preview state.
	s.SetFile(&Table{Headers: []string{"Telefon"}, Rows: [][]string{{"05321234567"}}})
	if s.Stage() != StageMapHeaders || s.Valid() != nil {
		t.Error("SetFile should reset downstream state")
	}
}

func TestSession_BackRevalidates(t *testing.T) {
	s := NewSession(patientFields)
	s.SetFile(&Table{
		Headers: []string{"Ad Soyad", "Telefon"},
		Rows:    [][]string{{"Ayşe Yılmaz", "05321234567"}},
	})
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}

	if err := s.Back(); err != nil {
		t.Fatalf("Back to map_headers: %v", err)
	}
	if s.Valid() != nil || s.Errors() != nil {
		t.Error("Back into mapping should discard preview results")
	}

	if err := s.Back(); err != nil {
		t.Fatalf("Back to select_file: %v", err)
	}
	if err := s.Back(); err != ErrInvalidTransition {
		t.Error("Back past select_file should fail")
	}
}

func TestSession_UploadRequiresValidRows(t *testing.T) {
	s := NewSession(patientFields)
	s.SetFile(&Table{
		Headers: []string{"Ad Soyad", "Telefon"},
		Rows:    [][]string{{"", "junk"}},
	})
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if err := s.Next(); err != ErrNoRows {
		t.Errorf("Next to upload with zero valid rows = %v, want ErrNoRows", err)
	}
}
