package tabular

import (
	"strings"
	"unicode"
)

// FieldKind drives per-cell validation during import.
type FieldKind string

const (
	KindText   FieldKind = "text"
	KindPhone  FieldKind = "phone"
	KindEmail  FieldKind = "email"
	KindDate   FieldKind = "date"
	KindNumber FieldKind = "number"
)

// Field describes one canonical entity field the import can target.
// Label is the human-facing Turkish column name used for auto-matching
// ("Ad Soyad", "Telefon", ...).
type Field struct {
	Key      string
	Label    string
	Required bool
	Kind     FieldKind
}

// Mapping binds canonical field keys to column indexes of the parsed file.
// A missing key means the field is unmapped.
type Mapping map[string]int

// normalizeHeader lowercases and strips everything that is not a letter or
// digit, so "Ad Soyad", "ad_soyad" and "AdSoyad" all compare equal. Unicode
// letters are kept so Turkish headers match.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AutoMap matches each field to the most similar file header using
// normalized containment in either direction: the header may contain the
// field label or the field label may contain the header. The first
// unclaimed header wins; users can override any binding afterwards.
func AutoMap(fields []Field, headers []string) Mapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	mapping := make(Mapping, len(fields))
	claimed := make(map[int]bool, len(headers))

	for _, f := range fields {
		want := normalizeHeader(f.Label)
		if want == "" {
			continue
		}
		for i, have := range normalized {
			if claimed[i] || have == "" {
				continue
			}
			if strings.Contains(have, want) || strings.Contains(want, have) {
				mapping[f.Key] = i
				claimed[i] = true
				break
			}
		}
	}
	return mapping
}

// Override rebinds one field to a column, releasing any previous binding of
// that column. idx < 0 unmaps the field.
func (m Mapping) Override(fieldKey string, idx int) {
	if idx < 0 {
		delete(m, fieldKey)
		return
	}
	for k, v := range m {
		if v == idx && k != fieldKey {
			delete(m, k)
		}
	}
	m[fieldKey] = idx
}
