package tabular

import "strings"

// SanitizeCell neutralizes spreadsheet-formula injection. Cell values
// starting with =, +, - or @ are prefixed with a single quote so they stay
// inert when the data is re-exported and opened in a spreadsheet tool.
func SanitizeCell(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@':
		return "'" + v
	}
	return v
}

// UnsanitizeCell strips the protective prefix for values that need their
// original form back (e.g. negative numbers entered as "-5").
func UnsanitizeCell(v string) string {
	if strings.HasPrefix(v, "'") && len(v) > 1 {
		switch v[1] {
		case '=', '+', '-', '@':
			return v[1:]
		}
	}
	return v
}
