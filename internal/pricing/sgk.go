// Package pricing implements the device-assignment pricing rules: SGK
// subsidy resolution, discount application, bilateral quantity handling and
// installment planning. Everything in this package is pure computation;
// persistence and transport live elsewhere.
package pricing

import "log/slog"

// SchemeKeyNoCoverage marks an assignment with no SGK participation.
const SchemeKeyNoCoverage = "no_coverage"

// SchemeRule describes how much SGK contributes for one scheme key.
// Either Amount is set (flat contribution) or CoveragePercent/MaxAmount are
// set (percentage of list price, capped).
type SchemeRule struct {
	Amount          float64 `json:"amount,omitempty"`
	CoveragePercent float64 `json:"coverage_percent,omitempty"`
	MaxAmount       float64 `json:"max_amount,omitempty"`
}

// SchemeTable maps a scheme key (age bracket × employment status) to its rule.
type SchemeTable map[string]SchemeRule

// legacyTable is the fixed fallback used when no server-side scheme table is
// configured. Amounts are TRY contribution sums from the SUT tariff: working
// insured get 75% of the tariff, retired 90%, with the tariff scaled up for
// pediatric brackets.
var legacyTable = SchemeTable{
	"age0to4_working":   {Amount: 6782.72},
	"age0to4_retired":   {Amount: 8139.26},
	"age5to12_working":  {Amount: 5087.04},
	"age5to12_retired":  {Amount: 6104.45},
	"age13to18_working": {Amount: 5934.88},
	"age13to18_retired": {Amount: 7121.86},
	"over18_working":    {Amount: 3391.36},
	"over18_retired":    {Amount: 4069.63},
}

// LegacyTable returns a copy of the built-in fallback scheme table.
func LegacyTable() SchemeTable {
	out := make(SchemeTable, len(legacyTable))
	for k, v := range legacyTable {
		out[k] = v
	}
	return out
}

// EffectiveTable returns the table that should drive subsidy resolution.
// When the server-configured table is nil or empty it falls back to the
// legacy table and reports fallback=true so callers can log it; a silent
// fallback here could mask a misconfigured clinic.
func EffectiveTable(configured SchemeTable) (table SchemeTable, fallback bool) {
	if len(configured) == 0 {
		return LegacyTable(), true
	}
	return configured, false
}

// ResolveSGK returns the per-unit subsidy for a scheme key against a list
// price. The result is clamped to [0, listPrice]; empty and unknown keys
// resolve to zero.
func ResolveSGK(table SchemeTable, key string, listPrice float64) float64 {
	if key == "" || key == SchemeKeyNoCoverage || listPrice <= 0 {
		return 0
	}

	rule, ok := table[key]
	if !ok {
		slog.Debug("sgk: unknown scheme key", "key", key)
		return 0
	}

	var reduction float64
	switch {
	case rule.Amount > 0:
		reduction = rule.Amount
	case rule.CoveragePercent > 0:
		reduction = listPrice * rule.CoveragePercent / 100
		if rule.MaxAmount > 0 && reduction > rule.MaxAmount {
			reduction = rule.MaxAmount
		}
	}

	if reduction < 0 {
		return 0
	}
	if reduction > listPrice {
		return listPrice
	}
	return reduction
}
