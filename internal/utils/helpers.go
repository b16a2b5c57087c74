package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
)

const (
	// SourceHeadHunter is the name of the hh.ru source
	SourceHeadHunter = "headhunter"
	// SourceSuperJob is the name of the superjob.ru source
	SourceSuperJob = "superjob"
	// SourceAll selects every source
	SourceAll = "all"

	// NotAvailable is rendered in place of a missing salary.
	NotAvailable = "-"
)

// currencyAliases maps legacy or platform-specific codes to ISO 4217.
// hh.ru still reports roubles as RUR.
var currencyAliases = map[string]string{
	"RUR": "RUB",
}

// NormalizeCurrency upper-cases a currency code and resolves known aliases
func NormalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if alias, ok := currencyAliases[code]; ok {
		return alias
	}
	return code
}

// SameCurrency compares two currency codes case-insensitively, resolving aliases.
func SameCurrency(a, b string) bool {
	na := NormalizeCurrency(a)
	return na != "" && na == NormalizeCurrency(b)
}

// ParseCurrency validates a currency code against ISO 4217.
func ParseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(NormalizeCurrency(code))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	return unit, nil
}

// FormatSalary formats a salary with thousands separators, or NotAvailable when absent.
func FormatSalary(salary *int) string {
	if salary == nil {
		return NotAvailable
	}
	return humanize.Comma(int64(*salary))
}

// FormatCount formats a vacancy count with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// IsValidSource checks if the source is supported
func IsValidSource(source string) bool {
	validSources := map[string]bool{
		SourceHeadHunter: true,
		SourceSuperJob:   true,
		SourceAll:        true,
	}
	return validSources[strings.ToLower(source)]
}

// ExpandSources resolves a source selector into the ordered list of sources to query.
func ExpandSources(source string) ([]string, error) {
	source = strings.ToLower(strings.TrimSpace(source))
	switch source {
	case "", SourceAll:
		return []string{SourceHeadHunter, SourceSuperJob}, nil
	case SourceHeadHunter, SourceSuperJob:
		return []string{source}, nil
	default:
		return nil, fmt.Errorf("invalid source %q: must be one of: %s, %s, %s", source, SourceAll, SourceHeadHunter, SourceSuperJob)
	}
}
