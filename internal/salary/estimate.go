// Package salary turns partial salary ranges into single comparable figures.
package salary

const (
	// lowerBoundFactor scales a vacancy that only states a minimum
	lowerBoundFactor = 1.2
	// upperBoundFactor scales a vacancy that only states a maximum
	upperBoundFactor = 0.8
)

// Estimate returns a representative salary for a range.
//
// Both bounds give their mean, a lone lower bound is raised by 20% and a lone
// upper bound is lowered by 20%. Results are truncated toward zero. A bound of
// zero counts as missing, and a zero estimate is reported as absent.
func Estimate(from, to *int) (int, bool) {
	lower, hasLower := bound(from)
	upper, hasUpper := bound(to)

	var estimate int
	switch {
	case hasLower && hasUpper:
		estimate = (lower + upper) / 2
	case hasLower:
		estimate = int(float64(lower) * lowerBoundFactor)
	case hasUpper:
		estimate = int(float64(upper) * upperBoundFactor)
	default:
		return 0, false
	}

	if estimate <= 0 {
		return 0, false
	}
	return estimate, true
}

func bound(v *int) (int, bool) {
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

// Average returns the mean of the salaries truncated to an integer.
// It reports false for an empty slice.
func Average(salaries []int) (int, bool) {
	if len(salaries) == 0 {
		return 0, false
	}

	var sum int64
	for _, s := range salaries {
		sum += int64(s)
	}
	return int(sum / int64(len(salaries))), true
}
