package coverage

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const percentPlaces = 1

// FormatPercent rounds half away from zero at the tenths place and always
// renders exactly one decimal digit ("83.0").
func FormatPercent(value decimal.Decimal) string {
	return value.Round(percentPlaces).StringFixed(percentPlaces)
}

func FormatLine(lineCoverage string, branchCoverage string) string {
	return fmt.Sprintf("Line Coverage: %s%%\t\tBranch Coverage: %s%%", lineCoverage, branchCoverage)
}
