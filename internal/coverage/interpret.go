package coverage

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// divisionPlaces bounds the quotient of a ratio well beyond the tenths digit
// the result is rounded to.
const divisionPlaces = 32

const ratioSeparator = "of"

var hundred = decimal.NewFromInt(100)

// Only plain positional notation is accepted. Exponent forms such as 1e-9
// would make rescaling cost grow with the exponent.
var (
	plainFraction = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	plainCount    = regexp.MustCompile(`^-?\d+$`)
)

// thousandsSeparators are removed from ratio operands before parsing.
var thousandsSeparators = strings.NewReplacer(
	",", "",
	"'", "",
	" ", "",
	"\u00a0", "",
	"\u202f", "",
)

// Interpreter turns one captured fragment into a coverage percentage.
type Interpreter interface {
	Interpret(fragment string) (decimal.Decimal, error)
}

// fractionInterpreter reads Cobertura fragments: a plain decimal fraction in [0, 1].
type fractionInterpreter struct{}

// missedRatioInterpreter reads JaCoCo fragments: "<missed> of <total>".
type missedRatioInterpreter struct{}

func InterpreterFor(mode Mode) Interpreter {
	if mode == Cobertura {
		return fractionInterpreter{}
	}
	return missedRatioInterpreter{}
}

func (fractionInterpreter) Interpret(fragment string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(fragment)
	if !plainFraction.MatchString(trimmed) {
		return decimal.Decimal{}, &MalformedFragmentError{Fragment: fragment, Reason: "not a number"}
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, &MalformedFragmentError{
			Fragment: fragment,
			Reason:   "not a number",
			Err:      errors.Wrap(err, "parse fraction"),
		}
	}
	return value.Mul(hundred), nil
}

func (missedRatioInterpreter) Interpret(fragment string) (decimal.Decimal, error) {
	missedText, totalText, found := strings.Cut(fragment, ratioSeparator)
	if !found {
		return decimal.Decimal{}, &MalformedFragmentError{
			Fragment: fragment,
			Reason:   "missing \"of\" separator",
		}
	}

	missed, err := parseCount(fragment, missedText)
	if err != nil {
		return decimal.Decimal{}, err
	}
	total, err := parseCount(fragment, totalText)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if total.IsZero() {
		return decimal.Decimal{}, &MalformedFragmentError{Fragment: fragment, Reason: "total is zero"}
	}
	if missed.GreaterThan(total) {
		return decimal.Decimal{}, &MalformedFragmentError{Fragment: fragment, Reason: "missed count exceeds total"}
	}

	missedPercent := missed.Mul(hundred).DivRound(total, divisionPlaces)
	return hundred.Sub(missedPercent), nil
}

func parseCount(fragment string, operand string) (decimal.Decimal, error) {
	cleaned := thousandsSeparators.Replace(strings.TrimSpace(operand))
	if !plainCount.MatchString(cleaned) {
		return decimal.Decimal{}, &MalformedFragmentError{Fragment: fragment, Reason: "not a count"}
	}
	count, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, &MalformedFragmentError{
			Fragment: fragment,
			Reason:   "not a count",
			Err:      errors.Wrapf(err, "parse %q", cleaned),
		}
	}
	if count.IsNegative() {
		return decimal.Decimal{}, &MalformedFragmentError{Fragment: fragment, Reason: "negative count"}
	}
	return count, nil
}
