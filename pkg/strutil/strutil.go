// Package strutil provides string-classification predicates and trimming
// helpers for raw field values. The predicates answer whether a string
// looks like a number, boolean, date and so on; they do not convert values.
package strutil

import (
	"regexp"
	"strings"
)

// whitespace is the set of characters stripped by the trimming helpers.
const whitespace = " \t\n\r\f\v"

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.Trim(s, whitespace)
}

// TrimLeft removes leading whitespace.
func TrimLeft(s string) string {
	return strings.TrimLeft(s, whitespace)
}

// TrimRight removes trailing whitespace.
func TrimRight(s string) string {
	return strings.TrimRight(s, whitespace)
}

// ToLower lowercases the string.
func ToLower(s string) string {
	return strings.ToLower(s)
}

var (
	numericRe     = regexp.MustCompile(`(?i)^\s*[-+]?\d*\.?\d+(e[-+]?\d+)?\s*$`)
	integerRe     = regexp.MustCompile(`^\s*[-+]?\d+\s*$`)
	hexRe         = regexp.MustCompile(`^\s*0[xX][0-9a-fA-F]+\s*$`)
	octalRe       = regexp.MustCompile(`^\s*0[oO]?[0-7]+\s*$`)
	binaryRe      = regexp.MustCompile(`^\s*0[bB][01]+\s*$`)
	booleanRe     = regexp.MustCompile(`(?i)^\s*(true|false|1|0)\s*$`)
	doubleRe      = regexp.MustCompile(`(?i)^\s*[-+]?\d+\.\d+(e[-+]?\d+)?\s*$`)
	realNumberRe  = regexp.MustCompile(`^\s*[-+]?\d+(\.\d+)?([eE][-+]?\d+)?\s*$`)
	datePatterns  = []*regexp.Regexp{
		// YYYY-MM-DD or YYYY/MM/DD
		regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}$`),
		// DD-MM-YYYY, MM-DD-YYYY and the slash variants
		regexp.MustCompile(`^\d{2}[-/]\d{2}[-/]\d{4}$`),
		// YYYY-MM-DD HH:MM:SS with optional T, milliseconds and timezone
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`),
		// ISO 8601 date or datetime
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?$`),
		// Month name formats: "Jan 1, 2020" or "1 Jan 2020"
		regexp.MustCompile(`^[A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4}$`),
		regexp.MustCompile(`^\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}$`),
	}
)

// IsNumeric reports whether s is a number with an optional sign, optional
// decimal point and optional scientific notation, e.g. "1.23e-4".
func IsNumeric(s string) bool {
	return numericRe.MatchString(s)
}

// IsInteger reports whether s is a signed whole number.
func IsInteger(s string) bool {
	return integerRe.MatchString(s)
}

// IsHexadecimal reports whether s is a 0x-prefixed hexadecimal number.
func IsHexadecimal(s string) bool {
	return hexRe.MatchString(s)
}

// IsOctal reports whether s is an octal number with an optional 0o prefix.
func IsOctal(s string) bool {
	return octalRe.MatchString(s)
}

// IsBinary reports whether s is a 0b-prefixed binary number.
func IsBinary(s string) bool {
	return binaryRe.MatchString(s)
}

// IsBoolean reports whether s is "true", "false", "1" or "0", ignoring
// case.
func IsBoolean(s string) bool {
	return booleanRe.MatchString(s)
}

// IsDouble reports whether s is a floating-point number with a required
// decimal point, e.g. "3.14" or "-1.5e10".
func IsDouble(s string) bool {
	return doubleRe.MatchString(s)
}

// IsDoubleOptionalDecimal reports whether s is a floating-point number
// whose decimal point is optional; equivalent to IsNumeric.
func IsDoubleOptionalDecimal(s string) bool {
	return numericRe.MatchString(s)
}

// IsRealNumber reports whether s is a real number: at least one digit
// before an optional decimal part, with optional exponent.
func IsRealNumber(s string) bool {
	return realNumberRe.MatchString(s)
}

// IsDate reports whether s matches a common date or datetime format:
// ISO 8601 dates and datetimes, day-first and month-first numeric forms,
// and month-name forms such as "Jan 1, 2020".
func IsDate(s string) bool {
	s = Trim(s)
	for _, re := range datePatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
