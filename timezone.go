package datefmt

import (
	"fmt"
	"strings"
)

// The casing in this file is deliberately ASCII only. Locale sensitive case
// mapping would make canonicalization depend on the caller's active locale
// (Turkish maps i/I differently), and timezone identifiers are defined over
// the ASCII range.

func isASCIIAlpha(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func asciiToUpper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}

func asciiToLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}

func asciiUpperString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		b.WriteByte(asciiToUpper(input[i]))
	}
	return b.String()
}

// gmtOffsetZoneID canonicalizes the fixed-offset identifiers under the
// ETC/GMT prefix: Etc/GMT0, Etc/GMT+d, Etc/GMT-d and Etc/GMT+1d / Etc/GMT-1d
// with the last digit bounded to 0-4. Anything else yields "".
func gmtOffsetZoneID(upper string) string {
	const prefix = "Etc/GMT"
	switch len(upper) {
	case 8:
		if upper[7] == '0' {
			return prefix + "0"
		}
	case 9:
		if (upper[7] == '+' || upper[7] == '-') && upper[8] >= '0' && upper[8] <= '9' {
			return prefix + string(upper[7]) + string(upper[8])
		}
	case 10:
		if (upper[7] == '+' || upper[7] == '-') && upper[8] == '1' && upper[9] >= '0' && upper[9] <= '4' {
			return prefix + string(upper[7]) + "1" + string(upper[9])
		}
	}
	return ""
}

// titleCaseZoneLocation titlecases an Area/Location identifier over the
// segments delimited by '_', '-' and '/': bueNos_airES becomes Buenos_Aires,
// ho_cHi_minH becomes Ho_Chi_Minh. Two letter segments spelling of, es or au
// stay lowercase (irregular conjunctions in location names). Any character
// outside letters and the three delimiters yields "".
func titleCaseZoneLocation(input string) string {
	out := make([]byte, 0, len(input))
	wordLength := 0
	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case isASCIIAlpha(ch):
			if wordLength == 0 {
				out = append(out, asciiToUpper(ch))
			} else {
				out = append(out, asciiToLower(ch))
			}
			wordLength++
		case ch == '_' || ch == '-' || ch == '/':
			if wordLength == 2 {
				pos := len(out) - 2
				switch string(out[pos:]) {
				case "Of", "Es", "Au":
					out[pos] = asciiToLower(out[pos])
				}
			}
			out = append(out, ch)
			wordLength = 0
		default:
			return ""
		}
	}
	return string(out)
}

// CanonicalizeTimeZoneID validates and canonicalizes a raw timezone
// identifier. The result is either the literal "UTC" or a title-cased
// Area/Location (or Etc/GMT offset) string; invalid input returns
// ErrInvalidTimeZone. This is a purely syntactic step: whether the zone
// actually exists is for the engine's canonical-ID resolver to decide.
func CanonicalizeTimeZoneID(input string) (string, error) {
	upper := asciiUpperString(input)
	if upper == "UTC" || upper == "GMT" || upper == "ETC/UTC" || upper == "ETC/GMT" {
		return "UTC", nil
	}

	// Inputs must conform to Area/Location(/Location)* or Etc/GMT* .
	// Aliases and linked names such as GB-Eire, EST5EDT or US/Pacific are
	// left to the engine.
	if strings.HasPrefix(upper, "ETC/GMT") {
		if id := gmtOffsetZoneID(upper); id != "" {
			return id, nil
		}
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeZone, input)
	}

	if id := titleCaseZoneLocation(input); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeZone, input)
}
