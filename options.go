package datefmt

import "fmt"

// Required names the field groups a call site needs populated.
type Required int

const (
	RequiredDate Required = iota
	RequiredTime
	RequiredAny
)

// Defaults names the field groups to fill in when nothing was requested.
type Defaults int

const (
	DefaultsDate Defaults = iota
	DefaultsTime
	DefaultsAll
)

// toDateTimeOptions applies the required/defaults policy: when none of the
// required fields was requested, the default fields are set to numeric. The
// input is never mutated; a nil input counts as an empty option set.
func toDateTimeOptions(input *Options, required Required, defaults Defaults) *Options {
	out := &Options{}
	if input != nil {
		*out = *input
	}

	needsDefault := true
	if required == RequiredAny || required == RequiredDate {
		needsDefault = out.Weekday == "" && out.Year == "" && out.Month == "" && out.Day == ""
	}
	// Both groups apply under RequiredAny, combined with AND.
	if required == RequiredAny || required == RequiredTime {
		needsDefault = needsDefault && out.Hour == "" && out.Minute == "" && out.Second == ""
	}

	if needsDefault {
		if defaults == DefaultsAll || defaults == DefaultsDate {
			out.Year = StyleNumeric
			out.Month = StyleNumeric
			out.Day = StyleNumeric
		}
		if defaults == DefaultsAll || defaults == DefaultsTime {
			out.Hour = StyleNumeric
			out.Minute = StyleNumeric
			out.Second = StyleNumeric
		}
	}

	return out
}

// validateOptions rejects styles outside a field's allowed set and matcher
// values outside their enumerations.
func validateOptions(o *Options) error {
	if o == nil {
		return nil
	}

	for _, item := range patternItems {
		style := o.fieldStyle(item.field)
		if style == "" {
			continue
		}
		if !item.allowsStyle(style) {
			return fmt.Errorf("%w: %s style %q", ErrInvalidOptionValue, item.field, style)
		}
	}

	switch o.LocaleMatcher {
	case "", MatcherBestFit, MatcherLookup:
	default:
		return fmt.Errorf("%w: localeMatcher %q", ErrInvalidOptionValue, o.LocaleMatcher)
	}

	switch o.FormatMatcher {
	case "", MatcherBestFit, MatcherBasic:
	default:
		return fmt.Errorf("%w: formatMatcher %q", ErrInvalidOptionValue, o.FormatMatcher)
	}

	return nil
}
