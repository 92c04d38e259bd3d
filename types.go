package datefmt

// Field styles accepted by the per-field options. Each field allows a
// subset; see the pattern table for the allowed set per field.
const (
	StyleNarrow  = "narrow"
	StyleLong    = "long"
	StyleShort   = "short"
	Style2Digit  = "2-digit"
	StyleNumeric = "numeric"
)

// Matcher preference values for LocaleMatcher and FormatMatcher.
const (
	MatcherBestFit = "best fit"
	MatcherLookup  = "lookup"
	MatcherBasic   = "basic"
)

// HourCycle is one of the four conventions for rendering the hour component,
// or undefined when no convention has been decided.
type HourCycle int

const (
	HourCycleUndefined HourCycle = iota
	// HourCycleH11 is 12-hour display counting 0-11.
	HourCycleH11
	// HourCycleH12 is 12-hour display counting 1-12.
	HourCycleH12
	// HourCycleH23 is 24-hour display counting 0-23.
	HourCycleH23
	// HourCycleH24 is 24-hour display counting 1-24.
	HourCycleH24
)

func (hc HourCycle) String() string {
	switch hc {
	case HourCycleH11:
		return "h11"
	case HourCycleH12:
		return "h12"
	case HourCycleH23:
		return "h23"
	case HourCycleH24:
		return "h24"
	default:
		return ""
	}
}

// ParseHourCycle maps an hour cycle identifier to its HourCycle value.
func ParseHourCycle(value string) (HourCycle, bool) {
	switch value {
	case "h11":
		return HourCycleH11, true
	case "h12":
		return HourCycleH12, true
	case "h23":
		return HourCycleH23, true
	case "h24":
		return HourCycleH24, true
	}
	return HourCycleUndefined, false
}

// Options captures a caller's formatting request. Zero values mean unset.
// At most one of Hour12 and HourCycle is honored: Hour12, when non nil,
// always takes precedence.
type Options struct {
	Weekday      string
	Era          string
	Year         string
	Month        string
	Day          string
	Hour         string
	Minute       string
	Second       string
	TimeZoneName string

	Hour12    *bool
	HourCycle HourCycle
	TimeZone  string

	LocaleMatcher string
	FormatMatcher string
}

// Bool returns a pointer suitable for Options.Hour12.
func Bool(v bool) *bool {
	return &v
}

func (o *Options) fieldStyle(field string) string {
	if o == nil {
		return ""
	}
	switch field {
	case "weekday":
		return o.Weekday
	case "era":
		return o.Era
	case "year":
		return o.Year
	case "month":
		return o.Month
	case "day":
		return o.Day
	case "hour":
		return o.Hour
	case "minute":
		return o.Minute
	case "second":
		return o.Second
	case "timeZoneName":
		return o.TimeZoneName
	}
	return ""
}

// PartType identifies the semantic kind of one rendered segment.
type PartType string

const (
	PartLiteral      PartType = "literal"
	PartEra          PartType = "era"
	PartYear         PartType = "year"
	PartMonth        PartType = "month"
	PartDay          PartType = "day"
	PartWeekday      PartType = "weekday"
	PartDayPeriod    PartType = "dayPeriod"
	PartHour         PartType = "hour"
	PartMinute       PartType = "minute"
	PartSecond       PartType = "second"
	PartTimeZoneName PartType = "timeZoneName"
)

// Part is one typed segment of a rendered string. The concatenation of all
// part values equals the rendered string exactly, with no gap or overlap.
type Part struct {
	Type  PartType
	Value string
}

// ResolvedOptions reports the configuration a formatter actually uses,
// recovered from its compiled pattern and retained state. Empty field style
// strings mean the field is not rendered; Hour12 is nil when the hour cycle
// is undefined.
type ResolvedOptions struct {
	Locale          string
	Calendar        string
	NumberingSystem string
	TimeZone        string
	HourCycle       HourCycle
	Hour12          *bool

	Weekday      string
	Era          string
	Year         string
	Month        string
	Day          string
	Hour         string
	Minute       string
	Second       string
	TimeZoneName string
}

func (ro *ResolvedOptions) setFieldStyle(field, style string) {
	switch field {
	case "weekday":
		ro.Weekday = style
	case "era":
		ro.Era = style
	case "year":
		ro.Year = style
	case "month":
		ro.Month = style
	case "day":
		ro.Day = style
	case "hour":
		ro.Hour = style
	case "minute":
		ro.Minute = style
	case "second":
		ro.Second = style
	case "timeZoneName":
		ro.TimeZoneName = style
	}
}
