package datefmt

type patternPair struct {
	token string
	style string
}

// patternItem is one immutable row of the pattern table. Pairs are ordered
// longest token first: a shorter token can be a substring of a longer one for
// the same field, so resolution order matters.
type patternItem struct {
	field   string
	pairs   []patternPair
	allowed []string
}

func (it patternItem) tokenForStyle(style string) (string, bool) {
	for _, pair := range it.pairs {
		if pair.style == style {
			return pair.token, true
		}
	}
	return "", false
}

func (it patternItem) allowsStyle(style string) bool {
	for _, allowed := range it.allowed {
		if allowed == style {
			return true
		}
	}
	return false
}

var (
	stylesLongShort              = []string{StyleLong, StyleShort}
	stylesNarrowLongShort        = []string{StyleNarrow, StyleLong, StyleShort}
	styles2DigitNumeric          = []string{Style2Digit, StyleNumeric}
	stylesNarrowLongShortNumeric = []string{StyleNarrow, StyleLong, StyleShort, Style2Digit, StyleNumeric}
)

// patternItems is the canonical field table, in the fixed canonical field
// order used for skeleton building and resolved-option reporting. Built once
// and never mutated.
var patternItems = []patternItem{
	{
		field: "weekday",
		pairs: []patternPair{
			{"EEEEE", StyleNarrow},
			{"EEEE", StyleLong},
			{"EEE", StyleShort},
			{"ccccc", StyleNarrow},
			{"cccc", StyleLong},
			{"ccc", StyleShort},
		},
		allowed: stylesNarrowLongShort,
	},
	{
		field: "era",
		pairs: []patternPair{
			{"GGGGG", StyleNarrow},
			{"GGGG", StyleLong},
			{"GGG", StyleShort},
		},
		allowed: stylesNarrowLongShort,
	},
	{
		field: "year",
		pairs: []patternPair{
			{"yy", Style2Digit},
			{"y", StyleNumeric},
		},
		allowed: styles2DigitNumeric,
	},
	// The L series covers standalone month names some locales produce
	// instead of M.
	{
		field: "month",
		pairs: []patternPair{
			{"MMMMM", StyleNarrow},
			{"MMMM", StyleLong},
			{"MMM", StyleShort},
			{"MM", Style2Digit},
			{"M", StyleNumeric},
			{"LLLLL", StyleNarrow},
			{"LLLL", StyleLong},
			{"LLL", StyleShort},
			{"LL", Style2Digit},
			{"L", StyleNumeric},
		},
		allowed: stylesNarrowLongShortNumeric,
	},
	{
		field: "day",
		pairs: []patternPair{
			{"dd", Style2Digit},
			{"d", StyleNumeric},
		},
		allowed: styles2DigitNumeric,
	},
	{
		field: "hour",
		pairs: []patternPair{
			{"HH", Style2Digit},
			{"H", StyleNumeric},
			{"hh", Style2Digit},
			{"h", StyleNumeric},
			{"kk", Style2Digit},
			{"k", StyleNumeric},
			{"KK", Style2Digit},
			{"K", StyleNumeric},
		},
		allowed: styles2DigitNumeric,
	},
	{
		field: "minute",
		pairs: []patternPair{
			{"mm", Style2Digit},
			{"m", StyleNumeric},
		},
		allowed: styles2DigitNumeric,
	},
	{
		field: "second",
		pairs: []patternPair{
			{"ss", Style2Digit},
			{"s", StyleNumeric},
		},
		allowed: styles2DigitNumeric,
	},
	{
		field: "timeZoneName",
		pairs: []patternPair{
			{"zzzz", StyleLong},
			{"z", StyleShort},
		},
		allowed: stylesLongShort,
	},
}

func hourPatternItem(digit2, numeric string) patternItem {
	return patternItem{
		field:   "hour",
		pairs:   []patternPair{{digit2, Style2Digit}, {numeric, StyleNumeric}},
		allowed: styles2DigitNumeric,
	}
}

// Hour sub-tables per cycle. The cycle-agnostic j tokens let the engine pick
// the locale's native hour representation.
var hourCycleItems = map[HourCycle]patternItem{
	HourCycleUndefined: hourPatternItem("jj", "j"),
	HourCycleH11:       hourPatternItem("KK", "K"),
	HourCycleH12:       hourPatternItem("hh", "h"),
	HourCycleH23:       hourPatternItem("HH", "H"),
	HourCycleH24:       hourPatternItem("kk", "k"),
}

// patternData returns the field table with the hour row replaced by the
// sub-table for the given hour cycle. The returned slice shares the static
// rows and must be treated as read only.
func patternData(hc HourCycle) []patternItem {
	data := make([]patternItem, 0, len(patternItems))
	for _, item := range patternItems {
		if item.field == "hour" {
			data = append(data, hourCycleItems[hc])
			continue
		}
		data = append(data, item)
	}
	return data
}
