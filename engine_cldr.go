package datefmt

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// CLDREngine is the built-in rendering engine. It serves patterns and
// calendar names from static per-locale bundles (see engine_cldr_data.go)
// plus any bundles registered at runtime. Gregorian calendar only.
type CLDREngine struct {
	mu      sync.RWMutex
	bundles map[string]cldrDateTimeBundle
}

// NewCLDREngine seeds an engine with the generated locale bundles.
func NewCLDREngine() *CLDREngine {
	bundles := make(map[string]cldrDateTimeBundle, len(cldrDateTimeBundles))
	for locale, bundle := range cldrDateTimeBundles {
		bundles[locale] = bundle
	}
	return &CLDREngine{bundles: bundles}
}

var defaultEngineOnce = sync.OnceValue(NewCLDREngine)

// DefaultEngine returns the process-wide built-in engine.
func DefaultEngine() *CLDREngine {
	return defaultEngineOnce()
}

// RegisterBundle adds or replaces the bundle for a locale.
func (e *CLDREngine) RegisterBundle(locale string, bundle cldrDateTimeBundle) {
	if locale == "" || bundle.Names == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bundles == nil {
		e.bundles = make(map[string]cldrDateTimeBundle)
	}
	e.bundles[locale] = bundle
}

// AvailableLocales lists the locales with bundle data, sorted.
func (e *CLDREngine) AvailableLocales() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	locales := make([]string, 0, len(e.bundles))
	for locale := range e.bundles {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// bundleFor finds the bundle for a tag, walking the parent chain so that
// e.g. en-AU falls back to en.
func (e *CLDREngine) bundleFor(tag language.Tag) (cldrDateTimeBundle, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	candidate := stripLocaleExtensions(tag).String()
	for candidate != "" {
		if bundle, ok := e.bundles[candidate]; ok {
			return bundle, true
		}
		candidate = localeParentTag(candidate)
	}
	return cldrDateTimeBundle{}, false
}

// CanonicalTimeZoneID resolves a syntactically canonical id against the host
// timezone database. Unknown zones map to the UnknownZoneID sentinel.
func (e *CLDREngine) CanonicalTimeZoneID(id string) (string, bool) {
	if id == "" || id == "UTC" {
		return "UTC", true
	}
	if _, err := time.LoadLocation(id); err != nil {
		return UnknownZoneID, false
	}
	return id, true
}

type gregorianCalendar struct {
	location *time.Location
	zoneID   string
}

func (c *gregorianCalendar) Type() string {
	return "gregorian"
}

func (c *gregorianCalendar) TimeZoneID() string {
	return c.zoneID
}

// CreateCalendar builds gregorian calendar state bound to the given zone; an
// empty id selects the process default zone.
func (e *CLDREngine) CreateCalendar(locale language.Tag, timeZoneID string) (Calendar, error) {
	switch timeZoneID {
	case "":
		return &gregorianCalendar{location: time.Local, zoneID: time.Local.String()}, nil
	case "UTC":
		return &gregorianCalendar{location: time.UTC, zoneID: "UTC"}, nil
	}

	loc, err := time.LoadLocation(timeZoneID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, timeZoneID)
	}
	return &gregorianCalendar{location: loc, zoneID: timeZoneID}, nil
}

// skeletonFields is a skeleton decomposed into its per-field token runs.
type skeletonFields struct {
	weekday string
	era     string
	year    string
	month   string
	day     string
	hour    string
	minute  string
	second  string
	zone    string
}

func parseSkeleton(skeleton string) (skeletonFields, error) {
	var f skeletonFields
	for i := 0; i < len(skeleton); {
		ch := skeleton[i]
		j := i
		for j < len(skeleton) && skeleton[j] == ch {
			j++
		}
		run := skeleton[i:j]
		switch ch {
		case 'E', 'c':
			f.weekday = run
		case 'G':
			f.era = run
		case 'y':
			f.year = run
		case 'M', 'L':
			f.month = run
		case 'd':
			f.day = run
		case 'h', 'H', 'k', 'K', 'j':
			f.hour = run
		case 'm':
			f.minute = run
		case 's':
			f.second = run
		case 'z':
			f.zone = run
		default:
			return f, fmt.Errorf("datefmt: unexpected skeleton token %q", run)
		}
		i = j
	}
	return f, nil
}

// CompileBestPattern arranges the skeleton's fields into the locale's
// concrete pattern using the bundle's date templates and preferred hour
// token.
func (e *CLDREngine) CompileBestPattern(locale language.Tag, skeleton string) (Pattern, error) {
	bundle, ok := e.bundleFor(locale)
	if !ok {
		return nil, fmt.Errorf("datefmt: no pattern data for locale %q", locale)
	}

	fields, err := parseSkeleton(skeleton)
	if err != nil {
		return nil, err
	}

	return &cldrPattern{
		text:  bundle.bestPattern(fields),
		names: bundle.Names,
	}, nil
}

// bestPattern builds the locale pattern for the requested fields. Requested
// token widths survive into the date part so the caller's 2-digit/numeric and
// narrow/long/short choices are honored; clock widths follow timePattern.
func (b cldrDateTimeBundle) bestPattern(f skeletonFields) string {
	if strings.HasPrefix(f.hour, "j") {
		f.hour = strings.Repeat(string(b.HourToken), len(f.hour))
	}

	date := b.datePattern(f)
	clock := b.timePattern(f)

	switch {
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		glued := strings.Replace(b.GlueFormat, "{date}", date, 1)
		return strings.Replace(glued, "{time}", clock, 1)
	}
}

func (b cldrDateTimeBundle) datePattern(f skeletonFields) string {
	monthText := len(f.month) >= 3

	key := ""
	switch {
	case f.year != "" && f.month != "" && f.day != "":
		key = "yMd"
	case f.year != "" && f.month != "":
		key = "yM"
	case f.month != "" && f.day != "":
		key = "Md"
	case f.year != "":
		key = "y"
	case f.month != "":
		key = "M"
	case f.day != "":
		key = "d"
	}
	if monthText && key != "" {
		key = strings.Replace(key, "M", "MMM", 1)
	}

	pattern := ""
	if key != "" {
		base, ok := b.DateFormats[key]
		if !ok {
			base = genericDatePattern(f)
		}
		pattern = substituteDateWidths(base, f)
	} else if f.year != "" || f.day != "" {
		// No template covers year+day without month.
		pattern = substituteDateWidths(genericDatePattern(f), f)
	}

	if f.weekday != "" {
		if pattern == "" {
			pattern = f.weekday
		} else {
			pattern = f.weekday + ", " + pattern
		}
	}
	if f.era != "" {
		if pattern == "" {
			pattern = f.era
		} else {
			pattern = pattern + " " + f.era
		}
	}
	return pattern
}

func genericDatePattern(f skeletonFields) string {
	parts := make([]string, 0, 3)
	if f.month != "" {
		if len(f.month) >= 3 {
			parts = append(parts, "MMM")
		} else {
			parts = append(parts, "M")
		}
	}
	if f.day != "" {
		parts = append(parts, "d")
	}
	if f.year != "" {
		parts = append(parts, "y")
	}
	return strings.Join(parts, " ")
}

// substituteDateWidths rewrites the y/M/L/d runs of a date template with the
// requested token widths, leaving quoted literals untouched.
func substituteDateWidths(pattern string, f skeletonFields) string {
	var out strings.Builder
	for i := 0; i < len(pattern); {
		ch := pattern[i]
		if ch == '\'' {
			j := i + 1
			for j < len(pattern) && pattern[j] != '\'' {
				j++
			}
			if j < len(pattern) {
				j++
			}
			out.WriteString(pattern[i:j])
			i = j
			continue
		}

		j := i
		for j < len(pattern) && pattern[j] == ch {
			j++
		}
		switch ch {
		case 'y':
			out.WriteString(f.year)
		case 'M', 'L':
			out.WriteString(f.month)
		case 'd':
			out.WriteString(f.day)
		default:
			out.WriteString(pattern[i:j])
		}
		i = j
	}
	return out.String()
}

func (b cldrDateTimeBundle) timePattern(f skeletonFields) string {
	// Composite clocks follow the CLDR convention of two-digit minutes and
	// seconds regardless of the requested width; a lone field keeps it.
	minute := f.minute
	if f.hour != "" && minute != "" {
		minute = "mm"
	}
	second := f.second
	if (f.hour != "" || f.minute != "") && second != "" {
		second = "ss"
	}

	clock := ""
	switch {
	case f.hour != "":
		clock = f.hour
		if minute != "" {
			clock += ":" + minute
		}
		if second != "" {
			clock += ":" + second
		}
	case minute != "":
		clock = minute
		if second != "" {
			clock += ":" + second
		}
	case second != "":
		clock = second
	}

	if f.hour != "" && (f.hour[0] == 'h' || f.hour[0] == 'K') {
		clock += " a"
	}

	if f.zone != "" {
		if clock == "" {
			clock = f.zone
		} else {
			clock += " " + f.zone
		}
	}
	return clock
}

type cldrPattern struct {
	text  string
	names *calendarNames
}

func (p *cldrPattern) String() string {
	return p.text
}

func (p *cldrPattern) Render(cal Calendar, t time.Time) (string, error) {
	text, _, err := p.RenderWithFields(cal, t)
	return text, err
}

func (p *cldrPattern) RenderWithFields(cal Calendar, t time.Time) (string, []FieldPosition, error) {
	gc, ok := cal.(*gregorianCalendar)
	if !ok {
		return "", nil, fmt.Errorf("datefmt: calendar %T not created by this engine", cal)
	}
	local := t.In(gc.location)

	var b strings.Builder
	var fields []FieldPosition
	text := p.text
	for i := 0; i < len(text); {
		ch := text[i]
		switch {
		case ch == '\'':
			i++
			for i < len(text) {
				if text[i] == '\'' {
					if i+1 < len(text) && text[i+1] == '\'' {
						b.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				b.WriteByte(text[i])
				i++
			}
		case isPatternLetter(ch):
			j := i
			for j < len(text) && text[j] == ch {
				j++
			}
			count := j - i
			value, code, ok := renderPatternField(ch, count, local, p.names)
			if ok {
				begin := b.Len()
				b.WriteString(value)
				fields = append(fields, FieldPosition{Field: code, Begin: begin, End: begin + len(value)})
			} else {
				b.WriteString(text[i:j])
			}
			i = j
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String(), fields, nil
}

func isPatternLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func padNumber(value, width int) string {
	s := fmt.Sprintf("%d", value)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// gmtOffsetName renders the long timezone form as a GMT offset, e.g.
// GMT+05:30. A zero offset is plain GMT.
func gmtOffsetName(offsetSeconds int) string {
	if offsetSeconds == 0 {
		return "GMT"
	}
	sign := "+"
	if offsetSeconds < 0 {
		sign = "-"
		offsetSeconds = -offsetSeconds
	}
	hours := offsetSeconds / 3600
	minutes := (offsetSeconds % 3600) / 60
	return fmt.Sprintf("GMT%s%02d:%02d", sign, hours, minutes)
}

func renderPatternField(ch byte, count int, t time.Time, names *calendarNames) (string, FieldCode, bool) {
	year := t.Year()
	eraIndex := 1
	displayYear := year
	if year <= 0 {
		eraIndex = 0
		displayYear = 1 - year
	}

	switch ch {
	case 'G':
		switch {
		case count >= 5:
			return names.ErasNarrow[eraIndex], FieldEra, true
		case count == 4:
			return names.ErasLong[eraIndex], FieldEra, true
		default:
			return names.ErasShort[eraIndex], FieldEra, true
		}
	case 'y':
		if count == 2 {
			return padNumber(displayYear%100, 2), FieldYear, true
		}
		return padNumber(displayYear, count), FieldYear, true
	case 'M', 'L':
		month := int(t.Month())
		switch {
		case count >= 5:
			return names.MonthsNarrow[month-1], FieldMonth, true
		case count == 4:
			return names.MonthsLong[month-1], FieldMonth, true
		case count == 3:
			return names.MonthsShort[month-1], FieldMonth, true
		default:
			return padNumber(month, count), FieldMonth, true
		}
	case 'd':
		return padNumber(t.Day(), count), FieldDay, true
	case 'E', 'c':
		weekday := int(t.Weekday())
		switch {
		case count >= 5:
			return names.WeekdaysNarrow[weekday], FieldWeekday, true
		case count == 4:
			return names.WeekdaysLong[weekday], FieldWeekday, true
		default:
			return names.WeekdaysShort[weekday], FieldWeekday, true
		}
	case 'a':
		if t.Hour() < 12 {
			return names.DayPeriods[0], FieldDayPeriod, true
		}
		return names.DayPeriods[1], FieldDayPeriod, true
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return padNumber(hour, count), FieldHour, true
	case 'H':
		return padNumber(t.Hour(), count), FieldHour, true
	case 'K':
		return padNumber(t.Hour()%12, count), FieldHour, true
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return padNumber(hour, count), FieldHour, true
	case 'm':
		return padNumber(t.Minute(), count), FieldMinute, true
	case 's':
		return padNumber(t.Second(), count), FieldSecond, true
	case 'z':
		name, offset := t.Zone()
		if count >= 4 || name == "" {
			return gmtOffsetName(offset), FieldTimeZone, true
		}
		return name, FieldTimeZone, true
	}
	return "", 0, false
}
