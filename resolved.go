package datefmt

import "strings"

// ResolvedOptions reports the effective configuration by reverse-matching
// the live compiled pattern against the pattern table: longest token first,
// the first hit per field wins. This recovers what the engine actually
// renders even when it adjusted the requested skeleton to fit the locale.
// The reported style for a field can therefore differ from what the caller
// asked for. Read only and repeatable; mutates nothing.
func (f *Formatter) ResolvedOptions() (ResolvedOptions, error) {
	if err := f.checkReady(); err != nil {
		return ResolvedOptions{}, err
	}

	out := ResolvedOptions{
		Locale:          f.localeTag.String(),
		NumberingSystem: f.numberingSystem,
		HourCycle:       f.hourCycle,
		Hour12:          hour12Value(f.hourCycle),
	}

	// The engine reports legacy calendar type names; rename to BCP 47
	// key values.
	calendar := f.calendar.Type()
	switch calendar {
	case "gregorian":
		calendar = "gregory"
	case "ethiopic-amete-alem":
		calendar = "ethioaa"
	}
	out.Calendar = calendar

	timeZone := f.calendar.TimeZoneID()
	if timeZone == "Etc/UTC" || timeZone == "Etc/GMT" {
		timeZone = "UTC"
	}
	out.TimeZone = timeZone

	pattern := f.pattern.String()
	for _, item := range patternItems {
		for _, pair := range item.pairs {
			if strings.Contains(pattern, pair.token) {
				out.setFieldStyle(item.field, pair.style)
				break
			}
		}
	}

	return out, nil
}
