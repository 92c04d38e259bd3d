// Command datefmt-gen stages locale bundles for the built-in engine from a
// CLDR core data directory.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type bundlePayload struct {
	Locale      string
	HourToken   byte
	DateFormats map[string]string
	Glue        string
	Names       namesPayload
}

type namesPayload struct {
	MonthsLong     [12]string
	MonthsShort    [12]string
	MonthsNarrow   [12]string
	WeekdaysLong   [7]string
	WeekdaysShort  [7]string
	WeekdaysNarrow [7]string
	DayPeriods     [2]string
	ErasLong       [2]string
	ErasShort      [2]string
	ErasNarrow     [2]string
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datefmt-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "datefmt", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "engine_cldr_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	for _, locale := range localeList.items {
		cfg.locales = append(cfg.locales, strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var bundles []bundlePayload
	for _, locale := range cfg.locales {
		payload, err := buildBundle(data, locale)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", locale, err)
		}
		bundles = append(bundles, payload)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Locale < bundles[j].Locale
	})

	source, err := renderSource(cfg.pkg, bundles)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		if idx := strings.LastIndex(candidate, "_"); idx >= 0 {
			candidate = candidate[:idx]
			continue
		}
		break
	}
	return data.RawLDML("root")
}

func findGregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, calendar := range ldml.Dates.Calendars.Calendar {
		if calendar == nil {
			continue
		}
		if common := calendar.GetCommon(); common != nil && common.Type == "gregorian" {
			return calendar
		}
	}
	return nil
}

func buildBundle(data *cldr.CLDR, locale string) (bundlePayload, error) {
	payload := bundlePayload{
		Locale:      locale,
		HourToken:   preferredHourToken(data, locale),
		DateFormats: map[string]string{},
		Glue:        "{date}, {time}",
	}

	ldml := findLDML(data, locale)
	if ldml == nil {
		return payload, fmt.Errorf("missing LDML data")
	}
	calendar := findGregorian(ldml)
	if calendar == nil {
		return payload, fmt.Errorf("missing gregorian calendar data")
	}

	extractMonths(calendar, &payload.Names)
	extractWeekdays(calendar, &payload.Names)
	extractDayPeriods(calendar, &payload.Names)
	extractEras(calendar, &payload.Names)
	extractDateFormats(calendar, payload.DateFormats)

	return payload, nil
}

// preferredHourToken consults the supplemental time data for the locale's
// region; absent data defaults to H.
func preferredHourToken(data *cldr.CLDR, locale string) byte {
	region := ""
	if tag, err := language.Parse(locale); err == nil {
		if r, _ := tag.Region(); r.String() != "ZZ" {
			region = r.String()
		}
	}
	if region == "" || data == nil {
		return 'H'
	}

	supplemental := data.Supplemental()
	if supplemental == nil || supplemental.TimeData == nil {
		return 'H'
	}
	for _, hours := range supplemental.TimeData.Hours {
		if hours == nil || hours.Preferred == "" {
			continue
		}
		for _, territory := range strings.Fields(hours.Regions) {
			if strings.EqualFold(territory, region) {
				return hours.Preferred[0]
			}
		}
	}
	return 'H'
}

func extractMonths(calendar *cldr.Calendar, names *namesPayload) {
	if calendar.Months == nil {
		return
	}
	for _, context := range calendar.Months.MonthContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, width := range context.MonthWidth {
			if width == nil {
				continue
			}
			var dst *[12]string
			switch width.Type {
			case "wide":
				dst = &names.MonthsLong
			case "abbreviated":
				dst = &names.MonthsShort
			case "narrow":
				dst = &names.MonthsNarrow
			default:
				continue
			}
			for _, month := range width.Month {
				if month == nil {
					continue
				}
				index, err := strconv.Atoi(month.Type)
				if err != nil || index < 1 || index > 12 {
					continue
				}
				dst[index-1] = month.Data()
			}
		}
	}
}

var weekdayIndex = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

func extractWeekdays(calendar *cldr.Calendar, names *namesPayload) {
	if calendar.Days == nil {
		return
	}
	for _, context := range calendar.Days.DayContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, width := range context.DayWidth {
			if width == nil {
				continue
			}
			var dst *[7]string
			switch width.Type {
			case "wide":
				dst = &names.WeekdaysLong
			case "abbreviated":
				dst = &names.WeekdaysShort
			case "narrow":
				dst = &names.WeekdaysNarrow
			default:
				continue
			}
			for _, day := range width.Day {
				if day == nil {
					continue
				}
				if index, ok := weekdayIndex[day.Type]; ok {
					dst[index] = day.Data()
				}
			}
		}
	}
}

func extractDayPeriods(calendar *cldr.Calendar, names *namesPayload) {
	if calendar.DayPeriods == nil {
		return
	}
	for _, context := range calendar.DayPeriods.DayPeriodContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, width := range context.DayPeriodWidth {
			if width == nil || width.Type != "abbreviated" {
				continue
			}
			for _, period := range width.DayPeriod {
				if period == nil {
					continue
				}
				switch period.Type {
				case "am":
					names.DayPeriods[0] = period.Data()
				case "pm":
					names.DayPeriods[1] = period.Data()
				}
			}
		}
	}
}

func extractEras(calendar *cldr.Calendar, names *namesPayload) {
	if calendar.Eras == nil {
		return
	}
	assign := func(dst *[2]string, eras []*cldr.Common) {
		for _, era := range eras {
			if era == nil {
				continue
			}
			switch era.Type {
			case "0":
				dst[0] = era.Data()
			case "1":
				dst[1] = era.Data()
			}
		}
	}
	if calendar.Eras.EraNames != nil {
		assign(&names.ErasLong, calendar.Eras.EraNames.Era)
	}
	if calendar.Eras.EraAbbr != nil {
		assign(&names.ErasShort, calendar.Eras.EraAbbr.Era)
	}
	if calendar.Eras.EraNarrow != nil {
		assign(&names.ErasNarrow, calendar.Eras.EraNarrow.Era)
	}
}

// extractDateFormats takes the short and medium standard date formats as the
// yMd and yMMMd templates and derives the smaller field subsets from them.
func extractDateFormats(calendar *cldr.Calendar, formats map[string]string) {
	if calendar.DateFormats == nil {
		return
	}
	for _, length := range calendar.DateFormats.DateFormatLength {
		if length == nil {
			continue
		}
		var key string
		switch length.Type {
		case "short":
			key = "yMd"
		case "medium":
			key = "yMMMd"
		default:
			continue
		}
		for _, dateFormat := range length.DateFormat {
			if dateFormat == nil {
				continue
			}
			for _, pattern := range dateFormat.Pattern {
				if pattern == nil {
					continue
				}
				formats[key] = normalizePattern(pattern.Data())
			}
		}
	}

	if base, ok := formats["yMd"]; ok {
		formats["Md"] = dropPatternField(base, 'y')
		formats["yM"] = dropPatternField(base, 'd')
	}
	if base, ok := formats["yMMMd"]; ok {
		formats["MMMd"] = dropPatternField(base, 'y')
		formats["yMMM"] = dropPatternField(base, 'd')
	}
	formats["y"] = "y"
	formats["M"] = "M"
	formats["MMM"] = "MMM"
	formats["d"] = "d"
}

// normalizePattern collapses padded numeric runs to single tokens; requested
// widths are substituted back in at compile time.
func normalizePattern(pattern string) string {
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
		case 'y', 'd':
			out.WriteByte(ch)
		case 'M', 'L':
			if j-i >= 3 {
				out.WriteString(pattern[i:j])
			} else {
				out.WriteByte(ch)
			}
		default:
			out.WriteString(pattern[i:j])
		}
		i = j
	}
	return out.String()
}

// dropPatternField removes one field run and the separator run next to it.
func dropPatternField(pattern string, field byte) string {
	idx := strings.IndexByte(pattern, field)
	if idx < 0 {
		return pattern
	}
	end := idx
	for end < len(pattern) && pattern[end] == field {
		end++
	}
	// Take out the trailing separator, or the leading one at pattern end.
	sepEnd := end
	for sepEnd < len(pattern) && !isPatternLetter(pattern[sepEnd]) {
		sepEnd++
	}
	if sepEnd > end {
		return pattern[:idx] + pattern[sepEnd:]
	}
	sepStart := idx
	for sepStart > 0 && !isPatternLetter(pattern[sepStart-1]) {
		sepStart--
	}
	return pattern[:sepStart] + pattern[end:]
}

func isPatternLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func renderSource(pkg string, bundles []bundlePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by datefmt-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("type calendarNames struct {\n")
	buf.WriteString("\tMonthsLong     [12]string\n")
	buf.WriteString("\tMonthsShort    [12]string\n")
	buf.WriteString("\tMonthsNarrow   [12]string\n")
	buf.WriteString("\tWeekdaysLong   [7]string\n")
	buf.WriteString("\tWeekdaysShort  [7]string\n")
	buf.WriteString("\tWeekdaysNarrow [7]string\n")
	buf.WriteString("\tDayPeriods     [2]string\n")
	buf.WriteString("\tErasLong       [2]string\n")
	buf.WriteString("\tErasShort      [2]string\n")
	buf.WriteString("\tErasNarrow     [2]string\n")
	buf.WriteString("}\n\n")

	buf.WriteString("type cldrDateTimeBundle struct {\n")
	buf.WriteString("\tHourToken   byte\n")
	buf.WriteString("\tDateFormats map[string]string\n")
	buf.WriteString("\tGlueFormat  string\n")
	buf.WriteString("\tNames       *calendarNames\n")
	buf.WriteString("}\n\n")

	for i, bundle := range bundles {
		fmt.Fprintf(&buf, "var calendarNames%d = calendarNames{\n", i)
		writeStringArray(&buf, "MonthsLong", bundle.Names.MonthsLong[:])
		writeStringArray(&buf, "MonthsShort", bundle.Names.MonthsShort[:])
		writeStringArray(&buf, "MonthsNarrow", bundle.Names.MonthsNarrow[:])
		writeStringArray(&buf, "WeekdaysLong", bundle.Names.WeekdaysLong[:])
		writeStringArray(&buf, "WeekdaysShort", bundle.Names.WeekdaysShort[:])
		writeStringArray(&buf, "WeekdaysNarrow", bundle.Names.WeekdaysNarrow[:])
		writeStringArray(&buf, "DayPeriods", bundle.Names.DayPeriods[:])
		writeStringArray(&buf, "ErasLong", bundle.Names.ErasLong[:])
		writeStringArray(&buf, "ErasShort", bundle.Names.ErasShort[:])
		writeStringArray(&buf, "ErasNarrow", bundle.Names.ErasNarrow[:])
		buf.WriteString("}\n\n")
	}

	buf.WriteString("var cldrDateTimeBundles = map[string]cldrDateTimeBundle{\n")
	for i, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q: {\n", bundle.Locale)
		fmt.Fprintf(&buf, "\t\tHourToken: '%c',\n", bundle.HourToken)
		buf.WriteString("\t\tDateFormats: map[string]string{\n")
		var keys []string
		for key := range bundle.DateFormats {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&buf, "\t\t\t%q: %q,\n", key, bundle.DateFormats[key])
		}
		buf.WriteString("\t\t},\n")
		fmt.Fprintf(&buf, "\t\tGlueFormat: %q,\n", bundle.Glue)
		fmt.Fprintf(&buf, "\t\tNames: &calendarNames%d,\n", i)
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeStringArray(buf *bytes.Buffer, field string, values []string) {
	fmt.Fprintf(buf, "\t%s: [%d]string{", field, len(values))
	for i, value := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%q", value)
	}
	buf.WriteString("},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
