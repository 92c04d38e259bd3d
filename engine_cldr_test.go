package datefmt

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

var testInstant = time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

func compilePattern(t *testing.T, locale, skeleton string) Pattern {
	t.Helper()
	pattern, err := DefaultEngine().CompileBestPattern(language.Make(locale), skeleton)
	if err != nil {
		t.Fatalf("CompileBestPattern(%s, %s): %v", locale, skeleton, err)
	}
	return pattern
}

func utcCalendar(t *testing.T) Calendar {
	t.Helper()
	cal, err := DefaultEngine().CreateCalendar(language.English, "UTC")
	if err != nil {
		t.Fatalf("CreateCalendar: %v", err)
	}
	return cal
}

func TestCompileBestPattern(t *testing.T) {
	tests := []struct {
		locale   string
		skeleton string
		want     string
	}{
		{"en", "yMd", "M/d/y"},
		{"en", "yMMMd", "MMM d, y"},
		{"en", "yMMMMd", "MMMM d, y"},
		{"en", "yyMMdd", "MM/dd/yy"},
		{"en", "jmm", "h:mm a"},
		{"en", "yMdjmm", "M/d/y, h:mm a"},
		{"en-GB", "yMd", "d/M/y"},
		{"en-GB", "jmm", "H:mm"},
		{"es", "yMMMMd", "d 'de' MMMM 'de' y"},
		{"de", "yMd", "d.M.y"},
		{"de", "Hms", "H:mm:ss"},
		{"en", "EEEyMd", "EEE, M/d/y"},
		{"en", "yMdGGG", "M/d/y GGG"},
		{"en", "z", "z"},
		{"en", "Hmz", "H:mm z"},
		{"en", "y", "y"},
		// Unknown region falls back to the parent bundle.
		{"en-AU", "yMMMd", "MMM d, y"},
	}

	for _, tc := range tests {
		pattern := compilePattern(t, tc.locale, tc.skeleton)
		if got := pattern.String(); got != tc.want {
			t.Errorf("pattern(%s, %s) = %q, want %q", tc.locale, tc.skeleton, got, tc.want)
		}
	}
}

func TestCompileBestPatternUnknownLocale(t *testing.T) {
	if _, err := DefaultEngine().CompileBestPattern(language.Make("zu"), "yMd"); err == nil {
		t.Fatal("expected error for locale without bundle data")
	}
}

func TestRenderPatterns(t *testing.T) {
	cal := utcCalendar(t)

	tests := []struct {
		locale   string
		skeleton string
		want     string
	}{
		{"en", "yMd", "1/2/2006"},
		{"en", "yyMMdd", "01/02/06"},
		{"en", "yMMMMd", "January 2, 2006"},
		{"en", "jmm", "3:04 PM"},
		{"en", "yMdjmmss", "1/2/2006, 3:04:05 PM"},
		{"en-GB", "jmm", "15:04"},
		{"es", "yMMMMd", "2 de enero de 2006"},
		{"de", "yMd", "2.1.2006"},
		{"de", "HHmm", "15:04"},
		{"fr", "yMMMd", "2 janv 2006"},
		{"en", "EEEEyMd", "Monday, 1/2/2006"},
		{"en", "EEEEE", "M"},
		{"en", "yMdGGGG", "1/2/2006 Anno Domini"},
		{"en", "Hmsz", "15:04:05 UTC"},
		{"en", "Hmszzzz", "15:04:05 GMT"},
		{"en", "KKmm", "03:04 PM"},
		{"en", "kkmm", "15:04"},
	}

	for _, tc := range tests {
		pattern := compilePattern(t, tc.locale, tc.skeleton)
		got, err := pattern.Render(cal, testInstant)
		if err != nil {
			t.Errorf("render(%s, %s): %v", tc.locale, tc.skeleton, err)
			continue
		}
		if got != tc.want {
			t.Errorf("render(%s, %s) = %q, want %q", tc.locale, tc.skeleton, got, tc.want)
		}
	}
}

func TestRenderHourEdges(t *testing.T) {
	cal := utcCalendar(t)
	midnight := time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		skeleton string
		want     string
	}{
		{"hmm", "12:00 AM"},
		{"Hmm", "0:00"},
		{"Kmm", "0:00 AM"},
		{"kmm", "24:00"},
	}
	for _, tc := range tests {
		pattern := compilePattern(t, "en", tc.skeleton)
		got, err := pattern.Render(cal, midnight)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if got != tc.want {
			t.Errorf("render(%s) at midnight = %q, want %q", tc.skeleton, got, tc.want)
		}
	}
}

func TestRenderBeforeCommonEra(t *testing.T) {
	cal := utcCalendar(t)
	// Proleptic year 0 renders as 1 BC.
	ancient := time.Date(0, time.March, 15, 0, 0, 0, 0, time.UTC)

	pattern := compilePattern(t, "en", "yMdGGG")
	got, err := pattern.Render(cal, ancient)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "3/15/1 BC" {
		t.Fatalf("render = %q, want 3/15/1 BC", got)
	}
}

func TestRenderWithFieldsPositions(t *testing.T) {
	cal := utcCalendar(t)
	pattern := compilePattern(t, "en", "yMdjmm")

	text, positions, err := pattern.RenderWithFields(cal, testInstant)
	if err != nil {
		t.Fatalf("RenderWithFields: %v", err)
	}
	if text != "1/2/2006, 3:04 PM" {
		t.Fatalf("text = %q", text)
	}

	previousEnd := -1
	for _, fp := range positions {
		if fp.Begin >= fp.End {
			t.Fatalf("empty field position %+v", fp)
		}
		if fp.Begin < previousEnd {
			t.Fatalf("overlapping field position %+v", fp)
		}
		previousEnd = fp.End
	}

	want := []FieldCode{FieldMonth, FieldDay, FieldYear, FieldHour, FieldMinute, FieldDayPeriod}
	if len(positions) != len(want) {
		t.Fatalf("got %d positions, want %d", len(positions), len(want))
	}
	for i, fp := range positions {
		if fp.Field != want[i] {
			t.Fatalf("position %d field = %v, want %v", i, fp.Field, want[i])
		}
	}
}

func TestRenderQuotedLiterals(t *testing.T) {
	cal := utcCalendar(t)
	pattern := compilePattern(t, "es", "yMMMMd")

	text, positions, err := pattern.RenderWithFields(cal, testInstant)
	if err != nil {
		t.Fatalf("RenderWithFields: %v", err)
	}
	if text != "2 de enero de 2006" {
		t.Fatalf("text = %q", text)
	}
	// The quoted 'de' literals carry no field positions.
	if len(positions) != 3 {
		t.Fatalf("got %d positions, want 3", len(positions))
	}
}

func TestCreateCalendarTimeZones(t *testing.T) {
	engine := DefaultEngine()

	cal, err := engine.CreateCalendar(language.English, "America/New_York")
	if err != nil {
		t.Fatalf("CreateCalendar: %v", err)
	}
	if cal.TimeZoneID() != "America/New_York" {
		t.Fatalf("TimeZoneID = %q", cal.TimeZoneID())
	}
	if cal.Type() != "gregorian" {
		t.Fatalf("Type = %q", cal.Type())
	}

	if _, err := engine.CreateCalendar(language.English, "Nowhere/Special"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestCanonicalTimeZoneIDSentinel(t *testing.T) {
	engine := DefaultEngine()

	if got, ok := engine.CanonicalTimeZoneID("UTC"); !ok || got != "UTC" {
		t.Fatalf("UTC = %q,%v", got, ok)
	}
	if got, ok := engine.CanonicalTimeZoneID("America/New_York"); !ok || got != "America/New_York" {
		t.Fatalf("America/New_York = %q,%v", got, ok)
	}
	if got, ok := engine.CanonicalTimeZoneID("Nowhere/Special"); ok || got != UnknownZoneID {
		t.Fatalf("unknown zone = %q,%v, want sentinel", got, ok)
	}
}

func TestRenderInZone(t *testing.T) {
	engine := DefaultEngine()
	cal, err := engine.CreateCalendar(language.English, "America/New_York")
	if err != nil {
		t.Skipf("zone database unavailable: %v", err)
	}

	pattern := compilePattern(t, "en", "jmmz")
	got, err := pattern.Render(cal, testInstant)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// 15:04 UTC is 10:04 in New York in January.
	if got != "10:04 AM EST" {
		t.Fatalf("render = %q, want 10:04 AM EST", got)
	}
}
