package datefmt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dutchBundleYAML = `locale: nl
hour_token: H
date_formats:
  yMd: d-M-y
  yMMMd: d MMM y
glue_format: "{date}, {time}"
names:
  months_long: [januari, februari, maart, april, mei, juni, juli, augustus, september, oktober, november, december]
  months_short: [jan, feb, mrt, apr, mei, jun, jul, aug, sep, okt, nov, dec]
  months_narrow: [J, F, M, A, M, J, J, A, S, O, N, D]
  weekdays_long: [zondag, maandag, dinsdag, woensdag, donderdag, vrijdag, zaterdag]
  weekdays_short: [zo, ma, di, wo, do, vr, za]
  weekdays_narrow: [Z, M, D, W, D, V, Z]
  day_periods: [a.m., p.m.]
  eras_long: [voor Christus, na Christus]
  eras_short: [v.Chr., n.Chr.]
  eras_narrow: [v.C., n.C.]
`

func writeBundleFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	return path
}

func TestBundleFileLoaderLoad(t *testing.T) {
	path := writeBundleFile(t, "nl.yaml", dutchBundleYAML)

	bundles, err := NewBundleFileLoader(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	bundle, ok := bundles["nl"]
	if !ok {
		t.Fatalf("bundle nl missing, got %v", bundles)
	}
	if bundle.HourToken != 'H' {
		t.Errorf("HourToken = %q, want H", bundle.HourToken)
	}
	if bundle.DateFormats["yMd"] != "d-M-y" {
		t.Errorf("yMd = %q, want d-M-y", bundle.DateFormats["yMd"])
	}
	if bundle.Names.MonthsLong[0] != "januari" {
		t.Errorf("january = %q, want januari", bundle.Names.MonthsLong[0])
	}
	if bundle.Names.WeekdaysShort[1] != "ma" {
		t.Errorf("monday short = %q, want ma", bundle.Names.WeekdaysShort[1])
	}
}

func TestBundleFileLoaderRegistersAndFormats(t *testing.T) {
	path := writeBundleFile(t, "nl.yml", dutchBundleYAML)

	engine := NewCLDREngine()
	if err := NewBundleFileLoader(path).LoadInto(engine); err != nil {
		t.Fatalf("LoadInto: %v", err)
	}

	found := false
	for _, locale := range engine.AvailableLocales() {
		if locale == "nl" {
			found = true
		}
	}
	if !found {
		t.Fatalf("nl not in %v", engine.AvailableLocales())
	}

	f, err := New(
		WithEngine(engine),
		WithLocales("nl"),
		WithOptions(Options{Year: StyleNumeric, Month: StyleLong, Day: StyleNumeric, TimeZone: "UTC"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := f.Format(testInstant)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "2 januari 2006" {
		t.Fatalf("Format = %q, want 2 januari 2006", got)
	}
}

func TestBundleFileLoaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{
			"missing locale",
			"bad.yaml",
			strings.Replace(dutchBundleYAML, "locale: nl", "locale: \"\"", 1),
			"missing locale",
		},
		{
			"bad hour token",
			"bad.yaml",
			strings.Replace(dutchBundleYAML, "hour_token: H", "hour_token: x", 1),
			"hour_token",
		},
		{
			"short month list",
			"bad.yaml",
			strings.Replace(dutchBundleYAML, ", december]", "]", 1),
			"months_long",
		},
		{
			"unsupported extension",
			"bad.json",
			dutchBundleYAML,
			"unsupported extension",
		},
		{
			"malformed yaml",
			"bad.yaml",
			"locale: [unterminated",
			"decode bundle",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeBundleFile(t, tc.file, tc.content)
			_, err := NewBundleFileLoader(path).Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestBundleFileLoaderMissingFile(t *testing.T) {
	if _, err := NewBundleFileLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRegisterBundleIgnoresInvalid(t *testing.T) {
	engine := NewCLDREngine()
	before := len(engine.AvailableLocales())

	engine.RegisterBundle("", cldrDateTimeBundle{Names: &englishCalendarNames})
	engine.RegisterBundle("xx", cldrDateTimeBundle{})

	if got := len(engine.AvailableLocales()); got != before {
		t.Fatalf("locale count changed from %d to %d", before, got)
	}
}
