package datefmt

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// BundleFileLoader reads locale bundle documents from YAML files so callers
// can extend the built-in engine with their own locale data at runtime.
type BundleFileLoader struct {
	paths []string
}

// NewBundleFileLoader builds a loader over the given file paths.
func NewBundleFileLoader(paths ...string) *BundleFileLoader {
	return &BundleFileLoader{paths: append([]string(nil), paths...)}
}

type bundleNamesDocument struct {
	MonthsLong     []string `yaml:"months_long"`
	MonthsShort    []string `yaml:"months_short"`
	MonthsNarrow   []string `yaml:"months_narrow"`
	WeekdaysLong   []string `yaml:"weekdays_long"`
	WeekdaysShort  []string `yaml:"weekdays_short"`
	WeekdaysNarrow []string `yaml:"weekdays_narrow"`
	DayPeriods     []string `yaml:"day_periods"`
	ErasLong       []string `yaml:"eras_long"`
	ErasShort      []string `yaml:"eras_short"`
	ErasNarrow     []string `yaml:"eras_narrow"`
}

type bundleDocument struct {
	Locale      string              `yaml:"locale"`
	HourToken   string              `yaml:"hour_token"`
	DateFormats map[string]string   `yaml:"date_formats"`
	GlueFormat  string              `yaml:"glue_format"`
	Names       bundleNamesDocument `yaml:"names"`
}

// Load parses every configured file. Malformed documents fail loudly rather
// than producing half-filled bundles.
func (l *BundleFileLoader) Load() (map[string]cldrDateTimeBundle, error) {
	bundles := make(map[string]cldrDateTimeBundle, len(l.paths))
	for _, path := range l.paths {
		locale, bundle, err := loadBundleFile(path)
		if err != nil {
			return nil, err
		}
		bundles[locale] = bundle
	}
	return bundles, nil
}

// LoadInto loads every configured file and registers the bundles on the
// engine.
func (l *BundleFileLoader) LoadInto(engine *CLDREngine) error {
	bundles, err := l.Load()
	if err != nil {
		return err
	}
	for locale, bundle := range bundles {
		engine.RegisterBundle(locale, bundle)
	}
	return nil
}

func loadBundleFile(path string) (string, cldrDateTimeBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", cldrDateTimeBundle{}, fmt.Errorf("read bundle %s: %w", path, err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
	default:
		return "", cldrDateTimeBundle{}, fmt.Errorf("unsupported extension %s", ext)
	}

	var doc bundleDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", cldrDateTimeBundle{}, fmt.Errorf("decode bundle %s: %w", path, err)
	}

	bundle, err := doc.toBundle()
	if err != nil {
		return "", cldrDateTimeBundle{}, fmt.Errorf("bundle %s: %w", path, err)
	}
	return doc.Locale, bundle, nil
}

func (doc bundleDocument) toBundle() (cldrDateTimeBundle, error) {
	if doc.Locale == "" {
		return cldrDateTimeBundle{}, fmt.Errorf("missing locale")
	}
	if len(doc.HourToken) != 1 {
		return cldrDateTimeBundle{}, fmt.Errorf("hour_token must be a single pattern letter")
	}
	switch doc.HourToken[0] {
	case 'h', 'H', 'k', 'K':
	default:
		return cldrDateTimeBundle{}, fmt.Errorf("hour_token %q not one of h H k K", doc.HourToken)
	}

	names := &calendarNames{}
	if err := fill12(&names.MonthsLong, doc.Names.MonthsLong, "months_long"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill12(&names.MonthsShort, doc.Names.MonthsShort, "months_short"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill12(&names.MonthsNarrow, doc.Names.MonthsNarrow, "months_narrow"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill7(&names.WeekdaysLong, doc.Names.WeekdaysLong, "weekdays_long"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill7(&names.WeekdaysShort, doc.Names.WeekdaysShort, "weekdays_short"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill7(&names.WeekdaysNarrow, doc.Names.WeekdaysNarrow, "weekdays_narrow"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill2(&names.DayPeriods, doc.Names.DayPeriods, "day_periods"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill2(&names.ErasLong, doc.Names.ErasLong, "eras_long"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill2(&names.ErasShort, doc.Names.ErasShort, "eras_short"); err != nil {
		return cldrDateTimeBundle{}, err
	}
	if err := fill2(&names.ErasNarrow, doc.Names.ErasNarrow, "eras_narrow"); err != nil {
		return cldrDateTimeBundle{}, err
	}

	glue := doc.GlueFormat
	if glue == "" {
		glue = "{date}, {time}"
	}

	formats := make(map[string]string, len(doc.DateFormats))
	for key, value := range doc.DateFormats {
		formats[key] = value
	}

	return cldrDateTimeBundle{
		HourToken:   doc.HourToken[0],
		DateFormats: formats,
		GlueFormat:  glue,
		Names:       names,
	}, nil
}

func fill12(dst *[12]string, src []string, name string) error {
	if len(src) != 12 {
		return fmt.Errorf("%s needs 12 entries, got %d", name, len(src))
	}
	copy(dst[:], src)
	return nil
}

func fill7(dst *[7]string, src []string, name string) error {
	if len(src) != 7 {
		return fmt.Errorf("%s needs 7 entries, got %d", name, len(src))
	}
	copy(dst[:], src)
	return nil
}

func fill2(dst *[2]string, src []string, name string) error {
	if len(src) != 2 {
		return fmt.Errorf("%s needs 2 entries, got %d", name, len(src))
	}
	copy(dst[:], src)
	return nil
}
