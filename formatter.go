package datefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// maxTimeMillis bounds the representable instant window: |epoch millis|
// must not exceed 8.64e15.
const maxTimeMillis = int64(8.64e15)

// Config captures formatter construction inputs.
type Config struct {
	Locales []string
	Options *Options
	Engine  Engine
}

// Option mutates Config during construction
type Option func(*Config) error

// WithLocales sets the requested locale tags, in preference order.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithOptions sets the formatting request.
func WithOptions(options Options) Option {
	return func(c *Config) error {
		c.Options = &options
		return nil
	}
}

// WithEngine overrides the rendering engine.
func WithEngine(engine Engine) Option {
	return func(c *Config) error {
		if engine == nil {
			return fmt.Errorf("%w: nil engine", ErrInvalidOptionValue)
		}
		c.Engine = engine
		return nil
	}
}

// Formatter renders instants according to a negotiated locale and a compiled
// pattern. A formatter exclusively owns its pattern and calendar state; it is
// fully initialized on return from New and never partially constructed.
type Formatter struct {
	engine          Engine
	localeTag       language.Tag
	pattern         Pattern
	calendar        Calendar
	hourCycle       HourCycle
	numberingSystem string
}

// New builds a Formatter. All option, locale and timezone failures surface
// here, before any engine state is retained.
func New(opts ...Option) (*Formatter, error) {
	cfg := Config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return newFormatter(cfg.Engine, cfg.Locales, cfg.Options, RequiredAny, DefaultsDate)
}

func newFormatter(engine Engine, locales []string, rawOptions *Options, required Required, defaults Defaults) (*Formatter, error) {
	if engine == nil {
		engine = DefaultEngine()
	}

	requested, err := canonicalizeLocaleList(locales)
	if err != nil {
		return nil, err
	}

	if err := validateOptions(rawOptions); err != nil {
		return nil, err
	}
	options := toDateTimeOptions(rawOptions, required, defaults)

	hcRequest := hourCycleRequest{hour12: options.Hour12, hourCycle: options.HourCycle}

	// Negotiation only ever sees the caller's tags. An hourCycle option takes
	// precedence inside hcRequest.resolve but never becomes an hc extension,
	// so it cannot leak into the reported locale identifier.
	resolved := resolveLocale(engine.AvailableLocales(), requested, options.LocaleMatcher)

	localeHC := HourCycleUndefined
	if value, ok := resolved.Extensions["hc"]; ok {
		localeHC, _ = ParseHourCycle(value)
	}
	working := hcRequest.resolve(localeHC)

	timeZoneID := ""
	if options.TimeZone != "" {
		canonical, err := CanonicalizeTimeZoneID(options.TimeZone)
		if err != nil {
			return nil, err
		}
		engineID, ok := engine.CanonicalTimeZoneID(canonical)
		if !ok || engineID == UnknownZoneID {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, options.TimeZone)
		}
		timeZoneID = engineID
	}

	calendar, err := engine.CreateCalendar(resolved.Tag, timeZoneID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, options.TimeZone)
	}

	skeleton := buildSkeleton(options, working)
	hasHour := options.Hour != ""

	localeTag := resolved.Tag
	pattern, err := engine.CompileBestPattern(localeTag, skeleton)
	if err != nil {
		// Retry once with the base locale before giving up for good.
		localeTag = stripLocaleExtensions(localeTag)
		pattern, err = engine.CompileBestPattern(localeTag, skeleton)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
		}
	}

	stored := storedHourCycle(hasHour, working, pattern.String())

	// Explicit caller intent wins: the locale identifier must not advertise
	// an hc extension that contradicts the stored cycle.
	if hcRequest.explicit() {
		if value, ok := resolved.Extensions["hc"]; ok {
			if extHC, _ := ParseHourCycle(value); extHC != stored {
				localeTag = removeHourCycleExtension(localeTag)
			}
		}
	}

	numberingSystem := resolved.Extensions["nu"]
	if numberingSystem == "" {
		numberingSystem = "latn"
	}

	return &Formatter{
		engine:          engine,
		localeTag:       localeTag,
		pattern:         pattern,
		calendar:        calendar,
		hourCycle:       stored,
		numberingSystem: numberingSystem,
	}, nil
}

func (f *Formatter) checkReady() error {
	if f == nil || f.pattern == nil || f.calendar == nil {
		return ErrIncompatibleReceiver
	}
	return nil
}

func checkTimeValue(t time.Time) error {
	if ms := t.UnixMilli(); ms > maxTimeMillis || ms < -maxTimeMillis {
		return fmt.Errorf("%w: %v", ErrInvalidTimeValue, t)
	}
	return nil
}

// Format renders the instant as text.
func (f *Formatter) Format(t time.Time) (string, error) {
	if err := f.checkReady(); err != nil {
		return "", err
	}
	if err := checkTimeValue(t); err != nil {
		return "", err
	}
	return f.pattern.Render(f.calendar, t)
}

// FormatToParts renders the instant as a gapless, non overlapping sequence
// of typed segments whose values concatenate to exactly the Format output.
func (f *Formatter) FormatToParts(t time.Time) ([]Part, error) {
	if err := f.checkReady(); err != nil {
		return nil, err
	}
	if err := checkTimeValue(t); err != nil {
		return nil, err
	}

	text, positions, err := f.pattern.RenderWithFields(f.calendar, t)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, 0, len(positions)*2+1)
	previousEnd := 0
	for _, fp := range positions {
		if previousEnd < fp.Begin {
			parts = append(parts, Part{Type: PartLiteral, Value: text[previousEnd:fp.Begin]})
		}
		parts = append(parts, Part{Type: partTypeForField(fp.Field), Value: text[fp.Begin:fp.End]})
		previousEnd = fp.End
	}
	if previousEnd < len(text) {
		parts = append(parts, Part{Type: PartLiteral, Value: text[previousEnd:]})
	}
	return parts, nil
}
