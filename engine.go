package datefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// FieldCode identifies one rendered component inside a field position. The
// set is closed: the formatter maps every code through partTypeForField and
// treats an unknown code as a broken invariant, never a tolerated unknown.
type FieldCode int

const (
	FieldEra FieldCode = iota
	FieldYear
	FieldMonth
	FieldDay
	FieldWeekday
	FieldDayPeriod
	FieldHour
	FieldMinute
	FieldSecond
	FieldTimeZone
)

// partTypeForField maps an engine field code onto the semantic part type.
// Codes outside the closed set cannot occur for any field reachable through
// the supported options, so hitting one means the pattern table and this map
// disagree and the process must stop loudly.
func partTypeForField(code FieldCode) PartType {
	switch code {
	case FieldEra:
		return PartEra
	case FieldYear:
		return PartYear
	case FieldMonth:
		return PartMonth
	case FieldDay:
		return PartDay
	case FieldWeekday:
		return PartWeekday
	case FieldDayPeriod:
		return PartDayPeriod
	case FieldHour:
		return PartHour
	case FieldMinute:
		return PartMinute
	case FieldSecond:
		return PartSecond
	case FieldTimeZone:
		return PartTimeZoneName
	default:
		panic(fmt.Sprintf("datefmt: unmapped field code %d", code))
	}
}

// FieldPosition marks the begin/end offsets and kind of one rendered
// component within the full output text.
type FieldPosition struct {
	Field FieldCode
	Begin int
	End   int
}

// UnknownZoneID is the sentinel canonical value an engine reports for
// timezone identifiers it cannot resolve.
const UnknownZoneID = "Etc/Unknown"

// Calendar is the engine state that folds in the timezone and calendar
// system a formatter renders with.
type Calendar interface {
	// Type returns the engine's calendar system name, e.g. "gregorian".
	Type() string
	// TimeZoneID returns the canonical identifier of the calendar's zone.
	TimeZoneID() string
}

// Pattern is a compiled, locale specific rendering template.
type Pattern interface {
	// String returns the concrete pattern text.
	String() string
	// Render produces the formatted text for the instant.
	Render(cal Calendar, t time.Time) (string, error)
	// RenderWithFields additionally reports the ordered, non overlapping
	// field positions of the rendered components.
	RenderWithFields(cal Calendar, t time.Time) (string, []FieldPosition, error)
}

// Engine is the external locale and rendering collaborator. Implementations
// need not be safe for concurrent use; callers serialize access.
type Engine interface {
	// AvailableLocales lists the locales the engine has data for.
	AvailableLocales() []string
	// CreateCalendar builds calendar state for the locale and canonical
	// timezone id; an empty id selects the process default zone.
	CreateCalendar(locale language.Tag, timeZoneID string) (Calendar, error)
	// CompileBestPattern selects the best concrete pattern for a skeleton.
	CompileBestPattern(locale language.Tag, skeleton string) (Pattern, error)
	// CanonicalTimeZoneID resolves a syntactically canonical id to the
	// engine's own canonical form; ok is false (or the result is
	// UnknownZoneID) when the zone is unknown.
	CanonicalTimeZoneID(id string) (canonical string, ok bool)
}
