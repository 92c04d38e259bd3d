package datefmt

import (
	"testing"
)

func TestCacheReusesDefaultFormatters(t *testing.T) {
	engine := &fakeEngine{}
	cache := NewCache(engine)

	first, err := cache.FormatDate(testInstant, nil, nil)
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	second, err := cache.FormatDate(testInstant, nil, nil)
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if first != second {
		t.Fatalf("cached render differs: %q vs %q", first, second)
	}
	if got := engine.calls(); got != 1 {
		t.Fatalf("compile calls = %d, want 1", got)
	}
}

func TestCacheShapesAreIndependent(t *testing.T) {
	engine := &fakeEngine{}
	cache := NewCache(engine)

	date, err := cache.FormatDate(testInstant, nil, nil)
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	clock, err := cache.FormatTime(testInstant, nil, nil)
	if err != nil {
		t.Fatalf("FormatTime: %v", err)
	}
	both, err := cache.FormatDateTime(testInstant, nil, nil)
	if err != nil {
		t.Fatalf("FormatDateTime: %v", err)
	}

	// The fake engine echoes skeletons, so the shape defaults are visible.
	if date != "yMd" {
		t.Errorf("FormatDate skeleton = %q, want yMd", date)
	}
	if clock != "jms" {
		t.Errorf("FormatTime skeleton = %q, want jms", clock)
	}
	if both != "yMdjms" {
		t.Errorf("FormatDateTime skeleton = %q, want yMdjms", both)
	}
	if got := engine.calls(); got != 3 {
		t.Fatalf("compile calls = %d, want 3", got)
	}
}

func TestCacheBypassedByExplicitInput(t *testing.T) {
	engine := &fakeEngine{}
	cache := NewCache(engine)

	options := &Options{Year: StyleNumeric}
	if _, err := cache.FormatDate(testInstant, nil, options); err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if _, err := cache.FormatDate(testInstant, nil, options); err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got := engine.calls(); got != 2 {
		t.Fatalf("compile calls = %d, want 2 (no caching with options)", got)
	}

	if _, err := cache.FormatDate(testInstant, []string{"en"}, nil); err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if _, err := cache.FormatDate(testInstant, []string{"en"}, nil); err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got := engine.calls(); got != 4 {
		t.Fatalf("compile calls = %d, want 4 (no caching with locales)", got)
	}

	// The bypassing calls must not have populated the default slot.
	if _, err := cache.FormatDate(testInstant, nil, nil); err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got := engine.calls(); got != 5 {
		t.Fatalf("compile calls = %d, want 5", got)
	}
}

func TestCacheInvalidate(t *testing.T) {
	engine := &fakeEngine{}
	cache := NewCache(engine)

	if _, err := cache.FormatDate(testInstant, nil, nil); err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	cache.Invalidate()
	if _, err := cache.FormatDate(testInstant, nil, nil); err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got := engine.calls(); got != 2 {
		t.Fatalf("compile calls = %d, want 2 after invalidation", got)
	}
}

func TestCacheDefaultEngine(t *testing.T) {
	cache := NewCache(nil)

	got, err := cache.FormatDate(testInstant, []string{"en"}, &Options{TimeZone: "UTC"})
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "1/2/2006" {
		t.Fatalf("FormatDate = %q, want 1/2/2006", got)
	}
}

func TestCacheTimeShapeDefaults(t *testing.T) {
	cache := NewCache(nil)

	got, err := cache.FormatTime(testInstant, []string{"en"}, &Options{TimeZone: "UTC"})
	if err != nil {
		t.Fatalf("FormatTime: %v", err)
	}
	if got != "3:04:05 PM" {
		t.Fatalf("FormatTime = %q, want 3:04:05 PM", got)
	}

	both, err := cache.FormatDateTime(testInstant, []string{"en"}, &Options{TimeZone: "UTC"})
	if err != nil {
		t.Fatalf("FormatDateTime: %v", err)
	}
	if both != "1/2/2006, 3:04:05 PM" {
		t.Fatalf("FormatDateTime = %q, want 1/2/2006, 3:04:05 PM", both)
	}
}
