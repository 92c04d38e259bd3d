package datefmt

import (
	"sync"
	"time"
)

type formatShape int

const (
	shapeDate formatShape = iota
	shapeTime
	shapeDateTime
	shapeCount
)

// Cache holds one best-effort default formatter per format shape. A slot is
// consulted and populated only when the caller supplies neither locales nor
// options, because only then are the side effects of examining those
// arguments unobservable. Any explicit input bypasses the cache entirely.
type Cache struct {
	mu     sync.Mutex
	engine Engine
	slots  [shapeCount]*Formatter
}

// NewCache builds a formatter cache; a nil engine selects the built-in one.
func NewCache(engine Engine) *Cache {
	if engine == nil {
		engine = DefaultEngine()
	}
	return &Cache{engine: engine}
}

// FormatDate renders the date fields of the instant.
func (c *Cache) FormatDate(t time.Time, locales []string, options *Options) (string, error) {
	return c.format(t, locales, options, shapeDate, RequiredDate, DefaultsDate)
}

// FormatTime renders the time fields of the instant.
func (c *Cache) FormatTime(t time.Time, locales []string, options *Options) (string, error) {
	return c.format(t, locales, options, shapeTime, RequiredTime, DefaultsTime)
}

// FormatDateTime renders both date and time fields of the instant.
func (c *Cache) FormatDateTime(t time.Time, locales []string, options *Options) (string, error) {
	return c.format(t, locales, options, shapeDateTime, RequiredAny, DefaultsAll)
}

func (c *Cache) format(t time.Time, locales []string, options *Options, shape formatShape, required Required, defaults Defaults) (string, error) {
	canCache := len(locales) == 0 && options == nil

	if canCache {
		c.mu.Lock()
		cached := c.slots[shape]
		c.mu.Unlock()
		if cached != nil {
			return cached.Format(t)
		}
	}

	formatter, err := newFormatter(c.engine, locales, options, required, defaults)
	if err != nil {
		return "", err
	}

	if canCache {
		c.mu.Lock()
		c.slots[shape] = formatter
		c.mu.Unlock()
	}

	return formatter.Format(t)
}

// Invalidate drops all cached formatters, e.g. after the engine learned new
// locale bundles.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.slots {
		c.slots[i] = nil
	}
}
