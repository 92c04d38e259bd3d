package datefmt

import "strings"

// hourCycleRequest captures the caller's explicit hour preferences. The
// precedence rules between Hour12, HourCycle, the negotiated locale extension
// and the compiled pattern live here so they stay auditable in one place.
type hourCycleRequest struct {
	hour12    *bool
	hourCycle HourCycle
}

// explicit reports whether the caller stated any hour preference at all.
func (r hourCycleRequest) explicit() bool {
	return r.hour12 != nil || r.hourCycle != HourCycleUndefined
}

// preference is the hour cycle planted on the locale request before
// negotiation. A set hour12 flag silently clears an explicit hourCycle.
func (r hourCycleRequest) preference() HourCycle {
	if r.hour12 != nil {
		return HourCycleUndefined
	}
	return r.hourCycle
}

// resolve reconciles the request with the negotiated locale's hc extension.
// The extension is adopted only when the caller supplied neither hour12 nor
// hourCycle; afterwards a still-unset cycle falls back to h12/h23 when hour12
// was given.
func (r hourCycleRequest) resolve(localeHC HourCycle) HourCycle {
	hc := r.preference()
	if !r.explicit() && hc == HourCycleUndefined {
		hc = localeHC
	}
	if hc == HourCycleUndefined && r.hour12 != nil {
		if *r.hour12 {
			hc = HourCycleH12
		} else {
			hc = HourCycleH23
		}
	}
	return hc
}

// patternDefaultHourCycle derives the locale's default hour cycle from the
// hour token the engine chose for the compiled pattern.
func patternDefaultHourCycle(pattern string) HourCycle {
	switch {
	case strings.ContainsRune(pattern, 'K'):
		return HourCycleH11
	case strings.ContainsRune(pattern, 'h'):
		return HourCycleH12
	case strings.ContainsRune(pattern, 'H'):
		return HourCycleH23
	case strings.ContainsRune(pattern, 'k'):
		return HourCycleH24
	}
	return HourCycleUndefined
}

// storedHourCycle is the cycle a formatter retains: undefined when the hour
// field is not rendered at all, otherwise the working cycle with the compiled
// pattern as last resort.
func storedHourCycle(hasHour bool, working HourCycle, pattern string) HourCycle {
	if !hasHour {
		return HourCycleUndefined
	}
	if working == HourCycleUndefined {
		return patternDefaultHourCycle(pattern)
	}
	return working
}

// hour12Value derives the reported hour12 flag from a stored cycle; nil when
// the cycle is undefined.
func hour12Value(hc HourCycle) *bool {
	switch hc {
	case HourCycleH11, HourCycleH12:
		return Bool(true)
	case HourCycleH23, HourCycleH24:
		return Bool(false)
	}
	return nil
}
