package datefmt

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ResolvedLocale is the outcome of locale negotiation: the matched tag plus
// the relevant Unicode extension key values carried by the request. Immutable
// once produced.
type ResolvedLocale struct {
	Tag        language.Tag
	Extensions map[string]string
}

// The extension keys negotiation is allowed to honor.
var relevantExtensionKeys = []string{"ca", "hc", "nu"}

// canonicalizeLocaleList parses and canonicalizes the requested locale tags,
// dropping duplicates while preserving order. Only ill-formed tags fail;
// well-formed tags with unknown subtags parse with a language.ValueError and
// still negotiate (falling back to the default locale when nothing matches).
func canonicalizeLocaleList(locales []string) ([]language.Tag, error) {
	if len(locales) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(locales))
	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		trimmed := strings.TrimSpace(locale)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: empty locale tag", ErrInvalidOptionValue)
		}
		tag, err := language.Parse(trimmed)
		if err != nil {
			var verr language.ValueError
			if !errors.As(err, &verr) {
				return nil, fmt.Errorf("%w: locale %q: %v", ErrInvalidOptionValue, locale, err)
			}
		}
		canonical := tag.String()
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	if tag, err := language.Parse(locale); err == nil {
		parent := tag.Parent()
		if parent != language.Und {
			if value := parent.String(); value != "" && value != "und" {
				return value
			}
		}
		return ""
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}

func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)
	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}
	return chain
}

// defaultLocale picks the negotiation fallback out of the available set.
func defaultLocale(available []string) string {
	for _, locale := range available {
		if locale == "en" {
			return locale
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return "en"
}

// lookupLocale implements the "lookup" matcher: walk each requested tag and
// its parent chain against the available set, first hit wins.
func lookupLocale(available []string, requested []language.Tag) string {
	set := make(map[string]struct{}, len(available))
	for _, locale := range available {
		set[locale] = struct{}{}
	}

	for _, tag := range requested {
		base, _ := language.Compose(tag.Raw())
		candidate := base.String()
		for candidate != "" {
			if _, ok := set[candidate]; ok {
				return candidate
			}
			candidate = localeParentTag(candidate)
		}
	}
	return defaultLocale(available)
}

// bestFitLocale implements the "best fit" matcher on top of x/text's
// language matcher.
func bestFitLocale(available []string, requested []language.Tag) string {
	if len(available) == 0 {
		return defaultLocale(available)
	}

	ordered := make([]string, 0, len(available))
	ordered = append(ordered, defaultLocale(available))
	for _, locale := range available {
		if locale != ordered[0] {
			ordered = append(ordered, locale)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	for _, locale := range ordered {
		tags = append(tags, language.Make(locale))
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(requested...)
	if confidence == language.No {
		return ordered[0]
	}
	return ordered[index]
}

// resolveLocale negotiates the requested tags against the engine's available
// locales and collects the relevant extension key values from the request.
// The returned tag carries those extensions.
func resolveLocale(available []string, requested []language.Tag, matcher string) ResolvedLocale {
	var matched string
	if matcher == MatcherLookup {
		matched = lookupLocale(available, requested)
	} else {
		matched = bestFitLocale(available, requested)
	}

	extensions := make(map[string]string, len(relevantExtensionKeys))
	for _, key := range relevantExtensionKeys {
		for _, tag := range requested {
			if value := tag.TypeForKey(key); value != "" {
				extensions[key] = value
				break
			}
		}
	}

	tag := language.Make(matched)
	for _, key := range relevantExtensionKeys {
		if value, ok := extensions[key]; ok {
			if withExt, err := tag.SetTypeForKey(key, value); err == nil {
				tag = withExt
			}
		}
	}

	return ResolvedLocale{Tag: tag, Extensions: extensions}
}

// stripLocaleExtensions returns the tag reduced to its base name, the shape
// used for the engine's base-locale compile retry.
func stripLocaleExtensions(tag language.Tag) language.Tag {
	base, err := language.Compose(tag.Raw())
	if err != nil {
		return tag
	}
	return base
}

// removeHourCycleExtension drops the hc key from a tag so the reported
// locale never advertises an extension that contradicts the stored cycle.
func removeHourCycleExtension(tag language.Tag) language.Tag {
	stripped, err := tag.SetTypeForKey("hc", "")
	if err != nil {
		return tag
	}
	return stripped
}
