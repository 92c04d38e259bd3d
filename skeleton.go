package datefmt

import "strings"

// buildSkeleton concatenates one pattern token per requested field, in
// canonical field order with no separators. The hour token comes from the
// sub-table for the resolved hour cycle; an undefined cycle emits the
// cycle-agnostic j token so the engine picks the locale's native hour
// representation. Styles must have been validated beforehand.
func buildSkeleton(o *Options, hc HourCycle) string {
	var b strings.Builder
	for _, item := range patternData(hc) {
		style := o.fieldStyle(item.field)
		if style == "" {
			continue
		}
		if token, ok := item.tokenForStyle(style); ok {
			b.WriteString(token)
		}
	}
	return b.String()
}
