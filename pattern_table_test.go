package datefmt

import (
	"strings"
	"testing"
)

func TestPatternPairsLongestTokenFirst(t *testing.T) {
	check := func(t *testing.T, item patternItem) {
		t.Helper()
		for i, shorter := range item.pairs {
			for j := i + 1; j < len(item.pairs); j++ {
				longer := item.pairs[j]
				if strings.Contains(longer.token, shorter.token) {
					t.Errorf("field %s: token %q would shadow %q at position %d",
						item.field, shorter.token, longer.token, j)
				}
			}
		}
	}

	for _, item := range patternItems {
		check(t, item)
	}
	for _, item := range hourCycleItems {
		check(t, item)
	}
}

func TestPatternTableCanonicalOrder(t *testing.T) {
	want := []string{"weekday", "era", "year", "month", "day", "hour", "minute", "second", "timeZoneName"}
	if len(patternItems) != len(want) {
		t.Fatalf("table has %d rows, want %d", len(patternItems), len(want))
	}
	for i, item := range patternItems {
		if item.field != want[i] {
			t.Fatalf("row %d = %q, want %q", i, item.field, want[i])
		}
	}
}

func TestHourCycleSubTables(t *testing.T) {
	tests := []struct {
		hc      HourCycle
		numeric string
		digit2  string
	}{
		{HourCycleUndefined, "j", "jj"},
		{HourCycleH11, "K", "KK"},
		{HourCycleH12, "h", "hh"},
		{HourCycleH23, "H", "HH"},
		{HourCycleH24, "k", "kk"},
	}

	for _, tc := range tests {
		item := hourCycleItems[tc.hc]
		if token, ok := item.tokenForStyle(StyleNumeric); !ok || token != tc.numeric {
			t.Errorf("%v numeric token = %q,%v want %q", tc.hc, token, ok, tc.numeric)
		}
		if token, ok := item.tokenForStyle(Style2Digit); !ok || token != tc.digit2 {
			t.Errorf("%v 2-digit token = %q,%v want %q", tc.hc, token, ok, tc.digit2)
		}
	}
}

func TestPatternDataSwapsHourRow(t *testing.T) {
	data := patternData(HourCycleH23)
	for _, item := range data {
		if item.field != "hour" {
			continue
		}
		if token, _ := item.tokenForStyle(StyleNumeric); token != "H" {
			t.Fatalf("hour row numeric token = %q, want H", token)
		}
		return
	}
	t.Fatal("hour row missing")
}

func TestTokenForStylePrefersFirstSeries(t *testing.T) {
	for _, item := range patternItems {
		if item.field != "month" {
			continue
		}
		if token, _ := item.tokenForStyle(Style2Digit); token != "MM" {
			t.Fatalf("month 2-digit token = %q, want MM", token)
		}
		if token, _ := item.tokenForStyle(StyleNarrow); token != "MMMMM" {
			t.Fatalf("month narrow token = %q, want MMMMM", token)
		}
	}
}
