package main

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestBuildTermsTable(t *testing.T) {
	terms := mustBuildTerms(t, termDates)
	if len(terms) != len(termDates) {
		t.Fatalf("built %d terms, want %d", len(terms), len(termDates))
	}
	for i, term := range terms {
		if !term.Start.Before(term.End) {
			t.Errorf("%s: start %s not before end %s", term, term.Start, term.End)
		}
		if i > 0 {
			prev := terms[i-1]
			if term.Start.Before(prev.Start) {
				t.Errorf("table not sorted: %s before %s", term, prev)
			}
			if term.Start.Before(prev.End) {
				t.Errorf("strict ranges overlap: %s starts before %s ends", term, prev)
			}
		}
	}
}

func TestBuildTermsBadDate(t *testing.T) {
	_, err := buildTerms([]termRow{{Autumn, "2023-09-31", "2023-12-01"}})
	if err == nil {
		t.Error("expected error for invalid calendar date")
	}
}

func TestFindTerm(t *testing.T) {
	terms := mustBuildTerms(t, termDates)
	type testCase struct {
		now          string
		expect       string // "" for no term
		expectStrict bool
	}
	tests := []testCase{
		{"2023-10-09T14:00", "Autumn 2023", true},
		{"2023-09-25T00:00", "Autumn 2023", true},
		{"2023-12-02T09:00", "Autumn 2023", false}, // rounding-out week after term
		{"2025-04-21T12:00", "Summer 2025", false}, // Monday before a Tuesday start is loose
		{"2023-07-15T12:00", "", false},            // deep in summer break
		{"2018-01-01T00:00", "", false},            // before the earliest loose start
		{"2028-09-01T00:00", "", false},            // after the latest loose end
	}
	for i, tc := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			now := london(t, tc.now)
			term, ok := FindTerm(terms, now)
			if tc.expect == "" {
				if ok {
					t.Errorf("FindTerm(%s) = %s, want no term", tc.now, term)
				}
				return
			}
			if !ok || term.String() != tc.expect {
				t.Errorf("FindTerm(%s) = %s, %v, want %s", tc.now, term, ok, tc.expect)
			}
			_, strictOK := FindStrictTerm(terms, now)
			if strictOK != tc.expectStrict {
				t.Errorf("FindStrictTerm(%s) ok = %v, want %v", tc.now, strictOK, tc.expectStrict)
			}
		})
	}
}

// When week rounding makes adjacent loose ranges share a Monday, the
// later-starting term wins.
func TestFindTermPrefersLaterStart(t *testing.T) {
	terms := mustBuildTerms(t, []termRow{
		{Autumn, "2022-09-26", "2022-12-02"}, // loose end 2022-12-05
		{Spring, "2022-12-05", "2023-03-17"}, // loose start 2022-12-05
	})
	now := london(t, "2022-12-05T00:00")
	term, ok := FindTerm(terms, now)
	if !ok {
		t.Fatal("expected a loose match")
	}
	if term.Name != Spring {
		t.Errorf("FindTerm = %s, want the later-starting Spring term", term)
	}
}

// Any instant inside a strict range must also be inside that term's loose
// range, and both queries must name the same term.
func TestStrictLooseAgreement(t *testing.T) {
	terms := mustBuildTerms(t, termDates)
	for _, term := range terms {
		samples := []time.Time{
			term.LooseStart(),
			term.Start,
			term.Start.Add(time.Hour),
			term.Start.AddDate(0, 0, 17),
			term.End.Add(-time.Hour),
			term.End,
			term.End.Add(time.Hour),
			term.LooseEnd(),
		}
		for _, now := range samples {
			if term.InStrictRange(now) && !term.InLooseRange(now) {
				t.Errorf("%s: %s in strict range but not loose range", term, now)
			}
			if _, _, _, err := Resolve(terms, now); err != nil {
				t.Errorf("Resolve(%s): %s", now, err)
			}
		}
	}
}

func TestLoadTerms(t *testing.T) {
	doc := `[
		{"name": "Spring", "start": "2024-01-08", "end": "2024-03-15"},
		{"name": "Autumn", "start": "2023-09-25", "end": "2023-12-01"}
	]`
	terms, err := LoadTerms(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 2 {
		t.Fatalf("loaded %d terms, want 2", len(terms))
	}
	// sorted ascending by start regardless of file order
	if terms[0].Name != Autumn || terms[1].Name != Spring {
		t.Errorf("loaded order %s, %s, want Autumn then Spring", terms[0], terms[1])
	}
	want := mustBuildTerms(t, []termRow{{Autumn, "2023-09-25", "2023-12-01"}})[0]
	if !terms[0].Start.Equal(want.Start) || !terms[0].End.Equal(want.End) {
		t.Errorf("loaded term %s [%s, %s), want [%s, %s)", terms[0], terms[0].Start, terms[0].End, want.Start, want.End)
	}
}

func TestLoadTermsErrors(t *testing.T) {
	type testCase struct {
		doc string
	}
	tests := []testCase{
		{`[{"name": "Winter", "start": "2023-01-09", "end": "2023-03-17"}]`},
		{`[{"name": "Spring", "start": "January 9th", "end": "2023-03-17"}]`},
		{`{"name": "Spring"}`},
	}
	for i, tc := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			if _, err := LoadTerms(strings.NewReader(tc.doc)); err == nil {
				t.Errorf("LoadTerms(%q) expected error", tc.doc)
			}
		})
	}
}
