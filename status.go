package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/text/message"
)

// Resolve runs the loose and strict containment queries and checks that
// they agree. A strict match that differs from the loose match (or has no
// loose match at all) means the term table holds overlapping or inverted
// date ranges, which is not recoverable.
func Resolve(terms []Term, now time.Time) (term Term, loose, strict bool, err error) {
	term, loose = FindTerm(terms, now)
	st, strictOK := FindStrictTerm(terms, now)
	if strictOK {
		if !loose {
			return Term{}, false, false, fmt.Errorf("term table inconsistent: %s strictly contains %s with no loose match", st, now.Format(time.RFC3339))
		}
		if st.Name != term.Name || !st.Start.Equal(term.Start) {
			return Term{}, false, false, fmt.Errorf("term table inconsistent at %s: strict match %s, loose match %s", now.Format(time.RFC3339), st, term)
		}
	}
	return term, loose, strictOK, nil
}

// Status renders the one-line term status for now, one of
//
//	Aut/3/Mon    in term, week 3
//	(Aut/10/Sat) in the week-rounded margin of term
//	n/a          not in any term
func Status(terms []Term, now time.Time) (string, error) {
	term, loose, strict, err := Resolve(terms, now)
	if err != nil {
		return "", err
	}
	if !loose {
		return "n/a", nil
	}
	s := fmt.Sprintf("%s/%d/%s", term.Name.Shortname(), term.WeekNumber(now), now.Format("Mon"))
	if !strict {
		s = "(" + s + ")"
	}
	return s, nil
}

// LongStatus renders a verbose status line, e.g.
// "Autumn term, 3rd week, Monday (term started 2 weeks ago)".
func LongStatus(terms []Term, now time.Time, T *message.Printer) (string, error) {
	term, loose, strict, err := Resolve(terms, now)
	if err != nil {
		return "", err
	}
	if !loose {
		return T.Sprintf("no term"), nil
	}
	name := term.Name.Longname()
	week := humanize.Ordinal(term.WeekNumber(now))
	day := now.Format("Monday")
	switch {
	case strict:
		return T.Sprintf("%s term, %s week, %s (term started %s)", name, week, day, humanize.RelTime(term.Start, now, "ago", "from now")), nil
	case now.Before(term.Start):
		return T.Sprintf("%s term, %s week, %s (term starts %s)", name, week, day, humanize.RelTime(term.Start, now, "ago", "from now")), nil
	default:
		return T.Sprintf("%s term, %s week, %s (term ended %s)", name, week, day, humanize.RelTime(term.End, now, "ago", "from now")), nil
	}
}

// StatusLine renders /status as the bare status line for pollers
func (a *App) StatusLine(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	line, err := Status(a.terms, time.Now().In(europeLondon))
	if err != nil {
		log.Print(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}
	w.Header().Set("content-type", "text/plain")
	io.WriteString(w, line+"\n")
}

// Index renders the status page at /
func (a *App) Index(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	T := Printer(r.Context())
	t := newTemplate(a.templateFS, "index.html")
	now := time.Now().In(europeLondon)
	line, err := Status(a.terms, now)
	if err != nil {
		log.Print(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}
	detail, err := LongStatus(a.terms, now, T)
	if err != nil {
		log.Print(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}
	type Page struct {
		Page   string
		Title  string
		Status string
		Detail string
		Now    time.Time
		Terms  []Term
	}
	body := Page{
		Page:   "status",
		Title:  T.Sprintf("Term Dates"),
		Status: line,
		Detail: detail,
		Now:    now,
		Terms:  a.terms,
	}
	w.Header().Set("content-type", "text/html")
	a.addExpireHeaders(w, time.Minute*5)
	err = t.ExecuteTemplate(w, "index.html", body)
	if err != nil {
		log.Print(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}
}

// TermsJSON renders the sorted term table at /terms.json in the same
// format LoadTerms accepts
func (a *App) TermsJSON(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	type row struct {
		Name  string `json:"name"`
		Start string `json:"start"`
		End   string `json:"end"`
	}
	out := make([]row, 0, len(a.terms))
	for _, t := range a.terms {
		out = append(out, row{
			Name:  t.Name.Longname(),
			Start: t.Start.Format(dateFormat),
			End:   t.End.AddDate(0, 0, -1).Format(dateFormat),
		})
	}
	w.Header().Set("content-type", "application/json")
	a.addExpireHeaders(w, time.Hour*24)
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Print(err)
	}
}
