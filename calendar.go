package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gosimple/slug"
	"github.com/julienschmidt/httprouter"
)

// Slug returns a stable identifier like "autumn-2023"
func (t Term) Slug() string {
	return slug.Make(fmt.Sprintf("%s %d", t.Name.Longname(), t.Start.Year()))
}

// TermCalendar builds an iCalendar feed with one all-day event per term.
func TermCalendar(terms []Term) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//termline//term dates//EN")
	for _, t := range terms {
		e := cal.AddEvent(t.Slug() + "@termline")
		e.SetSummary(fmt.Sprintf("%s term", t.Name.Longname()))
		e.SetDtStampTime(t.Start)
		e.SetAllDayStartAt(t.Start)
		// DTEND is exclusive, matching End
		e.SetAllDayEndAt(t.End)
	}
	return cal
}

// TermDates renders the term table as an iCalendar feed at /term-dates.ics
func (a *App) TermDates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	w.Header().Set("content-type", "text/calendar")
	a.addExpireHeaders(w, time.Hour*24)
	if err := TermCalendar(a.terms).SerializeTo(w); err != nil {
		log.Print(err)
	}
}
