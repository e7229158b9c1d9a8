package main

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type i18nMiddleware struct {
	Matcher language.Matcher
	Handler http.Handler
}

func newI18nMiddleware(h http.Handler) *i18nMiddleware {
	return &i18nMiddleware{
		Matcher: language.NewMatcher(message.DefaultCatalog.Languages()),
		Handler: h,
	}
}

const contextKey = "lang"

// Printer returns the request-scoped message printer.
func Printer(ctx context.Context) *message.Printer {
	return ctx.Value(contextKey).(*message.Printer)
}

func (t *i18nMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("hl")
	accept := r.Header.Get("Accept-Language")
	tag, _ := language.MatchStrings(t.Matcher, query, accept, "en")
	printer := message.NewPrinter(tag)
	ctx := context.WithValue(r.Context(), contextKey, printer)
	t.Handler.ServeHTTP(w, r.WithContext(ctx))
}
