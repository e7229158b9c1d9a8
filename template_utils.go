package main

import (
	"html/template"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gosimple/slug"
)

const displayDate = "Mon 2 Jan 2006"

func dayDate(t time.Time) string {
	return t.Format(displayDate)
}

// lastDay formats the final valid day of an end-exclusive boundary
func lastDay(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(displayDate)
}

func newTemplate(fs fs.FS, n string) *template.Template {
	funcMap := template.FuncMap{
		"Ordinal": humanize.Ordinal,
		"Time":    humanize.Time,
		"Slugify": slug.Make,
		"DayDate": dayDate,
		"LastDay": lastDay,
	}
	t := template.New("empty").Funcs(funcMap)
	return template.Must(t.ParseFS(fs, filepath.Join("templates", n), "templates/base.html"))
}
