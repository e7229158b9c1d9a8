package main

import (
	"embed"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*
var content embed.FS

type App struct {
	terms   []Term
	devMode bool

	templateFS fs.FS
}

func (a *App) addExpireHeaders(w http.ResponseWriter, duration time.Duration) {
	if a.devMode {
		return
	}
	w.Header().Add("Cache-Control", fmt.Sprintf("public; max-age=%d", int(duration.Seconds())))
	w.Header().Add("Expires", time.Now().Add(duration).Format(http.TimeFormat))
}

// RobotsTXT renders /robots.txt
func (a *App) RobotsTXT(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	w.Header().Set("content-type", "text/plain")
	a.addExpireHeaders(w, time.Hour*24*7)
	io.WriteString(w, "# robots welcome\n")
}

func main() {
	serve := flag.Bool("serve", false, "run an HTTP server instead of printing once")
	logRequests := flag.Bool("log-requests", false, "log requests")
	devMode := flag.Bool("dev-mode", false, "development mode")
	termsFile := flag.String("terms", "", "load the term table from a JSON file")
	date := flag.String("date", "", "resolve this instant (2006-01-02T15:04) instead of now")
	long := flag.Bool("long", false, "print a verbose status line")
	flag.Parse()

	terms, err := buildTerms(termDates)
	if err != nil {
		log.Fatal(err)
	}
	if *termsFile != "" {
		f, err := os.Open(*termsFile)
		if err != nil {
			log.Fatal(err)
		}
		terms, err = LoadTerms(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %s", *termsFile, err)
		}
	}

	now := time.Now().In(europeLondon)
	if *date != "" {
		now, err = time.ParseInLocation("2006-01-02T15:04", *date, europeLondon)
		if err != nil {
			log.Fatalf("invalid -date %q: %s", *date, err)
		}
	}

	if !*serve {
		var line string
		if *long {
			line, err = LongStatus(terms, now, message.NewPrinter(language.English))
		} else {
			line, err = Status(terms, now)
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(line)
		return
	}

	app := &App{
		terms:      terms,
		devMode:    *devMode,
		templateFS: content,
	}
	if *devMode {
		app.templateFS = os.DirFS(".")
	}

	router := httprouter.New()
	router.GET("/", app.Index)
	router.GET("/status", app.StatusLine)
	router.GET("/terms.json", app.TermsJSON)
	router.GET("/term-dates.ics", app.TermDates)
	router.GET("/robots.txt", app.RobotsTXT)

	// Determine port for HTTP service.
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var h http.Handler = newI18nMiddleware(router)
	if *logRequests {
		h = handlers.LoggingHandler(os.Stdout, h)
	}

	log.Printf("listening on port %s", port)
	if err := http.ListenAndServe(":"+port, h); err != nil {
		log.Fatal(err)
	}
}
