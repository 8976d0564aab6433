package cli

import (
	"flag"
)

type Options struct {
	ArtworkType    string
	CultureOrStyle string
	YearStart      int
	YearEnd        int
	Page           int
	Limit          int
	Pages          int
	FindType       string
	FindStyle      string
	PrintHelp      bool
}

var opts = Options{}

var EnvMessage = `Configuration comes from the following environment vars:

ARTIC_CONFIG_DIR - Path to the directory containing the .env settings file.

ARTIC_ENV - Name of the configuration to load. For example:
    test - Loads .env.test from ARTIC_CONFIG_DIR
    demo - Loads .env.demo from ARTIC_CONFIG_DIR
`

func Init() {
	flag.StringVar(&opts.ArtworkType, "type", "", "Filter by artwork type, e.g. 'Painting'")
	flag.StringVar(&opts.CultureOrStyle, "style", "", "Filter by culture or style, e.g. 'Impressionism'")
	flag.IntVar(&opts.YearStart, "year-start", 0, "Inclusive lower bound of the year filter (negative for BCE)")
	flag.IntVar(&opts.YearEnd, "year-end", 0, "Inclusive upper bound of the year filter")
	flag.IntVar(&opts.Page, "page", 0, "Page to start from (default 1)")
	flag.IntVar(&opts.Limit, "limit", 0, "Artworks per page (default 20)")
	flag.IntVar(&opts.Pages, "pages", 1, "Number of pages to load before exiting")
	flag.StringVar(&opts.FindType, "find-type", "", "Print artwork types matching this substring, then exit")
	flag.StringVar(&opts.FindStyle, "find-style", "", "Print cultures/styles matching this substring, then exit")
	flag.BoolVar(&opts.PrintHelp, "help", false, "Print help message")
}

func ParseOpts() Options {
	flag.Parse()
	return opts
}

func PrintDefaults() {
	flag.PrintDefaults()
}
