package main

import (
	"fmt"
	"os"

	"github.com/Cece94/articguessr/constants"
	"github.com/Cece94/articguessr/explore"
	"github.com/Cece94/articguessr/models/aic"
	"github.com/Cece94/articguessr/models/common"
	"github.com/Cece94/articguessr/util"
	"github.com/Cece94/articguessr/util/cli"
)

func main() {
	cli.Init()
	opts := cli.ParseOpts()
	if opts.PrintHelp {
		printHelp()
		cli.PrintDefaults()
		os.Exit(0)
	}

	if opts.FindType != "" || opts.FindStyle != "" {
		printMatches(opts)
		os.Exit(0)
	}

	context := common.NewContext()
	filters := filtersFromOpts(opts)
	feed := explore.NewFeed(filters, context.AICClient)

	for i := 0; i < opts.Pages && feed.HasMore(); i++ {
		if err := feed.LoadMore(); err != nil {
			fmt.Fprintf(os.Stderr, "Page load failed: %v\n", err)
			os.Exit(1)
		}
	}

	for _, artwork := range feed.Artworks() {
		artist := "Unknown artist"
		if artwork.Artist != nil {
			artist = *artwork.Artist
		}
		date := ""
		if artwork.DateDisplay != nil {
			date = *artwork.DateDisplay
		}
		fmt.Printf("%8d  %-40.40s  %-30.30s  %s\n", artwork.ID, artwork.Title, artist, date)
	}
	fmt.Printf("\nPage %d of %d. Share: %s\n",
		feed.CurrentPage(), feed.TotalPages(), filters.BuildURL("/explore"))

	// Cache the session so a rerun within the freshness window could
	// resume. Failure here is not fatal; the feed already printed.
	sess := feed.ToSession()
	if err := context.RedisClient.ScrollSessionSave(sess); err != nil {
		context.Logger.Warningf("Could not cache scroll session: %v", err)
	} else {
		fmt.Printf("Session cached as %s\n", sess.ID)
	}
}

// printMatches answers -find-type and -find-style lookups, so users
// can discover the exact enum values the filter flags require.
func printMatches(opts cli.Options) {
	if opts.FindType != "" {
		for _, value := range util.FilterStringList(constants.ArtworkTypes, opts.FindType) {
			fmt.Println(value)
		}
	}
	if opts.FindStyle != "" {
		for _, value := range util.FilterStringList(constants.CultureOrStyles, opts.FindStyle) {
			fmt.Println(value)
		}
	}
}

func filtersFromOpts(opts cli.Options) *aic.Filters {
	filters := &aic.Filters{
		Page:  opts.Page,
		Limit: opts.Limit,
	}
	if aic.IsValidArtworkType(opts.ArtworkType) {
		filters.ArtworkType = opts.ArtworkType
	} else if opts.ArtworkType != "" {
		fmt.Fprintf(os.Stderr, "Ignoring unknown artwork type %q\n", opts.ArtworkType)
	}
	if aic.IsValidCultureOrStyle(opts.CultureOrStyle) {
		filters.CultureOrStyle = opts.CultureOrStyle
	} else if opts.CultureOrStyle != "" {
		fmt.Fprintf(os.Stderr, "Ignoring unknown culture/style %q\n", opts.CultureOrStyle)
	}
	if opts.YearStart != 0 || opts.YearEnd != 0 {
		filters.YearRange = &aic.YearRange{Start: opts.YearStart, End: opts.YearEnd}
	}
	return filters
}

func printHelp() {
	message := `
artic_explore lists artworks from the Art Institute of Chicago,
optionally filtered by type, culture/style and year range. It loads
pages the way the explore feed does (deduplicated, images required)
and caches the resulting scroll session in redis.
`
	fmt.Println(message)
	fmt.Println(cli.EnvMessage)
}
