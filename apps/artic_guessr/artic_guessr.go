package main

import (
	"fmt"
	"os"

	"github.com/Cece94/articguessr/models/common"
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

	context := common.NewContext()
	artwork, err := context.AICClient.RandomArtwork()
	if err != nil {
		fmt.Fprintf(os.Stderr, "No artwork for you: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Title:  %s\n", artwork.Title)
	fmt.Printf("Image:  %s\n", artwork.ImageURL)
	if artwork.Medium != nil {
		fmt.Printf("Medium: %s\n", *artwork.Medium)
	}
	fmt.Println("\n--- answers below ---")
	if artwork.Artist != nil {
		fmt.Printf("Artist: %s\n", *artwork.Artist)
	} else {
		fmt.Println("Artist: unknown")
	}
	if artwork.PrimaryYear != nil {
		fmt.Printf("Year:   %d (decade %ds)\n", *artwork.PrimaryYear, *artwork.Decade)
	}
}

func printHelp() {
	message := `
artic_guessr fetches one random, reasonably guessable artwork from the
Art Institute of Chicago: a painting or drawing made after 1860, with
an image. Show someone the image, let them guess artist and year, then
scroll down for the answers.
`
	fmt.Println(message)
	fmt.Println(cli.EnvMessage)
}
