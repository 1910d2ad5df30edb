// Example: aggregate a title and print its announcement message.
package main

import (
	"fmt"
	"os"

	"github.com/cinecast/cinecast/pkg/cinecast"
)

func main() {
	client := cinecast.NewFromEnv()

	match, found := client.FindMovie("Inception", "2010")
	if !found {
		fmt.Println("no match found")
		os.Exit(1)
	}

	result := client.GetByID(match.MediaType, match.ID, 0, 0)
	fmt.Println(result.Message)
	if result.Record != nil {
		fmt.Printf("\nposter: %s\ntrailer: %s\n", result.Record.PosterURL, result.Record.TrailerURL)
	}
}
