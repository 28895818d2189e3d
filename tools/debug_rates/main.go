package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rpgo/mortgage-calculator/internal/output"
	"github.com/rpgo/mortgage-calculator/internal/rates"
)

// Parses a saved bank rate page and reports what was and was not usable,
// for when a lender changes its page layout.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: debug_rates <BMO|RBC> <saved-page>")
		return
	}

	src := &rates.FileSource{Lender: os.Args[1], Path: os.Args[2]}
	records, err := src.Fetch(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== %s: %d rates parsed from %s ===\n", src.Name(), len(records), src.Path)
	if len(records) == 0 {
		fmt.Printf("no rates found; the page layout may have changed\n")
		return
	}

	incomplete := 0
	for i, r := range records {
		if !r.Complete() {
			incomplete++
			fmt.Printf("record %d is missing fields: %+v\n", i, r)
		}
	}
	fmt.Printf("complete: %d, incomplete: %d\n\n", len(records)-incomplete, incomplete)

	rates.SortByRate(records)
	os.Stdout.Write(output.FormatRateTable(records))
}
