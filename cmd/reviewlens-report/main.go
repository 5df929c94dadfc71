// reviewlens-report summarizes a batch of reviews from a JSON file and
// prints the plain-text report. With -out it also writes the summary
// as an indented JSON artifact.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/reviewlens/reviewlens/internal/sample"
	"github.com/reviewlens/reviewlens/pkg/reviewlens"
	corecfg "github.com/reviewlens/reviewlens/pkg/reviewlens/config"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/report"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to JSON file with an array of reviews")
		demo        = flag.Bool("demo", false, "Run on the built-in sample reviews")
		out         = flag.String("out", "", "Optional: write the summary JSON to this path")
		lexiconPath = flag.String("lexicon", "", "Optional: lexicon override YAML")
	)
	flag.Parse()

	if *input == "" && !*demo {
		log.Fatal("--input or --demo required")
	}

	var reviews []reviewlens.Review
	if *demo {
		reviews = sample.Reviews()
	} else {
		data, err := os.ReadFile(*input)
		if err != nil {
			log.Fatalf("read input: %v", err)
		}
		if err := json.Unmarshal(data, &reviews); err != nil {
			log.Fatalf("parse reviews: %v", err)
		}
	}

	loader := corecfg.Loader{LexiconPath: *lexiconPath}
	lex, err := loader.Load()
	if err != nil {
		log.Fatalf("load lexicon: %v", err)
	}

	engine := reviewlens.New(reviewlens.Options{Lexicon: lex})
	summary, err := engine.Summarize(reviews)
	if err != nil {
		log.Fatalf("summarize: %v", err)
	}

	fmt.Print(report.Render(summary))

	if *out != "" {
		artifact, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			log.Fatalf("marshal summary: %v", err)
		}
		if err := os.WriteFile(*out, append(artifact, '\n'), 0o644); err != nil {
			log.Fatalf("write summary: %v", err)
		}
		fmt.Printf("\nSummary exported to %s\n", *out)
	}
}
