package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/page-digest/internal/serve"
	"github.com/dtnitsch/page-digest/internal/settings"
	"github.com/dtnitsch/page-digest/internal/summarize"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env is fine; the settings store and real env still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "page-digest",
		Usage: "Summarize web pages with OpenRouter models",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Only log errors",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Path to the settings database (default: page-digest.db next to the binary)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "summarize",
				Usage:  "Fetch a page and print its summary",
				Action: summarize.SummarizeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "Page URL to summarize",
					},
					&cli.StringFlag{
						Name:  "text",
						Usage: "Summarize this text instead of fetching a URL",
					},
					&cli.StringFlag{
						Name:  "length",
						Usage: "Summary length: short, medium, or long",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "ISO 639-1 code for the summary language, or 'auto'",
					},
					&cli.BoolFlag{
						Name:  "tldr",
						Usage: "Also generate a one-sentence TL;DR",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format: json or yaml",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Run the summarization HTTP server",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Value: ":8090",
						Usage: "Listen address",
					},
				},
			},
			{
				Name:  "settings",
				Usage: "Inspect and change persisted settings",
				Subcommands: []*cli.Command{
					{
						Name:   "get",
						Usage:  "Print the current settings",
						Action: settings.GetAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "format",
								Value: "json",
								Usage: "Output format: json or yaml",
							},
						},
					},
					{
						Name:   "options",
						Usage:  "List the selectable models, languages, and lengths",
						Action: settings.OptionsAction,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "format",
								Value: "json",
								Usage: "Output format: json or yaml",
							},
						},
					},
					{
						Name:   "set",
						Usage:  "Update one or more settings",
						Action: settings.SetAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "api-key", Usage: "OpenRouter API key"},
							&cli.StringFlag{Name: "model", Usage: "Model identifier, e.g. openai/gpt-4o-mini"},
							&cli.StringFlag{Name: "length", Usage: "Default summary length: short, medium, or long"},
							&cli.StringFlag{Name: "language", Usage: "Default summary language code, or 'auto'"},
							&cli.StringFlag{Name: "theme", Usage: "UI theme: light or dark"},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
