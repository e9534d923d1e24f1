package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"notam_parser/internal/categorize"
	"notam_parser/internal/fields"
	"notam_parser/internal/notam"
	"notam_parser/internal/pipeline"
	"notam_parser/internal/section"
	"notam_parser/internal/source"
	"notam_parser/internal/splitter"
	"notam_parser/internal/storage"
	"notam_parser/internal/timefilter"
	"notam_parser/internal/validate"
)

const stdinName = "-"

// parsed is the result for one input.
type parsed struct {
	File     string              `json:"file"`
	Result   pipeline.Result     `json:"result"`
	Filtered []timefilter.Result `json:"filtered,omitempty"`
	Window   notam.Window        `json:"window,omitempty"`
	Briefing string              `json:"briefingId,omitempty"`

	text string
}

type parseOptions struct {
	document       bool
	html           bool
	format         string
	window         string
	includeExpired bool
	archive        string
}

func parseCmd() *cobra.Command {
	var opts parseOptions
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse NOTAM briefings",
		Long: `Parse one or more briefings. Reads stdin when no file is given.
Files ending in .html or .htm are read as HTML pages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool("json") {
				opts.format = formatJSON
			}
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			now, err := referenceTime()
			if err != nil {
				return err
			}
			var window notam.Window
			if opts.window != "" {
				if window, err = notam.ParseWindow(opts.window); err != nil {
					return err
				}
			}

			if len(args) == 0 {
				args = []string{stdinName}
			}
			results, err := parseFiles(cmd.Context(), args, opts, now)
			if err != nil {
				return err
			}

			if window != "" {
				for i := range results {
					results[i].Window = window
					results[i].Filtered = timefilter.Filter(results[i].Result.Notams, window, now,
						timefilter.Options{IncludeExpired: opts.includeExpired})
				}
			}

			if opts.archive != "" {
				if err := archiveResults(cmd.Context(), opts.archive, results); err != nil {
					return err
				}
			}

			return render(os.Stdout, opts.format, results)
		},
	}
	cmd.Flags().BoolVar(&opts.document, "document", true, "detect NOTAM sections before splitting")
	cmd.Flags().BoolVar(&opts.html, "html", false, "treat every input as HTML")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "output format: json, table or csv")
	cmd.Flags().StringVar(&opts.window, "window", "", "time filter window: 6h, 12h, 24h or All")
	cmd.Flags().BoolVar(&opts.includeExpired, "include-expired", false, "keep expired NOTAMs when filtering")
	cmd.Flags().StringVar(&opts.archive, "archive", "", "store results in the SQLite archive at this path")
	return cmd
}

func readInput(name string, forceHTML bool) (string, error) {
	kind := source.KindFor(name)
	if forceHTML {
		kind = source.HTML
	}

	var r io.Reader = os.Stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	text, err := source.Read(r, kind)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return text, nil
}

// parseFiles reads and parses every input concurrently. Results keep the
// order of names.
func parseFiles(ctx context.Context, names []string, opts parseOptions, now time.Time) ([]parsed, error) {
	parser := pipeline.Default()
	results := make([]parsed, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := readInput(name, opts.html)
			if err != nil {
				return err
			}
			var res pipeline.Result
			if opts.document {
				res = parser.ParseDocument(text, now)
			} else {
				res = parser.ParseText(text, now)
			}
			results[i] = parsed{File: name, Result: res, text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func archiveResults(ctx context.Context, path string, results []parsed) error {
	a, err := storage.OpenArchive(path)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	for i, r := range results {
		b := storage.NewBriefing(r.File, r.text, r.Result, time.Now())
		if err := a.StoreBriefing(ctx, b); err != nil {
			return fmt.Errorf("archive %s: %w", r.File, err)
		}
		results[i].Briefing = b.ID.String()
	}
	return nil
}

// blockExplanation is one block's validation account.
type blockExplanation struct {
	Index int    `json:"index"`
	Block string `json:"block"`
	validate.Explanation
	// Set for accepted blocks only.
	Categorization *categorize.Decision `json:"categorization,omitempty"`
}

func explainCmd() *cobra.Command {
	var html, document bool
	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "Show how each block of a briefing was validated",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}
			text, err := readInput(name, html)
			if err != nil {
				return err
			}

			now, err := referenceTime()
			if err != nil {
				return err
			}
			out := explainText(text, document, now)
			if viper.GetBool("json") {
				return printJSON(os.Stdout, out)
			}
			renderExplain(os.Stdout, out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&document, "document", true, "detect NOTAM sections before splitting")
	cmd.Flags().BoolVar(&html, "html", false, "treat the input as HTML")
	return cmd
}

func explainText(text string, document bool, now time.Time) []blockExplanation {
	v := validate.Default()
	if document {
		text = section.Extract(text)
	}
	blocks := splitter.Split(text)
	out := make([]blockExplanation, len(blocks))
	for i, b := range blocks {
		out[i] = blockExplanation{Index: i + 1, Block: b, Explanation: v.Explain(b)}
		if out[i].Result.Valid {
			n := fields.Parse(b, now)
			d := categorize.Decide(n.QCode, n.NotamID, n.FieldE, n.RawText)
			out[i].Categorization = &d
		}
	}
	return out
}
