package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jszwec/csvutil"

	"notam_parser/internal/grouping"
	"notam_parser/internal/notam"
)

const (
	formatJSON  = "json"
	formatTable = "table"
	formatCSV   = "csv"

	maxTextWidth = 60
)

func checkFormat(f string) error {
	switch f {
	case formatJSON, formatTable, formatCSV:
		return nil
	}
	return fmt.Errorf("unknown format %q (want json, table or csv)", f)
}

func render(w io.Writer, format string, results []parsed) error {
	switch format {
	case formatJSON:
		if len(results) == 1 {
			return printJSON(w, results[0])
		}
		return printJSON(w, results)
	case formatCSV:
		return renderCSV(w, results)
	default:
		for _, r := range results {
			renderTable(w, r)
		}
		return nil
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// shown returns the NOTAMs to display, with their visibility state when a
// window was applied.
func shown(r parsed) ([]notam.Notam, map[string]notam.VisibilityState) {
	if r.Window == "" {
		return r.Result.Notams, nil
	}
	states := make(map[string]notam.VisibilityState, len(r.Filtered))
	out := make([]notam.Notam, len(r.Filtered))
	for i, f := range r.Filtered {
		out[i] = f.Notam
		states[f.Notam.RawText] = f.State
	}
	return out, states
}

func formatValidity(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04Z")
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func renderTable(w io.Writer, r parsed) {
	notams, states := shown(r)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	title := fmt.Sprintf("%s: %d NOTAMs", r.File, len(notams))
	if r.Window != "" {
		title += fmt.Sprintf(" (window %s)", r.Window)
	}
	tw.SetTitle("%s", title)

	header := table.Row{"Location", "Category", "NOTAM", "From", "To"}
	if states != nil {
		header = append(header, "State")
	}
	header = append(header, "Text")
	tw.AppendHeader(header)

	for _, sec := range grouping.ByLocationAndCategory(notams).Sections() {
		for _, n := range sec.Notams {
			to := formatValidity(n.ValidTo)
			if n.IsPermanent {
				to = "PERM"
			}
			row := table.Row{sec.Location, sec.Label, n.NotamID, formatValidity(n.ValidFrom), to}
			if states != nil {
				row = append(row, states[n.RawText])
			}
			row = append(row, truncate(n.FieldE, maxTextWidth))
			tw.AppendRow(row)
		}
	}

	stats := r.Result.ValidationStats
	tw.SetCaption("blocks: %d total, %d accepted, %d rejected", stats.TotalBlocks, stats.AcceptedBlocks, stats.RejectedBlocks)
	tw.Render()

	reasons := make([]string, 0, len(stats.RejectionReasons))
	for reason := range stats.RejectionReasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, "  rejected %dx: %s\n", stats.RejectionReasons[reason], reason)
	}
	for _, warning := range r.Result.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	fmt.Fprintln(w)
}

// csvRow is one NOTAM in CSV output.
type csvRow struct {
	File      string `csv:"file"`
	NotamID   string `csv:"notam_id"`
	Location  string `csv:"location"`
	Group     string `csv:"group"`
	QCode     string `csv:"q_code"`
	ValidFrom string `csv:"valid_from"`
	ValidTo   string `csv:"valid_to"`
	Permanent bool   `csv:"permanent"`
	State     string `csv:"state"`
	Warnings  int    `csv:"warnings"`
	Text      string `csv:"text"`
}

func csvTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func renderCSV(w io.Writer, results []parsed) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	if err := enc.EncodeHeader(csvRow{}); err != nil {
		return err
	}

	for _, r := range results {
		notams, states := shown(r)
		for _, n := range notams {
			row := csvRow{
				File:      r.File,
				NotamID:   n.NotamID,
				Location:  n.Location(),
				Group:     string(n.Group),
				QCode:     n.QCode,
				ValidFrom: csvTime(n.ValidFrom),
				ValidTo:   csvTime(n.ValidTo),
				Permanent: n.IsPermanent,
				State:     string(states[n.RawText]),
				Warnings:  len(n.Warnings),
				Text:      n.FieldE,
			}
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func renderExplain(w io.Writer, blocks []blockExplanation) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"#", "First line", "Valid", "Confidence", "Reason", "Rejected by", "Group", "Route"})
	for _, b := range blocks {
		first, _, _ := strings.Cut(b.Block, "\n")
		var by []string
		for _, tr := range b.Sniffers {
			if tr.Matched() {
				by = append(by, tr.SnifferName)
			}
		}
		group, route := "", ""
		if d := b.Categorization; d != nil {
			group = d.Group.Label()
			route = string(d.Route)
			if d.Detail != "" {
				route += ": " + d.Detail
			}
		}
		tw.AppendRow(table.Row{
			b.Index,
			truncate(first, 40),
			b.Result.Valid,
			fmt.Sprintf("%.2f", b.Result.Confidence),
			b.Result.Reason,
			strings.Join(by, ","),
			group,
			route,
		})
	}
	tw.Render()
}
