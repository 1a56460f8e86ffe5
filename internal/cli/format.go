package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/evcraddock/stay-finder/internal/search"
	"github.com/evcraddock/stay-finder/internal/stay"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printStayTable prints the visible stays as a table followed by the count label.
func printStayTable(w io.Writer, res *search.Result) error {
	if len(res.Visible) == 0 {
		_, err := fmt.Fprintf(w, "No stays found.\n\n%s\n", res.Label)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "TITLE\tLOCATION\tTYPE\tGUESTS\tRATING\tHOST"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "-----\t--------\t----\t------\t------\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, l := range res.Visible {
		host := "-"
		if l.SuperHost {
			host = "super"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			truncate(l.Title, 40), stay.LocationKey(l), orDash(l.Summary()),
			l.MaxGuests, stay.FormatRating(l.Rating), host); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%s\n", res.Label)
	return err
}

// printLocations prints one location option per line.
func printLocations(w io.Writer, locs []string) error {
	if len(locs) == 0 {
		_, err := fmt.Fprintln(w, "No locations.")
		return err
	}
	for _, l := range locs {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
