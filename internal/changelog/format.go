package changelog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// changeTypeStyle defines the color and icon for a change type.
type changeTypeStyle struct {
	Color *color.Color
	Icon  string
}

// changeTypeStyles maps change types to their terminal styling. The colors
// follow the HTML report's tag palette (green/blue/red).
var changeTypeStyles = map[ChangeType]changeTypeStyle{
	ChangeCreated: {Color: color.New(color.FgGreen), Icon: "+"},
	ChangeEdited:  {Color: color.New(color.FgBlue), Icon: "~"},
	ChangeDeleted: {Color: color.New(color.FgRed), Icon: "-"},
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTable writes entries to the writer as a table, newest first.
// Descriptions are truncated to fit the terminal width.
func FormatTable(entries []Entry, w io.Writer, opts FormatOptions) error {
	if len(entries) == 0 {
		return nil
	}

	width := resolveWidth(opts.MaxWidth)
	sorted := SortedNewestFirst(entries)

	// id(8) + type(7) + when(15) + separators leave the rest for text
	descWidth := width - 38
	if descWidth < 20 {
		descWidth = 20
	}

	if _, err := fmt.Fprintf(w, "%-8s  %-9s  %-15s  %s\n", "ID", "TYPE", "WHEN", "DESCRIPTION"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", min(width, 90))); err != nil {
		return err
	}

	for _, e := range sorted {
		desc := truncateText(flattenText(e.Description), descWidth)
		typeCol := formatChangeType(e.ChangeType, opts)
		if _, err := fmt.Fprintf(w, "%-8s  %s  %-15s  %s\n", e.ID, typeCol, formatRelativeTime(e.Timestamp), desc); err != nil {
			return err
		}
	}

	return nil
}

// FormatEntrySummary returns a brief one-line summary of an entry, used in
// command confirmation output.
func FormatEntrySummary(e Entry, opts FormatOptions) string {
	text := truncateText(flattenText(e.Description), 60)
	if opts.Plain {
		return fmt.Sprintf("[%s] %s (%s)", e.ChangeType, text, e.ID)
	}

	style := changeTypeStyles[e.ChangeType]
	colored := style.Color.SprintFunc()
	return fmt.Sprintf("%s %s (%s)", colored("["+string(e.ChangeType)+"]"), text, e.ID)
}

// SortedNewestFirst returns a copy of entries ordered by timestamp
// descending. Insertion order breaks ties so the sort is deterministic.
func SortedNewestFirst(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// formatChangeType renders the padded, optionally colored type column.
func formatChangeType(t ChangeType, opts FormatOptions) string {
	padded := fmt.Sprintf("%-9s", string(t))
	if opts.Plain {
		return padded
	}
	style := changeTypeStyles[t]
	return style.Color.Sprint(padded)
}

// formatRelativeTime formats a time as a human-readable relative string.
func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "min ago", "mins ago")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour ago", "hours ago")
	case diff < 48*time.Hour:
		return "yesterday"
	default:
		return t.Format("2006-01-02 15:04")
	}
}

// pluralize returns a singular or plural form based on count.
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// flattenText collapses newlines so multi-line notes stay on one table row.
func flattenText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateText truncates text to maxLen, adding ellipsis if needed.
func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return text[:maxLen]
	}
	return text[:maxLen-3] + "..."
}
