// Package report renders the call breakdown and disposition details as
// Markdown for the non-interactive commands.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nish-b/found-call-explorer/analysis"
	"github.com/nish-b/found-call-explorer/model"
)

// Overview renders the category breakdown.
func Overview(title string, s model.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "## Disposition Breakdown by Category\n\n")
	fmt.Fprintf(&b, "%s calls analyzed.\n\n", FormatCount(s.Rows))

	ranked := analysis.Ranked(s.Breakdown)
	if len(ranked) == 0 {
		b.WriteString("No categorized calls.\n")
	}
	for _, c := range ranked {
		fmt.Fprintf(&b, "### %s (%s calls, %s)\n\n", c.Name, FormatCount(c.Total), FormatShare(c.Total, s.Rows))
		for _, d := range c.Dispositions {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", d.Disposition, FormatCount(d.Count), FormatShare(d.Count, s.Rows))
		}
		b.WriteString("\n")
	}

	if len(s.Unmapped) > 0 {
		b.WriteString("## Uncategorized Dispositions\n\n")
		for _, d := range sortedCounts(s.Unmapped) {
			fmt.Fprintf(&b, "- %s: %s\n", d.Disposition, FormatCount(d.Count))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Detail renders the notes and keywords of one disposition.
func Detail(disposition string, notes []string, keywords []model.Keyword) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", disposition)

	b.WriteString("## Common Keywords\n\n")
	if len(keywords) == 0 {
		b.WriteString("No keywords.\n\n")
	} else {
		chips := make([]string, len(keywords))
		for i, kw := range keywords {
			chips[i] = fmt.Sprintf("`%s (%d)`", kw.Word, kw.Count)
		}
		b.WriteString(strings.Join(chips, " ") + "\n\n")
	}

	fmt.Fprintf(&b, "## Call Notes (%d)\n\n", len(notes))
	if len(notes) == 0 {
		b.WriteString("No notes available for this disposition.\n")
		return b.String()
	}
	for _, n := range notes {
		for _, line := range strings.Split(strings.TrimRight(n, "\n"), "\n") {
			b.WriteString("> " + line + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sortedCounts orders counts descending, then by name.
func sortedCounts(counts map[string]int) []model.DispositionCount {
	out := make([]model.DispositionCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, model.DispositionCount{Disposition: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Disposition < out[j].Disposition
	})
	return out
}
