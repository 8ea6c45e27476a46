package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/en-shindan/rename-results/internal/term"
)

// FormatBytes returns a human-readable IEC size ("512 B", "1.5 KiB").
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatCount returns n with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Row is one label/value line of a summary box.
type Row struct {
	Label string
	Value string
}

// SummaryBox renders rows as an aligned block under title. With colors
// enabled the block gets a rounded border; otherwise it is plain text so
// piped output and log files stay clean.
func SummaryBox(title string, rows []Row) string {
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}

	var b strings.Builder
	b.WriteString(title)
	for _, r := range rows {
		fmt.Fprintf(&b, "\n  %-*s  %s", width, r.Label, r.Value)
	}

	if !term.Enabled() {
		return b.String()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("13")).
		Padding(0, 1).
		Render(b.String())
}
