// Package display holds console presentation helpers: the startup banner,
// size formatting, and the end-of-run summary box.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/en-shindan/rename-results/internal/term"
)

const bannerText = `rename-results
診断結果 → transliterated result files`

// PrintBanner writes the startup banner to w; styled in magenta when colors
// are enabled.
func PrintBanner(w io.Writer) {
	if !term.Enabled() {
		fmt.Fprintln(w, bannerText)
		fmt.Fprintln(w)
		return
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	fmt.Fprintln(w, style.Render(bannerText))
	fmt.Fprintln(w)
}
