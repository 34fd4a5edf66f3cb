package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/casey/combomatic/internal/domain"
)

var groupHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// Grouped writes guesses grouped by error score, lowest first. Each
// group opens with a "<n> errors:" header, then one combination per
// line: digits zero-padded to the width of the ring's max digit, joined
// by "-". The list must already be sorted, so groups are contiguous.
type Grouped struct {
	W     io.Writer
	Color bool
}

func (r Grouped) Render(search domain.Search, guesses domain.GuessList) error {
	width := len(strconv.Itoa(search.Ring.Max))

	last := -1 // scores are non-negative, so the first guess always opens a group
	for _, g := range guesses {
		if g.Errors != last {
			header := fmt.Sprintf("%d errors:", g.Errors)
			if r.Color {
				header = groupHeaderStyle.Render(header)
			}
			if _, err := fmt.Fprintln(r.W, header); err != nil {
				return err
			}
			last = g.Errors
		}

		var line strings.Builder
		for i, d := range g.Digits {
			if i > 0 {
				line.WriteByte('-')
			}
			fmt.Fprintf(&line, "%0*d", width, d)
		}
		if _, err := fmt.Fprintln(r.W, line.String()); err != nil {
			return err
		}
	}

	return nil
}
