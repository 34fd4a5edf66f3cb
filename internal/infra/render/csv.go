// Package render implements the output side of combomatic: writers that
// consume a ranked guess list and produce text.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/casey/combomatic/internal/domain"
)

// CSV writes the guess list as comma-separated rows under a header line.
// The first column, "tried", is left empty on every row so the user can
// mark off combinations as they work through the list.
type CSV struct {
	W io.Writer
}

func (r CSV) Render(search domain.Search, guesses domain.GuessList) error {
	w := csv.NewWriter(r.W)
	k := len(search.Combination)

	header := make([]string, 0, k+2)
	header = append(header, "tried")
	for i := 1; i <= k; i++ {
		header = append(header, fmt.Sprintf("number %d", i))
	}
	header = append(header, "errors")
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, k+2)
	for _, g := range guesses {
		row[0] = ""
		for i, d := range g.Digits {
			row[i+1] = strconv.Itoa(d)
		}
		row[k+1] = strconv.Itoa(g.Errors)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
