package ports

import "github.com/casey/combomatic/internal/domain"

// GuessRenderer renders a ranked guess list. Implementations read the
// list only; they never reorder or rescore it.
type GuessRenderer interface {
	Render(search domain.Search, guesses domain.GuessList) error
}
