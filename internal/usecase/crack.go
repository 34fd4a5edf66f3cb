package usecase

import (
	"context"

	"github.com/casey/combomatic/internal/domain"
	"github.com/casey/combomatic/internal/ports"
)

// Crack runs one search end to end: enumerate the neighborhood of the
// base combination, rank it, and hand the result to a renderer.
type Crack struct {
	renderer ports.GuessRenderer
}

func NewCrack(renderer ports.GuessRenderer) *Crack {
	return &Crack{renderer: renderer}
}

// Execute enumerates and renders the guess list for an already-validated
// search. Enumeration itself is synchronous and has no suspension
// points; the context is only consulted before work starts.
func (uc *Crack) Execute(ctx context.Context, search domain.Search) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	guesses := search.Guesses()

	return uc.renderer.Render(search, guesses)
}
