package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/casey/combomatic/internal/domain"
)

type fakeRenderer struct {
	search  domain.Search
	guesses domain.GuessList
	calls   int
	err     error
}

func (f *fakeRenderer) Render(search domain.Search, guesses domain.GuessList) error {
	f.search = search
	f.guesses = guesses
	f.calls++
	return f.err
}

func newTestSearch(t *testing.T) domain.Search {
	t.Helper()
	ring, err := domain.NewRing(0, 99)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	search, err := domain.NewSearch(ring, domain.Combination{0, 1}, 1)
	if err != nil {
		t.Fatalf("NewSearch: %v", err)
	}
	return search
}

func TestCrackExecuteRendersRankedGuesses(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := NewCrack(renderer)

	if err := uc.Execute(context.Background(), newTestSearch(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if renderer.calls != 1 {
		t.Fatalf("expected one render call, got %d", renderer.calls)
	}
	if len(renderer.guesses) != 9 {
		t.Fatalf("expected 9 guesses, got %d", len(renderer.guesses))
	}
	sorted := sort.SliceIsSorted(renderer.guesses, func(i, j int) bool {
		return renderer.guesses[i].Errors < renderer.guesses[j].Errors
	})
	if !sorted {
		t.Fatalf("renderer received an unsorted guess list")
	}
}

func TestCrackExecutePropagatesRenderError(t *testing.T) {
	want := errors.New("broken pipe")
	uc := NewCrack(&fakeRenderer{err: want})

	if err := uc.Execute(context.Background(), newTestSearch(t)); !errors.Is(err, want) {
		t.Fatalf("expected render error, got %v", err)
	}
}

func TestCrackExecuteCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	renderer := &fakeRenderer{}
	uc := NewCrack(renderer)

	if err := uc.Execute(ctx, newTestSearch(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if renderer.calls != 0 {
		t.Fatalf("renderer should not run after cancellation")
	}
}
