package domain

import (
	"fmt"
	"sort"
)

// Defaults applied when a preset file or flag omits a value.
const (
	DefaultMin    = 0
	DefaultMax    = 99
	DefaultRadius = 2
)

// maxCandidates caps the enumeration so a careless range/length pair
// fails fast instead of exhausting memory. The guess list costs
// O(count * positions) ints, so the cap has to sit well below what the
// counter arithmetic alone could represent.
const maxCandidates = int64(1) << 40

// Search is a validated, immutable description of one run: the ring the
// digits live on, the remembered base combination, and how far each
// digit may be off.
type Search struct {
	Ring        Ring
	Combination Combination
	Radius      int
}

// NewSearch validates the inputs and returns an immutable Search.
func NewSearch(ring Ring, combination Combination, radius int) (Search, error) {
	const op = "search.new"

	if len(combination) == 0 {
		return Search{}, &OpError{Op: op, Kind: KindEmptyCombination, Err: ErrEmptyCombination}
	}
	if radius < 0 {
		return Search{}, &OpError{
			Op:   op,
			Kind: KindNegativeRadius,
			Err:  fmt.Errorf("range %d: %w", radius, ErrNegativeRadius),
		}
	}
	for i, d := range combination {
		if !ring.Contains(d) {
			return Search{}, &OpError{
				Op:   op,
				Kind: KindDigitOutOfRange,
				Err: fmt.Errorf("position %d: digit %d outside [%d, %d]: %w",
					i+1, d, ring.Min, ring.Max, ErrDigitOutOfRange),
			}
		}
	}
	if _, err := candidateCount(2*radius+1, len(combination)); err != nil {
		return Search{}, &OpError{Op: op, Kind: KindSearchSpace, Err: err}
	}

	return Search{Ring: ring, Combination: combination.Clone(), Radius: radius}, nil
}

// Size returns the number of guesses Guesses produces: (2*Radius+1)^k
// for a k-digit combination.
func (s Search) Size() int64 {
	n, _ := candidateCount(2*s.Radius+1, len(s.Combination))
	return n
}

// Guesses enumerates every combination reachable from the base by moving
// each digit independently at most Radius steps in either direction,
// wrapping on the ring, and returns the full list sorted ascending by
// error score. Ties keep generation order. Candidates that coincide in
// value after wraparound are not merged.
func (s Search) Guesses() GuessList {
	guesses := make(GuessList, 0, s.Size())

	counter := newOffsetCounter(len(s.Combination), s.Radius)
	for offsets, ok := counter.Next(); ok; offsets, ok = counter.Next() {
		digits := make(Combination, len(s.Combination))
		score := 0
		for i, off := range offsets {
			digits[i] = s.Ring.Step(s.Combination[i], off)
			score += s.Ring.Distance(digits[i], s.Combination[i])
		}
		guesses = append(guesses, Guess{Digits: digits, Errors: score})
	}

	sort.SliceStable(guesses, func(i, j int) bool {
		return guesses[i].Errors < guesses[j].Errors
	})

	return guesses
}

// Errors recomputes the error score of an arbitrary guess against the
// base combination. Guesses produced by Guesses carry the score already.
func (s Search) Errors(digits Combination) int {
	score := 0
	for i, d := range digits {
		score += s.Ring.Distance(d, s.Combination[i])
	}
	return score
}

func candidateCount(base, positions int) (int64, error) {
	total := int64(1)
	b := int64(base)
	for i := 0; i < positions; i++ {
		if total > maxCandidates/b {
			return 0, fmt.Errorf("%d^%d candidates: %w", base, positions, ErrSearchSpaceTooLarge)
		}
		total *= b
	}
	return total, nil
}

// Preset is a named, fully validated search plus output preferences,
// typically loaded from a preset file or assembled from CLI flags.
type Preset struct {
	Name   string
	Search Search
	CSV    bool
}
