package domain

// Combination is an ordered sequence of ring digits. Order matters:
// position identity is preserved across transformations, and two
// combinations compare position by position.
type Combination []int

// Clone returns an independent copy.
func (c Combination) Clone() Combination {
	if c == nil {
		return nil
	}
	out := make(Combination, len(c))
	copy(out, c)
	return out
}

// Guess is one candidate combination plus its error score: the sum of
// per-position cyclic distances between the candidate and the base
// combination it was generated from.
type Guess struct {
	Digits Combination
	Errors int
}

// GuessList is a ranked list of candidates, ascending by error score.
type GuessList []Guess
