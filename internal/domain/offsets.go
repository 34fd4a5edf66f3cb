package domain

// offsetCounter enumerates every per-position offset tuple for k
// positions, each position ranging over the 2*radius+1 offsets
// -radius..+radius. It counts like an odometer with position 0 as the
// least significant digit, so tuples appear in mixed-radix order of a
// counter running from 0 to (2*radius+1)^k - 1.
type offsetCounter struct {
	radius  int
	offsets []int // odometer state
	out     []int // reused return buffer
	done    bool
}

func newOffsetCounter(positions, radius int) *offsetCounter {
	c := &offsetCounter{
		radius:  radius,
		offsets: make([]int, positions),
		out:     make([]int, positions),
		done:    positions == 0,
	}
	for i := range c.offsets {
		c.offsets[i] = -radius
	}
	return c
}

// Next returns the next offset tuple, or false once every tuple has been
// produced. The returned slice is reused between calls; callers must
// copy anything they keep.
func (c *offsetCounter) Next() ([]int, bool) {
	if c.done {
		return nil, false
	}

	copy(c.out, c.offsets)

	c.done = true
	for i := range c.offsets {
		if c.offsets[i] < c.radius {
			c.offsets[i]++
			c.done = false
			break
		}
		c.offsets[i] = -c.radius
	}

	return c.out, true
}
