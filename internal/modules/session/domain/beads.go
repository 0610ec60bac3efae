package domain

// BeadCounter tracks the position on the wheel. It is presentation state and
// never feeds the session log.
type BeadCounter struct {
	position int
}

func (c BeadCounter) Position() int { return c.position }

// Advance moves one bead. Reaching BeadsPerMala wraps to zero and reports a
// completed mala.
func (c *BeadCounter) Advance() (int, bool) {
	c.position++
	if c.position >= BeadsPerMala {
		c.position = 0
		return 0, true
	}
	return c.position, false
}
