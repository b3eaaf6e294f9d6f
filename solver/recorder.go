package solver

// PathRecorder keeps the direction of every move made while exploring.
// The log only grows; it is frozen once the searching phase ends. Its
// reversal is the guaranteed fallback route home: every recorded move
// traversed an edge that, by wall symmetry, exists in reverse.
type PathRecorder struct {
	moves []Direction
}

// NewPathRecorder creates an empty recorder.
func NewPathRecorder() *PathRecorder {
	return &PathRecorder{}
}

// Record appends one move to the log.
func (r *PathRecorder) Record(d Direction) {
	r.moves = append(r.moves, d)
}

// Len returns the number of recorded moves.
func (r *PathRecorder) Len() int {
	return len(r.moves)
}

// Moves returns a copy of the recorded move sequence.
func (r *PathRecorder) Moves() []Direction {
	out := make([]Direction, len(r.moves))
	copy(out, r.moves)
	return out
}

// Backtrack returns the recorded moves in reverse order with each
// direction flipped 180 degrees. Replaying the result from the end of
// the exploration leads back to its starting cell. An empty log yields
// an empty path, which means no movement is needed.
func (r *PathRecorder) Backtrack() []Direction {
	out := make([]Direction, 0, len(r.moves))
	for i := len(r.moves) - 1; i >= 0; i-- {
		out = append(out, r.moves[i].Opposite())
	}
	return out
}
