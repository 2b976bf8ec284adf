package engine

import "iter"

// IsAvailableMove reports whether cell may be flipped next: it is in range,
// unmatched, and not the single card already face up.
func (d *Deck) IsAvailableMove(cell int) bool {
	if cell < 0 || cell >= len(d.cells) {
		return false
	}
	if d.cells[cell].owner != 0 {
		return false
	}
	return !(d.opened.AwaitingSecond() && d.opened.At(0) == cell)
}

// AvailableMoves yields every available cell in index order. The sequence is
// derived from the current state each time it is ranged over.
func (d *Deck) AvailableMoves() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range d.cells {
			if d.IsAvailableMove(i) && !yield(i) {
				return
			}
		}
	}
}

// AvailableMovesList returns the available moves as a slice (allocates).
func (d *Deck) AvailableMovesList() []int {
	var moves []int
	for i := range d.AvailableMoves() {
		moves = append(moves, i)
	}
	return moves
}

// CountAvailable returns the number of available moves.
func (d *Deck) CountAvailable() int {
	n := 0
	for range d.AvailableMoves() {
		n++
	}
	return n
}
