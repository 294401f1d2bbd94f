package interpreter

import "fmt"

// Plateau holds the inclusive upper bounds of the grid. Columns and Rows are
// the largest valid X and Y, not cell counts.
type Plateau struct {
	Columns, Rows int
}

func NewPlateau(columns, rows int) (Plateau, error) {
	if columns < 0 || rows < 0 {
		return Plateau{}, fmt.Errorf("plateau bounds must be non-negative, got %d %d", columns, rows)
	}
	return Plateau{Columns: columns, Rows: rows}, nil
}

func (p Plateau) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X <= p.Columns && pos.Y >= 0 && pos.Y <= p.Rows
}
