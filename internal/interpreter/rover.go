package interpreter

import "fmt"

// Position is a cell on the plateau.
type Position struct {
	X, Y int
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rover represents a rover waiting to replay its instructions.
type Rover struct {
	Name         string
	Pos          Position
	Compass      *Compass
	Instructions string
}

func NewRover(name string, pos Position, facing Orientation, instructions string) *Rover {
	return &Rover{Name: name, Pos: pos, Compass: NewCompass(facing), Instructions: instructions}
}

// FinalState is what is left of a rover after its instructions ran.
type FinalState struct {
	Name   string
	X, Y   int
	Facing Orientation
}

func (s FinalState) Position() Position {
	return Position{X: s.X, Y: s.Y}
}

// String formats the state the way results are printed: "x y O".
func (s FinalState) String() string {
	return fmt.Sprintf("%d %d %s", s.X, s.Y, s.Facing)
}
