package interpreter

import "fmt"

// Orientation is one of the four compass points, ordered clockwise.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

var clockwise = [...]Orientation{North, East, South, West}

var deltas = [...][2]int{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// ParseOrientation maps "N", "E", "S" or "W" to its Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return North, fmt.Errorf("unknown orientation %q", s)
}

func (o Orientation) Valid() bool {
	return o >= North && o <= West
}

// Delta returns the unit step taken when moving forward.
func (o Orientation) Delta() (dx, dy int) {
	d := deltas[o]
	return d[0], d[1]
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

func rightOf(o Orientation) Orientation {
	return clockwise[(int(o)+1)%len(clockwise)]
}

func leftOf(o Orientation) Orientation {
	return clockwise[(int(o)+len(clockwise)-1)%len(clockwise)]
}

// Compass tracks the facing of a single rover.
type Compass struct {
	current Orientation
}

// NewCompass panics on an orientation outside N/E/S/W; callers validate first.
func NewCompass(o Orientation) *Compass {
	if !o.Valid() {
		panic(fmt.Sprintf("interpreter: invalid orientation %d", int(o)))
	}
	return &Compass{current: o}
}

// Rotate turns a quarter left on 'L' and a quarter right on 'R'.
// Any other rune leaves the compass untouched.
func (c *Compass) Rotate(dir rune) {
	switch dir {
	case 'L':
		c.current = leftOf(c.current)
	case 'R':
		c.current = rightOf(c.current)
	}
}

func (c *Compass) Current() Orientation {
	return c.current
}
