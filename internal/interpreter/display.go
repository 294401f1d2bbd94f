package interpreter

import (
	"bufio"
	"io"
	"strconv"
)

// Render draws the plateau with the given rovers, top row first.
// A lone rover shows its facing, a shared cell shows how many rovers sit there.
func (p Plateau) Render(w io.Writer, states []FinalState) error {
	cells := make(map[Position][]FinalState, len(states))
	for _, s := range states {
		cells[s.Position()] = append(cells[s.Position()], s)
	}

	bw := bufio.NewWriter(w)
	for y := p.Rows; y >= 0; y-- {
		for x := 0; x <= p.Columns; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			here := cells[Position{X: x, Y: y}]
			switch {
			case len(here) == 0:
				bw.WriteByte('.')
			case len(here) == 1:
				bw.WriteString(here[0].Facing.String())
			case len(here) < 10:
				bw.WriteString(strconv.Itoa(len(here)))
			default:
				bw.WriteByte('+')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteResults prints one "x y O" line per state.
func WriteResults(w io.Writer, states []FinalState) error {
	bw := bufio.NewWriter(w)
	for _, s := range states {
		bw.WriteString(s.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
