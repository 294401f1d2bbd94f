package mission

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"marsrover/internal/interpreter"
)

// GenerateOptions bound a random mission. A plateau of 0x0 is valid, so
// negative Columns or Rows select the default of 5; Rovers and MaxSteps
// fall back to 2 and 10 when not positive.
type GenerateOptions struct {
	Columns  int
	Rows     int
	Rovers   int
	MaxSteps int
}

func (o GenerateOptions) withDefaults() GenerateOptions {
	if o.Columns < 0 {
		o.Columns = 5
	}
	if o.Rows < 0 {
		o.Rows = 5
	}
	if o.Rovers <= 0 {
		o.Rovers = 2
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = 10
	}
	return o
}

const instructionSet = "LRM"

// Generate builds a mission whose rovers all have valid start states.
func Generate(rng *rand.Rand, opts GenerateOptions) *Mission {
	opts = opts.withDefaults()
	m := &Mission{Plateau: interpreter.Plateau{Columns: opts.Columns, Rows: opts.Rows}}
	for i := 1; i <= opts.Rovers; i++ {
		pos := interpreter.Position{X: rng.IntN(opts.Columns + 1), Y: rng.IntN(opts.Rows + 1)}
		facing := interpreter.Orientation(rng.IntN(4))

		var sb strings.Builder
		for n := 1 + rng.IntN(opts.MaxSteps); n > 0; n-- {
			sb.WriteByte(instructionSet[rng.IntN(len(instructionSet))])
		}
		m.Rovers = append(m.Rovers, interpreter.NewRover(roverName(i), pos, facing, sb.String()))
	}
	return m
}

// WriteText writes m in the text format Read accepts, blank line included.
// Rovers are written at their current position, so call it before Run.
func (m *Mission) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", m.Plateau.Columns, m.Plateau.Rows)
	for _, r := range m.Rovers {
		fmt.Fprintf(bw, "%d %d %s\n%s\n", r.Pos.X, r.Pos.Y, r.Compass.Current(), r.Instructions)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
