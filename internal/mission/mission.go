// Package mission reads rover missions from text or HCL files, drops rovers
// whose start state is unusable, and can generate random missions.
package mission

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"marsrover/internal/interpreter"
)

// Mission is a validated plateau plus the rovers allowed to run on it.
type Mission struct {
	Plateau interpreter.Plateau
	Rovers  []*interpreter.Rover
}

// Context returns a simulation context whose occupancy already counts every
// rover at its start cell.
func (m *Mission) Context(report interpreter.Sink) *interpreter.Context {
	occ := interpreter.NewOccupancy()
	occ.Seed(m.Rovers)
	return interpreter.NewContext(m.Plateau, occ, report)
}

// Run simulates the whole mission.
func (m *Mission) Run(report interpreter.Sink) []interpreter.FinalState {
	return interpreter.Simulate(m.Context(report), m.Rovers)
}

func roverName(i int) string {
	return fmt.Sprintf("rover-%d", i)
}

// admit validates a start state and appends the rover when it is usable.
// Both checks run so a rover with two problems reports both.
func (m *Mission) admit(name string, line, x, y int, facing, instructions string, report interpreter.Sink) {
	ok := true
	pos := interpreter.Position{X: x, Y: y}
	if !m.Plateau.InBounds(pos) {
		report.Emit(interpreter.Diagnostic{
			Kind:    interpreter.InvalidStart,
			Rover:   name,
			Line:    line,
			Pos:     pos,
			Message: "invalid starting position, ignoring rover",
		})
		ok = false
	}
	o, err := interpreter.ParseOrientation(facing)
	if err != nil {
		report.Emit(interpreter.Diagnostic{
			Kind:    interpreter.InvalidStart,
			Rover:   name,
			Line:    line,
			Pos:     pos,
			Message: "invalid starting orientation, ignoring rover: " + err.Error(),
		})
		ok = false
	}
	if !ok {
		return
	}
	m.Rovers = append(m.Rovers, interpreter.NewRover(name, pos, o, instructions))
}

// Read parses the text mission format:
//
//	columns rows
//	x y facing
//	instructions
//	...
//
// Input ends at the first blank line or EOF. Only a missing or broken
// plateau line is fatal; bad rovers are reported to report and skipped.
func Read(r io.Reader, filename string, report interpreter.Sink) (*Mission, error) {
	sc := bufio.NewScanner(r)
	// Instruction strings have no length limit.
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimRight(sc.Text(), " \t\r"), true
	}

	first, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read mission %s: %w", filename, err)
		}
		return nil, malformedf(1, "missing plateau line")
	}
	columns, rows, err := parsePlateauLine(filename, first)
	if err != nil {
		return nil, malformedf(line, "plateau: %v", err)
	}
	plateau, err := interpreter.NewPlateau(columns, rows)
	if err != nil {
		return nil, malformedf(line, "%v", err)
	}

	m := &Mission{Plateau: plateau}
	for index := 1; ; index++ {
		header, ok := next()
		if !ok || strings.TrimSpace(header) == "" {
			break
		}
		headerAt := line
		instructions, _ := next()
		name := roverName(index)

		x, y, facing, err := parseHeaderLine(filename, header)
		if err != nil {
			report.Emit(interpreter.Diagnostic{
				Kind:    interpreter.Malformed,
				Rover:   name,
				Line:    headerAt,
				Message: fmt.Sprintf("cannot read rover start %q, ignoring rover: %v", header, err),
			})
			continue
		}
		m.admit(name, headerAt, x, y, facing, strings.TrimSpace(instructions), report)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read mission %s: %w", filename, err)
	}
	return m, nil
}
