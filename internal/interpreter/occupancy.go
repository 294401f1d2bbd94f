package interpreter

import (
	"fmt"
	"sort"
	"strings"
)

// Occupancy counts rovers per cell. Several rovers may share a cell.
type Occupancy struct {
	cells map[Position]int
}

func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[Position]int)}
}

// Seed records the start cell of every rover.
func (o *Occupancy) Seed(rovers []*Rover) {
	for _, r := range rovers {
		o.Inc(r.Pos)
	}
}

func (o *Occupancy) Count(p Position) int {
	return o.cells[p]
}

func (o *Occupancy) Inc(p Position) {
	o.add(p, 1)
}

func (o *Occupancy) Dec(p Position) {
	o.add(p, -1)
}

func (o *Occupancy) add(p Position, n int) {
	v := o.cells[p] + n
	if v == 0 {
		delete(o.cells, p)
		return
	}
	o.cells[p] = v
}

// Len is the number of cells with a non-zero count.
func (o *Occupancy) Len() int {
	return len(o.cells)
}

// Total sums all counts; equal to the rover count between rovers.
func (o *Occupancy) Total() int {
	n := 0
	for _, v := range o.cells {
		n += v
	}
	return n
}

func (o *Occupancy) String() string {
	keys := make([]Position, 0, len(o.cells))
	for p := range o.cells {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].X != keys[j].X {
			return keys[i].X < keys[j].X
		}
		return keys[i].Y < keys[j].Y
	})
	parts := make([]string, len(keys))
	for i, p := range keys {
		parts[i] = fmt.Sprintf("%s:%d", p, o.cells[p])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
