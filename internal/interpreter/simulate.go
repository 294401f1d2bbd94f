package interpreter

// CanMove reports whether a rover may step into candidate. Leaving the
// plateau is refused; entering an occupied cell is only warned about.
func (c *Context) CanMove(candidate Position) bool {
	return c.canMove(candidate, "")
}

func (c *Context) canMove(candidate Position, rover string) bool {
	if !c.Plateau.InBounds(candidate) {
		return false
	}
	if c.Occupancy.Count(candidate) > 0 {
		c.Report.Emit(Diagnostic{
			Kind:    Occupied,
			Rover:   rover,
			Pos:     candidate,
			Message: "another rover is in the block",
		})
	}
	return true
}

// Drive replays the rover's instructions and returns where it ended up.
// Only the start and final cells touch the occupancy map.
func (c *Context) Drive(r *Rover) FinalState {
	pos := r.Pos
	c.Occupancy.Dec(pos)

	for _, ins := range r.Instructions {
		if ins == 'M' {
			dx, dy := r.Compass.Current().Delta()
			next := pos.Add(dx, dy)
			if c.canMove(next, r.Name) {
				pos = next
			} else {
				c.Report.Emit(Diagnostic{
					Kind:    UnsafeMove,
					Rover:   r.Name,
					Pos:     next,
					Message: "unsafe move",
				})
			}
		}
		r.Compass.Rotate(ins)
	}

	c.Occupancy.Inc(pos)
	r.Pos = pos
	return FinalState{Name: r.Name, X: pos.X, Y: pos.Y, Facing: r.Compass.Current()}
}

// Simulate drives rovers one after another in input order. Each rover
// finishes before the next starts, so occupancy warnings only ever see
// settled rovers.
func Simulate(ctx *Context, rovers []*Rover) []FinalState {
	out := make([]FinalState, 0, len(rovers))
	for _, r := range rovers {
		out = append(out, ctx.Drive(r))
	}
	return out
}
