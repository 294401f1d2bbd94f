package interpreter

// Context stores everything a simulation run shares between rovers.
// Plateau is fixed for the run; Occupancy is mutated as rovers settle.
type Context struct {
	Plateau   Plateau
	Occupancy *Occupancy
	Report    Sink
}

func NewContext(p Plateau, occ *Occupancy, report Sink) *Context {
	if occ == nil {
		occ = NewOccupancy()
	}
	return &Context{Plateau: p, Occupancy: occ, Report: report}
}
