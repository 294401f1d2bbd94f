package interpreter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func drive(t *testing.T, p Plateau, start Position, facing Orientation, ins string) (FinalState, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	ctx := NewContext(p, NewOccupancy(), rec.Sink())
	got := Simulate(ctx, []*Rover{NewRover("r", start, facing, ins)})
	if len(got) != 1 {
		t.Fatalf("want one final state, got %d", len(got))
	}
	return got[0], rec
}

func TestStraightAndBack(t *testing.T) {
	tests := []struct {
		name    string
		plateau Plateau
		facing  Orientation
		ins     string
		want    Position
	}{
		{"up", Plateau{Columns: 0, Rows: 2}, North, "MM", Position{0, 2}},
		{"up and back", Plateau{Columns: 0, Rows: 2}, North, "MMLLMM", Position{0, 0}},
		{"right", Plateau{Columns: 2, Rows: 0}, East, "MM", Position{2, 0}},
		{"right and back", Plateau{Columns: 2, Rows: 0}, East, "MMLLMM", Position{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rec := drive(t, tt.plateau, Position{}, tt.facing, tt.ins)
			if got.Position() != tt.want {
				t.Fatalf("ended at %s, want %s", got.Position(), tt.want)
			}
			if len(rec.Diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics %v", rec.Diagnostics)
			}
		})
	}
}

func TestReversingReturnsToStart(t *testing.T) {
	p := Plateau{Columns: 5, Rows: 5}
	for _, o := range clockwise {
		for _, ins := range []string{"MMLLMM", "MMRRMM"} {
			got, _ := drive(t, p, Position{3, 3}, o, ins)
			if got.Position() != (Position{3, 3}) {
				t.Fatalf("%s from %s ended at %s", ins, o, got.Position())
			}
		}
	}
}

func TestFullRotationsCancel(t *testing.T) {
	p := Plateau{Columns: 5, Rows: 5}
	long, _ := drive(t, p, Position{3, 3}, North, strings.Repeat("L", 65)+"M"+strings.Repeat("R", 65)+"M")
	short, _ := drive(t, p, Position{3, 3}, North, "LMRM")
	if diff := cmp.Diff(short, long); diff != "" {
		t.Fatalf("rotation cycles changed the result (-short +long):\n%s", diff)
	}
	if short != (FinalState{Name: "r", X: 2, Y: 4, Facing: North}) {
		t.Fatalf("unexpected final state %+v", short)
	}
}

func TestEdgeBlocksMove(t *testing.T) {
	got, rec := drive(t, Plateau{Columns: 0, Rows: 2}, Position{}, North, "MMM")
	if got.Position() != (Position{0, 2}) {
		t.Fatalf("ended at %s, want (0,2)", got.Position())
	}
	want := []Diagnostic{{Kind: UnsafeMove, Rover: "r", Pos: Position{0, 3}, Message: "unsafe move"}}
	if diff := cmp.Diff(want, rec.Diagnostics); diff != "" {
		t.Fatalf("diagnostics (-want +got):\n%s", diff)
	}

	got, _ = drive(t, Plateau{Columns: 2, Rows: 0}, Position{}, East, "MMM")
	if got.Position() != (Position{2, 0}) {
		t.Fatalf("ended at %s, want (2,0)", got.Position())
	}
}

func TestBlockedMoveContinuesWithNextInstruction(t *testing.T) {
	got, rec := drive(t, Plateau{Columns: 3, Rows: 3}, Position{0, 0}, South, "MLMM")
	if got != (FinalState{Name: "r", X: 2, Y: 0, Facing: East}) {
		t.Fatalf("unexpected final state %+v", got)
	}
	if diff := cmp.Diff([]Kind{UnsafeMove}, rec.Kinds()); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
}

func TestReferenceMission(t *testing.T) {
	rovers := []*Rover{
		NewRover("a", Position{1, 2}, North, "LMLMLMLMM"),
		NewRover("b", Position{3, 3}, East, "MMRMMRMRRM"),
	}
	occ := NewOccupancy()
	occ.Seed(rovers)
	rec := &Recorder{}

	got := Simulate(NewContext(Plateau{Columns: 5, Rows: 5}, occ, rec.Sink()), rovers)

	want := []FinalState{
		{Name: "a", X: 1, Y: 3, Facing: North},
		{Name: "b", X: 5, Y: 1, Facing: East},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("final states (-want +got):\n%s", diff)
	}
	if len(rec.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics %v", rec.Diagnostics)
	}
	if occ.Count(Position{1, 3}) != 1 || occ.Count(Position{5, 1}) != 1 || occ.Total() != 2 {
		t.Fatalf("occupancy after run: %s", occ)
	}
	if got[0].String() != "1 3 N" || got[1].String() != "5 1 E" {
		t.Fatalf("formatted as %q and %q", got[0], got[1])
	}
}

func TestOccupiedCellWarnsButAllowsMove(t *testing.T) {
	rovers := []*Rover{
		NewRover("a", Position{0, 0}, North, "M"),
		NewRover("b", Position{1, 1}, West, "M"),
	}
	occ := NewOccupancy()
	occ.Seed(rovers)
	rec := &Recorder{}

	got := Simulate(NewContext(Plateau{Columns: 5, Rows: 5}, occ, rec.Sink()), rovers)

	if got[0].Position() != (Position{0, 1}) || got[1].Position() != (Position{0, 1}) {
		t.Fatalf("both rovers should share (0,1), got %v", got)
	}
	want := []Diagnostic{{Kind: Occupied, Rover: "b", Pos: Position{0, 1}, Message: "another rover is in the block"}}
	if diff := cmp.Diff(want, rec.Diagnostics); diff != "" {
		t.Fatalf("diagnostics (-want +got):\n%s", diff)
	}
	if occ.Count(Position{0, 1}) != 2 || occ.Len() != 1 {
		t.Fatalf("occupancy after run: %s", occ)
	}
}

func TestOrderPreservedDespiteWarnings(t *testing.T) {
	var rovers []*Rover
	for _, name := range []string{"z", "a", "m", "b"} {
		rovers = append(rovers, NewRover(name, Position{2, 2}, North, "MRRM"))
	}
	occ := NewOccupancy()
	occ.Seed(rovers)
	rec := &Recorder{}

	got := Simulate(NewContext(Plateau{Columns: 4, Rows: 4}, occ, rec.Sink()), rovers)

	var names []string
	for _, s := range got {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"z", "a", "m", "b"}, names); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
	if len(rec.Diagnostics) == 0 {
		t.Fatal("expected occupancy warnings from rovers sharing a start cell")
	}
}

func TestUnrecognisedInstructionsAreSilent(t *testing.T) {
	got, rec := drive(t, Plateau{Columns: 5, Rows: 5}, Position{1, 1}, East, "xMq?M ")
	if got != (FinalState{Name: "r", X: 3, Y: 1, Facing: East}) {
		t.Fatalf("unexpected final state %+v", got)
	}
	if len(rec.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics %v", rec.Diagnostics)
	}
}

func TestNilSinkDropsDiagnostics(t *testing.T) {
	ctx := NewContext(Plateau{}, nil, nil)
	got := Simulate(ctx, []*Rover{NewRover("r", Position{}, North, "M")})
	if got[0].Position() != (Position{}) {
		t.Fatalf("rover on a 1x1 plateau moved to %s", got[0].Position())
	}
}

func TestCanMove(t *testing.T) {
	occ := NewOccupancy()
	occ.Inc(Position{1, 1})
	rec := &Recorder{}
	ctx := NewContext(Plateau{Columns: 2, Rows: 1}, occ, rec.Sink())

	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{2, 1}, true},
		{Position{3, 0}, false},
		{Position{0, 2}, false},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
		{Position{1, 1}, true},
	}
	for _, tt := range tests {
		if got := ctx.CanMove(tt.pos); got != tt.want {
			t.Errorf("CanMove(%s) = %v, want %v", tt.pos, got, tt.want)
		}
	}
	if diff := cmp.Diff([]Kind{Occupied}, rec.Kinds()); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
}
