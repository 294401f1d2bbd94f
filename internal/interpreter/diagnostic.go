package interpreter

import (
	"context"
	"log/slog"
)

// Kind classifies a diagnostic. None of them stop a run.
type Kind int

const (
	// Occupied: a rover moved into a cell another rover is counted in.
	Occupied Kind = iota
	// UnsafeMove: an 'M' would have left the plateau and was skipped.
	UnsafeMove
	// InvalidStart: a rover's start position or facing was rejected.
	InvalidStart
	// Malformed: an input line could not be parsed.
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Occupied:
		return "occupied"
	case UnsafeMove:
		return "unsafe_move"
	case InvalidStart:
		return "invalid_start"
	case Malformed:
		return "malformed"
	}
	return "unknown"
}

type Diagnostic struct {
	Kind    Kind
	Rover   string
	Line    int // input line, 0 when raised during simulation
	Pos     Position
	Message string
}

// Sink receives diagnostics as they are raised. A nil Sink drops them.
type Sink func(Diagnostic)

func (s Sink) Emit(d Diagnostic) {
	if s != nil {
		s(d)
	}
}

// LogSink writes every diagnostic as a warning on logger.
func LogSink(logger *slog.Logger) Sink {
	return func(d Diagnostic) {
		attrs := []slog.Attr{slog.String("kind", d.Kind.String())}
		if d.Rover != "" {
			attrs = append(attrs, slog.String("rover", d.Rover))
		}
		if d.Line > 0 {
			attrs = append(attrs, slog.Int("line", d.Line))
		}
		if d.Kind == Occupied || d.Kind == UnsafeMove {
			attrs = append(attrs, slog.Int("x", d.Pos.X), slog.Int("y", d.Pos.Y))
		}
		logger.LogAttrs(context.Background(), slog.LevelWarn, d.Message, attrs...)
	}
}

// Recorder keeps diagnostics in memory.
type Recorder struct {
	Diagnostics []Diagnostic
}

func (r *Recorder) Sink() Sink {
	return func(d Diagnostic) {
		r.Diagnostics = append(r.Diagnostics, d)
	}
}

// Kinds lists recorded kinds in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = d.Kind
	}
	return out
}
