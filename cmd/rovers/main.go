package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"marsrover/internal/interpreter"
	"marsrover/internal/mission"
)

type config struct {
	path     string
	format   mission.Format
	show     bool
	logLevel slog.Level

	generate int
	seed     uint64
	gen      mission.GenerateOptions
}

// errHelp tells run that usage was printed and nothing else should happen.
var errHelp = errors.New("help requested")

func parseArgs(args []string, out io.Writer) (*config, error) {
	fs := flag.NewFlagSet("rovers", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: rovers [flags] [mission-file]")
		fmt.Fprintln(out, "Reads the mission from stdin when no file is given.")
		fs.PrintDefaults()
	}

	cfg := &config{}
	format := fs.String("format", string(mission.FormatAuto), "mission format: auto, text or hcl")
	level := fs.String("log-level", "warn", "diagnostic level: debug, info, warn or error")
	fs.BoolVar(&cfg.show, "show", false, "draw the plateau after the results")
	fs.IntVar(&cfg.generate, "generate", 0, "print a random mission with this many rovers and exit")
	fs.Uint64Var(&cfg.seed, "seed", 1, "seed for -generate")
	fs.IntVar(&cfg.gen.Columns, "columns", 5, "plateau columns for -generate")
	fs.IntVar(&cfg.gen.Rows, "rows", 5, "plateau rows for -generate")
	fs.IntVar(&cfg.gen.MaxSteps, "max-steps", 10, "longest instruction string for -generate")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errHelp
		}
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one mission file, got %d", fs.NArg())
	}
	cfg.path = fs.Arg(0)

	var err error
	if cfg.format, err = mission.ParseFormat(*format); err != nil {
		return nil, err
	}
	if err := cfg.logLevel.UnmarshalText([]byte(strings.ToUpper(*level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", *level)
	}
	if cfg.generate < 0 {
		return nil, fmt.Errorf("-generate must be non-negative")
	}
	if cfg.generate > 0 && cfg.path != "" {
		return nil, fmt.Errorf("-generate does not read a mission file, got %q", cfg.path)
	}
	if cfg.gen.Columns < 0 || cfg.gen.Rows < 0 {
		return nil, fmt.Errorf("-columns and -rows must be non-negative")
	}
	cfg.gen.Rovers = cfg.generate
	return cfg, nil
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires flags, mission loading and output; main only maps errors to an exit code.
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	cfg, err := parseArgs(args, out)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.logLevel}))
	report := interpreter.LogSink(logger)

	if cfg.generate > 0 {
		rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))
		return mission.Generate(rng, cfg.gen).WriteText(out)
	}

	var m *mission.Mission
	if cfg.path == "" {
		if cfg.format == mission.FormatHCL {
			src, rerr := io.ReadAll(in)
			if rerr != nil {
				return fmt.Errorf("read stdin: %w", rerr)
			}
			m, err = mission.ReadHCL(src, "<stdin>", report)
		} else {
			m, err = mission.Read(in, "<stdin>", report)
		}
	} else {
		m, err = mission.Load(cfg.path, cfg.format, report)
	}
	if err != nil {
		return err
	}
	logger.Debug("mission loaded", "columns", m.Plateau.Columns, "rows", m.Plateau.Rows, "rovers", len(m.Rovers))

	states := m.Run(report)
	if err := interpreter.WriteResults(out, states); err != nil {
		return err
	}
	if cfg.show {
		fmt.Fprintln(out)
		return m.Plateau.Render(out, states)
	}
	return nil
}
