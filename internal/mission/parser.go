package mission

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Word", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// plateauLine is the first line of a mission: "columns rows".
type plateauLine struct {
	Columns string `parser:"@Int"`
	Rows    string `parser:"@Int"`
}

// headerLine opens a rover: "x y facing".
type headerLine struct {
	X      string `parser:"@Int"`
	Y      string `parser:"@Int"`
	Facing string `parser:"@(Word | Int)"`
}

var (
	plateauParser = participle.MustBuild[plateauLine](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
	headerParser = participle.MustBuild[headerLine](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
)

func parsePlateauLine(filename, text string) (columns, rows int, err error) {
	pl, err := plateauParser.ParseString(filename, text)
	if err != nil {
		return 0, 0, err
	}
	if columns, err = atoi(pl.Columns); err != nil {
		return 0, 0, err
	}
	if rows, err = atoi(pl.Rows); err != nil {
		return 0, 0, err
	}
	return columns, rows, nil
}

func parseHeaderLine(filename, text string) (x, y int, facing string, err error) {
	hl, err := headerParser.ParseString(filename, text)
	if err != nil {
		return 0, 0, "", err
	}
	if x, err = atoi(hl.X); err != nil {
		return 0, 0, "", err
	}
	if y, err = atoi(hl.Y); err != nil {
		return 0, 0, "", err
	}
	return x, y, hl.Facing, nil
}

// atoi reads decimal only; participle's own int capture would accept
// octal and hex prefixes.
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad integer %q", s)
	}
	return n, nil
}
