package mission

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"marsrover/internal/interpreter"
)

// hclFile is the top-level shape of an HCL mission:
//
//	plateau {
//	  columns = 5
//	  rows    = 5
//	}
//	rover "alpha" {
//	  x            = 1
//	  y            = 2
//	  facing       = "N"
//	  instructions = "LMLMLMLMM"
//	}
type hclFile struct {
	Plateau hclPlateau  `hcl:"plateau,block"`
	Rovers  []*hclRover `hcl:"rover,block"`
}

type hclPlateau struct {
	Columns int `hcl:"columns"`
	Rows    int `hcl:"rows"`
}

type hclRover struct {
	Name         string `hcl:"name,label"`
	X            int    `hcl:"x"`
	Y            int    `hcl:"y"`
	Facing       string `hcl:"facing"`
	Instructions string `hcl:"instructions,optional"`
}

// ReadHCL decodes an HCL mission. Syntax and schema errors are fatal; rovers
// are validated the same way the text reader validates them.
func ReadHCL(src []byte, filename string, report interpreter.Sink) (*Mission, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL mission %s: %w", filename, diags)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL mission %s: %w", filename, diags)
	}

	plateau, err := interpreter.NewPlateau(raw.Plateau.Columns, raw.Plateau.Rows)
	if err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	m := &Mission{Plateau: plateau}
	for _, r := range raw.Rovers {
		m.admit(r.Name, 0, r.X, r.Y, r.Facing, r.Instructions, report)
	}
	return m, nil
}

// Format selects the mission reader.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatHCL  Format = "hcl"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatText, FormatHCL:
		return f, nil
	}
	return "", fmt.Errorf("unknown mission format %q (want auto, text or hcl)", s)
}

// resolve picks text or HCL for auto based on the file extension.
func (f Format) resolve(path string) Format {
	if f != FormatAuto {
		return f
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return FormatHCL
	}
	return FormatText
}

// Load reads the mission at path.
func Load(path string, format Format, report interpreter.Sink) (*Mission, error) {
	if format.resolve(path) == FormatHCL {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ReadHCL(src, path, report)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path, report)
}
