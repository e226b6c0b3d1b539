// SPDX-License-Identifier: MIT
// Package: multigrid/export
//
// export.go: cell writers.
//
// Formats:
//   • numpy: one line per vertex, components joined by ", ", cells back to
//     back with no separator. Every 2^R consecutive lines form one cell, so
//     numpy.loadtxt(path, delimiter=",").reshape(-1, 2**R, R) recovers them.
//   • jsonl: one JSON object per cell and line, carrying the combination,
//     window and lattice index next to the vertices.
//
// Floats are printed with strconv 'g' and the shortest representation that
// round-trips, so 1 prints as "1" and 0.30901699437494745 keeps every digit.

package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/multigrid/cell"
	"github.com/katalvlaran/multigrid/space"
)

// Format names an output encoding.
type Format string

const (
	// FormatNumpy is the vertex-per-line text format.
	FormatNumpy Format = "numpy"
	// FormatJSONLines is one JSON object per cell.
	FormatJSONLines Format = "jsonl"
)

// ErrUnknownFormat indicates a format name that is neither numpy nor jsonl.
var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the accepted format names in display order.
func Formats() []Format { return []Format{FormatNumpy, FormatJSONLines} }

// ParseFormat maps a user-facing name to a Format. "txt" is accepted as an
// alias of numpy. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "numpy", "txt":
		return FormatNumpy, nil
	case "jsonl", "json-lines", "ndjson":
		return FormatJSONLines, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
	}
}

// FormatCell renders one cell in the numpy format, including the trailing newline.
func FormatCell(c cell.Cell) string {
	var sb strings.Builder
	for _, v := range c.Vertices {
		writeVertex(&sb, v)
	}

	return sb.String()
}

func writeVertex(sb *strings.Builder, v space.RealSpace) {
	for k, x := range v {
		if k > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte('\n')
}

// WriteNumpy writes every cell in order in the numpy format.
func WriteNumpy(w io.Writer, cells []cell.Cell) error {
	bw := bufio.NewWriter(w)
	var sb strings.Builder
	for i, c := range cells {
		sb.Reset()
		for _, v := range c.Vertices {
			writeVertex(&sb, v)
		}
		if _, err := bw.WriteString(sb.String()); err != nil {
			return fmt.Errorf("WriteNumpy: cell %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteNumpy: %w", err)
	}

	return nil
}

// jsonCell is the wire shape of one jsonl record.
type jsonCell struct {
	Families []int       `json:"families"`
	Window   []int       `json:"window"`
	Index    []int       `json:"index"`
	Vertices [][]float64 `json:"vertices"`
}

// WriteJSONLines writes one JSON object per cell, in order.
func WriteJSONLines(w io.Writer, cells []cell.Cell) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, c := range cells {
		rec := jsonCell{
			Families: c.Families,
			Window:   c.Window,
			Index:    c.Index,
			Vertices: make([][]float64, len(c.Vertices)),
		}
		for k, v := range c.Vertices {
			rec.Vertices[k] = v
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("WriteJSONLines: cell %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteJSONLines: %w", err)
	}

	return nil
}

// Write dispatches on format.
func Write(w io.Writer, format Format, cells []cell.Cell) error {
	switch format {
	case FormatNumpy:
		return WriteNumpy(w, cells)
	case FormatJSONLines:
		return WriteJSONLines(w, cells)
	default:
		return fmt.Errorf("Write(%q): %w", format, ErrUnknownFormat)
	}
}

// WriteFile creates (or truncates) path and writes cells in the given format.
// The format is checked before the file is touched.
func WriteFile(path string, format Format, cells []cell.Cell) (err error) {
	if format != FormatNumpy && format != FormatJSONLines {
		return fmt.Errorf("WriteFile(%q): %w", format, ErrUnknownFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile: close: %w", cerr)
		}
	}()

	return Write(f, format, cells)
}
