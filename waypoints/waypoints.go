// Package waypoints reads and writes point sequences for the smoother.
//
// Supported formats:
//   - JSON and YAML: a list of [x, y] pairs, or an object with a
//     "waypoints" list of {x, y} objects.
//   - TOML: [[waypoints]] tables with x and y keys.
//   - Lines: one "<x>, <y>" pair per line, the format written by Encode.
//     Blank lines and lines starting with '#' are ignored.
package waypoints

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/smooth"
)

// Format identifies a waypoint encoding.
type Format int

const (
	// Lines is the "<x>, <y>" per line format.
	Lines Format = iota
	// JSON is a JSON document.
	JSON
	// YAML is a YAML document.
	YAML
	// TOML is a TOML document.
	TOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Lines:
		return "lines"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrNoWaypoints is returned when a document decodes to an empty list.
var ErrNoWaypoints = errors.New("waypoints: no waypoints")

// FormatFor picks a format from the file extension.
// Unknown extensions map to Lines.
func FormatFor(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return Lines
	}
}

// Load reads the waypoint file, choosing the format by extension.
func Load(filename string) (*smooth.Path, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("waypoints: %w", err)
	}
	defer f.Close()

	p, err := Decode(f, FormatFor(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// Decode reads a waypoint document in the given format.
func Decode(r io.Reader, format Format) (*smooth.Path, error) {
	var (
		pts []smooth.Point
		err error
	)
	switch format {
	case Lines:
		pts, err = decodeLines(r)
	case JSON:
		pts, err = decodeJSON(r)
	case YAML:
		pts, err = decodeYAML(r)
	case TOML:
		pts, err = decodeTOML(r)
	default:
		return nil, fmt.Errorf("waypoints: unknown format %v", format)
	}
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, ErrNoWaypoints
	}
	return smooth.NewPath(pts...), nil
}

// Encode writes the path in Lines format, one "<x>, <y>" per line.
func Encode(w io.Writer, p *smooth.Path) error {
	for _, pt := range p.All() {
		if _, err := io.WriteString(w, pt.String()+"\n"); err != nil {
			return fmt.Errorf("waypoints: %w", err)
		}
	}
	return nil
}
