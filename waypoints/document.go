package waypoints

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/smooth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// entry is one waypoint in object form.
type entry struct {
	X *float64 `json:"x" yaml:"x" toml:"x"`
	Y *float64 `json:"y" yaml:"y" toml:"y"`
}

// document is the object form shared by JSON, YAML and TOML.
type document struct {
	Waypoints []entry `json:"waypoints" yaml:"waypoints" toml:"waypoints"`
}

func (d document) points() ([]smooth.Point, error) {
	pts := make([]smooth.Point, 0, len(d.Waypoints))
	for i, e := range d.Waypoints {
		if e.X == nil || e.Y == nil {
			return nil, fmt.Errorf("waypoints: entry %d: missing x or y", i+1)
		}
		pts = append(pts, smooth.Pt(*e.X, *e.Y))
	}
	return pts, nil
}

// pairsToPoints converts [x, y] pairs.
func pairsToPoints(pairs [][]float64) ([]smooth.Point, error) {
	pts := make([]smooth.Point, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("waypoints: entry %d: want [x, y], got %d values", i+1, len(pair))
		}
		pts = append(pts, smooth.Pt(pair[0], pair[1]))
	}
	return pts, nil
}

func decodeJSON(r io.Reader) ([]smooth.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("waypoints: %w", err)
	}

	var pairs [][]float64
	if err := json.Unmarshal(data, &pairs); err == nil {
		return pairsToPoints(pairs)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("waypoints: json: %w", err)
	}
	return doc.points()
}

func decodeYAML(r io.Reader) ([]smooth.Point, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("waypoints: yaml: %w", err)
	}

	// root is a document node; its single child holds the content.
	if len(root.Content) == 1 && root.Content[0].Kind == yaml.SequenceNode {
		var pairs [][]float64
		if err := root.Decode(&pairs); err != nil {
			return nil, fmt.Errorf("waypoints: yaml: %w", err)
		}
		return pairsToPoints(pairs)
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("waypoints: yaml: %w", err)
	}
	return doc.points()
}

func decodeTOML(r io.Reader) ([]smooth.Point, error) {
	var doc document
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("waypoints: toml: %w", err)
	}
	return doc.points()
}
