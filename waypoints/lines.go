package waypoints

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/smooth"
)

// decodeLines parses "<x>, <y>" lines. Whitespace around either value is
// ignored, so "x,y" and "x , y" are accepted as well.
func decodeLines(r io.Reader) ([]smooth.Point, error) {
	var pts []smooth.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("waypoints: line %d: want \"<x>, <y>\", got %q", line, text)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoints: line %d: x: %w", line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoints: line %d: y: %w", line, err)
		}
		pts = append(pts, smooth.Pt(x, y))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("waypoints: %w", err)
	}
	return pts, nil
}
