package smooth

import (
	"iter"
	"strings"

	"github.com/gogpu/smooth/internal/deque"
)

// Path is an ordered sequence of points. Order is the traversal order of
// the curve. Path supports O(1) amortized insertion at both ends and O(1)
// indexed access.
//
// The zero value is an empty path ready to use. A Path is not safe for
// concurrent mutation.
type Path struct {
	points deque.Deque[Point]
}

// NewPath creates a path holding pts in order.
func NewPath(pts ...Point) *Path {
	p := &Path{}
	for _, pt := range pts {
		p.points.PushBack(pt)
	}
	return p
}

// newPathCap creates an empty path with room for n points.
func newPathCap(n int) *Path {
	return &Path{points: *deque.New[Point](n)}
}

// Len returns the number of points in the path.
func (p *Path) Len() int {
	return p.points.Len()
}

// PushBack appends a point at the end of the path.
func (p *Path) PushBack(pt Point) {
	p.points.PushBack(pt)
}

// PushFront inserts a point before the first point of the path.
func (p *Path) PushFront(pt Point) {
	p.points.PushFront(pt)
}

// At returns the i-th point. At panics if i is out of range.
func (p *Path) At(i int) Point {
	return p.points.At(i)
}

// First returns the first point. It panics on an empty path.
func (p *Path) First() Point {
	return p.points.At(0)
}

// Last returns the last point. It panics on an empty path.
func (p *Path) Last() Point {
	return p.points.At(p.points.Len() - 1)
}

// Points returns a copy of the points in order.
func (p *Path) Points() []Point {
	return p.points.Slice()
}

// All returns an iterator over index/point pairs in traversal order.
func (p *Path) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := range p.points.Len() {
			if !yield(i, p.points.At(i)) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the path.
func (p *Path) Clone() *Path {
	return &Path{points: *p.points.Clone()}
}

// Reversed returns a new path with the points in reverse order.
func (p *Path) Reversed() *Path {
	n := p.points.Len()
	r := newPathCap(n)
	for i := range n {
		r.points.PushFront(p.points.At(i))
	}
	return r
}

// Bounds returns the axis-aligned bounding box of the points.
// An empty path returns the zero Rect.
func (p *Path) Bounds() Rect {
	if p.points.Len() == 0 {
		return Rect{}
	}
	first := p.points.At(0)
	r := Rect{Min: first, Max: first}
	for i := 1; i < p.points.Len(); i++ {
		r = r.Extend(p.points.At(i))
	}
	return r
}

// ArcLength returns the length of the polyline through the points.
func (p *Path) ArcLength() float64 {
	total := 0.0
	for i := 1; i < p.points.Len(); i++ {
		total += p.points.At(i - 1).Distance(p.points.At(i))
	}
	return total
}

// String returns the points one per line in "<x>, <y>" form.
func (p *Path) String() string {
	var sb strings.Builder
	for i, pt := range p.All() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pt.String())
	}
	return sb.String()
}
