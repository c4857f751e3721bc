// Package geometry maps logical ports to pixel coordinates.
//
// All functions return points in the node's local coordinate space; callers
// compose with the node position to obtain canvas coordinates. The renderer
// and the connection-endpoint resolver must both go through this package so
// that drawn connection lines and clickable port hitboxes never diverge.
package geometry

import "math"

// Layout constants, in pixels.
const (
	// HeaderOffset is the vertical center of the implicit single in/out
	// ports, measured from the node's top edge.
	HeaderOffset = 24.0

	// MultiPortBase is the y offset of the first sub-port of a multi-port
	// list.
	MultiPortBase = 56.0

	// PortSpacing is the vertical distance between adjacent sub-ports.
	PortSpacing = 28.0

	// PortHitRadius is the pointer capture radius around a port center.
	PortHitRadius = 10.0
)

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Add returns the componentwise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a node's width and height.
type Size struct {
	Width  float64
	Height float64
}

// Direction distinguishes input ports from output ports.
type Direction int

const (
	// In is the input side of a node (left edge).
	In Direction = iota
	// Out is the output side of a node (right edge).
	Out
)

func (d Direction) String() string {
	if d == In {
		return "in"
	}
	return "out"
}

// SinglePort returns the local position of a node's implicit single port.
// Inputs sit on the left edge, outputs on the right, both vertically
// anchored at HeaderOffset.
func SinglePort(size Size, dir Direction) Point {
	x := 0.0
	if dir == Out {
		x = size.Width
	}
	return Point{X: x, Y: HeaderOffset}
}

// FixedInputPort returns the local position of the sub-port at index in a
// node kind's static input port list. The index is the port's position in
// the kind declaration and never changes at runtime.
func FixedInputPort(index int) Point {
	return Point{X: 0, Y: MultiPortBase + float64(index)*PortSpacing}
}

// FanOutPort returns the local position of a fan-out output sub-port.
// visibleIndex is the sub-port's index within the currently visible,
// ordered fan-out list, not its position in the full underlying item set.
// Every consumer must derive visibleIndex from the same filtered list.
func FanOutPort(size Size, visibleIndex int) Point {
	return Point{
		X: size.Width,
		Y: MultiPortBase + float64(visibleIndex)*PortSpacing + PortSpacing/2,
	}
}

// Hit reports whether p falls within radius of center.
func Hit(p, center Point, radius float64) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return math.Hypot(dx, dy) <= radius
}
