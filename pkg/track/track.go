// pkg/track/track.go
package track

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooFewNodes is returned for tracks that cannot be walked.
var ErrTooFewNodes = errors.New("track needs at least two nodes")

// Vec2 is a point in track space.
type Vec2 struct {
	X, Y float64
}

// Terminal is the waypoint of an entity that has left the track. It can never
// be mistaken for an in-bounds location.
var Terminal = Vec2{X: math.MaxFloat64, Y: math.MaxFloat64}

// Track is an ordered list of waypoints with the cumulative distance from the
// start to each of them. Immutable after construction and safe to share.
type Track struct {
	nodes      []Vec2
	cumulative []float64
}

// New builds a track and precomputes cumulative distances.
func New(nodes []Vec2) (*Track, error) {
	if len(nodes) < 2 {
		return nil, ErrTooFewNodes
	}
	t := &Track{
		nodes:      append([]Vec2(nil), nodes...),
		cumulative: make([]float64, len(nodes)),
	}
	for i := 1; i < len(nodes); i++ {
		d := math.Hypot(nodes[i].X-nodes[i-1].X, nodes[i].Y-nodes[i-1].Y)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("track segment %d has non-finite length", i)
		}
		t.cumulative[i] = t.cumulative[i-1] + d
	}
	return t, nil
}

// Level1 is the built-in demo track.
func Level1() *Track {
	t, err := New([]Vec2{{-200, -100}, {-100, 100}, {100, 100}, {200, 300}})
	if err != nil {
		panic(err)
	}
	return t
}

// Nodes returns the waypoints. The slice is shared and must not be modified.
func (t *Track) Nodes() []Vec2 { return t.nodes }

// Cumulative returns the distance from the start to each node. Shared, read-only.
func (t *Track) Cumulative() []float64 { return t.cumulative }

// Len is the number of waypoints.
func (t *Track) Len() int { return len(t.nodes) }

// Length is the total path length.
func (t *Track) Length() float64 { return t.cumulative[len(t.cumulative)-1] }

// Start is the first waypoint.
func (t *Track) Start() Vec2 { return t.nodes[0] }

// Progress is an entity's place on the track.
type Progress struct {
	Target   int     // index of the waypoint being walked towards
	Distance float64 // distance travelled along the track
	Waypoint Vec2    // position of Target, or Terminal once past the end
}

// Done reports whether the entity has walked off the end of the track.
func (p Progress) Done() bool {
	return p.Waypoint == Terminal
}

// StartProgress places an entity on the first waypoint.
func (t *Track) StartProgress() Progress {
	return Progress{Target: 0, Distance: 0, Waypoint: t.nodes[0]}
}

// Advance moves pos by step along the track. When the current waypoint is
// closer than the remaining step the entity snaps onto it, targets the next
// one and keeps going with the leftover distance, so one call can cross
// several waypoints. Past the last waypoint progress becomes terminal and
// nothing moves any more.
func (t *Track) Advance(step float64, pos *Vec2, p *Progress) {
	for !p.Done() {
		dx := p.Waypoint.X - pos.X
		dy := p.Waypoint.Y - pos.Y
		dist := math.Hypot(dx, dy)

		if dist >= step {
			if dist > 0 {
				pos.X += dx * step / dist
				pos.Y += dy * step / dist
			}
			p.Distance += step
			return
		}

		*pos = p.Waypoint
		p.Distance = t.cumulative[p.Target]
		step -= dist
		p.Target++
		if p.Target >= len(t.nodes) {
			p.Waypoint = Terminal
			p.Distance = t.Length()
			return
		}
		p.Waypoint = t.nodes[p.Target]
	}
}

// PositionAt returns the point distance units along the track and the
// progress of an entity standing there. Distances are clamped to the track.
func (t *Track) PositionAt(distance float64) (Vec2, Progress) {
	if distance <= 0 {
		return t.nodes[0], t.StartProgress()
	}
	last := len(t.nodes) - 1
	if distance >= t.Length() {
		return t.nodes[last], Progress{Target: last, Distance: t.Length(), Waypoint: t.nodes[last]}
	}
	i := 1
	for t.cumulative[i] < distance {
		i++
	}
	// cumulative[i-1] < distance <= cumulative[i], so seg > 0 even when the
	// track repeats a node.
	seg := t.cumulative[i] - t.cumulative[i-1]
	frac := (distance - t.cumulative[i-1]) / seg
	a, b := t.nodes[i-1], t.nodes[i]
	pos := Vec2{X: a.X + (b.X-a.X)*frac, Y: a.Y + (b.Y-a.Y)*frac}
	return pos, Progress{Target: i, Distance: distance, Waypoint: b}
}

// Closest returns the point of the track nearest to p and its distance from
// the start along the path.
func (t *Track) Closest(p Vec2) (Vec2, float64) {
	best := t.nodes[0]
	bestDist := 0.0
	bestSq := math.Inf(1)
	for i := 1; i < len(t.nodes); i++ {
		a, b := t.nodes[i-1], t.nodes[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		segSq := dx*dx + dy*dy
		if segSq == 0 {
			continue
		}
		u := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / segSq
		u = math.Max(0, math.Min(1, u))
		q := Vec2{X: a.X + u*dx, Y: a.Y + u*dy}
		if d := (p.X-q.X)*(p.X-q.X) + (p.Y-q.Y)*(p.Y-q.Y); d < bestSq {
			bestSq = d
			best = q
			bestDist = t.cumulative[i-1] + u*math.Sqrt(segSq)
		}
	}
	return best, bestDist
}
