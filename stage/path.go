package stage

import (
	"time"

	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/internal/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Path moves a kinematic actor along a list of waypoints. Each segment
// between two waypoints is eased separately.
type Path struct {
	actor    *jetlag.Actor
	points   []gm.Vec
	duration float32
	easeFn   ease.TweenFunc

	// Loop starts over at the first waypoint after reaching the last one.
	Loop bool

	segment  int
	x, y     *gween.Tween
	finished bool

	// the body was brought to rest after the path finished
	stopped bool
}

// NewPath places the actor at the first waypoint. segment is the time to
// travel from one waypoint to the next.
func NewPath(actor *jetlag.Actor, points []gm.Vec, segment time.Duration, easeFn ease.TweenFunc) *Path {
	assert.That(len(points) >= 2, "stage: path needs at least two points, got %d", len(points))
	assert.That(actor.Body != nil && actor.Body.Kinematic(), "stage: path needs a kinematic actor")

	if easeFn == nil {
		easeFn = ease.Linear
	}

	path := &Path{
		actor:    actor,
		points:   points,
		duration: float32(segment.Seconds()),
		easeFn:   easeFn,
	}

	actor.Body.SetCenter(points[0])
	path.startSegment(0)

	return path
}

func (p *Path) Finished() bool {
	return p.finished
}

func (p *Path) startSegment(segment int) {
	from := p.points[segment]
	to := p.points[(segment+1)%len(p.points)]

	p.segment = segment
	p.x = gween.New(float32(from.X), float32(to.X), p.duration, p.easeFn)
	p.y = gween.New(float32(from.Y), float32(to.Y), p.duration, p.easeFn)
}

// step sets the velocity of the body so it reaches the next point on the
// path during the next physics step of length dt.
func (p *Path) step(dt time.Duration) {
	body := p.actor.Body

	if p.finished || !p.actor.Enabled() {
		if p.actor.Enabled() {
			body.SetVelocity(gm.VecZero)
		}

		p.finished = true
		p.stopped = true
		return
	}

	x, doneX := p.x.Update(float32(dt.Seconds()))
	y, doneY := p.y.Update(float32(dt.Seconds()))

	target := gm.Vec{X: float64(x), Y: float64(y)}
	body.SetVelocity(target.Sub(body.Center()).Mul(1 / dt.Seconds()))

	if !doneX || !doneY {
		return
	}

	next := p.segment + 1

	// the last segment of a looping path goes back to the first point
	last := len(p.points) - 1
	if p.Loop {
		last = len(p.points)
	}

	if next >= last {
		if !p.Loop {
			p.finished = true
			return
		}

		next = 0
	}

	p.startSegment(next)
}
