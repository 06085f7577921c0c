package collision

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/physics"
)

// half the size of the box queried around a point
const queryExtent = 0.1

func actorsAt(world *physics.World, point gm.Vec) []*jetlag.Actor {
	var actors []*jetlag.Actor

	bb := cp.NewBBForExtents(cp.Vector(point), queryExtent, queryExtent)

	world.Space().BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ any) {
		actor, ok := jetlag.ActorOf(shape.Body())

		// disabled actors might be waiting in a pool for reuse
		if !ok || !actor.Enabled() || !actor.Body.Enabled() {
			return
		}

		actors = append(actors, actor)
	}, nil)

	return actors
}
