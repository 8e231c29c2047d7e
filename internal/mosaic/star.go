package mosaic

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Star defaults: five spikes, inner radius half the outer one, first spike
// pointing straight up.
const (
	StarSpikes     = 5
	StarInnerRatio = 0.5
	StarDirection  = 270.0
)

// StarPoints returns the 2*spikes vertices of a star polygon centered at
// (cx, cy), in drawing order: outer 0, inner 0, outer 1, inner 1, and so on.
// Outer vertices lie on radius; inner vertices lie on ratio*radius, halfway
// in angle between their neighbouring outer vertices.
//
// dir is the angle of the first outer vertex in degrees. Angles grow
// clockwise on screen because y grows downward, so 270 points up.
// With ratio 1 the result is a regular polygon with 2*spikes corners.
// spikes below 2 yields nil.
func StarPoints(cx, cy, radius float64, spikes int, ratio, dir float64) []f64.Vec2 {
	if spikes < 2 {
		return nil
	}
	points := make([]f64.Vec2, 0, 2*spikes)
	step := 360.0 / float64(spikes)
	for i := 0; i < spikes; i++ {
		outer := deg2rad(dir + step*float64(i))
		inner := deg2rad(dir + step*float64(i) + step/2)
		points = append(points,
			f64.Vec2{cx + radius*math.Cos(outer), cy + radius*math.Sin(outer)},
			f64.Vec2{cx + ratio*radius*math.Cos(inner), cy + ratio*radius*math.Sin(inner)},
		)
	}
	return points
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}
