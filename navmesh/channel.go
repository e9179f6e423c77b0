package navmesh

import "github.com/go-gl/mathgl/mgl64"

type portal struct {
	left, right mgl64.Vec3
}

// channel collects the portals crossed by a polygon route and pulls a taut string through them.
type channel struct {
	portals []portal
}

func (c *channel) push(left, right mgl64.Vec3) {
	c.portals = append(c.portals, portal{left: left, right: right})
}

// stringPull runs the funnel algorithm over the portals. The first portal must be the start
// point and the last the goal.
func (c *channel) stringPull() []mgl64.Vec3 {
	if len(c.portals) == 0 {
		return nil
	}

	var pts []mgl64.Vec3
	apexIndex, leftIndex, rightIndex := 0, 0, 0
	portalApex := c.portals[0].left
	portalLeft := c.portals[0].left
	portalRight := c.portals[0].right

	pts = append(pts, portalApex)

	for i := 1; i < len(c.portals); i++ {
		left := c.portals[i].left
		right := c.portals[i].right

		// Tighten the right side
		if triarea2(portalApex, portalRight, right) <= 0 {
			if vequal(portalApex, portalRight) || triarea2(portalApex, portalLeft, right) > 0 {
				portalRight = right
				rightIndex = i
			} else {
				// Right crossed left, left becomes the new apex
				pts = appendCorner(pts, portalLeft)
				portalApex = portalLeft
				apexIndex = leftIndex
				portalLeft = portalApex
				portalRight = portalApex
				leftIndex = apexIndex
				rightIndex = apexIndex
				i = apexIndex
				continue
			}
		}

		// Tighten the left side
		if triarea2(portalApex, portalLeft, left) >= 0 {
			if vequal(portalApex, portalLeft) || triarea2(portalApex, portalRight, left) < 0 {
				portalLeft = left
				leftIndex = i
			} else {
				pts = appendCorner(pts, portalRight)
				portalApex = portalRight
				apexIndex = rightIndex
				portalLeft = portalApex
				portalRight = portalApex
				leftIndex = apexIndex
				rightIndex = apexIndex
				i = apexIndex
				continue
			}
		}
	}

	return appendCorner(pts, c.portals[len(c.portals)-1].left)
}

// appendCorner adds p unless it repeats the last point. A funnel restarted on a vertex shared
// by consecutive portals reaches the same corner again.
func appendCorner(pts []mgl64.Vec3, p mgl64.Vec3) []mgl64.Vec3 {
	if len(pts) > 0 && vequal(pts[len(pts)-1], p) {
		return pts
	}
	return append(pts, p)
}
