package world

// LineOfSight reports whether to is visible from from: within radius
// (Chebyshev distance) and with no wall on the Bresenham ray between them.
// The endpoints themselves never block, so a character standing against a
// wall can still be seen from the open side.
//
// Precondition: radius >= 0.
func LineOfSight(m *Map, from, to Pos, radius int) bool {
	if !m.IsInside(from) || !m.IsInside(to) {
		return false
	}
	if from.Distance(to) > radius {
		return false
	}
	blocked := false
	walkLine(from, to, func(p Pos) bool {
		if p == from || p == to {
			return true
		}
		if m.HasWall(p) {
			blocked = true
			return false
		}
		return true
	})
	return !blocked
}

// walkLine visits each point of the Bresenham line from a to b inclusive,
// stopping early when visit returns false.
func walkLine(a, b Pos, visit func(Pos) bool) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	p := a
	for {
		if !visit(p) || p == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

// VisibleFrom returns every position within radius that has line of sight
// from origin. The origin is always included.
func VisibleFrom(m *Map, origin Pos, radius int) map[Pos]bool {
	visible := make(map[Pos]bool)
	if !m.IsInside(origin) {
		return visible
	}
	visible[origin] = true
	for y := origin.Y - radius; y <= origin.Y+radius; y++ {
		for x := origin.X - radius; x <= origin.X+radius; x++ {
			p := Pos{X: x, Y: y}
			if p != origin && LineOfSight(m, origin, p, radius) {
				visible[p] = true
			}
		}
	}
	return visible
}
