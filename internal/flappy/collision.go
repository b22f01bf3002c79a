package flappy

// Collides reports whether the body's square hitbox touches either wall of
// the obstacle. The horizontal test is inclusive at both edges, the vertical
// one exclusive, so a body exactly filling the gap still passes.
func Collides(b Body, ob Obstacle) bool {
	if ob.X > b.X+b.Size {
		return false
	}
	if ob.X+ob.Width < b.X {
		return false
	}

	if ob.UpperGapY < b.Y+b.Size {
		return true // Top of body is above the gap's top edge
	}
	if ob.DownGapY > b.Y {
		return true // Bottom of body is below the gap's bottom edge
	}
	return false
}
