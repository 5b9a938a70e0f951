package collision

// MaxCandidateAxes bounds the axes AppendCandidateAxes adds for one pair.
const MaxCandidateAxes = 7

// AppendCandidateAxes appends the non-face axes that complete a separating
// axis test between a and b. Face axes are left to AppendAxes. It reports
// false for kinds the table does not cover; callers then fall back to
// AppendAxesDerived.
func AppendCandidateAxes(a, b Shape, dst []Vec2) ([]Vec2, bool) {
	a, b = uncached(a), uncached(b)
	if !hasCandidateTable(a.Kind()) || !hasCandidateTable(b.Kind()) {
		return dst, false
	}
	if a.Kind() > b.Kind() {
		return AppendCandidateAxes(b, a, dst)
	}

	switch a := a.(type) {
	case Point:
		switch b := b.(type) {
		case Circle:
			return appendAxisBetween(dst, a.At, b.Origin), true
		case Capsule:
			return appendAxisBetween(dst, b.closest(a.At), a.At), true
		}
	case Line:
		switch b := b.(type) {
		case Circle:
			return appendAxisBetween(dst, closestOnSegment(a.Start, a.End, b.Origin), b.Origin), true
		case Capsule:
			return appendSegmentPairAxes(dst, a.Start, a.End, b.Start, b.End()), true
		}
	case Circle:
		switch b := b.(type) {
		case Circle:
			return appendAxisBetween(dst, a.Origin, b.Origin), true
		case Capsule:
			return appendAxisBetween(dst, b.closest(a.Origin), a.Origin), true
		case Rect, OrientedRect, Slope:
			return appendNearestVertexAxis(dst, b, a.Origin), true
		}
	case Rect, OrientedRect:
		if b, ok := b.(Capsule); ok {
			return appendCapsuleVertexAxes(dst, b, a), true
		}
	case Capsule:
		switch b := b.(type) {
		case Capsule:
			return appendSegmentPairAxes(dst, a.Start, a.End(), b.Start, b.End()), true
		case Slope:
			return appendCapsuleVertexAxes(dst, a, b), true
		}
	}
	return dst, true
}

func hasCandidateTable(k Kind) bool {
	return k <= KindSlope
}

func appendNearestVertexAxis(dst []Vec2, s Shape, p Vec2) []Vec2 {
	var buf [4]Vec2
	return appendAxisBetween(dst, nearestPoint(s.AppendPoints(buf[:0]), p), p)
}

func appendCapsuleVertexAxes(dst []Vec2, c Capsule, s Shape) []Vec2 {
	dst = appendNearestVertexAxis(dst, s, c.Start)
	return appendNearestVertexAxis(dst, s, c.End())
}

// appendSegmentPairAxes adds the axes between each endpoint and the nearest
// point of the opposite segment.
func appendSegmentPairAxes(dst []Vec2, a0, a1, b0, b1 Vec2) []Vec2 {
	dst = appendAxisBetween(dst, closestOnSegment(b0, b1, a0), a0)
	dst = appendAxisBetween(dst, closestOnSegment(b0, b1, a1), a1)
	dst = appendAxisBetween(dst, closestOnSegment(a0, a1, b0), b0)
	return appendAxisBetween(dst, closestOnSegment(a0, a1, b1), b1)
}
