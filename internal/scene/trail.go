package scene

// Trail is a bounded FIFO of recent bob positions. Pushing beyond the
// capacity evicts the oldest point.
type Trail struct {
	pts []Point
	max int
}

func newTrail(max int) *Trail {
	return &Trail{pts: make([]Point, 0, max+1), max: max}
}

// Push appends p, dropping the oldest point once the trail is full.
func (t *Trail) Push(p Point) {
	t.pts = append(t.pts, p)
	if len(t.pts) > t.max {
		copy(t.pts, t.pts[1:])
		t.pts = t.pts[:t.max]
	}
}

// Points returns the stored positions, oldest first. The slice aliases
// the trail's storage and is only valid until the next Push.
func (t *Trail) Points() []Point { return t.pts }

// Len returns the number of stored positions.
func (t *Trail) Len() int { return len(t.pts) }

// Max returns the trail capacity.
func (t *Trail) Max() int { return t.max }
