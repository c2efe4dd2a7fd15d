package scene

import "testing"

func TestTrailNeverExceedsCapacity(t *testing.T) {
	tr := newTrail(8)
	for i := 0; i < 50; i++ {
		tr.Push(Point{X: float64(i)})
		if tr.Len() > tr.Max() {
			t.Fatalf("after %d pushes: len = %d exceeds capacity %d", i+1, tr.Len(), tr.Max())
		}
	}
	if tr.Len() != 8 {
		t.Fatalf("full trail len = %d, want 8", tr.Len())
	}
}

func TestTrailEvictsOldestFirst(t *testing.T) {
	tr := newTrail(8)
	for i := 0; i < 20; i++ {
		tr.Push(Point{X: float64(i)})
	}

	pts := tr.Points()
	if len(pts) != 8 {
		t.Fatalf("len = %d, want 8", len(pts))
	}
	for i, p := range pts {
		// Pushes 0..19 with capacity 8 leave exactly 12..19 behind.
		if want := float64(12 + i); p.X != want {
			t.Fatalf("pts[%d].X = %f, want %f", i, p.X, want)
		}
	}
}

func TestTrailShortHistoryKeptInOrder(t *testing.T) {
	tr := newTrail(8)
	tr.Push(Point{X: 1})
	tr.Push(Point{X: 2})
	tr.Push(Point{X: 3})

	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	for i, want := range []float64{1, 2, 3} {
		if pts[i].X != want {
			t.Fatalf("pts[%d].X = %f, want %f", i, pts[i].X, want)
		}
	}
}
