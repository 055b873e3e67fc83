package core

import "testing"

func TestRectZeroAndContains(t *testing.T) {
	var r Rect
	if !r.IsZero() {
		t.Fatal("zero rect should report zero")
	}
	r = Rect{X: 10, Y: 20, W: 5, H: 5}
	if r.IsZero() {
		t.Fatal("non-zero rect reported zero")
	}
	if !r.Contains(Point{X: 10, Y: 20}) {
		t.Fatal("origin is inside the rect")
	}
	if r.Contains(Point{X: 15, Y: 20}) {
		t.Fatal("the right edge is exclusive")
	}
}

func TestRectDerived(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 6, H: 4}
	if r.MidX() != 13 || r.MaxX() != 16 || r.MaxY() != 24 {
		t.Fatalf("unexpected derived values: mid=%v maxX=%v maxY=%v", r.MidX(), r.MaxX(), r.MaxY())
	}
	if r.Size() != (Size{W: 6, H: 4}) || r.Origin() != (Point{X: 10, Y: 20}) {
		t.Fatal("size/origin mismatch")
	}
	if (Size{}).IsZero() == false {
		t.Fatal("zero size should report zero")
	}
}
