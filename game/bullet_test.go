package game

import "testing"

var testViewport = Vec2i{800, 600}

func TestBulletMovesAlongDirection(t *testing.T) {
	b := NewBullet(Vec2i{100, 100}, Vec2f{1, 0}, 1000)
	b.Update(0.01, testViewport)

	if b.Pos != (Vec2i{110, 100}) {
		t.Errorf("Pos = %v, expected {110 100}", b.Pos)
	}
	if !b.Active() {
		t.Error("bullet inside viewport should stay active")
	}
	if b.Size != BulletSize {
		t.Errorf("Size = %v, expected %v", b.Size, BulletSize)
	}
}

func TestBulletDeactivatesLeavingViewport(t *testing.T) {
	tests := []struct {
		name  string
		start Vec2i
		dir   Vec2f
	}{
		{"right", Vec2i{790, 300}, Vec2f{1, 0}},
		{"left", Vec2i{10, 300}, Vec2f{-1, 0}},
		{"top", Vec2i{400, 10}, Vec2f{0, -1}},
		{"bottom", Vec2i{400, 590}, Vec2f{0, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBullet(tc.start, tc.dir, 1000)

			// first tick lands exactly on the edge, which is still inside
			b.Update(0.01, testViewport)
			if !b.Active() {
				t.Fatalf("bullet on the edge at %v should be active", b.Pos)
			}

			b.Update(0.01, testViewport)
			if b.Active() {
				t.Errorf("bullet at %v should be inactive", b.Pos)
			}
		})
	}
}
