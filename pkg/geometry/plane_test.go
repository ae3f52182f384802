package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-bucket-raytracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 2, 0), nil)

	hit, ok := plane.Hit(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 0.001, 1000, nil)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got %f", hit.T)
	}
	if hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normalized normal (0,1,0), got %v", hit.Normal)
	}

	if _, ok := plane.Hit(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)), 0.001, 1000, nil); ok {
		t.Error("Parallel ray should miss")
	}
	if _, ok := plane.BoundingBox(0, 1); ok {
		t.Error("Plane should be unbounded")
	}
}
