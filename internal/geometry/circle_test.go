package geometry

import "testing"

func TestIsPointInCircle(t *testing.T) {
	disc := NewCircle(vec3(0, 1, 0), vec3(0, 1, 0), 2)

	if !IsPointInCircle(disc, vec3(1, 1, 1)) {
		t.Error("Point on the disc should be inside")
	}
	if IsPointInCircle(disc, vec3(2, 1, 0)) {
		t.Error("Point exactly on the rim should not be strictly inside")
	}
	if IsPointInCircle(disc, vec3(0, 1.1, 0)) {
		t.Error("Point off the disc plane should not be inside")
	}
}

func TestPlaneCircleIntersectionParallel(t *testing.T) {
	ground := NewPlane(vec3(0, 1, 0), 0)

	sunk := NewCircle(vec3(0, -0.1, 0), vec3(0, 1, 0), 1)
	points, depths := PlaneCircleIntersection(ground, sunk)
	if len(points) != 4 {
		t.Fatalf("Expected 4 spread rim points for a flat disc, got %d", len(points))
	}
	for i, d := range depths {
		if !near(d, 0.1, 1e-5) {
			t.Errorf("Expected depth 0.1 for rim point %d, got %f", i, d)
		}
	}

	resting := NewCircle(vec3(0, 0.1, 0), vec3(0, 1, 0), 1)
	if points, _ := PlaneCircleIntersection(ground, resting); len(points) != 0 {
		t.Errorf("Expected no points for a disc above the plane, got %d", len(points))
	}
}

func TestPlaneCircleIntersectionUpright(t *testing.T) {
	ground := NewPlane(vec3(0, 1, 0), 0)

	cutting := NewCircle(vec3(0, 0.5, 0), vec3(1, 0, 0), 1)
	points, depths := PlaneCircleIntersection(ground, cutting)
	if len(points) != 1 {
		t.Fatalf("Expected 1 deepest point, got %d", len(points))
	}
	expectVec(t, "deepest point", points[0], vec3(0, -0.5, 0))
	if !near(depths[0], 0.5, 1e-5) {
		t.Errorf("Expected depth 0.5, got %f", depths[0])
	}

	above := NewCircle(vec3(0, 2, 0), vec3(1, 0, 0), 1)
	if points, _ := PlaneCircleIntersection(ground, above); len(points) != 0 {
		t.Errorf("Expected no points for a disc clear of the plane, got %d", len(points))
	}

	buried := NewCircle(vec3(0, -3, 0), vec3(1, 0, 0), 1)
	points, depths = PlaneCircleIntersection(ground, buried)
	if len(points) != 1 {
		t.Fatalf("Expected the buried disc to report its deepest point, got %d points", len(points))
	}
	if !near(depths[0], 4, 1e-4) {
		t.Errorf("Expected depth 4, got %f", depths[0])
	}
}

func TestCircleRimPoints(t *testing.T) {
	disc := NewCircle(vec3(1, 2, 3), vec3(0, 0, 1), 2)
	for i, p := range disc.RimPoints() {
		if d := p.X - 1; !near(d*d+(p.Y-2)*(p.Y-2), 4, 1e-4) || !near(p.Z, 3, 1e-5) {
			t.Errorf("Rim point %d (%v) is not on the rim", i, p)
		}
	}
}
