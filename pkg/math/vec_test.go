package math

import (
	"testing"
)

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{4, 8}
	got := a.Lerp(b, 0.25)
	want := Vec2{1, 2}
	if got != want {
		t.Errorf("Vec2.Lerp() = %v, want %v", got, want)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	p0, p1, p2, p3 := Vec2{0, 0}, Vec2{1, 2}, Vec2{3, 2}, Vec2{4, 0}
	if got := CubicBezier(p0, p1, p2, p3, 0); got != p0 {
		t.Errorf("CubicBezier(t=0) = %v, want %v", got, p0)
	}
	if got := CubicBezier(p0, p1, p2, p3, 1); got != p3 {
		t.Errorf("CubicBezier(t=1) = %v, want %v", got, p3)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3MaxComponent(t *testing.T) {
	v := Vec3{1, -3, 2}
	if got := v.MaxComponent(); got != 3 {
		t.Errorf("Vec3.MaxComponent() = %v, want 3", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}
