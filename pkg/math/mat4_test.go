package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	// Translate by (10, 20, 30)
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestFromEulerYaw90(t *testing.T) {
	m := FromEuler(Vec3{Y: float32(math.Pi / 2)})
	result := m.TransformPoint([3]float32{1, 0, 0})

	// A quarter turn about Y takes +X to -Z.
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("FromEuler yaw 90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(90, 2, 0.1, 100)

	// tan(45°) = 1, so the vertical focal length is 1 and the horizontal one
	// is divided by the aspect.
	if abs(m[5]-1) > 1e-5 || abs(m[0]-0.5) > 1e-5 {
		t.Errorf("Perspective focal lengths: got (%f, %f), want (0.5, 1)", m[0], m[5])
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	// Transform eye position - should result in origin (or close to it)
	// This is a simple sanity check
	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
}

func TestComposeOrder(t *testing.T) {
	// Scale first, then rotate, then translate.
	m := Compose(Vec3{10, 0, 0}, Vec3{0, float32(math.Pi / 2), 0}, Splat(2))
	got := m.TransformPoint([3]float32{1, 0, 0})

	// (1,0,0) -> scaled (2,0,0) -> rotated (0,0,-2) -> translated (10,0,-2)
	if abs(got[0]-10) > 0.001 || abs(got[1]) > 0.001 || abs(got[2]+2) > 0.001 {
		t.Errorf("Compose: got %v, want (10, 0, -2)", got)
	}
	if s := m.MaxScale(); abs(s-2) > 0.001 {
		t.Errorf("MaxScale: got %v, want 2", s)
	}
	if tr := m.Translation(); tr != (Vec3{10, 0, 0}) {
		t.Errorf("Translation: got %v", tr)
	}
}

func TestFromEulerZeroIsIdentity(t *testing.T) {
	m := FromEuler(Vec3{})
	id := Identity()
	for i := range m {
		if abs(m[i]-id[i]) > 1e-6 {
			t.Fatalf("FromEuler(0) element %d: got %v, want %v", i, m[i], id[i])
		}
	}
}

func TestFromEulerMatchesAxisProduct(t *testing.T) {
	r := Vec3{0.4, -0.7, 1.1}
	x := Mat4{0: 1, 5: cos(r.X), 6: sin(r.X), 9: -sin(r.X), 10: cos(r.X), 15: 1}
	y := Mat4{0: cos(r.Y), 2: -sin(r.Y), 5: 1, 8: sin(r.Y), 10: cos(r.Y), 15: 1}
	z := Mat4{0: cos(r.Z), 1: sin(r.Z), 4: -sin(r.Z), 5: cos(r.Z), 10: 1, 15: 1}

	want := x.Mul(y).Mul(z)
	got := FromEuler(r)
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if got := Scale(1, 0, 1).Inverse(); got != Identity() {
		t.Errorf("singular inverse: got %v, want identity", got)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Compose(Vec3{1, 2, 3}, Vec3{0.3, 0.2, 0.1}, Vec3{1, 2, 0.5})
	p := [3]float32{4, -1, 2}
	back := m.Inverse().TransformPoint(m.TransformPoint(p))
	for i := range p {
		if abs(back[i]-p[i]) > 0.001 {
			t.Fatalf("inverse round trip: got %v, want %v", back, p)
		}
	}
}

func sin(a float32) float32 { return float32(math.Sin(float64(a))) }
func cos(a float32) float32 { return float32(math.Cos(float64(a))) }

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
