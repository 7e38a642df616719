package motion

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

var curves = map[string]Curve{
	"linear":      ease.Linear,
	"in-out-quad": ease.InOutQuad,
	"out-cubic":   ease.OutCubic,
	"out-back":    ease.OutBack,
	"out-elastic": ease.OutElastic,
	"in-elastic":  ease.InElastic,
	"out-bounce":  ease.OutBounce,
}

// CurveByName looks up an easing curve. The empty name means no easing.
func CurveByName(name string) (Curve, error) {
	if name == "" {
		return nil, nil
	}
	c, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("unknown transition curve %q (have %v)", name, CurveNames())
	}
	return c, nil
}

// CurveNames lists the registered curve names in order.
func CurveNames() []string {
	names := make([]string, 0, len(curves))
	for n := range curves {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ScaleTween eases a uniform scale from one value to another, starting at a
// fixed scene time. Like the other motions it is evaluated, never stepped.
type ScaleTween struct {
	From     float32
	To       float32
	Start    float64
	Duration float64
	Curve    Curve
}

// Hold returns a tween that sits at v forever.
func Hold(v float32) ScaleTween {
	return ScaleTween{From: v, To: v}
}

// At returns the scale at scene time t.
func (s ScaleTween) At(t float64) float32 {
	if s.Curve == nil || s.Duration <= 0 || t >= s.Start+s.Duration {
		return s.To
	}
	if t <= s.Start {
		return s.From
	}
	p := s.Curve((t - s.Start) / s.Duration)
	return s.From + (s.To-s.From)*float32(p)
}

// Done reports whether the tween has settled by time t.
func (s ScaleTween) Done(t float64) bool {
	return s.Curve == nil || s.Duration <= 0 || t >= s.Start+s.Duration
}

// Retarget starts a new tween at time t from the current value towards to.
func (s ScaleTween) Retarget(t float64, to float32) ScaleTween {
	return ScaleTween{
		From:     s.At(t),
		To:       to,
		Start:    t,
		Duration: s.Duration,
		Curve:    s.Curve,
	}
}
