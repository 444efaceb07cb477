package core

import "testing"

func TestApplyMovesAlongHeading(t *testing.T) {
	cam := Camera{X: 10, Y: 20, Angle: 0}
	cam.Apply(Forward, 0.5, DefaultMotion())
	if !approx(cam.X, 60) || !approx(cam.Y, 20) {
		t.Fatalf("forward moved to (%v,%v), expected (60,20)", cam.X, cam.Y)
	}
	cam.Apply(Back, 0.5, DefaultMotion())
	if !approx(cam.X, 10) || !approx(cam.Y, 20) {
		t.Fatalf("back moved to (%v,%v), expected (10,20)", cam.X, cam.Y)
	}
}

func TestApplyControls(t *testing.T) {
	m := Motion{MoveSpeed: 10, TurnSpeed: 2, ClimbSpeed: 4, PitchSpeed: 8}
	tests := []struct {
		name  string
		ctl   Controls
		check func(Camera) bool
	}{
		{name: "turn left", ctl: TurnLeft, check: func(c Camera) bool { return approx(c.Angle, -2) }},
		{name: "turn right", ctl: TurnRight, check: func(c Camera) bool { return approx(c.Angle, 2) }},
		{name: "climb", ctl: Climb, check: func(c Camera) bool { return approx(c.Height, 4) }},
		{name: "descend below zero", ctl: Descend, check: func(c Camera) bool { return approx(c.Height, -4) }},
		{name: "look down", ctl: LookDown, check: func(c Camera) bool { return approx(c.Horizon, 8) }},
		{name: "look up", ctl: LookUp, check: func(c Camera) bool { return approx(c.Horizon, -8) }},
		{name: "opposing turns cancel", ctl: TurnLeft | TurnRight, check: func(c Camera) bool { return approx(c.Angle, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cam Camera
			cam.Apply(tt.ctl, 1, m)
			if !tt.check(cam) {
				t.Fatalf("unexpected camera after %v: %+v", tt.ctl, cam)
			}
		})
	}
}

func TestApplyIgnoresNonPositiveDelta(t *testing.T) {
	cam := DefaultCamera()
	before := cam
	cam.Apply(Forward|Climb|TurnLeft, 0, DefaultMotion())
	cam.Apply(Forward|Climb|TurnLeft, -1, DefaultMotion())
	if cam != before {
		t.Fatalf("camera changed for dt <= 0: %+v", cam)
	}
}

func TestControlsString(t *testing.T) {
	if got := Controls(0).String(); got != "[]" {
		t.Fatalf("empty controls = %q", got)
	}
	if got := (Forward | TurnLeft | LookDown).String(); got != "[forward left look-down]" {
		t.Fatalf("controls = %q", got)
	}
}
