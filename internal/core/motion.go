package core

import (
	"math"
	"strings"
)

// Controls is the set of camera actions held down during a tick.
type Controls uint16

const (
	Forward Controls = 1 << iota
	Back
	TurnLeft
	TurnRight
	Climb
	Descend
	LookUp
	LookDown
)

var controlNames = [...]string{"forward", "back", "left", "right", "climb", "descend", "look-up", "look-down"}

// Has reports whether every control in flag is active.
func (c Controls) Has(flag Controls) bool { return c&flag == flag }

// String lists the active controls, e.g. "[forward left]".
func (c Controls) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for i, name := range controlNames {
		if c&(1<<i) == 0 {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		first = false
	}
	b.WriteByte(']')
	return b.String()
}

// Motion holds per-second rates applied by Camera.Apply.
type Motion struct {
	MoveSpeed  float32
	TurnSpeed  float32
	ClimbSpeed float32
	PitchSpeed float32
}

// DefaultMotion returns the standard motion rates.
func DefaultMotion() Motion {
	return Motion{MoveSpeed: 100, TurnSpeed: 1.5, ClimbSpeed: 50, PitchSpeed: 70}
}

// Apply advances the camera by dt seconds of the given controls.
func (c *Camera) Apply(ctl Controls, dt float32, m Motion) {
	if ctl == 0 || dt <= 0 {
		return
	}
	step := m.MoveSpeed * dt
	turn := m.TurnSpeed * dt

	if ctl.Has(Forward) || ctl.Has(Back) {
		s64, c64 := math.Sincos(float64(c.Angle))
		dx, dy := float32(c64)*step, float32(s64)*step
		if ctl.Has(Forward) {
			c.X += dx
			c.Y += dy
		}
		if ctl.Has(Back) {
			c.X -= dx
			c.Y -= dy
		}
	}
	if ctl.Has(TurnLeft) {
		c.Angle -= turn
	}
	if ctl.Has(TurnRight) {
		c.Angle += turn
	}
	if ctl.Has(Climb) {
		c.Height += m.ClimbSpeed * dt
	}
	if ctl.Has(Descend) {
		c.Height -= m.ClimbSpeed * dt
	}
	if ctl.Has(LookDown) {
		c.Horizon += m.PitchSpeed * dt
	}
	if ctl.Has(LookUp) {
		c.Horizon -= m.PitchSpeed * dt
	}
}
