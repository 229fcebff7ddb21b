package controller

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Key identifies one of the tracked directional keys.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
)

// Action is the polled state of a key.
type Action int

const (
	Release Action = iota
	Press
)

// Window is anything that can report the current state of a key.
type Window interface {
	GetKey(key Key) Action
}

// smoothing rate and the number of decimal digits kept on the remaining
// distance to the goal
const (
	rate      = 0.5 * 10
	precision = 10_000
)

// Controller emulates an analog stick from the WASD keys. The keys are
// fixed.
type Controller struct {
	smooth bool

	w, a, s, d bool

	goal mgl32.Vec2
	axis mgl32.Vec2
}

// New returns a controller centred at rest. With smooth false the axis
// follows the goal on every Run.
func New(smooth bool) *Controller {
	return &Controller{smooth: smooth}
}

// ProcessInput reacts to key transitions since the previous call. Releasing
// a key always resets its axis, even if the opposite key is still down.
func (c *Controller) ProcessInput(window Window) {
	if pressed, changed := edge(window, KeyW, &c.w); changed {
		c.setY(pressed, 1)
	}
	if pressed, changed := edge(window, KeyS, &c.s); changed {
		c.setY(pressed, -1)
	}
	if pressed, changed := edge(window, KeyA, &c.a); changed {
		c.setX(pressed, -1)
	}
	if pressed, changed := edge(window, KeyD, &c.d); changed {
		c.setX(pressed, 1)
	}
}

// Run moves the axis toward the goal. With smoothing disabled the axis snaps
// to the goal.
func (c *Controller) Run(dt time.Duration) {
	if !c.smooth {
		c.axis = c.goal
		return
	}

	seconds := float32(dt.Milliseconds()) / 1000
	next := LerpVec2(c.axis, c.goal, float32(seconds*rate))
	for i := range c.axis {
		c.axis[i] = c.goal[i] - truncate(float32(c.goal[i]-next[i]))
	}
}

// XAxis is the horizontal output in [-1, 1]; positive is right.
func (c *Controller) XAxis() float32 {
	return c.axis[0]
}

// YAxis is the vertical output in [-1, 1]; positive is forward.
func (c *Controller) YAxis() float32 {
	return c.axis[1]
}

// Axis returns both outputs as (x, y).
func (c *Controller) Axis() mgl32.Vec2 {
	return c.axis
}

// Goal is the target the axis moves toward. Each component is -1, 0 or 1.
func (c *Controller) Goal() mgl32.Vec2 {
	return c.goal
}

// Smooth reports whether Run interpolates.
func (c *Controller) Smooth() bool {
	return c.smooth
}

func (c *Controller) setX(pressed bool, value float32) {
	if !pressed {
		value = 0
	}
	c.goal[0] = value
}

func (c *Controller) setY(pressed bool, value float32) {
	if !pressed {
		value = 0
	}
	c.goal[1] = value
}

// edge polls key once and records its state in held. changed is true only on
// a transition.
func edge(window Window, key Key, held *bool) (pressed bool, changed bool) {
	pressed = window.GetKey(key) == Press
	if pressed == *held {
		return pressed, false
	}
	*held = pressed
	return pressed, true
}

// truncate drops everything past the fourth decimal digit, rounding toward
// zero.
func truncate(v float32) float32 {
	return float32(math.Trunc(float64(float32(v*precision)))) / precision
}
