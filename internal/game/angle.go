package game

import "math"

// ByteAngle is an aim direction in 256 steps per full turn. Arithmetic wraps
// modulo 256 on purpose: turning past 255 lands back on 0.
//
// Convention: 0 points up the screen, 64 right, 128 down and 192 left, so
// increasing values turn clockwise as seen on screen.
type ByteAngle uint8

// byteAngleStep is one ByteAngle step in radians.
const byteAngleStep = 2 * math.Pi / 256

// Rotate returns a turned by steps (negative turns anticlockwise).
func (a ByteAngle) Rotate(steps int) ByteAngle {
	return a + ByteAngle(steps)
}

// Radians converts a to a standard math angle: counter-clockwise from +X
// with Y pointing up. Byte 0 (screen up) maps to π/2.
func (a ByteAngle) Radians() float64 {
	steps := (256 - int(a) + 64) % 256
	return float64(steps) * byteAngleStep
}

// Heading returns the unit direction of a in world space (Y down).
func (a ByteAngle) Heading() (dx, dy float64) {
	return HeadingOf(a.Radians())
}

// HeadingOf returns the world-space unit direction for a math angle in
// radians. The Y component is negated because world Y grows downward.
func HeadingOf(radians float64) (dx, dy float64) {
	return math.Cos(radians), -math.Sin(radians)
}
