package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownPlane is returned when a plane name cannot be parsed.
var ErrUnknownPlane = errors.New("geom: unknown rotation plane")

// Axis indices into Vector4.Coords.
const (
	AxisX = iota
	AxisY
	AxisZ
	AxisW
)

// Plane identifies one of the six 4D rotation planes.
type Plane int

const (
	XY Plane = iota
	XZ
	XW
	YZ
	YW
	ZW
)

// Planes lists every plane in declaration order.
var Planes = []Plane{XY, XZ, XW, YZ, YW, ZW}

var planeAxes = [...][2]int{
	XY: {AxisX, AxisY},
	XZ: {AxisX, AxisZ},
	XW: {AxisX, AxisW},
	YZ: {AxisY, AxisZ},
	YW: {AxisY, AxisW},
	ZW: {AxisZ, AxisW},
}

var planeNames = [...]string{
	XY: "xy",
	XZ: "xz",
	XW: "xw",
	YZ: "yz",
	YW: "yw",
	ZW: "zw",
}

func (p Plane) Valid() bool { return p >= XY && p <= ZW }

// Axes returns the two axes spanning the plane, lower index first.
func (p Plane) Axes() (int, int) {
	a := planeAxes[p]
	return a[0], a[1]
}

func (p Plane) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Plane(%d)", int(p))
	}
	return planeNames[p]
}

// ParsePlane accepts names like "zw" or "ZW".
func ParsePlane(s string) (Plane, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Planes {
		if planeNames[p] == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlane, s)
}

// PlaneRotation embeds [[cos,-sin],[sin,cos]] into the identity at the
// plane's two axes. Invalid planes yield the identity.
func PlaneRotation(p Plane, angle float64) Matrix4 {
	m := Identity()
	if !p.Valid() {
		return m
	}
	a, b := p.Axes()
	c, s := math.Cos(angle), math.Sin(angle)
	m[a][a], m[a][b] = c, -s
	m[b][a], m[b][b] = s, c
	return m
}
