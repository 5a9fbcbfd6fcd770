package interpreter

import (
	"fmt"
	"strconv"
)

// Direction is a compass heading. The values form a clockwise ring.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

const directions = 4

var directionNames = [directions]string{"NORTH", "EAST", "SOUTH", "WEST"}

// Valid reports whether d is one of the four headings. Conversions from
// arbitrary ints can land outside the ring, and Place refuses those.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

// Left is the heading after a quarter turn counter-clockwise.
func (d Direction) Left() Direction {
	return (d + directions - 1) % directions
}

// Right is the heading after a quarter turn clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % directions
}

// Delta is the unit step taken when moving forward along d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	}
	return 0, 0
}

// ParseDirection matches one of the four names exactly, case included.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return North, fmt.Errorf("unknown direction %q", s)
}

// Capture lets the PLACE grammar decode a direction name directly.
func (d *Direction) Capture(values []string) error {
	if len(values) != 1 {
		return fmt.Errorf("expected one direction, got %d", len(values))
	}
	v, err := ParseDirection(values[0])
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Robot tracks a position and heading on a Table. It starts at 0,0 facing
// north, which is already a valid state, and requests that would take it off
// the table are ignored.
type Robot struct {
	table  Table
	x, y   int
	facing Direction
}

func NewRobot() *Robot {
	return NewRobotOn(DefaultTable())
}

// NewRobotOn starts a robot at 0,0 facing north on t.
func NewRobotOn(t Table) *Robot {
	return &Robot{table: t, facing: North}
}

func (r *Robot) Position() (int, int, Direction) {
	return r.x, r.y, r.facing
}

func (r *Robot) CanPlace(x, y int) bool {
	return r.table.InBounds(x, y)
}

// Place puts the robot at x,y facing the given way. It reports whether the
// placement was accepted; a rejected placement leaves the robot untouched.
func (r *Robot) Place(x, y int, facing Direction) bool {
	if !r.CanPlace(x, y) || !facing.Valid() {
		return false
	}
	r.x, r.y, r.facing = x, y, facing
	return true
}

// Move steps one square forward unless that would leave the table.
func (r *Robot) Move() bool {
	dx, dy := r.facing.Delta()
	nx, ny := r.x+dx, r.y+dy
	if !r.table.InBounds(nx, ny) {
		return false
	}
	r.x, r.y = nx, ny
	return true
}

func (r *Robot) Left() {
	r.facing = r.facing.Left()
}

func (r *Robot) Right() {
	r.facing = r.facing.Right()
}

func (r *Robot) String() string {
	return fmt.Sprintf("%d,%d,%s", r.x, r.y, r.facing)
}

// Report renders the state in the REPORT output format.
func (r *Robot) Report() string {
	return reportPrefix + r.String()
}
