// Package vehicle models transportation. Every variant moves and stops in
// its own way behind the same Vehicle contract.
package vehicle

import (
	"fmt"

	"oopdemo/pkg/engine/console"
)

// Vehicle is implemented by every variant. The shared state lives in an
// unexported type, so a bare vehicle cannot be built outside this package.
type Vehicle interface {
	Name() string
	Speed() int
	FuelType() string
	IsMoving() bool
	Move()
	Stop()
	Info() string
}

// chassis holds what all vehicles share. Variants embed it.
type chassis struct {
	name     string
	speed    int
	fuel     string
	moving   bool
	narrator console.Narrator
}

func newChassis(n console.Narrator, name string, speed int, fuel string) chassis {
	return chassis{
		name:     name,
		speed:    speed,
		fuel:     fuel,
		narrator: console.OrDiscard(n),
	}
}

// Name returns the vehicle name
func (c *chassis) Name() string { return c.name }

// Speed returns the rated speed in km/h
func (c *chassis) Speed() int { return c.speed }

// FuelType returns the fuel description
func (c *chassis) FuelType() string { return c.fuel }

// IsMoving reports whether the vehicle is under way
func (c *chassis) IsMoving() bool { return c.moving }

// Info returns the summary line shared by all variants
func (c *chassis) Info() string {
	return fmt.Sprintf("%s - Speed: %d km/h - Fuel: %s", c.name, c.speed, c.fuel)
}

// shift moves the vehicle into the moving or stopped state and reports
// whether anything changed.
func (c *chassis) shift(moving bool) bool {
	if c.moving == moving {
		return false
	}
	c.moving = moving
	return true
}

// transition runs shift and narrates changedKey or sameKey accordingly.
func (c *chassis) transition(moving bool, changedKey, sameKey string, changedArgs ...any) bool {
	if !c.shift(moving) {
		c.say(sameKey, c.name)
		return false
	}
	c.say(changedKey, changedArgs...)
	return true
}

func (c *chassis) say(key string, args ...any) {
	c.narrator.Say(key, args...)
}

var (
	_ Vehicle = (*Car)(nil)
	_ Vehicle = (*Plane)(nil)
	_ Vehicle = (*Boat)(nil)
	_ Vehicle = (*Bicycle)(nil)
)
