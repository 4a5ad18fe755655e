package vehicle

import "oopdemo/pkg/engine/console"

// Car drives on roads.
type Car struct {
	chassis
	Doors int
}

// NewCar creates a parked car
func NewCar(n console.Narrator, name string, speed int, fuel string, doors int) *Car {
	return &Car{chassis: newChassis(n, name, speed, fuel), Doors: doors}
}

// Move starts driving
func (c *Car) Move() {
	c.transition(true, "CAR_DRIVING", "CAR_ALREADY_DRIVING", c.name, c.speed)
}

// Stop parks the car
func (c *Car) Stop() {
	c.transition(false, "CAR_PARKED", "CAR_ALREADY_PARKED", c.name)
}

// Honk sounds the horn
func (c *Car) Honk() {
	c.say("CAR_HONK", c.name)
}
