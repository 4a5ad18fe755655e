package vehicle

import "oopdemo/pkg/engine/console"

// HumanPower is the fuel type of every bicycle.
const HumanPower = "Human Power"

// Bicycle is pedalled.
type Bicycle struct {
	chassis
	Gears int
}

// NewBicycle creates a parked bicycle
func NewBicycle(n console.Narrator, name string, speed, gears int) *Bicycle {
	return &Bicycle{chassis: newChassis(n, name, speed, HumanPower), Gears: gears}
}

// Move starts pedalling
func (b *Bicycle) Move() {
	b.transition(true, "BICYCLE_PEDALING", "BICYCLE_ALREADY_PEDALING", b.name, b.speed)
}

// Stop parks the bicycle
func (b *Bicycle) Stop() {
	b.transition(false, "BICYCLE_PARKED", "BICYCLE_ALREADY_PARKED", b.name)
}

// RingBell rings the bell
func (b *Bicycle) RingBell() {
	b.say("BICYCLE_BELL", b.name)
}
