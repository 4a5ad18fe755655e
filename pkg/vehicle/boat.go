package vehicle

import "oopdemo/pkg/engine/console"

// Boat sails.
type Boat struct {
	chassis
	BoatType string
}

// NewBoat creates a docked boat
func NewBoat(n console.Narrator, name string, speed int, fuel, boatType string) *Boat {
	return &Boat{chassis: newChassis(n, name, speed, fuel), BoatType: boatType}
}

// Move sets sail
func (b *Boat) Move() {
	b.transition(true, "BOAT_SAILING", "BOAT_ALREADY_SAILING", b.name, b.BoatType, b.speed)
}

// Stop docks at the harbor
func (b *Boat) Stop() {
	b.transition(false, "BOAT_DOCKED", "BOAT_ALREADY_DOCKED", b.name)
}

// SoundHorn sounds the ship's horn
func (b *Boat) SoundHorn() {
	b.say("BOAT_HORN", b.name)
}
