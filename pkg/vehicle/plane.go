package vehicle

import "oopdemo/pkg/engine/console"

// Plane flies. Its flying flag always mirrors the moving state.
type Plane struct {
	chassis
	AltitudeM int

	flying bool
}

// NewPlane creates a plane waiting at the airport
func NewPlane(n console.Narrator, name string, speed int, fuel string, altitudeM int) *Plane {
	return &Plane{chassis: newChassis(n, name, speed, fuel), AltitudeM: altitudeM}
}

// IsFlying reports whether the plane is in the air
func (p *Plane) IsFlying() bool {
	return p.flying
}

// Move takes off
func (p *Plane) Move() {
	if p.transition(true, "PLANE_FLYING", "PLANE_ALREADY_FLYING", p.name, p.speed, p.AltitudeM) {
		p.flying = true
	}
}

// Stop lands
func (p *Plane) Stop() {
	if p.transition(false, "PLANE_LANDED", "PLANE_ALREADY_LANDED", p.name) {
		p.flying = false
	}
}

// Announce broadcasts message to the passengers. Nothing happens on the ground.
func (p *Plane) Announce(message string) {
	if !p.flying {
		return
	}
	p.say("PLANE_ANNOUNCE", p.name, message)
}
