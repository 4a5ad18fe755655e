package demo

import (
	"oopdemo/pkg/game/state"
	"oopdemo/pkg/vehicle"
)

// SampleVehicles returns the fleet used by DemonstratePolymorphism, narrating to s
func SampleVehicles(s *state.Session) []vehicle.Vehicle {
	return []vehicle.Vehicle{
		vehicle.NewCar(s, "Tesla Model 3", 200, "Electric", 4),
		vehicle.NewPlane(s, "Boeing 747", 900, "Jet Fuel", 10000),
		vehicle.NewBoat(s, "Ocean Explorer", 45, "Diesel", "Yacht"),
		vehicle.NewBicycle(s, "Mountain Bike Pro", 25, 21),
	}
}

// DemonstratePolymorphism moves and stops every sample vehicle through the
// same Vehicle calls.
func DemonstratePolymorphism(s *state.Session) {
	s.Blank()
	s.Say("VEHICLES_TITLE")
	s.Rule("=", 0)
	s.Say("VEHICLES_START")
	s.Blank()

	for _, v := range SampleVehicles(s) {
		s.Say("VEHICLE_INFO", v.Info())
		v.Move()

		switch x := v.(type) {
		case *vehicle.Car:
			x.Honk()
		case *vehicle.Plane:
			x.Announce(s.T("ANNOUNCEMENT_WELCOME"))
		case *vehicle.Boat:
			x.SoundHorn()
		case *vehicle.Bicycle:
			x.RingBell()
		}

		v.Stop()
		s.Blank()
	}

	s.Say("VEHICLES_NOTICE")
	s.Say("VEHICLES_POLYMORPHISM")
}
