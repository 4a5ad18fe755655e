package demo

import (
	"oopdemo/pkg/device"
	"oopdemo/pkg/game/renderer"
	"oopdemo/pkg/game/state"
)

// SampleDevices returns the devices used by DemonstrateDevices, narrating to s
func SampleDevices(s *state.Session, rng device.Rand) []device.Gadget {
	return []device.Gadget{
		device.NewSmartphone(s, device.Spec{Brand: "Apple", Model: "iPhone 15", Price: 999, BatteryHours: 20}, 6.1, 48, device.WithRand(rng)),
		device.NewLaptop(s, device.Spec{Brand: "Dell", Model: "XPS 13", Price: 1200, BatteryHours: 12}, 16, 512),
		device.NewTablet(s, device.Spec{Brand: "Samsung", Model: "Galaxy Tab S9", Price: 600, BatteryHours: 15}, 11, true),
	}
}

// DemonstrateDevices walks each sample device through its features.
func DemonstrateDevices(s *state.Session, rng device.Rand) {
	s.Say("DEVICES_TITLE")
	s.Rule("=", 0)

	for _, d := range SampleDevices(s, rng) {
		exerciseDevice(s, d)
	}
}

func exerciseDevice(s *state.Session, d device.Gadget) {
	s.Blank()
	s.Say("DEVICE_TESTING", d.Kind())
	s.Show(renderer.Escape(d.Info()))
	d.PowerOn()

	// Errors are already narrated by the devices
	switch v := d.(type) {
	case *device.Smartphone:
		_ = v.MakeCall("John")
		_, _ = v.TakePhoto()
		_ = v.InstallApp("Instagram")
	case *device.Laptop:
		_ = v.RunSoftware("Visual Studio Code")
		_ = v.SaveFile("my_project.py")
	case *device.Tablet:
		_ = v.Draw("Digital Landscape")
		_ = v.ReadEbook("Go Programming")
	}

	s.Say("BATTERY_CURRENT", d.BatteryLife())
	_ = d.SetBatteryLife(d.BatteryLife() + 2)
	s.Say("BATTERY_CHARGED", d.BatteryLife())

	d.PowerOff()
	s.Blank()
}
