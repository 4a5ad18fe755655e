// Package device models digital gadgets. Device carries the state every
// gadget shares; Smartphone, Laptop and Tablet embed it and add their own.
package device

import (
	"errors"
	"fmt"

	"oopdemo/pkg/engine/console"
)

var (
	ErrPoweredOff      = errors.New("device is powered off")
	ErrNegativeBattery = errors.New("battery life cannot be negative")
	ErrStorageFull     = errors.New("not enough storage space")
)

// Gadget is the capability set shared by every device kind.
type Gadget interface {
	Kind() string
	Info() string
	IsOn() bool
	PowerOn()
	PowerOff()
	InstallApp(name string) error
	Apps() []string
	BatteryLife() float64
	SetBatteryLife(hours float64) error
}

// Spec holds the constructor values common to all devices.
type Spec struct {
	Brand        string
	Model        string
	Price        float64
	BatteryHours float64
}

// Device is a powered gadget with installable apps.
// Battery life is only reachable through BatteryLife and SetBatteryLife.
type Device struct {
	Brand string
	Model string
	Price float64

	battery  float64
	on       bool
	apps     []string
	narrator console.Narrator
}

// NewDevice creates a device that is switched off and has no apps.
// A negative battery rating is rejected the same way SetBatteryLife rejects it,
// leaving the battery at zero.
func NewDevice(n console.Narrator, s Spec) *Device {
	d := &Device{
		Brand:    s.Brand,
		Model:    s.Model,
		Price:    s.Price,
		narrator: console.OrDiscard(n),
	}
	_ = d.SetBatteryLife(s.BatteryHours)
	return d
}

// Kind returns the device kind shown in demo headers
func (d *Device) Kind() string {
	return "Device"
}

// Name returns brand and model
func (d *Device) Name() string {
	return d.Brand + " " + d.Model
}

// IsOn reports the power state
func (d *Device) IsOn() bool {
	return d.on
}

// BatteryLife returns the battery life in hours
func (d *Device) BatteryLife() float64 {
	return d.battery
}

// SetBatteryLife replaces the battery life. Negative values are refused and
// the previous value is kept.
func (d *Device) SetBatteryLife(hours float64) error {
	if hours < 0 {
		d.say("BATTERY_NEGATIVE")
		return ErrNegativeBattery
	}
	d.battery = hours
	return nil
}

// PowerOn switches the device on
func (d *Device) PowerOn() {
	if d.on {
		d.say("DEVICE_ALREADY_ON", d.Brand, d.Model)
		return
	}
	d.on = true
	d.say("DEVICE_POWERED_ON", d.Brand, d.Model)
}

// PowerOff switches the device off
func (d *Device) PowerOff() {
	if !d.on {
		d.say("DEVICE_ALREADY_OFF", d.Brand, d.Model)
		return
	}
	d.on = false
	d.say("DEVICE_POWERED_OFF", d.Brand, d.Model)
}

// InstallApp adds name to the installed apps. Duplicates are allowed.
func (d *Device) InstallApp(name string) error {
	if !d.on {
		d.say("APP_INSTALL_DENIED")
		return ErrPoweredOff
	}
	d.apps = append(d.apps, name)
	d.say("APP_INSTALLED", name, d.Model)
	return nil
}

// Apps returns a copy of the installed apps in install order
func (d *Device) Apps() []string {
	return append([]string(nil), d.apps...)
}

// Info returns the summary line. Device kinds extend it with their own fields.
func (d *Device) Info() string {
	status := "OFF"
	if d.on {
		status = "ON"
	}
	return fmt.Sprintf("🔷 %s %s - $%g - Battery: %gh - Status: %s", d.Brand, d.Model, d.Price, d.battery, status)
}

// requirePower narrates deniedKey and returns ErrPoweredOff when the device is off.
func (d *Device) requirePower(deniedKey string) error {
	if d.on {
		return nil
	}
	d.say(deniedKey)
	return ErrPoweredOff
}

func (d *Device) say(key string, args ...any) {
	d.narrator.Say(key, args...)
}

var (
	_ Gadget = (*Device)(nil)
	_ Gadget = (*Smartphone)(nil)
	_ Gadget = (*Laptop)(nil)
	_ Gadget = (*Tablet)(nil)
)
