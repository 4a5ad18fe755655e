package device

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"oopdemo/pkg/engine/console"
)

// HDThresholdMP is the camera resolution from which photos are tagged HD.
const HDThresholdMP = 12

// Rand is the randomness a Smartphone needs for photo names.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Smartphone is a Device with a camera and a contact list.
type Smartphone struct {
	*Device

	ScreenInches float64
	CameraMP     int

	contacts []string
	known    mapset.Set[string]
	rng      Rand
}

// PhoneOption configures a Smartphone
type PhoneOption func(*Smartphone)

// WithRand sets the source used for photo name suffixes
func WithRand(r Rand) PhoneOption {
	return func(p *Smartphone) {
		if r != nil {
			p.rng = r
		}
	}
}

// NewSmartphone creates a switched-off smartphone
func NewSmartphone(n console.Narrator, s Spec, screenInches float64, cameraMP int, opts ...PhoneOption) *Smartphone {
	p := &Smartphone{
		Device:       NewDevice(n, s),
		ScreenInches: screenInches,
		CameraMP:     cameraMP,
		known:        mapset.New[string](),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

// Kind returns "Smartphone"
func (p *Smartphone) Kind() string {
	return "Smartphone"
}

// MakeCall calls contact and remembers it. A contact is stored once no
// matter how often it is called.
func (p *Smartphone) MakeCall(contact string) error {
	if err := p.requirePower("PHONE_CALL_DENIED"); err != nil {
		return err
	}
	p.say("PHONE_CALLING", contact, p.Model)
	if !p.known.Has(contact) {
		p.known.Put(contact)
		p.contacts = append(p.contacts, contact)
	}
	return nil
}

// Contacts returns a copy of the contact list in first-call order
func (p *Smartphone) Contacts() []string {
	return append([]string(nil), p.contacts...)
}

// PhotoQuality returns "HD" for cameras of at least HDThresholdMP, "Standard" otherwise.
func (p *Smartphone) PhotoQuality() string {
	if p.CameraMP >= HDThresholdMP {
		return "HD"
	}
	return "Standard"
}

// TakePhoto returns the new photo's file name, <quality>_photo_<1000-9999>.jpg.
// It returns an empty name when the phone is off.
func (p *Smartphone) TakePhoto() (string, error) {
	if err := p.requirePower("PHONE_PHOTO_DENIED"); err != nil {
		return "", err
	}
	quality := p.PhotoQuality()
	p.say("PHONE_PHOTO", quality, p.CameraMP)
	return fmt.Sprintf("%s_photo_%d.jpg", quality, 1000+p.rng.Intn(9000)), nil
}

// Info extends the device summary with screen and camera
func (p *Smartphone) Info() string {
	return fmt.Sprintf("%s - Screen: %g\" - Camera: %dMP", p.Device.Info(), p.ScreenInches, p.CameraMP)
}
