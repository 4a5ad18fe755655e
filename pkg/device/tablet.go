package device

import (
	"fmt"

	"oopdemo/pkg/engine/console"
)

// Tablet is a Device for drawing and reading.
type Tablet struct {
	*Device

	ScreenInches float64
	HasStylus    bool

	drawings []string
}

// NewTablet creates a switched-off tablet
func NewTablet(n console.Narrator, s Spec, screenInches float64, hasStylus bool) *Tablet {
	return &Tablet{
		Device:       NewDevice(n, s),
		ScreenInches: screenInches,
		HasStylus:    hasStylus,
	}
}

// Kind returns "Tablet"
func (t *Tablet) Kind() string {
	return "Tablet"
}

// Draw creates artwork. Only stylus drawings are kept; finger drawings are
// narrated and discarded.
func (t *Tablet) Draw(artwork string) error {
	if err := t.requirePower("TABLET_DRAW_DENIED"); err != nil {
		return err
	}
	if !t.HasStylus {
		t.say("TABLET_DRAW_FINGER", artwork)
		return nil
	}
	t.drawings = append(t.drawings, artwork)
	t.say("TABLET_DRAW_STYLUS", artwork)
	return nil
}

// Drawings returns a copy of the kept drawings
func (t *Tablet) Drawings() []string {
	return append([]string(nil), t.drawings...)
}

// ReadEbook opens title on the tablet screen
func (t *Tablet) ReadEbook(title string) error {
	if err := t.requirePower("TABLET_READ_DENIED"); err != nil {
		return err
	}
	t.say("TABLET_READING", title, t.ScreenInches)
	return nil
}

// Info extends the device summary with screen and stylus
func (t *Tablet) Info() string {
	stylus := "No Stylus"
	if t.HasStylus {
		stylus = "With Stylus"
	}
	return fmt.Sprintf("%s - Screen: %g\" - %s", t.Device.Info(), t.ScreenInches, stylus)
}
