package menu

import (
	"context"

	"oopdemo/pkg/device"
	"oopdemo/pkg/game/state"
	"oopdemo/pkg/vehicle"
)

// InteractiveAction represents the action type for interactive menu items.
type InteractiveAction int

const (
	InteractiveActionPhone InteractiveAction = iota
	InteractiveActionCar
	InteractiveActionExit
)

// InteractiveItem represents a menu item in the interactive demo.
type InteractiveItem struct {
	Label  string
	Action InteractiveAction
}

// GetLabel returns the display label for this menu item.
func (m *InteractiveItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *InteractiveItem) IsSelectable() bool {
	return true
}

// InteractiveHandler lets the user drive a smartphone and a car.
type InteractiveHandler struct {
	session *state.Session

	Phone *device.Smartphone
	Car   *vehicle.Car
}

// NewInteractiveHandler builds the sample phone and car narrating to s.
// rng may be nil.
func NewInteractiveHandler(s *state.Session, rng device.Rand) *InteractiveHandler {
	return &InteractiveHandler{
		session: s,
		Phone: device.NewSmartphone(s, device.Spec{
			Brand:        "Google",
			Model:        "Pixel 8",
			Price:        700,
			BatteryHours: 24,
		}, 6.2, 50, device.WithRand(rng)),
		Car: vehicle.NewCar(s, "Honda Civic", 180, "Gasoline", 4),
	}
}

// Items returns the menu entries in display order
func (h *InteractiveHandler) Items() []MenuItem {
	return []MenuItem{
		&InteractiveItem{Label: "MENU_CONTROL_PHONE", Action: InteractiveActionPhone},
		&InteractiveItem{Label: "MENU_CONTROL_CAR", Action: InteractiveActionCar},
		&InteractiveItem{Label: "MENU_EXIT", Action: InteractiveActionExit},
	}
}

// OnActivate runs the chosen routine
func (h *InteractiveHandler) OnActivate(item MenuItem, index int) bool {
	it, ok := item.(*InteractiveItem)
	if !ok {
		return false
	}

	switch it.Action {
	case InteractiveActionPhone:
		h.Phone.PowerOn()
		_ = h.Phone.MakeCall("Mom")
		if photo, err := h.Phone.TakePhoto(); err == nil {
			h.session.Say("PHOTO_SAVED", photo)
		}
	case InteractiveActionCar:
		h.session.Say("CAR_STATUS", h.Car.Info())
		h.Car.Move()
		h.Car.Honk()
		h.Car.Stop()
	case InteractiveActionExit:
		h.session.Say("INTERACTIVE_FAREWELL")
		return true
	}
	return false
}

// OnInvalid reports an unrecognized choice
func (h *InteractiveHandler) OnInvalid(string) {
	h.session.Say("INVALID_CHOICE")
}

// OnExit is called when the menu is exited.
func (h *InteractiveHandler) OnExit() {}

// GetTitle returns the menu title.
func (h *InteractiveHandler) GetTitle() string {
	return "INTERACTIVE_TITLE"
}

// GetInstructions returns the menu instructions.
func (h *InteractiveHandler) GetInstructions() string {
	return "MENU_INSTRUCTIONS"
}

// RunInteractive runs the interactive demo until the user exits or input ends.
func RunInteractive(ctx context.Context, s *state.Session, rng device.Rand) error {
	h := NewInteractiveHandler(s, rng)
	return RunMenu(ctx, s, h.Items(), h)
}
