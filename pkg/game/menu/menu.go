// Package menu provides a numbered console menu loop.
package menu

import (
	"context"

	"oopdemo/pkg/engine/input"
	"oopdemo/pkg/game/state"
)

// titleRuleWidth is the width of the rule under a menu title
const titleRuleWidth = 40

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the catalog key of the display label.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
}

// MenuHandler handles menu item activation.
type MenuHandler interface {
	// OnActivate is called when an item is chosen.
	// Returns true if the menu should close.
	OnActivate(item MenuItem, index int) (shouldClose bool)
	// OnInvalid is called with the raw line when it names no selectable item.
	OnInvalid(raw string)
	// OnExit is called when the menu closes normally.
	OnExit()
	// GetTitle returns the catalog key of the menu title, or "" for none.
	GetTitle() string
	// GetInstructions returns the catalog key shown above the items.
	GetInstructions() string
}

// RunMenu shows items until the handler asks to close. Input errors,
// including interruption through ctx, end the menu and are returned as is.
func RunMenu(ctx context.Context, s *state.Session, items []MenuItem, handler MenuHandler) error {
	if title := handler.GetTitle(); title != "" {
		s.Blank()
		s.Say(title)
		s.Rule("=", titleRuleWidth)
	}

	for {
		s.Blank()
		s.Say(handler.GetInstructions())
		for i, item := range items {
			s.Say("MENU_ITEM", i+1, s.T(item.GetLabel()))
		}

		line, err := s.Ask(ctx, "MENU_PROMPT", len(items))
		if err != nil {
			return err
		}

		intent := input.Parse(line)
		if intent.Action != input.ActionSelect || intent.Index >= len(items) || !items[intent.Index].IsSelectable() {
			handler.OnInvalid(line)
			continue
		}

		if handler.OnActivate(items[intent.Index], intent.Index) {
			handler.OnExit()
			return nil
		}
	}
}
