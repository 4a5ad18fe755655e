// Package demo sequences the device and vehicle demonstrations and the
// optional interactive session.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"oopdemo/pkg/device"
	"oopdemo/pkg/engine/input"
	"oopdemo/pkg/game/menu"
	"oopdemo/pkg/game/state"
)

// Interactivity decides whether the interactive session runs.
type Interactivity string

const (
	InteractiveAsk    Interactivity = "ask"
	InteractiveAlways Interactivity = "always"
	InteractiveNever  Interactivity = "never"
)

// ParseInteractivity validates a configured interactivity. Empty means ask.
func ParseInteractivity(v string) (Interactivity, error) {
	switch Interactivity(strings.ToLower(strings.TrimSpace(v))) {
	case "", InteractiveAsk:
		return InteractiveAsk, nil
	case InteractiveAlways:
		return InteractiveAlways, nil
	case InteractiveNever:
		return InteractiveNever, nil
	}
	return InteractiveAsk, fmt.Errorf("unknown interactive mode %q (want ask, always or never)", v)
}

// Options controls a Run.
type Options struct {
	Interactive Interactivity
	// Rand names photos; nil means a time-seeded source
	Rand device.Rand
}

// bannerRuleWidth is the width of the rule under the opening banner
const bannerRuleWidth = 70

// Run plays the whole program. Interruption (ctx cancelled or input
// exhausted) ends it with a farewell and a nil error. Any other failure,
// panics included, is reported on the session and returned for logging;
// callers should still exit normally.
func Run(ctx context.Context, s *state.Session, opts Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		err = report(s, err)
	}()

	s.Say("BANNER_TITLE")
	s.Say("BANNER_SUBTITLE")
	s.Rule("=", bannerRuleWidth)

	DemonstrateDevices(s, opts.Rand)
	if err := ctx.Err(); err != nil {
		return err
	}

	DemonstratePolymorphism(s)
	if err := ctx.Err(); err != nil {
		return err
	}

	play, err := wantsInteractive(ctx, s, opts.Interactive)
	if err != nil {
		return fmt.Errorf("interactive prompt: %w", err)
	}
	if play {
		if err := menu.RunInteractive(ctx, s, opts.Rand); err != nil {
			return fmt.Errorf("interactive session: %w", err)
		}
	}

	congratulate(s)
	return nil
}

func wantsInteractive(ctx context.Context, s *state.Session, mode Interactivity) (bool, error) {
	switch mode {
	case InteractiveAlways:
		return true, nil
	case InteractiveNever:
		return false, nil
	}

	s.Blank()
	answer, err := s.Ask(ctx, "ASK_INTERACTIVE")
	if err != nil {
		return false, err
	}
	return input.Parse(answer).Action == input.ActionConfirm, nil
}

func congratulate(s *state.Session) {
	s.Blank()
	s.Say("CONGRATS_TITLE")
	s.Say("CONGRATS_INTRO")
	for _, key := range []string{
		"CONGRATS_TYPES",
		"CONGRATS_COMPOSITION",
		"CONGRATS_ENCAPSULATION",
		"CONGRATS_POLYMORPHISM",
		"CONGRATS_PATTERNS",
	} {
		s.Say(key)
	}
}

// IsInterrupt reports whether err means the user ended the program early.
func IsInterrupt(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

// report narrates err and returns what the caller should still see.
func report(s *state.Session, err error) error {
	switch {
	case err == nil:
		return nil
	case IsInterrupt(err):
		s.Blank()
		s.Say("INTERRUPTED")
		return nil
	default:
		s.Blank()
		s.Say("UNEXPECTED_ERROR", err)
		return err
	}
}
