// Package state holds the console session shared by the demonstrations.
package state

import (
	"context"
	"strings"

	"oopdemo/pkg/game/locale"
	"oopdemo/pkg/game/renderer"
)

// DefaultRuleWidth is the width of section rules when none is configured.
const DefaultRuleWidth = 60

// Session narrates to a renderer through a message catalog. Entities
// constructed with a Session as their narrator print through it.
type Session struct {
	Renderer  renderer.Renderer
	Catalog   *locale.Catalog
	RuleWidth int

	Messages []string // most recent lines, oldest first
}

// NewSession creates a session. A nil catalog means the built-in one.
func NewSession(r renderer.Renderer, c *locale.Catalog) *Session {
	if c == nil {
		c = locale.Default()
	}
	return &Session{
		Renderer:  r,
		Catalog:   c,
		RuleWidth: DefaultRuleWidth,
		Messages:  make([]string, 0),
	}
}

// T translates key without printing it
func (s *Session) T(key string, args ...any) string {
	return s.Catalog.Get(key, args...)
}

// Say translates key, resolves markup and prints the line. Braces in
// string args are printed literally.
func (s *Session) Say(key string, args ...any) {
	s.Show(s.T(key, escapeArgs(args)...))
}

// Show prints text as is, apart from markup
func (s *Session) Show(text string) {
	formatted := s.Renderer.FormatText("%s", text)
	s.AddMessage(formatted)
	s.Renderer.ShowMessage(formatted)
}

// Blank prints an empty line
func (s *Session) Blank() {
	s.Renderer.ShowMessage("")
}

// Rule prints a line of width copies of char, narrowed to fit the renderer.
// A width of zero uses RuleWidth.
func (s *Session) Rule(char string, width int) {
	if width <= 0 {
		width = s.RuleWidth
	}
	if w := s.Renderer.GetWidth(); w > 0 && width > w {
		width = w
	}
	s.Renderer.ShowMessage(strings.Repeat(char, width))
}

// Ask prints the translated key as a prompt and returns the answer
func (s *Session) Ask(ctx context.Context, key string, args ...any) (string, error) {
	return s.Renderer.Prompt(ctx, s.Renderer.FormatText("%s", s.T(key, escapeArgs(args)...)))
}

func escapeArgs(args []any) []any {
	escaped := make([]any, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case string:
			escaped[i] = renderer.Escape(v)
		case error:
			escaped[i] = renderer.Escape(v.Error())
		default:
			escaped[i] = arg
		}
	}
	return escaped
}

// AddMessage adds a line to the message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 50
	s.Messages = append(s.Messages, msg)

	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}
