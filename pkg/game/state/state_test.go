package state

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oopdemo/pkg/engine/input"
	"oopdemo/pkg/game/renderer/tui"
)

func newTestSession(in string) (*Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	r := tui.New(out, input.NewReader(strings.NewReader(in)), false)
	r.Init()
	return NewSession(r, nil), out
}

func TestSay_TranslatesAndFormats(t *testing.T) {
	s, out := newTestSession("")

	s.Say("DEVICE_POWERED_ON", "Google", "Pixel 8")

	assert.Equal(t, "🔋 Google Pixel 8 is now ON!\n", out.String())
	assert.Equal(t, []string{"🔋 Google Pixel 8 is now ON!"}, s.Messages)
}

func TestSay_BracesInValues(t *testing.T) {
	s, out := newTestSession("")

	s.Say("APP_INSTALLED", "notes{v2}", "Google Pixel }8{")

	assert.Equal(t, "📱 'notes{v2}' installed on Google Pixel }8{!\n", out.String())
}

func TestShow_TextWithPercent(t *testing.T) {
	s, out := newTestSession("")

	s.Show("battery at 50%")

	assert.Equal(t, "battery at 50%\n", out.String())
}

func TestRule(t *testing.T) {
	s, out := newTestSession("")

	s.Rule("=", 0)
	s.Rule("-", 5)
	s.Rule("=", 500)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("=", DefaultRuleWidth), lines[0])
	assert.Equal(t, "-----", lines[1])
	assert.Len(t, lines[2], 80, "clamped to the renderer width")
}

func TestAsk(t *testing.T) {
	s, out := newTestSession("y\n")

	answer, err := s.Ask(context.Background(), "MENU_PROMPT", 3)

	require.NoError(t, err)
	assert.Equal(t, "y", answer)
	assert.Equal(t, "Enter choice (1-3): ", out.String())
}

func TestAddMessage_KeepsMostRecent(t *testing.T) {
	s, _ := newTestSession("")

	for i := 0; i < 60; i++ {
		s.AddMessage(strings.Repeat("x", i))
	}

	assert.Len(t, s.Messages, 50)
	assert.Equal(t, strings.Repeat("x", 59), s.Messages[49])
}
