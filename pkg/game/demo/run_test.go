package demo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oopdemo/pkg/engine/input"
	"oopdemo/pkg/game/renderer"
	"oopdemo/pkg/game/renderer/tui"
	"oopdemo/pkg/game/state"
)

type fixedRand int

func (f fixedRand) Intn(int) int { return int(f) }

func newTestSession(in string) (*state.Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	r := tui.New(out, input.NewReader(strings.NewReader(in)), false)
	r.Init()
	return state.NewSession(r, nil), out
}

func TestRun_DeclineInteractive(t *testing.T) {
	s, out := newTestSession("n\n")

	err := Run(context.Background(), s, Options{Rand: fixedRand(1)})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "GO OOP MASTERCLASS")
	assert.Contains(t, text, "ASSIGNMENT 1: DEVICE DEMONSTRATION")
	assert.Contains(t, text, "ASSIGNMENT 2: POLYMORPHISM DEMONSTRATION")
	assert.Contains(t, text, "Would you like to try the interactive demo? (y/n): ")
	assert.NotContains(t, text, "INTERACTIVE DEMO\n")
	assert.Contains(t, text, "🎉 CONGRATULATIONS! 🎉")
	assert.NotContains(t, text, "Demo interrupted")
}

func TestRun_AcceptInteractive(t *testing.T) {
	s, out := newTestSession("Y\n2\n3\n")

	require.NoError(t, Run(context.Background(), s, Options{Rand: fixedRand(1)}))

	text := out.String()
	assert.Contains(t, text, "🚗 Your car: Honda Civic")
	assert.Contains(t, text, "👋 Thanks for trying the OOP demo!")
	assert.True(t, strings.Index(text, "Thanks for trying") < strings.Index(text, "CONGRATULATIONS"))
}

func TestRun_OnlyYAccepts(t *testing.T) {
	for _, answer := range []string{"yes", " y", "y ", "ok", ""} {
		s, out := newTestSession(answer + "\n3\n")

		require.NoError(t, Run(context.Background(), s, Options{Rand: fixedRand(1)}))

		assert.NotContains(t, out.String(), "Thanks for trying the OOP demo!", "answer %q", answer)
		assert.Contains(t, out.String(), "CONGRATULATIONS", "answer %q", answer)
	}
}

func TestRun_ModesSkipPrompt(t *testing.T) {
	s, out := newTestSession("")
	require.NoError(t, Run(context.Background(), s, Options{Interactive: InteractiveNever}))
	assert.NotContains(t, out.String(), "(y/n)")
	assert.Contains(t, out.String(), "CONGRATULATIONS")

	s, out = newTestSession("3\n")
	require.NoError(t, Run(context.Background(), s, Options{Interactive: InteractiveAlways}))
	assert.NotContains(t, out.String(), "(y/n)")
	assert.Contains(t, out.String(), "Thanks for trying the OOP demo!")
}

func TestRun_InputEndsDuringSession(t *testing.T) {
	s, out := newTestSession("y\n1\n")

	err := Run(context.Background(), s, Options{Rand: fixedRand(1)})

	require.NoError(t, err, "running out of input ends the program normally")
	assert.Contains(t, out.String(), "👋 Demo interrupted. See you next time!")
	assert.NotContains(t, out.String(), "CONGRATULATIONS")
}

func TestRun_Interrupted(t *testing.T) {
	s, out := newTestSession("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, Run(ctx, s, Options{}))

	text := out.String()
	assert.Contains(t, text, "Demo interrupted")
	assert.NotContains(t, text, "POLYMORPHISM DEMONSTRATION", "stops after the first section")
}

// failingRenderer panics on the first prompt.
type failingRenderer struct {
	renderer.Renderer
}

func (failingRenderer) Prompt(context.Context, string) (string, error) {
	panic("console went away")
}

func TestRun_UnexpectedFailureIsReported(t *testing.T) {
	out := &bytes.Buffer{}
	plain := tui.New(out, input.NewReader(strings.NewReader("")), false)
	plain.Init()
	s := state.NewSession(failingRenderer{Renderer: plain}, nil)

	err := Run(context.Background(), s, Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "console went away")
	assert.Contains(t, out.String(), "❌ Unexpected error: panic: console went away")
}

func TestReport(t *testing.T) {
	s, out := newTestSession("")

	assert.NoError(t, report(s, nil))
	assert.NoError(t, report(s, fmt.Errorf("wrapped: %w", io.EOF)))
	assert.Contains(t, out.String(), "Demo interrupted")

	boom := errors.New("boom")
	assert.ErrorIs(t, report(s, boom), boom)
	assert.Contains(t, out.String(), "Unexpected error: boom")
}

func TestParseInteractivity(t *testing.T) {
	testCases := []struct {
		in       string
		expected Interactivity
		wantErr  bool
	}{
		{in: "", expected: InteractiveAsk},
		{in: "ask", expected: InteractiveAsk},
		{in: " Always ", expected: InteractiveAlways},
		{in: "never", expected: InteractiveNever},
		{in: "sometimes", expected: InteractiveAsk, wantErr: true},
	}

	for _, tc := range testCases {
		got, err := ParseInteractivity(tc.in)
		assert.Equal(t, tc.expected, got, tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
		} else {
			assert.NoError(t, err, tc.in)
		}
	}
}
