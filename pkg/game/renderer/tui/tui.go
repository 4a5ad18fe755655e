package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"

	"oopdemo/pkg/engine/input"
	"oopdemo/pkg/engine/terminal"
	"oopdemo/pkg/game/renderer"
)

// MaxWidth caps rule lines on very wide terminals
const MaxWidth = 120

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	in       *input.Reader
	colorful bool

	colorTitle   color.Style
	colorDevice  color.Style
	colorVehicle color.Style
	colorItem    color.Style
	colorDenied  color.Style
	colorSubtle  color.Style
}

// New creates a renderer writing to out and reading from in.
// With colorful unset all markup is printed as plain text.
func New(out io.Writer, in *input.Reader, colorful bool) *TUIRenderer {
	return &TUIRenderer{out: out, in: in, colorful: colorful}
}

// NewStdio creates a renderer on stdout/stdin. Colors are used only when
// stdout is a terminal and colorful is set.
func NewStdio(colorful bool) *TUIRenderer {
	return New(os.Stdout, input.Stdin(), colorful && terminal.IsTerminal())
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorDevice = color.Style{color.FgBlue, color.OpBold}
	t.colorVehicle = color.Style{color.FgGreen, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if !t.colorful {
		return text
	}
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleDevice:
		return t.colorDevice.Sprint(text)
	case renderer.StyleVehicle:
		return t.colorVehicle.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return renderer.ApplyMarkup(msg, t.StyleText)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// Prompt prints msg and waits for a line of input
func (t *TUIRenderer) Prompt(ctx context.Context, msg string) (string, error) {
	fmt.Fprint(t.out, msg)
	line, err := t.in.ReadLine(ctx)
	if err != nil {
		// Keep whatever follows off the prompt line
		fmt.Fprintln(t.out)
	}
	return line, err
}

// GetWidth returns the terminal width, capped at MaxWidth. Without a
// terminal the width is terminal.DefaultWidth.
func (t *TUIRenderer) GetWidth() int {
	if !t.colorful {
		return terminal.DefaultWidth
	}
	w := terminal.GetWidth()
	if w > MaxWidth {
		w = MaxWidth
	}
	return w
}

var _ renderer.Renderer = (*TUIRenderer)(nil)
