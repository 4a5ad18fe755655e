package renderer

import "context"

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleDevice
	StyleVehicle
	StyleItem
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for console output backends.
type Renderer interface {
	// Init prepares the renderer (colors, etc.)
	Init()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message and resolves its markup
	FormatText(msg string, args ...any) string

	// ShowMessage displays one line to the user
	ShowMessage(msg string)

	// Prompt displays msg without a line break and blocks for one line of input.
	// It returns ctx.Err() if ctx is done first, io.EOF when input is exhausted.
	Prompt(ctx context.Context, msg string) (string, error)

	// GetWidth returns the usable line width
	GetWidth() int
}
