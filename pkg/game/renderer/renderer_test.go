package renderer

import (
	"fmt"
	"testing"
)

func TestApplyMarkup(t *testing.T) {
	tag := func(text string, s TextStyle) string { return fmt.Sprintf("<%d:%s>", s, text) }

	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"DEVICE{Pixel 8} is on", fmt.Sprintf("<%d:Pixel 8> is on", StyleDevice)},
		{"ITEM{a.txt} and DENIED{no!}", fmt.Sprintf("<%d:a.txt> and <%d:no!>", StyleItem, StyleDenied)},
		{"UNKNOWN{x} stays", "UNKNOWN{x} stays"},
		{"TITLE{}", fmt.Sprintf("<%d:>", StyleTitle)},
	}

	for _, tt := range tests {
		if got := ApplyMarkup(tt.in, tag); got != tt.want {
			t.Errorf("ApplyMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	got := StripMarkup("🚗 VEHICLE{Honda Civic}: BEEP BEEP! SUBTLE{(quiet)}")
	want := "🚗 Honda Civic: BEEP BEEP! (quiet)"
	if got != want {
		t.Errorf("StripMarkup() = %q, want %q", got, want)
	}
}

func TestApplyMarkup_EscapedBraces(t *testing.T) {
	tag := func(text string, s TextStyle) string { return fmt.Sprintf("<%d:%s>", s, text) }
	msg := fmt.Sprintf("Saved ITEM{%s} on DEVICE{%s}", Escape("notes{v2}.txt"), Escape("}{"))

	want := fmt.Sprintf("Saved <%d:notes{v2}.txt> on <%d:}{>", StyleItem, StyleDevice)
	if got := ApplyMarkup(msg, tag); got != want {
		t.Errorf("ApplyMarkup() = %q, want %q", got, want)
	}
	if got := StripMarkup(msg); got != "Saved notes{v2}.txt on }{" {
		t.Errorf("StripMarkup() = %q", got)
	}
}
