package utils

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#e74c3c")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	want := color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = ParseHexColor("00000080")
	if err != nil || got.A != 0x80 {
		t.Errorf("8-digit form: got (%v, %v)", got, err)
	}

	if _, err := ParseHexColor("#abc"); err == nil {
		t.Error("short form should be rejected")
	}
	if _, err := ParseHexColor("#zzzzzz"); err == nil {
		t.Error("non-hex digits should be rejected")
	}
}
