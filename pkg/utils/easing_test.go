package utils

import (
	"math"
	"testing"
)

func TestEaseOutQuad(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.5, 0.75},
		{1, 1},
	}
	for _, c := range cases {
		if got := EaseOutQuad(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("EaseOutQuad(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		elapsed, total, want float64
	}{
		{0, 400, 0},
		{100, 400, 0.25},
		{500, 400, 1},
		{-10, 400, 0},
		{5, 0, 1},
	}
	for _, c := range cases {
		if got := Progress(c.elapsed, c.total); got != c.want {
			t.Errorf("Progress(%v, %v): got %v, want %v", c.elapsed, c.total, got, c.want)
		}
	}
}
