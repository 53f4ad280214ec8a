package ui

import (
	"strings"
	"testing"

	"chroma-ca/internal/core"
)

func TestLayout(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Rewards", Params: []core.Parameter{{Label: "Win reward", Value: "3"}}},
	}}
	lines := layout("arena", snap, []string{"generation 4"})
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}
	if lines[0].text != "Arena" || lines[0].style != styleTitle {
		t.Fatalf("title = %+v", lines[0])
	}
	if lines[1].style != styleGroup || !strings.Contains(lines[2].text, "Win reward") || !strings.HasSuffix(lines[2].text, " 3") {
		t.Fatalf("parameter rows = %+v %+v", lines[1], lines[2])
	}
	if lines[3].text != "Generation" || lines[4].text != "  generation 4" {
		t.Fatalf("stats rows = %+v %+v", lines[3], lines[4])
	}
}

func TestLayoutWithoutProviders(t *testing.T) {
	lines := layout("", core.ParameterSnapshot{}, nil)
	if len(lines) != 1 || lines[0].text != "Parameters" {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestOverlayToggle(t *testing.T) {
	var s overlayState
	s.toggle(maskScore)
	s.toggle(maskSaturation)
	s.toggle(maskSaturation)
	if !s.showScore || s.showSaturation {
		t.Fatalf("state = %+v", s)
	}
}
