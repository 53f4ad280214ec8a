package ui

import (
	"fmt"
	"strings"

	"chroma-ca/internal/core"
)

type lineStyle uint8

const (
	styleValue lineStyle = iota
	styleTitle
	styleGroup
)

type hudLine struct {
	text  string
	style lineStyle
}

// layout flattens a parameter snapshot and stats lines into panel rows.
func layout(name string, snap core.ParameterSnapshot, stats []string) []hudLine {
	lines := []hudLine{{text: titleOf(name), style: styleTitle}}
	for _, g := range snap.Groups {
		lines = append(lines, hudLine{text: g.Name, style: styleGroup})
		for _, p := range g.Params {
			lines = append(lines, hudLine{text: fmt.Sprintf("  %-18s %s", p.Label, p.Value)})
		}
	}
	if len(stats) > 0 {
		lines = append(lines, hudLine{text: "Generation", style: styleGroup})
		for _, s := range stats {
			lines = append(lines, hudLine{text: "  " + s})
		}
	}
	return lines
}

func titleOf(name string) string {
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
