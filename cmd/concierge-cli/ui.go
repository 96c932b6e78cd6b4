// Package main provides UI utilities for the concierge CLI.
package main

import (
	"fmt"

	"github.com/fatih/color"
)

// UI provides user-friendly terminal output.
type UI struct {
	jsonMode bool
}

// NewUI creates a new UI instance.
func NewUI(jsonMode bool) *UI {
	return &UI{jsonMode: jsonMode}
}

// Banner prints a session banner.
func (ui *UI) Banner(title string) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgCyan, color.Bold).Printf("== %s ==\n", title)
}

// Heading prints a section heading.
func (ui *UI) Heading(text string) {
	if ui.jsonMode {
		return
	}
	color.New(color.Bold).Println(text)
}

// Prompt prints the input prompt.
func (ui *UI) Prompt() {
	if ui.jsonMode {
		return
	}
	color.New(color.FgGreen).Print("you> ")
}

// Answer prints the composed answer.
func (ui *UI) Answer(text string) {
	if ui.jsonMode {
		return
	}
	fmt.Println(text)
}

// Confidence prints the confidence score.
func (ui *UI) Confidence(confidence float64) {
	if ui.jsonMode {
		return
	}
	color.New(color.Faint).Printf("confidence: %.0f%%\n", confidence*100)
}

// Source prints one ranked source line.
func (ui *UI) Source(rank int, source, category string, relevance float64) {
	if ui.jsonMode {
		return
	}
	fmt.Printf("  %d. %s [%s] (%.2f)\n", rank, source, category, relevance)
}

// Action prints one suggested action.
func (ui *UI) Action(action string) {
	if ui.jsonMode {
		return
	}
	color.New(color.FgYellow).Printf("  → %s\n", action)
}
