// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/keytree/avl"
)

// ANSI colours for plain terminal output, set by InitializeColors
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ColorScheme colours the levels of a rendered tree
type ColorScheme struct {
	Root   lipgloss.Color
	Levels []lipgloss.Color // cycled by depth below the root
	Guide  lipgloss.Color   // indentation dots
}

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(name)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Root:   lipgloss.Color("4"),
		Levels: []lipgloss.Color{"6", "2", "5", "3"},
		Guide:  lipgloss.Color("250"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Root:   lipgloss.Color("39"),
		Levels: []lipgloss.Color{"205", "46", "214", "141"},
		Guide:  lipgloss.Color("240"),
	}
}

// InitializeColors detects terminal mode and sets up the tree palette and
// the ANSI colours
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	// Darker colours on light terminals, brighter ones on dark terminals
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

// StyleLevel returns the style for keys at depth
func StyleLevel(scheme *ColorScheme, depth int) lipgloss.Style {
	if depth == 0 || len(scheme.Levels) == 0 {
		return lipgloss.NewStyle().Foreground(scheme.Root).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(scheme.Levels[(depth-1)%len(scheme.Levels)])
}

// styledRender draws the layout sideways like avl.Tree.RenderIndent, with
// dotted indentation and keys coloured by depth.
func styledRender(lines []avl.Line[string], indent int, scheme *ColorScheme) string {
	guide := lipgloss.NewStyle().Foreground(scheme.Guide)
	pad := strings.Repeat(" ", max(indent-1, 0))

	var b strings.Builder
	for _, line := range lines {
		if line.Depth > 0 {
			b.WriteString(guide.Render(strings.Repeat("·"+pad, line.Depth)))
		}
		b.WriteString(StyleLevel(scheme, line.Depth).Render(line.Key))
		b.WriteByte('\n')
	}
	return b.String()
}
