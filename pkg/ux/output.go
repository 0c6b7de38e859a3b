// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the rotorwerk CLI.
//
// All helpers honor the package's plain mode: when the process is not
// attached to a terminal (or the operator asked for machine-readable
// output), text is printed without styling so ciphertext can be piped
// and diffed. Call Init once at startup.
package ux

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Rotorwerk palette - brass, bakelite and signal-lamp amber.
var (
	ColorBrass    = lipgloss.Color("#C9A227") // highlights, titles
	ColorLamp     = lipgloss.Color("#FFD966") // the glow of a lamp panel
	ColorBakelite = lipgloss.Color("#4A3B2A") // borders, muted chrome
	ColorSteel    = lipgloss.Color("#8A8D91") // secondary text
	ColorSuccess  = lipgloss.Color("#5FB376")
	ColorWarning  = lipgloss.Color("#F4D03F")
	ColorError    = lipgloss.Color("#E74C3C")
)

// Styles provides the pre-configured lipgloss styles used across the
// CLI. Prefer the print helpers below; reach for Styles directly when
// composing larger layouts.
var Styles = struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	Box      lipgloss.Style
	ErrorBox lipgloss.Style

	// Windows renders the three rotor window letters the way the
	// operator reads them off the machine lid.
	Windows lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorBrass),
	Subtitle:  lipgloss.NewStyle().Foreground(ColorSteel),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSteel),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorLamp).Bold(true),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBakelite).
		Padding(0, 1),
	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError).
		Padding(0, 1),

	Windows: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorLamp).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBakelite).
		Padding(0, 1),
}

// plain disables all styling. Defaults to true until Init runs, so a
// helper called before setup never emits escape codes by accident.
var plain = true

// Init chooses styled or plain output from the environment: styling
// only when stdout is a terminal and NO_COLOR is unset.
func Init() {
	plain = !isatty.IsTerminal(os.Stdout.Fd()) || os.Getenv("NO_COLOR") != ""
}

// SetPlain overrides the Init decision; the CLI wires this to a
// --plain flag.
func SetPlain(p bool) {
	plain = p
}

// Plain reports whether styling is disabled.
func Plain() bool {
	return plain
}

// render applies a style unless plain mode is on.
func render(style lipgloss.Style, text string) string {
	if plain {
		return text
	}
	return style.Render(text)
}

// Icon provides themed status icons.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconArrow   Icon = "→"
	IconBullet  Icon = "•"
)

// Render returns the icon with its styling, or nothing in plain mode:
// icons are decoration, not data.
func (i Icon) Render() string {
	if plain {
		return ""
	}
	switch i {
	case IconSuccess:
		return Styles.Success.Render(string(i))
	case IconWarning:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return string(i)
	}
}

// Title prints a styled heading.
func Title(text string) {
	fmt.Println(render(Styles.Title, text))
}

// Subtitle prints secondary context under a title.
func Subtitle(text string) {
	fmt.Println(render(Styles.Subtitle, text))
}

// Success prints a confirmation line.
func Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if icon := IconSuccess.Render(); icon != "" {
		msg = icon + " " + msg
	}
	fmt.Println(render(Styles.Success, msg))
}

// Warning prints a cautionary line to stderr.
func Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if icon := IconWarning.Render(); icon != "" {
		msg = icon + " " + msg
	}
	fmt.Fprintln(os.Stderr, render(Styles.Warning, msg))
}

// Error prints a failure line to stderr.
func Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if icon := IconError.Render(); icon != "" {
		msg = icon + " " + msg
	}
	fmt.Fprintln(os.Stderr, render(Styles.Error, msg))
}

// Result prints a program output line (ciphertext, catalog rows).
// Always unstyled content on stdout: results are data.
func Result(text string) {
	fmt.Println(text)
}

// Windows renders three rotor window letters, boxed when styled.
func Windows(letters string) string {
	if plain {
		return letters
	}
	return Styles.Windows.Render(letters)
}
