// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Interactive operator session: a setup form for the machine settings
// followed by a line-at-a-time encipher loop. This is the tool's
// original workflow; the batch encrypt/decrypt commands exist for
// scripting.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rotorwerk/rotorwerk/pkg/enigma"
	"github.com/rotorwerk/rotorwerk/pkg/keyfile"
	"github.com/rotorwerk/rotorwerk/pkg/ux"
)

func runSession(cmd *cobra.Command, args []string) {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	sheet, err := resolveSheet()
	if err != nil {
		fail(err)
	}

	// Without a key sheet on the command line, a terminal operator
	// picks the settings in a form, prefilled from the flag defaults.
	if interactive && keyPath == "" {
		if err := runSetupForm(sheet); err != nil {
			fail(err)
		}
	}

	cfg, err := sheet.Config()
	if err != nil {
		fail(err)
	}
	machine, err := enigma.New(cfg)
	if err != nil {
		fail(err)
	}
	if saveKeyPath != "" {
		if err := keyfile.Save(saveKeyPath, sheet); err != nil {
			fail(err)
		}
		ux.Success("key sheet written to %s", saveKeyPath)
	}

	sessionLog := logger.With("session_id", uuid.NewString())
	sessionLog.Info("session started", "windows", keyfile.FormatWindows(machine.Positions()))
	defer sessionLog.Info("session ended")

	if !interactive {
		runPipedSession(machine)
		return
	}

	model := newSessionModel(machine)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		fail(fmt.Errorf("session: %w", err))
	}
}

// runSetupForm collects machine settings in place. Field validation
// here is a courtesy; the sheet and engine validate again.
func runSetupForm(sheet *keyfile.Sheet) error {
	rotors := sheet.Rotors
	if len(rotors) != 3 {
		rotors = []string{"I", "II", "III"}
	}
	left, middle, right := rotors[0], rotors[1], rotors[2]
	reflector := sheet.Reflector
	if reflector == "" {
		reflector = "B"
	}
	positions, rings := sheet.Positions, sheet.Rings
	plugs := strings.Join(sheet.Plugboard, " ")

	rotorOptions := func() []huh.Option[string] {
		return huh.NewOptions("I", "II", "III", "IV", "V")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Left rotor").Options(rotorOptions()...).Value(&left),
			huh.NewSelect[string]().Title("Middle rotor").Options(rotorOptions()...).Value(&middle),
			huh.NewSelect[string]().Title("Right rotor").Options(rotorOptions()...).Value(&right),
			huh.NewSelect[string]().Title("Reflector").Options(huh.NewOptions("B", "C")...).Value(&reflector),
		),
		huh.NewGroup(
			huh.NewInput().Title("Start positions").Placeholder("AAA").
				CharLimit(3).Validate(validateWindows).Value(&positions),
			huh.NewInput().Title("Ring settings").Placeholder("AAA").
				CharLimit(3).Validate(validateWindows).Value(&rings),
			huh.NewInput().Title("Plugboard pairs").Placeholder("AB CD EF").
				Description("Up to 13 two-letter pairs, blank for none").Value(&plugs),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	sheet.Rotors = []string{left, middle, right}
	sheet.Reflector = reflector
	sheet.Positions = strings.ToUpper(positions)
	sheet.Rings = strings.ToUpper(rings)
	sheet.Plugboard = splitList(plugs)
	return nil
}

// validateWindows accepts exactly three letters (or blank for AAA).
func validateWindows(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != 3 {
		return fmt.Errorf("need three letters")
	}
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("letters A-Z only")
		}
	}
	return nil
}

// runPipedSession is the non-terminal fallback: encipher stdin line
// by line, preserving message boundaries.
func runPipedSession(machine *enigma.Machine) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(machine.Process(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		fail(fmt.Errorf("read stdin: %w", err))
	}
}

// =============================================================================
// Bubble Tea Loop
// =============================================================================

type exchange struct {
	plain  string
	cipher string
}

// sessionModel is the interactive loop: one text input, the exchange
// transcript, and the live rotor windows read from the machine.
type sessionModel struct {
	machine *enigma.Machine
	input   textinput.Model
	history []exchange
}

func newSessionModel(machine *enigma.Machine) sessionModel {
	input := textinput.New()
	input.Placeholder = "message (blank or /quit to end)"
	input.Prompt = "> "
	input.Focus()
	return sessionModel{machine: machine, input: input}
}

func (m sessionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line == "" || line == "/quit" {
				return m, tea.Quit
			}
			m.history = append(m.history, exchange{
				plain:  line,
				cipher: m.machine.Process(line),
			})
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m sessionModel) View() string {
	var b strings.Builder

	b.WriteString(ux.Styles.Title.Render("rotorwerk session"))
	b.WriteString("\n\n")

	for _, x := range m.history {
		b.WriteString(ux.Styles.Muted.Render(x.plain))
		b.WriteString("\n")
		b.WriteString(ux.Styles.Highlight.Render(x.cipher))
		b.WriteString("\n\n")
	}

	b.WriteString(ux.Windows(keyfile.FormatWindows(m.machine.Positions())))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(ux.Styles.Muted.Render("enter to encipher, esc to quit"))
	b.WriteString("\n")
	return b.String()
}
