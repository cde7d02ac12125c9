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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the styling for the explorer
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// explorerModel is the Bubble Tea state of the interactive explorer
type explorerModel struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model
	helpView viewport.Model

	session *Session
	config  *Config

	// State
	showHelp   bool
	status     string
	statusErr  bool
	history    []string // operations entered so far, oldest first
	historyPos int      // len(history) when not recalling

	// Styling
	styles          *Styles
	scheme          *ColorScheme
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

func newExplorerModel(session *Session, config *Config) explorerModel {
	ti := textinput.New()
	ti.Placeholder = "insert 5 3 8, remove 3, contains 8, help..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	m := explorerModel{
		input:    ti,
		treeView: viewport.New(0, 0),
		helpView: viewport.New(0, 0),
		session:  session,
		config:   config,
		status:   "Type an operation and press enter",
		styles:   NewStyles(),
		scheme:   GetColorScheme(),
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.toggleHelp()
			return m, nil
		case "ctrl+y":
			listing := strings.Join(m.session.Tree().InOrder(), "\n")
			if err := clipboard.WriteAll(listing); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("copied %d keys to clipboard", m.session.Tree().Size()), false)
			}
			return m, nil
		case "enter":
			m.execInput()
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup", "pgdown":
			if m.showHelp {
				m.helpView, cmd = m.helpView.Update(msg)
			} else {
				m.treeView, cmd = m.treeView.Update(msg)
			}
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execInput runs the operation typed into the input box
func (m *explorerModel) execInput() {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	args, err := splitCommand(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if len(args) == 0 {
		return
	}

	switch strings.ToLower(args[0]) {
	case "help", "?":
		if !m.showHelp {
			m.toggleHelp()
		}
		return
	case "quit", "exit":
		m.setStatus("press esc to quit", false)
		return
	}

	result, err := m.session.Exec(args)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if strings.Contains(result, "\n") {
		// multi-line results (render) are already on screen
		result = "rendered"
	}
	m.setStatus(result, false)
	m.refreshTree()
}

// recall steps through previously entered operations
func (m *explorerModel) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	pos := min(max(m.historyPos+step, 0), len(m.history))
	m.historyPos = pos
	if pos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *explorerModel) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *explorerModel) toggleHelp() {
	m.showHelp = !m.showHelp
	if !m.showHelp {
		return
	}

	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}

	helpTxt := usageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
			helpTxt = rendered
		}
	}
	m.helpView.SetContent(helpTxt)
	m.helpView.GotoTop()
}

// refreshTree redraws the tree viewport from the session
func (m *explorerModel) refreshTree() {
	tree := m.session.Tree()
	if tree.IsEmpty() {
		m.treeView.SetContent("(empty tree)")
		return
	}

	if m.config.Render.Color {
		m.treeView.SetContent(styledRender(tree.Layout(), m.config.Render.Indent, m.scheme))
	} else {
		m.treeView.SetContent(m.session.Render())
	}
}

// updateLayout updates component dimensions
func (m *explorerModel) updateLayout() {
	inputHeight := 3
	viewHeight := m.height - inputHeight - 8 // borders, titles, status and footer
	viewWidth := m.width - 4

	m.input.Width = viewWidth - 4
	m.treeView.Width = viewWidth
	m.treeView.Height = max(viewHeight, 1)
	m.helpView.Width = viewWidth
	m.helpView.Height = max(viewHeight, 1)
}

func (m explorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	boxWidth := m.width - 2

	inputBox := m.styles.BorderFocused.
		Width(boxWidth).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" ⌨  Operation"),
			m.input.View(),
		))

	title := fmt.Sprintf(" 🌳 Tree  %s", m.session.Stats())
	content := m.treeView.View()
	if m.showHelp {
		title = " 📖 Usage"
		content = m.helpView.View()
	}

	viewBox := m.styles.BorderBlurred.
		Width(boxWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			content,
		))

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}
	status := lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(statusStyle.Render(m.status))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		viewBox,
		status,
		m.renderFooter(),
	)
}

// renderFooter renders the key help line
func (m explorerModel) renderFooter() string {
	keys := []string{"enter", "↑/↓", "pgup/pgdn", "f1", "ctrl+y", "esc"}
	descs := []string{"run", "history", "scroll", "usage", "copy keys", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runExplorer starts the Bubble Tea application
func runExplorer(session *Session, config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		newExplorerModel(session, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
