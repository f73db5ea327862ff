package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/corpeningc/jfix/internal/conflict"
)

type ConflictViewerModel struct {
	filePath string
	blocks   []conflict.Block
	viewport viewport.Model
	ready    bool

	// Styles
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	oursStyle   lipgloss.Style
	theirsStyle lipgloss.Style
	labelStyle  lipgloss.Style
	helpStyle   lipgloss.Style
}

func NewConflictViewerModel(filePath string, blocks []conflict.Block) ConflictViewerModel {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle()

	return ConflictViewerModel{
		filePath: filePath,
		blocks:   blocks,
		viewport: vp,

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")),

		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),

		oursStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),

		theirsStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

func (m ConflictViewerModel) Init() tea.Cmd {
	return nil
}

func (m ConflictViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 4 // Title + help + borders
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-headerHeight)
			m.viewport.Style = lipgloss.NewStyle()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - headerHeight
		}

		m.viewport.SetContent(m.formatBlocks())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit

		case "j", "down":
			m.viewport.LineDown(1)

		case "k", "up":
			m.viewport.LineUp(1)

		case "d", "ctrl+d":
			m.viewport.HalfViewDown()

		case "u", "ctrl+u":
			m.viewport.HalfViewUp()

		case "g", "home":
			m.viewport.GotoTop()

		case "G", "end":
			m.viewport.GotoBottom()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ConflictViewerModel) View() string {
	if !m.ready {
		return "Scanning conflicts..."
	}

	var sections []string

	title := m.titleStyle.Render(fmt.Sprintf("Conflicts in %s (%d blocks)", m.filePath, len(m.blocks)))
	sections = append(sections, title)

	sections = append(sections, m.viewport.View())

	help := m.helpStyle.Render("j/k: scroll | d/u: half page | g/G: top/bottom | q: quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ConflictViewerModel) formatBlocks() string {
	var b strings.Builder

	for i, block := range m.blocks {
		endLine := "EOF"
		if block.EndLine > 0 {
			endLine = fmt.Sprintf("%d", block.EndLine)
		}
		b.WriteString(m.headerStyle.Render(fmt.Sprintf("Conflict %d (lines %d-%s)", i+1, block.StartLine, endLine)))
		b.WriteString("\n")

		if block.OursLabel != "" {
			b.WriteString(m.labelStyle.Render("ours: " + block.OursLabel))
			b.WriteString("\n")
		}
		for _, line := range block.Ours {
			b.WriteString(m.oursStyle.Render("+ " + strings.TrimRight(line, "\r\n")))
			b.WriteString("\n")
		}

		if block.TheirsLabel != "" {
			b.WriteString(m.labelStyle.Render("theirs: " + block.TheirsLabel))
			b.WriteString("\n")
		}
		for _, line := range block.Theirs {
			b.WriteString(m.theirsStyle.Render("- " + strings.TrimRight(line, "\r\n")))
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}

func ShowConflicts(filePath string, blocks []conflict.Block) error {
	m := NewConflictViewerModel(filePath, blocks)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
