package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/corpeningc/jfix/internal/conflict"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)

// Summary renders a one-line-per-block report for non-interactive use.
func Summary(filePath string, blocks []conflict.Block) string {
	var b strings.Builder

	b.WriteString(summaryHeaderStyle.Render(fmt.Sprintf("%s: %d conflict blocks", filePath, len(blocks))))
	b.WriteString("\n")

	for i, block := range blocks {
		endLine := "EOF"
		if block.EndLine > 0 {
			endLine = fmt.Sprintf("%d", block.EndLine)
		}

		labels := ""
		if block.OursLabel != "" || block.TheirsLabel != "" {
			labels = summaryLabelStyle.Render(fmt.Sprintf(" (%s vs %s)", block.OursLabel, block.TheirsLabel))
		}

		b.WriteString(fmt.Sprintf("  %d. lines %d-%s: %d ours / %d theirs%s\n",
			i+1, block.StartLine, endLine, len(block.Ours), len(block.Theirs), labels))
	}

	return b.String()
}
