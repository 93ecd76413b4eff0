package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var helpLines = []string{
	"Compose Help",
	"============",
	"",
	"Layers:",
	"-------",
	"  Tab              Switch target layer (image / text)",
	"  o                Open an image",
	"  t                Edit the text layer",
	"  f                Next font family",
	"  Ctrl+V           Paste clipboard into the text layer",
	"",
	"Transforms (target layer, only once it has content):",
	"-----------------------------------------------------",
	"  h/←/j/↓/k/↑/l/→  Move 10px",
	"  r or .           Rotate right 15°",
	"  R or ,           Rotate left 15°",
	"  + or =           Scale up 0.2",
	"  -                Scale down 0.2",
	"",
	"Text Mode:",
	"----------",
	"  Type             Edit text, every key repaints",
	"  Enter            New line",
	"  Esc              Back to normal mode",
	"",
	"Export:",
	"-------",
	"  s                Export download.jpeg",
	"  S                Export download.png",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	cols := m.width
	if cols < 1 {
		cols = 1
	}

	var result strings.Builder
	result.WriteString(m.previewFor(cols, rows))
	result.WriteString("\n")
	result.WriteString(m.statusLine(cols))
	return result.String()
}

func (m model) statusLine(width int) string {
	var status string
	switch m.mode {
	case ModeTextInput:
		display := strings.ReplaceAll(m.textInput, "\n", "⏎")
		status = fmt.Sprintf("Mode: TEXT | Text: %s_ | Enter=newline, Ctrl+V=paste, Esc=done", display)
	case ModeFileInput:
		status = fmt.Sprintf("Mode: FILE | Open image: %s | ↑/↓=navigate list, Type=enter name, Enter=confirm, Esc=cancel", m.filename)
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit Compose? Unexported changes will be lost. (y/n)"
		case ConfirmOverwriteExport:
			message = fmt.Sprintf("%s already exists. Overwrite? (y/n)", m.pendingFormat.Filename())
		}
		status = fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		layer := m.session.Layer(m.target)
		t := layer.Transform()
		status = fmt.Sprintf("Mode: %s | Target: %s | Move: (%.0f,%.0f) Rotate: %.0f° Scale: %.1fx%.1f | Font: %s",
			m.modeString(), m.target, t.DX, t.DY, t.Degrees, t.MX, t.MY, m.session.Text.Font().Family)
		if !layer.Visible() {
			status += " | (empty)"
		}
		if m.loading {
			status += " | Loading..."
		}
		if m.successMessage != "" {
			status += fmt.Sprintf(" | %s", m.successMessage)
		}
		if m.errorMessage == "" && m.successMessage == "" {
			status += " | ? for help | q to quit"
		}
	}

	if m.errorMessage != "" {
		return statusStyle.Render(padRight(status, width-len(m.errorMessage)-9)) + errorStyle.Render(" ERROR: "+m.errorMessage)
	}
	return statusStyle.Render(padRight(status, width))
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeTextInput:
		return "TEXT"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 || visible > len(helpLines) {
		visible = len(helpLines)
	}
	return strings.Join(helpLines[:visible], "\n")
}
