package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	ctx               context.Context
	width             int
	height            int
	mode              Mode
	help              bool
	target            LayerKind
	session           *Session
	controller        *InputController
	config            *Config
	textInput         string
	filename          string
	fileList          []string
	selectedFileIndex int
	confirmAction     ConfirmAction
	pendingFormat     ExportFormat
	loading           bool
	errorMessage      string
	successMessage    string
	preview           *previewCache
	initCmd           tea.Cmd
}

// transformBinding is what a transform key stands for: one button of one
// control group.
type transformBinding struct {
	group ControlGroup
	dir   Direction
}

// previewCache holds the last terminal rendering of the composite. It is
// rebuilt only when the compositor has repainted or the window changed.
type previewCache struct {
	redraws  int
	width    int
	height   int
	rendered string
	valid    bool
}
