package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

var transformKeys = map[string]transformBinding{
	"h":     {GroupTranslate, DirLeft},
	"left":  {GroupTranslate, DirLeft},
	"l":     {GroupTranslate, DirRight},
	"right": {GroupTranslate, DirRight},
	"k":     {GroupTranslate, DirUp},
	"up":    {GroupTranslate, DirUp},
	"j":     {GroupTranslate, DirDown},
	"down":  {GroupTranslate, DirDown},
	"r":     {GroupRotate, DirRight},
	".":     {GroupRotate, DirRight},
	"R":     {GroupRotate, DirLeft},
	",":     {GroupRotate, DirLeft},
	"+":     {GroupScale, DirUp},
	"=":     {GroupScale, DirUp},
	"-":     {GroupScale, DirDown},
}

// handleTransform dispatches a transform key to the targeted layer.
func (m *model) handleTransform(binding transformBinding) {
	if err := m.controller.Press(m.target, binding.group, binding.dir); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.errorMessage = ""
}

func (m *model) toggleTarget() {
	if m.target == LayerImage {
		m.target = LayerText
	} else {
		m.target = LayerImage
	}
}

// startLoad kicks off an asynchronous image load. A load already in flight
// is superseded.
func (m *model) startLoad(path string) tea.Cmd {
	seq := m.controller.BeginLoad()
	m.loading = true
	m.errorMessage = ""
	m.successMessage = ""
	return loadImageCmd(m.ctx, seq, path)
}

func (m *model) handleImageLoaded(msg imageLoadedMsg) {
	latest := msg.result.Seq == m.controller.loadSeq
	if latest {
		m.loading = false
	}
	if err := m.controller.CompleteLoad(msg.result); err != nil {
		m.errorMessage = fmt.Sprintf("Error loading image: %s", err.Error())
		return
	}
	if latest {
		m.target = LayerImage
		m.successMessage = fmt.Sprintf("Loaded %s", filepath.Base(msg.path))
	}
}

// requestExport exports immediately unless the target file exists and
// confirmations are on.
func (m *model) requestExport(format ExportFormat) {
	path := format.Filename()
	if m.config.SaveDirectory != "" {
		path = filepath.Join(m.config.SaveDirectory, path)
	}
	if m.config.Confirmations {
		if _, err := os.Stat(path); err == nil {
			m.pendingFormat = format
			m.confirmAction = ConfirmOverwriteExport
			m.mode = ModeConfirm
			return
		}
	}
	m.export(format)
}

func (m *model) export(format ExportFormat) {
	path, err := m.controller.ExportFile(m.config.SaveDirectory, format, m.config.Quality)
	if err != nil {
		m.errorMessage = fmt.Sprintf("Error exporting %s: %s", format, err.Error())
		m.successMessage = ""
		return
	}
	m.errorMessage = ""
	m.successMessage = fmt.Sprintf("Exported to %s", path)
}

func (m *model) pasteText() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Error reading clipboard: %s", err.Error())
		return
	}
	text = cleanPastedText(text)
	if text == "" {
		return
	}
	m.textInput = m.session.Text.Text() + text
	m.controller.SetText(m.textInput)
}

func (m *model) selectFile(index int) {
	if index < 0 || index >= len(m.fileList) {
		return
	}
	m.selectedFileIndex = index
	m.filename = m.fileList[index]
}
