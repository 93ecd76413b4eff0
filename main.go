package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compose [image]",
	Short: "Compose text over an image in the terminal",
	Long: `Compose loads a raster image, overlays editable text and lets you move,
rotate and scale each layer before exporting the result as download.jpeg.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runInteractive,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// setupInteractiveLogging sends slog output to a file when COMPOSE_DEBUG
// names one, since the terminal belongs to the UI. Otherwise logs are
// dropped.
func setupInteractiveLogging() (io.Closer, error) {
	path := os.Getenv("COMPOSE_DEBUG")
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "compose")
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	logFile, err := setupInteractiveLogging()
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	config := loadConfig()
	session, err := newSessionFromConfig(config)
	if err != nil {
		return err
	}

	m := initialModel(cmd.Context(), config, session)
	if len(args) == 1 {
		m.initCmd = m.startLoad(args[0])
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func initialModel(ctx context.Context, config *Config, session *Session) model {
	if ctx == nil {
		ctx = context.Background()
	}
	return model{
		ctx:               ctx,
		mode:              ModeNormal,
		target:            LayerImage,
		session:           session,
		controller:        NewInputController(session),
		config:            config,
		selectedFileIndex: -1,
		preview:           &previewCache{},
	}
}

func (m model) Init() tea.Cmd {
	return m.initCmd
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case imageLoadedMsg:
		m.handleImageLoaded(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.help {
			m.help = false
			return m, nil
		}

		switch m.mode {
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeTextInput:
			return m.updateTextInput(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if binding, ok := transformKeys[key]; ok {
		m.successMessage = ""
		m.handleTransform(binding)
		return m, nil
	}

	switch key {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
	case "tab":
		m.toggleTarget()
	case "o":
		m.mode = ModeFileInput
		m.errorMessage = ""
		m.filename = ""
		m.selectedFileIndex = -1
		m.fileList = scanImageFiles(".")
		m.selectFile(0)
	case "t":
		m.mode = ModeTextInput
		m.target = LayerText
		m.textInput = m.session.Text.Text()
		m.errorMessage = ""
	case "f":
		family, err := m.controller.CycleFontFamily()
		if err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Font: %s", family)
		}
	case "ctrl+v":
		m.pasteText()
	case "s":
		m.requestExport(FormatJPEG)
	case "S":
		m.requestExport(FormatPNG)
	case "esc":
		m.errorMessage = ""
		m.successMessage = ""
	}
	return m, nil
}

func (m model) updateTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		return m, nil
	case tea.KeyCtrlV:
		m.pasteText()
		return m, nil
	case tea.KeyEnter:
		m.textInput += "\n"
	case tea.KeyBackspace:
		if m.textInput == "" {
			return m, nil
		}
		_, size := utf8.DecodeLastRuneInString(m.textInput)
		m.textInput = m.textInput[:len(m.textInput)-size]
	case tea.KeySpace:
		m.textInput += " "
	case tea.KeyRunes:
		m.textInput += string(msg.Runes)
	default:
		return m, nil
	}
	m.controller.SetText(m.textInput)
	return m, nil
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
		return m, nil
	case tea.KeyUp:
		if len(m.fileList) > 0 {
			m.selectFile((m.selectedFileIndex - 1 + len(m.fileList)) % len(m.fileList))
		}
		return m, nil
	case tea.KeyDown:
		if len(m.fileList) > 0 {
			m.selectFile((m.selectedFileIndex + 1) % len(m.fileList))
		}
		return m, nil
	case tea.KeyEnter:
		if m.filename == "" {
			m.errorMessage = "Please enter a filename"
			return m, nil
		}
		path := m.filename
		m.mode = ModeNormal
		m.filename = ""
		cmd := m.startLoad(path)
		return m, cmd
	case tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
			m.selectedFileIndex = -1
		}
		return m, nil
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
		m.selectedFileIndex = -1
		return m, nil
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOverwriteExport:
			m.export(m.pendingFormat)
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}
