package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a composite without the interactive UI",
	Long: `Render applies the same events the interactive UI would, in order, and
exports the result. Each --press names a layer, a control group and a
direction, for example --press image:rotate:right or --press text:scale:up.`,
	Example:      `  compose render --image photo.png --text 'Hello\nWorld' --press text:translate:down --press image:rotate:right`,
	SilenceUsage: true,
	RunE:         runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	flags := renderCmd.Flags()
	flags.String("image", "", "Image file to load into the image layer")
	flags.String("text", "", `Text for the text layer ("\n" starts a new line)`)
	flags.String("font", "", "Font family for the text layer")
	flags.StringArray("press", nil, "Transform button press as layer:group:direction (repeatable)")
	flags.String("format", "jpeg", "Export format: jpeg or png")
	flags.String("output", "", "Directory to write the download file to (default: save_directory from ~/.composerc)")
	flags.Int("quality", defaultQuality, "JPEG quality (1-100)")
	flags.Int("width", defaultWidth, "Surface width in pixels")
	flags.Int("height", defaultHeight, "Surface height in pixels")
}

func runRender(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	config := loadConfig()
	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		config.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("quality") {
		config.Quality, _ = flags.GetInt("quality")
	}
	if flags.Changed("output") {
		config.SaveDirectory, _ = flags.GetString("output")
	}

	format, err := parseExportFormat(flagString(flags.GetString("format")))
	if err != nil {
		return err
	}

	session, err := newSessionFromConfig(config)
	if err != nil {
		return err
	}
	controller := NewInputController(session)

	if path := flagString(flags.GetString("image")); path != "" {
		blob, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error opening image: %w", err)
		}
		if err := controller.LoadBlob(cmd.Context(), blob); err != nil {
			return fmt.Errorf("error loading %s: %w", path, err)
		}
	}
	if family := flagString(flags.GetString("font")); family != "" {
		if err := controller.SetFontFamily(family); err != nil {
			return err
		}
	}
	if text := flagString(flags.GetString("text")); text != "" {
		controller.SetText(strings.ReplaceAll(text, `\n`, "\n"))
	}

	presses, _ := flags.GetStringArray("press")
	for _, press := range presses {
		target, group, dir, err := parsePress(press)
		if err != nil {
			return err
		}
		if err := controller.Press(target, group, dir); err != nil {
			return err
		}
	}

	path, err := controller.ExportFile(config.SaveDirectory, format, config.Quality)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func flagString(s string, _ error) string {
	return s
}

// parsePress parses layer:group:direction. The direction is passed through
// unchecked; InputController decides whether it is valid for the group.
func parsePress(s string) (LayerKind, ControlGroup, Direction, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, "", fmt.Errorf("%w: %q is not layer:group:direction", ErrUnknownControl, s)
	}
	target, err := parseLayerKind(parts[0])
	if err != nil {
		return 0, 0, "", err
	}
	group, err := parseControlGroup(parts[1])
	if err != nil {
		return 0, 0, "", err
	}
	return target, group, Direction(strings.ToLower(strings.TrimSpace(parts[2]))), nil
}

func parseLayerKind(s string) (LayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image":
		return LayerImage, nil
	case "text":
		return LayerText, nil
	default:
		return 0, fmt.Errorf("%w: layer %q", ErrUnknownControl, s)
	}
}

func parseControlGroup(s string) (ControlGroup, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "translate", "move":
		return GroupTranslate, nil
	case "rotate":
		return GroupRotate, nil
	case "scale":
		return GroupScale, nil
	default:
		return 0, fmt.Errorf("%w: group %q", ErrUnknownControl, s)
	}
}

func parseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("%w: unsupported format %q", ErrExportFailure, s)
	}
}
