package main

import (
	"bufio"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type Config struct {
	Width         int
	Height        int
	SaveDirectory string
	Quality       int
	FontFamily    string
	FontSize      float64
	LineHeight    float64
	TextColor     color.Color
	FontDirectory string
	Confirmations bool
}

func defaultConfig() *Config {
	return &Config{
		Width:         defaultWidth,
		Height:        defaultHeight,
		Quality:       defaultQuality,
		FontFamily:    defaultFontFamily,
		FontSize:      defaultFontSize,
		LineHeight:    defaultLineHeight,
		TextColor:     color.Black,
		Confirmations: true,
	}
}

// loadConfig reads ~/.composerc. A missing or unreadable file yields the
// defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	file, err := os.Open(filepath.Join(homeDir, ".composerc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()
	return parseConfig(file, homeDir)
}

// parseConfig reads key=value lines. Unknown keys and bad values are
// skipped so a typo never stops the program from starting.
func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Width = n
			}
		case "height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Height = n
			}
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "fontdir", "font_dir", "font_directory":
			config.FontDirectory = expandPath(value, homeDir)
		case "quality":
			if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= 100 {
				config.Quality = n
			}
		case "font", "font_family", "fontfamily":
			if value != "" {
				config.FontFamily = value
			}
		case "font_size", "fontsize":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.FontSize = f
			}
		case "line_height", "lineheight":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.LineHeight = f
			}
		case "text_color", "textcolor", "color":
			if c, err := colorful.Hex(value); err == nil {
				config.TextColor = c
			}
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if value != "" && !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}
