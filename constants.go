package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeTextInput
	ModeFileInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteExport
)

type LayerKind int

const (
	LayerImage LayerKind = iota
	LayerText
)

func (k LayerKind) String() string {
	switch k {
	case LayerImage:
		return "image"
	case LayerText:
		return "text"
	default:
		return "unknown"
	}
}

// ControlGroup is one of the three transform button groups.
type ControlGroup int

const (
	GroupTranslate ControlGroup = iota
	GroupRotate
	GroupScale
)

func (g ControlGroup) String() string {
	switch g {
	case GroupTranslate:
		return "translate"
	case GroupRotate:
		return "rotate"
	case GroupScale:
		return "scale"
	default:
		return "unknown"
	}
}

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

type ExportFormat int

const (
	FormatJPEG ExportFormat = iota
	FormatPNG
)

func (f ExportFormat) String() string {
	if f == FormatPNG {
		return "png"
	}
	return "jpeg"
}

// Filename is the fixed name of the downloadable artifact.
func (f ExportFormat) Filename() string {
	return "download." + f.String()
}

const (
	translateDistance = 10.0
	rotateStep        = 15.0 // degrees
	scaleStep         = 0.2
	minMagnification  = 0.1

	defaultWidth      = 800
	defaultHeight     = 600
	defaultQuality    = 85
	defaultFontFamily = "sans-serif"
	defaultFontSize   = 40.0
	defaultLineHeight = 1.5
)
