package main

import "errors"

var (
	// ErrInvalidDirection is returned when a control receives a direction it
	// does not understand. Only the current dispatch is aborted.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrDecodeFailure means a blob could not be turned into a bitmap. The
	// image layer keeps whatever it had before.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrExportFailure means the composite could not be serialized. The user
	// may retry.
	ErrExportFailure = errors.New("export failure")

	ErrUnknownFont = errors.New("unknown font family")

	// ErrUnknownControl is returned when a layer or control group name
	// cannot be parsed.
	ErrUnknownControl = errors.New("unknown control")
)
