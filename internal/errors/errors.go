package errors

import "errors"

// Window errors indicate problems driving the reader window.
var (
	// ErrWindowNotFound indicates no window matched the configured title keyword.
	ErrWindowNotFound = errors.New("no window matching the title keyword")

	// ErrActivatorUnavailable indicates the platform window tool is not installed.
	ErrActivatorUnavailable = errors.New("window activation tool not available")

	// ErrUnknownKey indicates an unrecognized page-turn key name.
	ErrUnknownKey = errors.New("unknown page-turn key name")
)

// Capture errors indicate issues taking or storing screenshots.
var (
	// ErrInvalidRegion indicates a capture region with non-positive dimensions.
	ErrInvalidRegion = errors.New("capture region must have positive width and height")

	// ErrNoDisplays indicates no active display is attached.
	ErrNoDisplays = errors.New("no active displays found")

	// ErrNoImagesFound indicates a folder contains no screenshot images.
	ErrNoImagesFound = errors.New("no images found in folder")
)

// OCR errors indicate failures running the tesseract engine.
var (
	// ErrTesseractNotFound indicates the tesseract binary could not be located.
	ErrTesseractNotFound = errors.New("tesseract binary not found")

	// ErrEmptyTranscript indicates OCR produced no usable text at all.
	ErrEmptyTranscript = errors.New("transcription produced no text")
)
