package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Orientation classifies the shape of a viewport
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
	OrientationSquare    Orientation = "square"
)

// SquareTolerance is the half-width of the aspect ratio band around 1 that counts as square
const SquareTolerance = 0.1

var ErrInvalidDimensions = errors.New("viewport dimensions must be positive")

// Observation is a single viewport sample.
// AspectRatio and Orientation are derived from Width/Height by NewObservation and are
// never set on their own.
type Observation struct {
	Width        int         `json:"width"`
	Height       int         `json:"height"`
	AspectRatio  float64     `json:"aspectRatio"`
	PixelDensity float64     `json:"pixelDensity"`
	Orientation  Orientation `json:"orientation"`
	Timestamp    int64       `json:"timestamp"` // unix milliseconds
}

// HistoryEntry is an Observation stored in the history log
type HistoryEntry struct {
	Observation
	ID string `json:"id"`
}

// NewObservation builds an Observation taken at t
func NewObservation(width, height int, pixelDensity float64, t time.Time) (Observation, error) {
	if width <= 0 || height <= 0 {
		return Observation{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if pixelDensity <= 0 || math.IsNaN(pixelDensity) || math.IsInf(pixelDensity, 0) {
		return Observation{}, fmt.Errorf("pixel density must be a positive number, got %v", pixelDensity)
	}

	ratio := float64(width) / float64(height)
	return Observation{
		Width:        width,
		Height:       height,
		AspectRatio:  ratio,
		PixelDensity: pixelDensity,
		Orientation:  ClassifyOrientation(width, height),
		Timestamp:    t.UnixMilli(),
	}, nil
}

// ClassifyOrientation returns the orientation for the given dimensions
func ClassifyOrientation(width, height int) Orientation {
	ratio := float64(width) / float64(height)
	if math.Abs(ratio-1) < SquareTolerance {
		return OrientationSquare
	}
	if ratio > 1 {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// Time returns the sample time
func (o Observation) Time() time.Time {
	return time.UnixMilli(o.Timestamp)
}

// String renders the observation as "WxH (orientation)"
func (o Observation) String() string {
	return fmt.Sprintf("%d×%d (%s)", o.Width, o.Height, o.Orientation)
}

// Thresholds are the acceptable viewport bounds
type Thresholds struct {
	MinWidth  int `json:"minWidth" yaml:"min_width"`
	MaxWidth  int `json:"maxWidth" yaml:"max_width"`
	MinHeight int `json:"minHeight" yaml:"min_height"`
	MaxHeight int `json:"maxHeight" yaml:"max_height"`
}

// DefaultThresholds returns the built-in bounds
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinWidth:  320,
		MaxWidth:  1920,
		MinHeight: 480,
		MaxHeight: 1080,
	}
}

// Validate checks that bounds are positive and ordered
func (t Thresholds) Validate() error {
	if t.MinWidth <= 0 || t.MaxWidth <= 0 || t.MinHeight <= 0 || t.MaxHeight <= 0 {
		return fmt.Errorf("thresholds must be positive: %+v", t)
	}
	if t.MinWidth > t.MaxWidth {
		return fmt.Errorf("min width %d exceeds max width %d", t.MinWidth, t.MaxWidth)
	}
	if t.MinHeight > t.MaxHeight {
		return fmt.Errorf("min height %d exceeds max height %d", t.MinHeight, t.MaxHeight)
	}
	return nil
}

// Report is the export bundle produced on demand
type Report struct {
	Title           string         `json:"title"`
	GeneratedAt     string         `json:"generatedAt"`
	CurrentViewport Observation    `json:"currentViewport"`
	History         []HistoryEntry `json:"history"`
	UserAgent       string         `json:"userAgent"`
	DevicePresets   []DevicePreset `json:"devicePresets"`
}

// Snapshot is the full-state export: every history entry plus thresholds
type Snapshot struct {
	CurrentViewport Observation    `json:"currentViewport"`
	History         []HistoryEntry `json:"history"`
	Thresholds      Thresholds     `json:"thresholds"`
	ExportDate      string         `json:"exportDate"`
}
