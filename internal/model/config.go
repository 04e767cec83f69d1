package model

import "time"

// Input modes understood by the input package.
const (
	InputModeAuto    = "auto"
	InputModePointer = "pointer"
	InputModeTouch   = "touch"
)

// Storage backends understood by the store package.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// InputConfig selects how raw terminal events are turned into gestures.
type InputConfig struct {
	// Mode is one of auto, pointer or touch
	Mode string `ini:"mode" env:"MODE" json:"mode"`

	// CellHeight is the assumed height of one terminal row in pixels,
	// used to express vertical drags in the same unit as the swipe thresholds
	CellHeight float64 `ini:"cell_height" env:"CELL_HEIGHT" json:"cell_height"`
}

// GestureConfig holds the tap and swipe disambiguation thresholds.
type GestureConfig struct {
	// DoubleTapWindow is the longest gap between two taps that still counts as a double tap
	DoubleTapWindow time.Duration `ini:"double_tap_window" env:"DOUBLE_TAP_WINDOW" json:"double_tap_window"`

	// SwipeMinDistance is the vertical travel (exclusive) above which a fast gesture is a swipe
	SwipeMinDistance float64 `ini:"swipe_min_distance" env:"SWIPE_MIN_DISTANCE" json:"swipe_min_distance"`

	// SwipeMaxDuration is the duration (exclusive) under which a gesture can be a swipe
	SwipeMaxDuration time.Duration `ini:"swipe_max_duration" env:"SWIPE_MAX_DURATION" json:"swipe_max_duration"`

	// TapMaxDistance is the vertical travel (exclusive) under which a gesture is a tap
	TapMaxDistance float64 `ini:"tap_max_distance" env:"TAP_MAX_DISTANCE" json:"tap_max_distance"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Backend is one of bolt, sqlite or file
	Backend string `ini:"backend" env:"BACKEND" json:"backend"`

	// Path overrides the backend's default location in the application directory
	Path string `ini:"path" env:"PATH" json:"path,omitempty"`
}

// LogConfig configures the slog handler installed at startup.
type LogConfig struct {
	// Level is one of debug, info, warn or error
	Level string `ini:"level" env:"LEVEL" json:"level"`

	// File overrides the default log file in the application directory
	File string `ini:"file" env:"FILE" json:"file,omitempty"`
}

// Config holds the application configuration
type Config struct {
	Input   InputConfig   `ini:"input" envPrefix:"INPUT_" json:"input"`
	Gesture GestureConfig `ini:"gesture" envPrefix:"GESTURE_" json:"gesture"`
	Storage StorageConfig `ini:"storage" envPrefix:"STORAGE_" json:"storage"`
	Log     LogConfig     `ini:"log" envPrefix:"LOG_" json:"log"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			Mode:       InputModeAuto,
			CellHeight: 16,
		},
		Gesture: GestureConfig{
			DoubleTapWindow:  300 * time.Millisecond,
			SwipeMinDistance: 30,
			SwipeMaxDuration: 300 * time.Millisecond,
			TapMaxDistance:   10,
		},
		Storage: StorageConfig{
			Backend: BackendBolt,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
