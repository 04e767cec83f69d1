package core

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/inovacc/stitchr/internal/application"
	"github.com/inovacc/stitchr/internal/encoding"
	"github.com/inovacc/stitchr/internal/model"
	"gopkg.in/ini.v1"
)

// EnvPrefix prefixes every environment override, e.g. STITCHR_STORAGE_BACKEND.
const EnvPrefix = "STITCHR_"

// ConfigFileName is the INI file read from the application directory.
const ConfigFileName = "config.ini"

// DefaultConfigPath returns the config file location in the application directory.
func DefaultConfigPath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

// ReadConfig builds the configuration from defaults, the INI file at path
// (a missing file is not an error) and STITCHR_* environment variables, in
// that order. environ overrides the process environment when non-nil. The
// result is not validated so callers can layer more overrides on top.
func ReadConfig(path string, environ map[string]string) (*model.Config, error) {
	cfg := model.DefaultConfig()

	if path != "" {
		f, err := ini.LooseLoad(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		if err := f.MapTo(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	NormalizeConfig(&cfg)

	return &cfg, nil
}

// LoadConfig is ReadConfig followed by ValidateConfig.
func LoadConfig(path string, environ map[string]string) (*model.Config, error) {
	cfg, err := ReadConfig(path, environ)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NormalizeConfig lowercases the enumerated settings.
func NormalizeConfig(cfg *model.Config) {
	cfg.Input.Mode = strings.ToLower(cfg.Input.Mode)
	cfg.Storage.Backend = strings.ToLower(cfg.Storage.Backend)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
}

// ValidateConfig reports the first invalid field.
func ValidateConfig(cfg *model.Config) error {
	switch cfg.Input.Mode {
	case model.InputModeAuto, model.InputModePointer, model.InputModeTouch:
	default:
		return &FieldError{Section: "input", Key: "mode", Value: cfg.Input.Mode, Reason: "must be auto, pointer or touch"}
	}

	if cfg.Input.CellHeight <= 0 {
		return &FieldError{Section: "input", Key: "cell_height", Value: fmt.Sprint(cfg.Input.CellHeight), Reason: "must be positive"}
	}

	g := cfg.Gesture
	if g.DoubleTapWindow <= 0 {
		return &FieldError{Section: "gesture", Key: "double_tap_window", Value: g.DoubleTapWindow.String(), Reason: "must be positive"}
	}

	if g.SwipeMaxDuration <= 0 {
		return &FieldError{Section: "gesture", Key: "swipe_max_duration", Value: g.SwipeMaxDuration.String(), Reason: "must be positive"}
	}

	if g.TapMaxDistance <= 0 {
		return &FieldError{Section: "gesture", Key: "tap_max_distance", Value: fmt.Sprint(g.TapMaxDistance), Reason: "must be positive"}
	}

	if g.SwipeMinDistance < g.TapMaxDistance {
		return &FieldError{Section: "gesture", Key: "swipe_min_distance", Value: fmt.Sprint(g.SwipeMinDistance), Reason: "must not be below tap_max_distance"}
	}

	switch cfg.Storage.Backend {
	case model.BackendBolt, model.BackendSQLite, model.BackendFile:
	default:
		return &FieldError{Section: "storage", Key: "backend", Value: cfg.Storage.Backend, Reason: "must be bolt, sqlite or file"}
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &FieldError{Section: "log", Key: "level", Value: cfg.Log.Level, Reason: "must be debug, info, warn or error"}
	}

	return nil
}

// SaveConfig writes cfg as an INI file, creating the parent directory.
func SaveConfig(path string, cfg *model.Config) error {
	f := ini.Empty()

	if err := ini.ReflectFrom(f, cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := encoding.EnsureParentDir(path); err != nil {
		return err
	}

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// ShowConfig prints the effective configuration
func ShowConfig(w io.Writer, cfg *model.Config) {
	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Input Mode:          %s\n", cfg.Input.Mode)
	_, _ = fmt.Fprintf(w, "Cell Height:         %gpx\n", cfg.Input.CellHeight)
	_, _ = fmt.Fprintf(w, "Double Tap Window:   %s\n", cfg.Gesture.DoubleTapWindow)
	_, _ = fmt.Fprintf(w, "Swipe Min Distance:  %gpx\n", cfg.Gesture.SwipeMinDistance)
	_, _ = fmt.Fprintf(w, "Swipe Max Duration:  %s\n", cfg.Gesture.SwipeMaxDuration)
	_, _ = fmt.Fprintf(w, "Tap Max Distance:    %gpx\n", cfg.Gesture.TapMaxDistance)
	_, _ = fmt.Fprintf(w, "Storage Backend:     %s\n", cfg.Storage.Backend)

	if cfg.Storage.Path != "" {
		_, _ = fmt.Fprintf(w, "Storage Path:        %s\n", cfg.Storage.Path)
	}

	_, _ = fmt.Fprintf(w, "Log Level:           %s\n", cfg.Log.Level)

	if cfg.Log.File != "" {
		_, _ = fmt.Fprintf(w, "Log File:            %s\n", cfg.Log.File)
	}
}
