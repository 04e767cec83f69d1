package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "stitchr"

	// StorageKey is the fixed key of the persisted counter record
	StorageKey = "stitchCounter"

	// Version is reported by the version command
	Version = "0.3.0"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the stitchr configuration directory path.
// Linux: ~/.config/stitchr (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\stitchr (via os.UserCacheDir)
// STITCHR_HOME overrides both.
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, errDir
}

// EnsureApplicationDirectory returns the application directory, creating it if needed.
func EnsureApplicationDirectory() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create application directory %s: %w", dir, err)
	}

	return dir, nil
}

func lazyLoad() {
	if home := os.Getenv("STITCHR_HOME"); home != "" {
		appDir = home
		return
	}

	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
	}

	appDir = filepath.Join(baseDir, AppName)
}
