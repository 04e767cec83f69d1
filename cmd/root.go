package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/stitchr/internal/application"
	"github.com/inovacc/stitchr/internal/cli"
	"github.com/inovacc/stitchr/internal/core"
	"github.com/inovacc/stitchr/internal/input"
	"github.com/inovacc/stitchr/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// LogFileName is the default log file in the application directory.
const LogFileName = "stitchr.log"

// annotationTolerantConfig marks commands that run on defaults when the
// config file or environment is invalid, so a broken config can be repaired.
const annotationTolerantConfig = "stitchr/tolerant-config"

var (
	cfgFile     string
	storageFlag string
	inputFlag   string
	logLevel    string

	// cfg is the effective configuration, loaded before any command runs
	cfg *model.Config
	// logOut is the open log file, closed after the command finishes
	logOut io.Closer
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A two-digit row and stitch counter",
	Long: `Stitchr is a tap counter for knitting and crochet.

The left digit counts rows and the right digit counts stitches. Tapping the
right digit past 9 wraps it to 0 and advances the row. Without a subcommand
stitchr opens the full-screen counter when attached to a terminal and prints
the current count otherwise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, loadErr := loadConfig(cmd)
		if loadErr != nil {
			if !tolerantConfig(cmd) {
				return loadErr
			}

			defaults := model.DefaultConfig()
			loaded = &defaults
		}

		cfg = loaded

		closer, err := setupLogging(cfg.Log)
		if err != nil {
			return err
		}

		logOut = closer

		if loadErr != nil {
			slog.Warn("ignoring invalid config", "command", cmd.CommandPath(), "error", loadErr)
		}

		slog.Debug("config loaded", "command", cmd.Name(), "backend", cfg.Storage.Backend, "input", cfg.Input.Mode)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return runShow(cmd.OutOrStdout(), false)
		}

		return runInteractive()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnFinalize(closeLog)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is <app dir>/config.ini)")
	pf.StringVar(&storageFlag, "storage", "", "storage backend: bolt, sqlite or file")
	pf.StringVar(&inputFlag, "input", "", "input mode: auto, pointer or touch")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// loadConfig reads the config file and environment, then applies flags
// given on the command line.
func loadConfig(cmd *cobra.Command) (*model.Config, error) {
	path := cfgFile
	if path == "" {
		p, err := core.DefaultConfigPath()
		if err != nil {
			return nil, err
		}

		path = p
	}

	c, err := core.ReadConfig(path, nil)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("storage") {
		c.Storage.Backend = storageFlag
	}

	if flags.Changed("input") {
		c.Input.Mode = inputFlag
	}

	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}

	core.NormalizeConfig(c)

	if err := core.ValidateConfig(c); err != nil {
		return nil, err
	}

	return c, nil
}

func tolerantConfig(cmd *cobra.Command) bool {
	_, ok := cmd.Annotations[annotationTolerantConfig]
	return ok
}

// closeLog runs after every command, including failed ones.
func closeLog() {
	if logOut != nil {
		_ = logOut.Close()
		logOut = nil
	}
}

// setupLogging installs a text handler writing to the configured log file.
// The terminal belongs to the counter screen, so nothing is logged to stderr.
func setupLogging(lc model.LogConfig) (io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}

	path := lc.File
	if path == "" {
		dir, err := application.EnsureApplicationDirectory()
		if err != nil {
			return nil, err
		}

		path = filepath.Join(dir, LogFileName)
	} else if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))

	return f, nil
}

func runInteractive() error {
	s, err := openSession()
	if err != nil {
		return err
	}

	defer s.Close()

	mode := input.Detect(cfg.Input.Mode, nil)
	m := cli.NewCounterModel(s.ctrl, input.New(mode, cfg.Input.CellHeight))

	slog.Info("counter started", "input", string(mode), "backend", s.backend.Name())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}

		return err
	}

	return nil
}
