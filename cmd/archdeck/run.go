package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	archdeck "github.com/capnet-labs/archdeck"
	"github.com/capnet-labs/archdeck/internal/config"
)

// Sentinel errors for CLI operations.
var ErrInvalidTimeout = errors.New("invalid timeout")

// renderSettings is the merged result of config file and flags.
type renderSettings struct {
	outputPath  string
	palettePath string
	htmlOnly    bool
	timeout     time.Duration
}

// run executes one deck render with the given flags.
func run(flags *cliFlags, deps *Dependencies) error {
	if flags.version {
		fmt.Fprintln(deps.Stdout, "archdeck", Version)
		return nil
	}

	logger := newLogger(deps.Stderr, flags.quiet, flags.verbose)

	settings, err := resolveSettings(flags)
	if err != nil {
		return err
	}

	opts := []archdeck.Option{}
	if settings.timeout > 0 {
		opts = append(opts, archdeck.WithTimeout(settings.timeout))
	}
	if settings.palettePath != "" {
		logger.Debug("loading palette", "path", settings.palettePath)
		palette, err := archdeck.LoadPalette(settings.palettePath)
		if err != nil {
			return err
		}
		opts = append(opts, archdeck.WithPalette(palette))
	}

	deck := archdeck.NewDeck(opts...)
	defer deck.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	logger.Debug("rendering deck", "output", settings.outputPath, "htmlOnly", settings.htmlOnly)
	start := time.Now()

	res, err := deck.RenderFile(ctx, settings.outputPath, archdeck.Input{HTMLOnly: settings.htmlOnly})
	if err != nil {
		return err
	}

	logger.Info("deck rendered",
		"pages", res.PageCount,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if !flags.quiet {
		fmt.Fprintln(deps.Stdout, "Generated:", settings.outputPath)
		fmt.Fprintln(deps.Stdout, "Pages:", res.PageCount)
	}
	return nil
}

// resolveSettings loads configuration and merges flags over it (flags win).
func resolveSettings(flags *cliFlags) (*renderSettings, error) {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return nil, err
	}

	s := &renderSettings{
		outputPath:  cfg.Output.Path,
		palettePath: cfg.Palette.Path,
		htmlOnly:    cfg.Render.HTMLOnly,
		timeout:     time.Duration(cfg.Render.TimeoutSeconds) * time.Second,
	}

	if flags.output != "" {
		s.outputPath = flags.output
	}
	if flags.palette != "" {
		s.palettePath = flags.palette
	}
	if flags.htmlOnly {
		s.htmlOnly = true
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q (use a positive duration like 30s or 2m)", ErrInvalidTimeout, flags.timeout)
		}
		s.timeout = d
	}
	if s.outputPath == "" {
		s.outputPath = defaultOutputPath
	}
	return s, nil
}

// loadConfig returns the explicit config when named, otherwise the
// discovered working-directory config (or defaults).
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath != "" {
		cfg, err := config.Load(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	return config.Discover()
}

// newLogger builds the CLI logger. Quiet wins over verbose.
func newLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
