// Package main provides the CLI entrypoint for zscore.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/zscore/internal/config"
	"github.com/verte-zerg/zscore/internal/history"
	"github.com/verte-zerg/zscore/internal/i18n"
	"github.com/verte-zerg/zscore/internal/model"
	"github.com/verte-zerg/zscore/internal/render"
	"github.com/verte-zerg/zscore/internal/store"
	"github.com/verte-zerg/zscore/internal/tui"
)

const defaultLogLevel = "warn"

var (
	rootTheme       string
	rootLang        string
	rootHistorySize int
	rootDB          string
	rootLogLevel    string

	logger = zerolog.Nop()
)

type settings struct {
	cfg    model.Config
	dbPath string
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "zscore",
		Short:             "Shannon entropy and lexical diversity of text",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupLogger,
		RunE:              runTUICmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootTheme, "theme", string(config.DefaultTheme), "color theme: auto, light or dark")
	flags.StringVar(&rootLang, "lang", "", "interface language: en or tr (default: from environment)")
	flags.IntVar(&rootHistorySize, "history-size", config.DefaultHistorySize, "maximum history entries kept")
	flags.StringVar(&rootDB, "db", "", "history database path (default: XDG data dir)")
	flags.StringVar(&rootLogLevel, "log-level", defaultLogLevel, "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newSamplesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(rootLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

// loadSettings merges built-in defaults, the config file, and explicitly set flags.
func loadSettings(cmd *cobra.Command) (settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := fileCfg.Apply(config.Defaults())

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = model.Theme(rootTheme)
	}
	if flags.Changed("lang") {
		cfg.Lang = rootLang
	}
	if flags.Changed("history-size") {
		cfg.HistorySize = rootHistorySize
	}
	if flags.Changed("top") {
		cfg.Top = analyzeTop
	}
	if analyzeNoSave {
		cfg.Save = false
	}
	if cfg.Lang == "" {
		cfg.Lang = i18n.Resolve(i18n.FromEnv()...)
	}

	if err := config.Validate(cfg); err != nil {
		return settings{}, err
	}

	dbPath := rootDB
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	logger.Debug().Str("lang", cfg.Lang).Str("theme", string(cfg.Theme)).Str("db", dbPath).Msg("settings resolved")
	return settings{cfg: cfg, dbPath: dbPath}, nil
}

func openSession(s settings) (*history.Session, func(), error) {
	st, err := store.Open(s.dbPath, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	closeFn := func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close db")
		}
	}
	session := history.NewSession(st, history.Options{
		MaxSize: s.cfg.HistorySize,
		Save:    s.cfg.Save,
		Logger:  logger,
	})
	return session, closeFn, nil
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	session, closeFn, err := openSession(s)
	if err != nil {
		return err
	}
	defer closeFn()

	m := tui.NewModel(tui.Options{
		Session: session,
		Config:  s.cfg,
		Color:   render.IsTerminal(os.Stdout),
		Logger:  logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		logger.Info().Str("path", path).Msg("config created")
	}
	return nil
}
