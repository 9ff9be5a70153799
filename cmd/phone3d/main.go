package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"phone3d/internal/config"
	"phone3d/internal/desktop"
	"phone3d/internal/logging"
	"phone3d/internal/term"
)

var (
	configPath string
	logLevel   string
	fps        float64
	force      bool
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	root := &cobra.Command{
		Use:   "phone3d",
		Short: "Interactive 3D phone",
		Long: `phone3d - Interactive 3D phone

Drag to spin the phone, click its side buttons to power it on and change
the volume.

Keys:
  P          - Power button
  Up/Down    - Volume buttons
  R          - Reset orientation
  F12        - Screenshot (desktop)
  Esc        - Quit`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(logging.Init)
			if err != nil {
				return err
			}
			defer cleanup()
			return desktop.Run(cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "phone3d.yaml", "Path to config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (DEBUG, INFO, WARN, ERROR)")
	root.PersistentFlags().Float64Var(&fps, "fps", 0, "Override the tick rate")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "Run the phone inside the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup(logging.InitFileOnly)
			if err != nil {
				return err
			}
			defer cleanup()
			return term.Run(cfg)
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := config.Save(configPath, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	root.AddCommand(termCmd, initCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads .env and the config file, then installs logging with initLog.
func setup(initLog func(config.LogConfig) (func(), error)) (*config.Config, func(), error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if fps > 0 {
		cfg.Window.FPS = fps
	}

	cleanup, err := initLog(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Config loaded", "path", configPath, "fps", cfg.Window.FPS, "locale", cfg.Home.Locale)
	return cfg, cleanup, nil
}
