// Package cli wires configuration, storage, and the alert engine together
// and hands the assembled model to the terminal UI.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/focusboard/internal/alerts"
	"github.com/sandeepkv93/focusboard/internal/notify"
	"github.com/sandeepkv93/focusboard/internal/storage"
	"github.com/sandeepkv93/focusboard/internal/update"
)

var rootCmd = &cobra.Command{
	Use:   "focusboard",
	Short: "Task board with a pomodoro timer and a local leaderboard",
	Long: `Focusboard is a terminal task manager: add tasks with priorities and
deadlines, run pomodoro focus sessions, and track focus minutes on a
local leaderboard. Deadline alerts fire as desktop notifications when
a task comes due within five minutes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/focusboard/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().String("db", "", "path to the sqlite database")
	_ = viper.BindPFlag("db_path", rootCmd.Flags().Lookup("db"))
	rootCmd.Flags().Bool("notifications", false, "enable desktop notifications at startup")
	_ = viper.BindPFlag("desktop_notifications", rootCmd.Flags().Lookup("notifications"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(configDir())
		viper.AddConfigPath("$HOME/.config/focusboard")
		viper.AddConfigPath(".")
	}

	viper.SetDefault("work_minutes", 25)
	viper.SetDefault("short_break_minutes", 5)
	viper.SetDefault("long_break_minutes", 15)
	viper.SetDefault("alert_buffer", 64)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("FOCUSBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "focusboard")
}

// buildRuntimeConfig layers viper (config file, flags, env) over the
// environment-variable fallbacks.
func buildRuntimeConfig() update.RuntimeConfig {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if v := viper.GetInt("work_minutes"); v > 0 {
		cfg.WorkMinutes = v
	}
	if v := viper.GetInt("short_break_minutes"); v > 0 {
		cfg.ShortBreakMinutes = v
	}
	if v := viper.GetInt("long_break_minutes"); v > 0 {
		cfg.LongBreakMinutes = v
	}
	if v := viper.GetInt("alert_buffer"); v > 0 {
		cfg.AlertBuffer = v
	}
	if v := strings.TrimSpace(viper.GetString("db_path")); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(viper.GetString("sound_path")); v != "" {
		cfg.SoundPath = v
	}
	if viper.IsSet("desktop_notifications") && viper.GetBool("desktop_notifications") {
		cfg.DesktopNotifications = true
	}
	return cfg
}

func runApp() error {
	cfg := buildRuntimeConfig()

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	store, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	if err := storage.MigrateUp(context.Background(), store.DB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	engine := alerts.NewEngine(cfg.AlertBuffer)
	engine.Start()
	defer engine.Stop()

	m := update.NewModelWithConfig(update.Deps{
		Store:    store,
		Alerts:   engine,
		Notifier: notify.ExecNotifier{},
		Audio:    notify.ExecAudioPlayer{SoundPath: cfg.SoundPath},
	}, cfg)

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("focusboard failed: %w", err)
	}
	return nil
}
