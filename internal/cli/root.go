package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ItsArsalanMD/todo/internal/config"
	"github.com/ItsArsalanMD/todo/internal/logging"
	"github.com/ItsArsalanMD/todo/internal/store"
	"github.com/ItsArsalanMD/todo/internal/storage"
	"github.com/ItsArsalanMD/todo/internal/tui"
)

var (
	cfg      *config.Config
	closeLog func()

	flagStorage string
	flagDataDir string
	logLevel    string
	logFile     string
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a tiny terminal todo list",
	Long: `A terminal todo list with local persistence.

Run 'todo' without arguments to launch the interactive list. The add, list,
done, edit and rm subcommands do the same mutations non-interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("storage") {
			cfg.Storage = flagStorage
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = flagDataDir
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		closeLog, err = logging.Setup(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}
		log.Debug("started", "command", cmd.Name(), "storage", cfg.Storage)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		m := tui.NewModel(s, tui.Options{ConfirmDelete: cfg.ConfirmDelete})
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLog != nil {
			closeLog()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fail(err.Error())
	}
	return err
}

// openStore wires the configured KV backend into a hydrated store. The
// returned closer releases the backend.
func openStore() (*store.Store, func(), error) {
	var kv storage.KV
	switch cfg.Storage {
	case config.BackendSQLite:
		var err error
		kv, err = storage.OpenSQLite(filepath.Join(cfg.DataDir, "todo.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open storage: %w", err)
		}
	default:
		kv = storage.NewFileKV(cfg.DataDir)
	}
	adapter := storage.NewAdapter(kv)
	s, err := store.Open(adapter)
	if err != nil {
		_ = adapter.Close()
		return nil, nil, fmt.Errorf("load todos: %w", err)
	}
	return s, func() { _ = adapter.Close() }, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "storage backend (file or sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory for todo data")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "path to log file")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
}
