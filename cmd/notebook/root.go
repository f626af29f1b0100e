package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/notebook"
	"github.com/aretw0/notebook/internal/config"
	"github.com/aretw0/notebook/pkg/core"
	"github.com/aretw0/notebook/pkg/menu"
)

var (
	verbose    bool
	notesFile  string
	readOnly   bool
	configFile string

	settings = viper.New()
	cfg      = config.DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands.
// On its own it starts the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "notebook",
	Short: "A small single-user notebook backed by a JSON file",
	Long: `Notebook keeps short titled notes in a local JSON file.
Run it without arguments for the interactive menu, or use the subcommands
to script it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(settings, configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		if err := menu.New(store, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context()); err != nil {
			return fmt.Errorf("menu stopped: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openStore opens the configured notes file.
func openStore(ctx context.Context) (*core.Store, error) {
	store, err := notebook.New(ctx, cfg.File,
		notebook.WithReadOnly(cfg.ReadOnly),
		notebook.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open notebook: %w", err)
	}
	return store, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVarP(&notesFile, "file", "f", config.DefaultConfig().File, "Path of the notes JSON file")
	flags.BoolVar(&readOnly, "read-only", false, "Open the notebook without allowing changes")
	flags.StringVar(&configFile, "config", "", "Config file (default: ./notebook.yaml or "+config.Dir()+"/notebook.yaml)")

	_ = settings.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = settings.BindPFlag("file", flags.Lookup("file"))
	_ = settings.BindPFlag("read_only", flags.Lookup("read-only"))
}
