package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpick/internal/config"
	"github.com/ironsheep/colorpick/internal/control"
	"github.com/ironsheep/colorpick/internal/logging"
	"github.com/ironsheep/colorpick/internal/naming"
	"github.com/ironsheep/colorpick/internal/storage"
)

// BuildInfo is stamped into the binary by ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	dbPath     string
	logLevel   string
}

// NewRootCommand builds the colorpick command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "colorpick",
		Short: "Screen color picker with history, palettes and a stdio bridge",
		Long: `colorpick samples colors from the screen (or a screenshot file),
names them, and keeps a pinned history and saved palettes.

Without a subcommand it serves the JSON-RPC stdio bridge that an overlay
UI drives. The other commands read and edit the stored history directly.`,
		Version: info.Version,
		// Errors are reported by Execute; usage is noise for runtime failures.
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, info)
		},
	}
	root.SetVersionTemplate(`{{printf "colorpick version %s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $HOME/.config/colorpick/config.yaml)")
	pf.StringVar(&flags.dbPath, "db", "", "history database path, or :memory:")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newServeCmd(flags, info),
		newDescribeCmd(flags),
		newSampleCmd(flags),
		newHistoryCmd(flags),
		newPaletteCmd(flags),
		newExportCmd(flags),
		newVersionCmd(info),
	)
	return root
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, info BuildInfo, args []string) int {
	root := NewRootCommand(info)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

// app is the configured process state a command runs against.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	kv    storage.KV
	repo  *storage.Repository
	names *naming.Table
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig(flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.dbPath != "" {
		cfg.Storage.Path = flags.dbPath
		cfg.Storage.Ephemeral = false
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openApp wires configuration, logging and storage.
func openApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	logger := logging.New(level, cmd.ErrOrStderr())

	kv, err := openStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "path", cfg.Storage.Path, "ephemeral", cfg.Storage.Ephemeral)

	return &app{
		cfg:   cfg,
		log:   logger,
		kv:    kv,
		repo:  storage.NewRepository(kv, logger),
		names: naming.ForLanguage(cfg.Naming.Language),
	}, nil
}

// controller loads the persisted state into a new controller. opts supplies
// the capture surface and notifier, if any.
func (a *app) controller(ctx context.Context, opts control.Options) *control.Controller {
	opts.Repository = a.repo
	opts.Names = a.names
	opts.Logger = a.log
	return control.New(ctx, opts)
}

func (a *app) Close() error {
	return a.kv.Close()
}

func openStorage(cfg config.StorageConfig) (storage.KV, error) {
	if cfg.Ephemeral {
		return storage.NewMemoryKV(), nil
	}
	kv, err := storage.OpenSQLite(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage at %s: %w", cfg.Path, err)
	}
	return kv, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// withController adapts a command body that works on the stored history.
func withController(flags *globalFlags, run func(cmd *cobra.Command, args []string, a *app, ctrl *control.Controller) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd, flags)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, args, a, a.controller(commandContext(cmd), control.Options{}))
	}
}
