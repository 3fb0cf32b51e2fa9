// Package cli implements the erp command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pinnacle/erp/config"
	"github.com/pinnacle/erp/domain"
	"github.com/pinnacle/erp/registry"
	"github.com/pinnacle/erp/repository"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	DB         string // overrides database.dsn when set

	// Logger is built from the loaded configuration unless already set.
	Logger *zap.Logger
}

// errNoChanges is returned by update commands given no field flags.
var errNoChanges = errors.New("nothing to update: pass at least one field flag")

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the erp CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "erp",
		Short: "ERP Pinnacle - product and client registry",
		Long:  "Register, list, update and delete the products and clients of a small apparel store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "erp.yaml", "path to the configuration file")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "database DSN (overrides the configuration)")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewProductCommand(opts))
	cmd.AddCommand(NewClientCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// loadConfig reads the configuration file and applies the flag overrides.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.DB != "" {
		cfg.Database.DSN = o.DB
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (o *RootOptions) logger(cfg config.Logging) (*zap.Logger, error) {
	if o.Logger != nil {
		return o.Logger, nil
	}

	zcfg, err := loggerConfig(cfg, o.Verbose)
	if err != nil {
		return nil, err
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	o.Logger = logger
	return logger, nil
}

// loggerConfig derives the zap configuration from the logging settings.
// Both encodings start from the production config; --verbose forces debug.
func loggerConfig(cfg config.Logging, verbose bool) (zap.Config, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = cfg.Format
	if cfg.Format == "console" {
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg, nil
}

// syncLogger flushes the logger if one was built or injected.
func (o *RootOptions) syncLogger() {
	if o.Logger != nil {
		_ = o.Logger.Sync()
	}
}

// session is an open store plus the service running on top of it.
type session struct {
	cfg     *config.Config
	store   *repository.Store
	service *registry.Service
	log     *zap.Logger
}

func (s *session) Close() error {
	return s.store.Close()
}

// openSession loads configuration, builds the logger and opens the store,
// creating or upgrading its schema.
func (o *RootOptions) openSession(ctx context.Context) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := o.logger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	store, err := repository.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("store unavailable: %w", err)
	}
	log.Debug("store opened", zap.String("driver", cfg.Database.Driver))

	validator := domain.Validator{StrictEnums: cfg.Validation.StrictEnums}
	return &session{
		cfg:     cfg,
		store:   store,
		service: registry.NewService(store, validator, log),
		log:     log,
	}, nil
}

// withSession runs fn against an open session and reports any error through
// the formatter, converting it into an ExitError.
func withSession(opts *RootOptions, cmd *cobra.Command, fn func(f *OutputFormatter, s *session) error) error {
	f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	// Flushed on every exit path, failures included.
	defer opts.syncLogger()

	s, err := opts.openSession(cmd.Context())
	if err != nil {
		return f.fail(err)
	}
	defer s.Close()

	if err := fn(f, s); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		s.log.Debug("command failed", zap.String("command", cmd.CommandPath()), zap.String("trace_id", f.TraceID), zap.Error(err))
		return f.fail(err)
	}
	return nil
}

// parseID parses a record id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}
