// Package cli implements the picofmt command, a printf(1) built on the
// picofmt engine.
//
// Configuration is resolved with the following precedence:
//  1. command-line flags (--model, --float, ...)
//  2. PICOFMT_<KEY> environment variables (PICOFMT_MODEL, PICOFMT_LONG_LONG, ...)
//  3. the YAML file named by --config or PICOFMT_CONFIG
//  4. built-in defaults
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bjaus/picofmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrMissingFormat is returned when no format string is given.
var ErrMissingFormat = errors.New("missing format string")

const envPrefix = "PICOFMT"

// keys overridable by flags and environment, mapped to their flag names.
var overrideFlags = map[string]string{
	"model":             "model",
	"float":             "float",
	"exponential":       "exponential",
	"long_long":         "long-long",
	"ptrdiff":           "ptrdiff",
	"default_precision": "precision",
	"max_float":         "max-float",
	"ntoa_buffer_size":  "ntoa-buffer",
	"ftoa_buffer_size":  "ftoa-buffer",
}

// Execute runs the picofmt command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "picofmt [flags] FORMAT [ARG...]",
		Short: "Format and print arguments like printf(1)",
		Long: `picofmt renders FORMAT with the given arguments using the picofmt engine,
which reproduces an embedded C printf byte for byte. Backslash escapes in
FORMAT are interpreted. Arguments are converted according to the directive
that consumes them.

Extra specifier:
  %S    string padded and truncated by terminal columns`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrMissingFormat
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v, args)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file (or PICOFMT_CONFIG)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("model", string(picofmt.LP64), "data model (lp64, llp64, ilp32)")
	flags.Bool("float", true, "enable %f")
	flags.Bool("exponential", true, "enable %e and %g")
	flags.Bool("long-long", true, "enable 64-bit ll conversions")
	flags.Bool("ptrdiff", true, "enable the t length modifier")
	flags.Int("precision", 6, "default float precision")
	flags.Float64("max-float", 1e9, "largest magnitude printed with %f")
	flags.Int("ntoa-buffer", 32, "integer conversion buffer size")
	flags.Int("ftoa-buffer", 32, "float conversion buffer size")

	root.Flags().Int("size", 0, "render into a buffer of this many bytes, including the terminator")
	root.Flags().Bool("count", false, "print the rendered length instead of the output")
	root.Flags().Bool("no-escapes", false, "do not interpret backslash escapes in FORMAT")
	// everything after FORMAT is an argument, even "-1"
	root.Flags().SetInterspersed(false)

	bindFlags(v, flags)

	root.AddCommand(newConfigCommand(v), newScanCommand(v))
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, name := range overrideFlags {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
}

func newConfigCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log_level"))
			if err != nil {
				return err
			}
			cfg, err := loadConfig(v, logger)
			if err != nil {
				return err
			}
			return picofmt.WriteConfig(cmd.OutOrStdout(), cfg)
		},
	}
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// loadConfig layers the config file, environment and flags over the
// defaults.
func loadConfig(v *viper.Viper, logger *slog.Logger) (picofmt.Config, error) {
	cfg := picofmt.DefaultConfig()
	if path := v.GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = picofmt.ParseConfig(data); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("loaded config file", "path", path)
	}

	if v.IsSet("model") {
		m, err := picofmt.ParseModel(strings.ToLower(v.GetString("model")))
		if err != nil {
			return cfg, err
		}
		cfg.Model = m
	}
	if v.IsSet("float") {
		cfg.Float = v.GetBool("float")
	}
	if v.IsSet("exponential") {
		cfg.Exponential = v.GetBool("exponential")
	}
	if v.IsSet("long_long") {
		cfg.LongLong = v.GetBool("long_long")
	}
	if v.IsSet("ptrdiff") {
		cfg.PtrDiff = v.GetBool("ptrdiff")
	}
	if v.IsSet("default_precision") {
		cfg.DefaultPrecision = v.GetInt("default_precision")
	}
	if v.IsSet("max_float") {
		cfg.MaxFloat = v.GetFloat64("max_float")
	}
	if v.IsSet("ntoa_buffer_size") {
		cfg.NtoaBufferSize = v.GetInt("ntoa_buffer_size")
	}
	if v.IsSet("ftoa_buffer_size") {
		cfg.FtoaBufferSize = v.GetInt("ftoa_buffer_size")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logger.Debug("effective config", "model", cfg.Model, "float", cfg.Float, "exponential", cfg.Exponential)
	return cfg, nil
}

// setup builds the logger and a printer with the effective config and the
// command's extension specifiers.
func setup(cmd *cobra.Command, v *viper.Viper) (*picofmt.Printer, *slog.Logger, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log_level"))
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loadConfig(v, logger)
	if err != nil {
		return nil, nil, err
	}
	registry := picofmt.NewRegistry()
	registry.Register('S', picofmt.WideString)
	p, err := picofmt.New(picofmt.WithConfig(cfg), picofmt.WithRegistry(registry))
	if err != nil {
		return nil, nil, err
	}
	return p, logger, nil
}

func runRender(cmd *cobra.Command, v *viper.Viper, args []string) error {
	p, logger, err := setup(cmd, v)
	if err != nil {
		return err
	}

	format := args[0]
	if noEscapes, _ := cmd.Flags().GetBool("no-escapes"); !noEscapes {
		format = unescape(format)
	}
	pargs, err := p.ParseArgs(format, args[1:])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	size, _ := cmd.Flags().GetInt("size")
	count, _ := cmd.Flags().GetBool("count")
	switch {
	case count:
		n := p.Render(nil, format, pargs)
		_, err = fmt.Fprintln(out, n)
		return err
	case size > 0:
		buf := make([]byte, size)
		n := p.Vsnprintf(buf, format, pargs)
		logger.Debug("bounded render", "length", n, "capacity", size, "truncated", n >= size)
		_, err = out.Write(buf[:min(n, size-1)])
		return err
	default:
		n, err := p.Vfprintf(out, format, pargs)
		logger.Debug("rendered", "length", n)
		return err
	}
}
