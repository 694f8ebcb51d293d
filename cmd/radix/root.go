package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PocketPi/radix/internal/codec"
	"github.com/PocketPi/radix/internal/config"
	"github.com/PocketPi/radix/internal/diag"
	"github.com/PocketPi/radix/internal/driver"
	"github.com/PocketPi/radix/internal/logging"
	"github.com/PocketPi/radix/internal/observ"
	"github.com/PocketPi/radix/internal/prof"
	"github.com/PocketPi/radix/internal/version"
	"github.com/PocketPi/radix/internal/width"
)

const maxNotices = 16

type rootOptions struct {
	width      width.Width
	base64     codec.Mode
	format     string
	configPath string
	color      string
	quiet      bool
	timings    bool
	logLevel   string
	cpuProfile string
	memProfile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "radix [flags] <input> [<operator> <input2>]",
		Short: "Convert numbers between decimal, hexadecimal and binary",
		Long: `radix prints a number in decimal, hexadecimal and binary, padded to a bit width.

Inputs are decimal, or hexadecimal with a 0x prefix. Input that is not valid
decimal is retried as hexadecimal, so 1a reads as 26. One operation
(+ - * / %) may be applied to two inputs; arithmetic wraps around at 64 bits.

With --base64 the single argument is encoded to or decoded from base64 instead.`,
		Example: `  radix 10
  radix 0x1a -w 32
  radix 5 + 3
  radix -- -8 / 3
  radix --base64 encode ab`,
		Version:       version.Version,
		Args:          validateArgs(opts),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	cmd.Flags().VarP(&opts.width, "width", "w", "pad hex and binary output to this many bits (2|4|8|16|32|64)")
	cmd.Flags().VarP(&opts.base64, "base64", "b", "encode or decode the argument as base64 (encode|decode)")
	cmd.Flags().StringVar(&opts.format, "format", "pretty", "output format (pretty|json)")
	cmd.MarkFlagsMutuallyExclusive("base64", "width")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: nearest "+config.FileName+")")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress notices")
	cmd.PersistentFlags().BoolVar(&opts.timings, "timings", false, "show timing information")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "write a CPU profile to this file")
	cmd.PersistentFlags().StringVar(&opts.memProfile, "mem-profile", "", "write a heap profile to this file on exit")
	_ = cmd.PersistentFlags().MarkHidden("cpu-profile")
	_ = cmd.PersistentFlags().MarkHidden("mem-profile")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func validateArgs(opts *rootOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if opts.base64 != codec.Off {
			if len(args) != 1 {
				return usageErrorf("--base64 %s takes exactly one argument, got %d", opts.base64, len(args))
			}
			return nil
		}
		switch len(args) {
		case 0:
			if cmd.Flags().NFlag() == 0 {
				return nil
			}
			return usageErrorf("missing input")
		case 1, 3:
			return nil
		case 2:
			return usageErrorf("%w: %s", driver.ErrMissingOperand, args[1])
		default:
			return usageErrorf("too many arguments: expected <input> [<operator> <input2>], got %d", len(args))
		}
	}
}

// settings is rootOptions merged with radix.toml: explicit flags win.
type settings struct {
	width  width.Width
	format string
	color  colorMode
	quiet  bool
}

// loadConfig reads the --config file, or the nearest radix.toml when the
// flag is empty.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// resolveColor applies the --color flag over [output].color. Every command
// sees the inherited persistent flag, so root and version agree.
func resolveColor(cmd *cobra.Command, cfg config.Config) (colorMode, error) {
	value, err := cmd.Flags().GetString("color")
	if err != nil {
		return "", err
	}
	if !cmd.Flags().Changed("color") && cfg.Output.Color != "" {
		value = cfg.Output.Color
	}
	mode, err := readColorMode(value)
	if err != nil {
		return "", &usageError{err: err}
	}
	return mode, nil
}

func resolveSettings(cmd *cobra.Command, opts *rootOptions) (settings, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		width:  opts.width,
		format: strings.ToLower(strings.TrimSpace(opts.format)),
		quiet:  opts.quiet || cfg.Notices.Quiet,
	}
	if !cmd.Flags().Changed("width") {
		s.width = cfg.RequestedWidth()
	}
	if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
		s.format = cfg.Output.Format
	}
	switch s.format {
	case "pretty", "json":
	default:
		return settings{}, usageErrorf("unsupported format %q (must be pretty or json)", opts.format)
	}

	if s.color, err = resolveColor(cmd, cfg); err != nil {
		return settings{}, err
	}
	return s, nil
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) (err error) {
	if len(args) == 0 {
		return cmd.Help()
	}

	session, err := prof.Start(opts.cpuProfile, opts.memProfile)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := session.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return &usageError{err: err}
	}
	s, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxNotices)
	var timer *observ.Timer
	if opts.timings {
		timer = observ.NewTimer()
	}
	var reporter diag.Reporter = diag.BagReporter{Bag: bag}
	if s.quiet {
		// notices are info or warning, so an error floor drops them all
		reporter = diag.FilterReporter{Next: reporter, Min: diag.SevError}
	}
	dopts := driver.Options{
		Reporter: reporter,
		Logger:   logging.New(cmd.ErrOrStderr(), level),
		Timer:    timer,
	}

	if opts.base64 != codec.Off {
		err = runBase64(cmd, s, dopts, bag, opts.base64, args[0])
	} else {
		req := driver.Request{Input: args[0], Width: s.width}
		if len(args) == 3 {
			req.Operator, req.Operand = args[1], args[2]
		}
		err = runNumeric(cmd, s, dopts, bag, req)
	}

	if opts.timings {
		if _, werr := fmt.Fprint(cmd.ErrOrStderr(), timer.Summary()); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}
