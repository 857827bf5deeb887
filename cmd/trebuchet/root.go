package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/trebuchet"
	"github.com/tsawler/trebuchet/calibrate"
	"github.com/tsawler/trebuchet/format"
	"github.com/tsawler/trebuchet/internal/config"
	"github.com/tsawler/trebuchet/internal/logging"
)

const version = "0.1.0"

// app carries state shared by subcommands after flags and configuration
// have been resolved.
type app struct {
	envFile   string
	legacy    bool
	normalize bool
	formatArg string
	verbose   bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "trebuchet",
		Short:         "Compute calibration values of text documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file with TREBUCHET_* settings")
	flags.BoolVar(&a.legacy, "legacy", false, "count literal digits only")
	flags.BoolVar(&a.normalize, "normalize", false, "apply NFKC normalization before scanning")
	flags.StringVar(&a.formatArg, "format", "auto", "input format: auto, text, html or image")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(newSumCmd(a), newLinesCmd(a), newVersionCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return a.fail(cmd, err)
	}
	if a.legacy {
		cfg.Mode = calibrate.ModeLegacy
	}
	if a.normalize {
		cfg.Normalize = true
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	if a.formatArg != "auto" && format.Parse(a.formatArg) == format.Unknown {
		return a.fail(cmd, fmt.Errorf("unknown format %q", a.formatArg))
	}
	return nil
}

// fail prints err to stderr and returns it so cobra exits non-zero.
func (a *app) fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "trebuchet: %v\n", err)
	return err
}

// source builds a Calibration for name, reading stdin for "" or "-".
func (a *app) source(name string, stdin io.Reader) *trebuchet.Calibration {
	var c *trebuchet.Calibration
	if name == "" || name == "-" {
		c = trebuchet.FromReader(stdin)
	} else {
		c = trebuchet.Open(name)
	}

	c = c.Mode(a.cfg.Mode).OCRLanguage(a.cfg.OCRLanguage)
	if a.cfg.Normalize {
		c = c.Normalize()
	}
	if f := format.Parse(a.formatArg); f != format.Unknown {
		c = c.Format(f)
	}
	return c
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trebuchet %s\n", version)
		},
	}
}
