package main

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      = DefaultConfig()
	)
	cmd := &cobra.Command{
		Use:   "json2cfg",
		Short: "Convert a JSON training set into an MLIP cfg file",
		Long: `Reads a JSON array of structures (pymatgen dictionaries) with their
energies, forces and stresses, and writes the training configurations
in the cfg format used by MLIP. Settings can be given in a TOML file;
flags set on the command line take precedence.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}
			cfg.Override(cmd.Flags(), flags)
			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			_, err := convert(cfg, logger)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "TOML file with the settings")
	f.StringVarP(&flags.Input, "input", "i", flags.Input, "JSON training set (.json, .json.zst or .json.gz)")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "cfg file to write")
	f.StringVar(&flags.Format, "format", flags.Format, "cfg flavor: mlip-2 or mlip-dev")
	f.IntVar(&flags.Workers, "workers", flags.Workers, "goroutines used to encode the blocks")
	f.StringVar(&flags.Compress, "compress", flags.Compress, "output compression: none, zstd or gzip (default: from the file name)")
	f.IntVar(&flags.CompressionLevel, "compression-level", flags.CompressionLevel, "compression level, 0 for the default")
	f.StringVar(&flags.Plot, "plot", flags.Plot, "save a histogram of the energies per atom to this file")
	f.IntVar(&flags.Bins, "bins", flags.Bins, "bins of the energy histogram")
	f.BoolVarP(&flags.Verbose, "verbose", "v", flags.Verbose, "log every step")
	return cmd
}

// logger writes progress to w. Debugf only writes in verbose mode.
type logger struct {
	*log.Logger
	verbose bool
}

func newLogger(w io.Writer, verbose bool) *logger {
	id := uuid.New().String()[:8]
	return &logger{Logger: log.New(w, fmt.Sprintf("json2cfg[%s] ", id), log.LstdFlags), verbose: verbose}
}

func (l *logger) Debugf(format string, v ...any) {
	if l.verbose {
		l.Printf(format, v...)
	}
}
