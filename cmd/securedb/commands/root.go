package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"securedb/internal/app"
)

type rootOptions struct {
	configFile  string
	dir         string
	file        string
	key         string
	cipher      string
	logLevel    string
	metricsFile string

	app *app.App
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:           "securedb",
		Short:         "Encrypted single-file key-value store",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return o.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.app == nil {
				return nil
			}
			return o.app.Close()
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "YAML config file")
	pf.StringVar(&o.dir, "dir", "", "database folder (default ~/.securedb)")
	pf.StringVar(&o.file, "file", "", "database filename (default "+app.DefaultFile+")")
	pf.StringVarP(&o.key, "key", "k", "", "encryption key")
	pf.StringVar(&o.cipher, "cipher", "", "cipher: aes-256-cbc (default) or sealed")
	pf.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")

	root.AddCommand(
		initCmd(o),
		addCmd(o),
		getCmd(o),
		deleteCmd(o),
		clearCmd(o),
		keysCmd(o),
		dumpCmd(o),
	)
	return root
}

func (o *rootOptions) open(cmd *cobra.Command) error {
	cfg, err := app.NewConfig(o.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = o.dir
	}
	if flags.Changed("file") {
		cfg.File = o.file
	}
	if flags.Changed("cipher") {
		cfg.Cipher = o.cipher
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}

	if cfg.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		cfg.Dir = filepath.Join(home, ".securedb")
		if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
			return err
		}
	}
	if o.key == "" {
		return fmt.Errorf("encryption key required (-k)")
	}

	o.app, err = app.New(*cfg, o.key)
	return err
}
