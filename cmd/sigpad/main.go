package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sigpad/internal/config"
	"sigpad/internal/gui"
	"sigpad/internal/logging"
	"sigpad/pkg/signature"
)

func main() {
	var cfgFile string
	v := config.New()

	cmd := &cobra.Command{
		Use:           "sigpad",
		Short:         "Capture a signature on a resizable pad.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
				return err
			}
			signature.SetLogger(logging.Log)

			gui.NewApp(cfg).Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sigpad.yaml)")
	cmd.Flags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error")
	v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("loglevel"))

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
