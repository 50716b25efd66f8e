// Package cli implements the sigpad-cli commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sigpad/internal/config"
	"sigpad/internal/logging"
	"sigpad/pkg/signature"
)

const (
	LOGO = `     _                       _
 ___(_) __ _ _ __   __ _  __| |
/ __| |/ _` + "`" + ` | '_ \ / _` + "`" + ` |/ _` + "`" + ` |
\__ \ | (_| | |_) | (_| | (_| |
|___/_|\__, | .__/ \__,_|\__,_|
       |___/|_|
`
)

// session carries the state shared by the commands of one invocation.
type session struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	s := &session{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "sigpad-cli",
		Short: "Render signatures from recorded pointer-event scripts.",
		Long: LOGO + `sigpad-cli replays pointer events into a resolution-independent signature
and renders it at any size as PNG, JPEG or PDF.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.cfgFile, "config", "", "config file (default is $HOME/.sigpad.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error")
	s.v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("loglevel"))

	rootCmd.AddCommand(newRenderCmd(s), newInfoCmd(s))
	return rootCmd
}

// init reads the config file and sets up logging.
func (s *session) init() error {
	cfg, err := config.Load(s.v, s.cfgFile)
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
	s.cfg = cfg
	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
