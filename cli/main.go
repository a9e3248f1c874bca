package main

import (
	"log"
	"os"

	"keycalc/app/config"
	"keycalc/app/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configFile string
	logLevel   string
	logFile    string
	colorMode  string

	cfg *config.Config
	log *logger.Logger
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "keycalc",
		Short: "Keypad calculator",
		Long: `keycalc is a basic keypad calculator.

Expressions use + - * / with the usual precedence, % for percent and
"a mod b" for the floating point remainder. Division or mod by zero gives
Infinity or NaN; anything else that cannot be evaluated shows Error.

Use 'keycalc help <command>' for more information on a specific command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Configuration file (JSON, defaults to the user config dir)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error or none")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Log file path")
	rootCmd.PersistentFlags().StringVar(&opts.colorMode, "color", "", "Color output: auto, always or never")

	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newKeysCmd(opts))
	rootCmd.AddCommand(newTUICmd(opts))
	return rootCmd
}

// setup loads the config, applies flag overrides and opens the log.
func (o *options) setup() error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.colorMode != "" {
		cfg.Color = o.colorMode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	path := cfg.LogFile
	if path == "" {
		path = config.DefaultLogPath()
	}
	o.log, err = logger.New(logger.ParseLevel(cfg.LogLevel), path, "cli")
	if err != nil {
		log.Printf("Logging disabled: %v", err)
		o.log = logger.Discard()
	}
	logger.SetGlobal(o.log)
	return nil
}

// close releases the log file opened by setup.
func (o *options) close() {
	if o.log != nil {
		o.log.Close()
	}
}

// execute runs the command tree. The log is closed afterwards whether or not
// the command failed, since cobra skips post-run hooks on errors.
func execute(opts *options, cmd *cobra.Command) error {
	defer opts.close()
	err := cmd.Execute()
	if err != nil && opts.log != nil {
		opts.log.Error("%v", err)
	}
	return err
}

func main() {
	opts := &options{}
	if err := execute(opts, newRootCmd(opts)); err != nil {
		os.Exit(1)
	}
}
