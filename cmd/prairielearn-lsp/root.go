package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"github.com/tliron/kutil/terminal"
)

var (
	configPath string
	colorize   string
)

var rootCmd = &cobra.Command{
	Use:   "prairielearn-lsp",
	Short: "Language server linking PrairieLearn assessments to their questions",
	Long: `prairielearn-lsp serves document links for PrairieLearn infoAssessment.json files:
every question id under zones[*].questions[*] links to questions/<id>/question.html
in the enclosing course.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(configPath); err != nil {
			return err
		}
		if err := initializeColorization(colorize); err != nil {
			return err
		}
		return configureLogging(config.GetString(keyLogLevel), config.GetString(keyLogFile))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a configuration file (yaml, json or toml)")
	flags.StringVar(&colorize, "colorize", "true", "colorize output: true, false or force")
	flags.String("log-level", defaultLogLevel, "log level: critical, error, warning, notice, info or debug")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	bindFlag(keyLogLevel, flags.Lookup("log-level"))
	bindFlag(keyLogFile, flags.Lookup("log-file"))
}

func initializeColorization(colorize string) error {
	cleanupStdout, cleanupStderr, err := terminal.InitializeColorization(colorize)
	if err != nil {
		return err
	}
	for _, cleanup := range []terminal.CleanupFunc{cleanupStdout, cleanupStderr} {
		if cleanup != nil {
			atexit.Register(func() {
				if err := cleanup(); err != nil {
					log.Warningf("restoring terminal: %s", err.Error())
				}
			})
		}
	}
	return nil
}
