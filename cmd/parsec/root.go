package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parsec-go/parsec/internal/x"
)

// rootCmd is the base command when parsec is invoked with no subcommand.
var rootCmd = &cobra.Command{
	Use:   "parsec",
	Short: "parsec: parser combinator demo grammars",
	Long: `
parsec drives the example grammars built on top of the parsec combinator
library -- json, dql, and calc -- against one or more input files, and
prints either the decoded value or a rendered parse failure.
`,
}

var rootConf = viper.New()

func init() {
	rootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over defaults, overridden by "+
			"environment variables and flags.")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug-level logging.")
	_ = rootConf.BindPFlags(rootCmd.PersistentFlags())
	rootConf.SetEnvPrefix("PARSEC")
	rootConf.AutomaticEnv()

	cobra.OnInitialize(func() {
		if home, err := os.UserHomeDir(); err == nil {
			rootConf.AddConfigPath(home)
			rootConf.SetConfigName(".parsec")
		}
		if cfg := rootConf.GetString("config"); cfg != "" {
			rootConf.SetConfigFile(cfg)
		}
		x.Ignore(rootConf.ReadInConfig())
	})

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
}

func newLogger() *x.Logger {
	return x.NewLogger(rootConf.GetBool("debug"))
}

// execute adds all child commands to rootCmd and runs it. Called once from
// main.main. An error from Execute (bad flags, an unknown grammar name) has
// nowhere further to propagate to, so it goes through x.Check.
func execute() {
	x.Check(rootCmd.Execute())
}
