// Package cmd implements the ui-serve commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Its-donkey/portfolio/logging"
)

// serveViper holds ui-serve configuration, read from flags and PORTFOLIO_* env.
var serveViper = viper.New()

var rootCmd = &cobra.Command{
	Use:   "ui-serve",
	Short: "Preview server for the portfolio page",
	Long: `ui-serve serves the built portfolio page (index.html, main.wasm and
static assets) and verifies the page markup against the elements the
browser code expects.

Configuration is read from flags or environment variables:
  PORTFOLIO_LISTEN     - listen address (default 127.0.0.1:4173)
  PORTFOLIO_DIR        - static directory (default web)
  PORTFOLIO_CHECK      - check index.html markup on startup (default true)
  PORTFOLIO_LOG_LEVEL  - log level (debug, info, warn, error)`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("executing root command: %w", err)
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = serveViper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	serveViper.SetEnvPrefix("PORTFOLIO")
	serveViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	serveViper.AutomaticEnv()

	serveViper.SetDefault("listen", "127.0.0.1:4173")
	serveViper.SetDefault("dir", "web")
	serveViper.SetDefault("check", true)
	serveViper.SetDefault("log-level", "info")
}

func newLogger(w io.Writer) *logging.Logger {
	if w == nil {
		w = os.Stdout
	}
	return logging.New("ui-serve", logging.ParseLevel(serveViper.GetString("log-level")), w)
}
