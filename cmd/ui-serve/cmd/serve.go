package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/portfolio/internal/preview"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page",
	Long: `Serve the static portfolio directory over HTTP.

Requests for / return index.html and .wasm files are served as
application/wasm. When checking is enabled the index markup is verified
once at startup and any missing elements are logged as warnings.

Examples:
  ui-serve serve --dir web --listen 127.0.0.1:4173
  PORTFOLIO_CHECK=false ui-serve serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "127.0.0.1:4173", "address to serve the page on")
	serveCmd.Flags().String("dir", "web", "directory containing index.html and main.wasm")
	serveCmd.Flags().Bool("check", true, "check index.html markup on startup")

	for _, key := range []string{"listen", "dir", "check"} {
		_ = serveViper.BindPFlag(key, serveCmd.Flags().Lookup(key))
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(cmd.OutOrStdout())
	return preview.Serve(ctx, preview.Config{
		Listen: serveViper.GetString("listen"),
		Dir:    serveViper.GetString("dir"),
		Check:  serveViper.GetBool("check"),
	}, logger)
}
