package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minbool.dev/pkg/minbool/internal/adapter"
	"minbool.dev/pkg/minbool/internal/domain"
)

var serveAddrFlag string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		Long: `Serve the analysis pipeline over HTTP:

  POST /api/parse     analyze an expression
  POST /api/validate  validate without evaluating
  POST /api/simplify  minimize an expression
  GET  /api/examples  list the example catalog

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := adapter.NewAPIServer(
				viper.GetString(serveAddrConfigKey),
				analyzer.Analyze,
				analyzer.Validate,
				domain.Stats,
				catalog,
			)

			return server.Run(ctx)
		},
	}

	configureServeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func configureServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&serveAddrFlag, serveAddrFlagName, "a", viper.GetString(serveAddrConfigKey), "listen address for the HTTP API")
	bindFlagToConfig(cmd.Flags().Lookup(serveAddrFlagName), serveAddrConfigKey)
}
