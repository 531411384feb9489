package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	goplug "github.com/hashicorp/go-plugin"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/veniceimg/internal/action"
	"github.com/jmylchreest/veniceimg/internal/config"
	"github.com/jmylchreest/veniceimg/pkg/plugin"
)

// newServeCmd creates the serve command. This is what a chat UI host launches:
// the process serves the action over go-plugin RPC until the host kills it.
func newServeCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the action over the go-plugin protocol",
		Long: `Serve runs the image action as a go-plugin server. Hosts launch this
command and dispense the "action" plugin; notifications stream back to the
host over the same connection while a request is in flight.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := serveLogger(verbose)

			goplug.Serve(&goplug.ServeConfig{
				HandshakeConfig: plugin.Handshake,
				Plugins: map[string]goplug.Plugin{
					plugin.ActionPluginName: &plugin.ActionPluginRPC{
						Impl: action.New(cfg, logger),
					},
				},
				Logger: logger,
			})
			return nil
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	return cmd
}

// serveLogger configures the plugin-side logger. Output goes to stderr, which
// go-plugin forwards to the host's log stream.
func serveLogger(verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "veniceimg",
		Output: os.Stderr,
		Level:  level,
	})
}
