package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/veniceimg/internal/action"
	"github.com/jmylchreest/veniceimg/internal/config"
	"github.com/jmylchreest/veniceimg/pkg/plugin"
)

// newGenerateCmd creates the generate command, a one-shot run of the action
// without a plugin host: the prompt comes from the arguments and the image
// markdown is printed to stdout.
func newGenerateCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Generate an image from a prompt",
		Long: `Generate runs a single image generation from the command line. The prompt
may contain the same inline overrides as a chat message, for example:

  veniceimg generate a lighthouse at dusk, width: 512, height: 512

The resulting markdown is printed to stdout; status updates go to stderr
when attached to a terminal.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.APIKey == "" {
				return fmt.Errorf("no API key configured (set VENICE_API_KEY or --api-key)")
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := cliLogger(verbose)

			act := action.New(cfg, logger)
			body := plugin.ChatBody{
				Messages: []plugin.Message{
					{Role: "user", Content: strings.Join(args, " ")},
				},
			}
			emitter := &consoleEmitter{
				out:        cmd.OutOrStdout(),
				errOut:     cmd.ErrOrStderr(),
				showStatus: term.IsTerminal(int(os.Stderr.Fd())),
			}

			return act.Run(cmd.Context(), body, emitter)
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	return cmd
}

// cliLogger configures logging for one-shot commands. Output stays on stderr
// and is quiet unless verbose is requested.
func cliLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "veniceimg",
		Output: os.Stderr,
		Level:  level,
	})
}
