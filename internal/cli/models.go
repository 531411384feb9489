package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/veniceimg/internal/config"
	"github.com/jmylchreest/veniceimg/internal/venice"
)

// newModelsCmd creates the models command, which lists the image models the
// configured API endpoint offers.
func newModelsCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List available image models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.APIKey == "" {
				return fmt.Errorf("no API key configured (set VENICE_API_KEY or --api-key)")
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			client := venice.New(cfg.BaseURL, cfg.APIKey, cfg.Timeout, cliLogger(verbose))

			models, err := client.ListModels(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Available image models (%d):\n", len(models))
			for _, m := range models {
				marker := "  "
				if m.ID == cfg.Model {
					marker = "* "
				}
				fmt.Fprintf(out, "%s%s\n", marker, m.ID)
			}

			return nil
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	return cmd
}
