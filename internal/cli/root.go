// Package cli provides the command-line interface for veniceimg.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/veniceimg/internal/version"
)

// NewRootCmd constructs the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "veniceimg",
		Short: "Venice AI image generation action for chat UIs",
		Long: `Veniceimg is a chat action plugin that turns the latest user message into
an image-generation prompt, calls the Venice AI API, and streams the
resulting images back into the chat as markdown.

Inline overrides such as "width: 512" or "style_preset: Photographic" in
the message adjust a single request without touching the configuration.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newModelsCmd())

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.String())
		},
	}
}
