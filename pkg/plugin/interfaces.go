// Package plugin provides the public API for veniceimg host integrations.
package plugin

import (
	"context"
)

// Emitter is the capability the host hands to the action for streaming
// notifications back into the chat. Emissions are fire-and-forget: the action
// does not wait for any acknowledgment beyond transport delivery.
type Emitter interface {
	// EmitStatus sends a status notification (e.g. progress or completion).
	EmitStatus(description string, done bool) error

	// EmitMessage sends a chat message notification with the given role.
	EmitMessage(content, role string) error
}

// ActionPlugin is the interface that action plugins must implement for
// go-plugin RPC.
type ActionPlugin interface {
	// Run executes the action for one chat turn, streaming notifications
	// through the emitter. A nil error means the invocation completed,
	// including the silent no-op case.
	Run(ctx context.Context, body ChatBody, emitter Emitter) error

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo

	// GetFlagHelp returns help information for plugin flags.
	GetFlagHelp() []FlagHelp
}
