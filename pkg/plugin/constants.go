// Package plugin provides the public API for veniceimg host integrations.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.0.1"

	// MinCompatibleVersion is the oldest protocol version this plugin can work with.
	MinCompatibleVersion = "0.0.1"
)

// Handshake is the handshake configuration for the go-plugin protocol.
// This ensures that the action can only connect to compatible hosts.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // Major version from ProtocolVersion
	MagicCookieKey:   "VENICEIMG_PLUGIN",
	MagicCookieValue: "veniceimg_chat_action",
}

// ActionPluginName is the dispense name the host uses to request the action.
const ActionPluginName = "action"
