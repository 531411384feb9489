// Package plugin provides the public API for veniceimg host integrations.
// Chat UI hosts should import this package instead of internal packages.
package plugin

// ChatBody is the inbound chat structure handed to the action by the host.
// Only the last message's content is read by the image action.
type ChatBody struct {
	Messages []Message `json:"messages"`
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LastContent returns the content of the last message, or an empty string
// when the body carries no messages.
func (b ChatBody) LastContent() string {
	if len(b.Messages) == 0 {
		return ""
	}
	return b.Messages[len(b.Messages)-1].Content
}

// StatusData is the payload of a status notification.
type StatusData struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// MessageData is the payload of a message notification.
type MessageData struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

// RoleAssistant is the role attached to messages the action emits into the chat.
const RoleAssistant = "assistant"

// FlagHelp represents help information for a single plugin flag.
// This type is part of the plugin protocol and is used by hosts to render
// configuration surfaces for the action.
type FlagHelp struct {
	Name        string `json:"name"`        // Flag name (e.g., "prompt", "model")
	Shorthand   string `json:"shorthand"`   // Short flag (e.g., "p")
	Type        string `json:"type"`        // Type (e.g., "string", "int", "bool")
	Default     string `json:"default"`     // Default value as string
	Description string `json:"description"` // Help text
	Required    bool   `json:"required"`    // Is this flag required?
}

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Type            string `json:"type"` // always "action" for this plugin
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
	PluginProtocol  string `json:"plugin_protocol"` // "go-plugin"
}
