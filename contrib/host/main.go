// host - Minimal chat host for the veniceimg action plugin
//
// This is an example host that launches a veniceimg binary over the go-plugin
// protocol, sends it one chat message, and prints the notifications the
// action streams back. It shows everything a real chat UI needs to integrate
// the action:
// - Launching the plugin process and dispensing the "action" plugin
// - Implementing the Emitter interface to receive status and message
//   notifications while the action is still running
// - Reading plugin metadata and flag help
//
// Build:
//   go build -o host
//
// Usage:
//   VENICE_API_KEY=... ./host /path/to/veniceimg "a lighthouse at dusk, width: 512"
//
// Author: Veniceimg Contributors
// License: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmylchreest/veniceimg/pkg/plugin"
)

// printEmitter prints notifications as they arrive from the plugin.
type printEmitter struct{}

// EmitStatus prints a status notification.
func (e *printEmitter) EmitStatus(description string, done bool) error {
	fmt.Printf("[status done=%v] %s\n", done, description)
	return nil
}

// EmitMessage prints a message notification.
func (e *printEmitter) EmitMessage(content, role string) error {
	fmt.Printf("[message role=%s] %s\n", role, content)
	return nil
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <plugin-binary> <prompt>\n", os.Args[0])
		os.Exit(1)
	}

	host := plugin.NewHost(os.Args[1])
	defer host.Close()

	action, err := host.Action()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to plugin: %v\n", err)
		os.Exit(1)
	}

	info, err := action.GetMetadata()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get metadata: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("connected to %s %s (%s)\n", info.Name, info.Version, info.Description)

	body := plugin.ChatBody{
		Messages: []plugin.Message{
			{Role: "user", Content: os.Args[2]},
		},
	}

	if err := action.Run(context.Background(), body, &printEmitter{}); err != nil {
		fmt.Fprintf(os.Stderr, "action failed: %v\n", err)
		os.Exit(1)
	}
}
