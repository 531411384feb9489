package plugin

import (
	"fmt"
	"io"
	"log"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"
)

// Host launches and talks to a veniceimg action plugin binary. The underlying
// process is started lazily on first use and reused across invocations until
// Close is called.
type Host struct {
	path      string
	verbose   bool
	client    *goplugin.Client
	rpcClient *ActionRPCClient
}

// NewHost creates a host for the plugin binary at the given path.
func NewHost(path string) *Host {
	return NewHostWithVerbose(path, false)
}

// NewHostWithVerbose creates a host with verbose plugin logging control.
func NewHostWithVerbose(path string, verbose bool) *Host {
	return &Host{path: path, verbose: verbose}
}

// Action returns the action client, starting the plugin process if needed.
func (h *Host) Action() (*ActionRPCClient, error) {
	if h.rpcClient != nil {
		return h.rpcClient, nil
	}

	// Configure logger based on verbose flag.
	var logger hclog.Logger
	if h.verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	h.client = goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]goplugin.Plugin{
			ActionPluginName: &ActionPluginRPC{},
		},
		Cmd:              exec.Command(h.path, "serve"),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           logger,
	})

	rpcClient, err := h.client.Client()
	if err != nil {
		h.client.Kill()
		h.client = nil
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(ActionPluginName)
	if err != nil {
		h.client.Kill()
		h.client = nil
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	h.rpcClient = raw.(*ActionRPCClient)
	return h.rpcClient, nil
}

// Close kills the plugin process and drops the connection.
func (h *Host) Close() {
	if h.client != nil {
		h.client.Kill()
		h.client = nil
		h.rpcClient = nil
	}
}
