// Package plugin provides the public API for veniceimg host integrations.
package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// ActionPluginRPC implements the go-plugin Plugin interface for action plugins.
type ActionPluginRPC struct {
	plugin.Plugin
	Impl ActionPlugin
}

// Server returns an RPC server for this plugin.
func (p *ActionPluginRPC) Server(b *plugin.MuxBroker) (any, error) {
	return &ActionRPCServer{Impl: p.Impl, broker: b}, nil
}

// Client returns an RPC client for this plugin.
func (p *ActionPluginRPC) Client(b *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &ActionRPCClient{client: c, broker: b}, nil
}

// RunArgs carries one invocation across the plugin boundary. EmitterID is a
// broker stream ID on which the host serves its Emitter, so notifications can
// flow back while Run is still in progress.
type RunArgs struct {
	Body      ChatBody
	EmitterID uint32
}

// ActionRPCServer is the RPC server implementation for action plugins.
type ActionRPCServer struct {
	Impl   ActionPlugin
	broker *plugin.MuxBroker
}

// Run implements the RPC method for action invocation. It dials back to the
// host's emitter stream and hands the resulting Emitter to the implementation.
func (s *ActionRPCServer) Run(args RunArgs, resp *string) error {
	conn, err := s.broker.Dial(args.EmitterID)
	if err != nil {
		return err
	}

	client := rpc.NewClient(conn)
	defer client.Close()

	emitter := &EmitterRPCClient{client: client}
	if err := s.Impl.Run(context.Background(), args.Body, emitter); err != nil {
		*resp = err.Error()
		return err
	}
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *ActionRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// GetFlagHelp implements the RPC method for fetching flag help.
func (s *ActionRPCServer) GetFlagHelp(_ any, resp *[]FlagHelp) error {
	*resp = s.Impl.GetFlagHelp()
	return nil
}

// ActionRPCClient is the RPC client implementation for action plugins.
type ActionRPCClient struct {
	client *rpc.Client
	broker *plugin.MuxBroker
}

// Run calls the remote Run method, serving the given emitter on a broker
// stream for the duration of the call.
func (c *ActionRPCClient) Run(_ context.Context, body ChatBody, emitter Emitter) error {
	id := c.broker.NextId()
	go c.broker.AcceptAndServe(id, &EmitterRPCServer{Impl: emitter})

	var errMsg string
	if err := c.client.Call("Plugin.Run", RunArgs{Body: body, EmitterID: id}, &errMsg); err != nil {
		return err
	}
	if errMsg != "" {
		return &RPCError{Message: errMsg}
	}
	return nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *ActionRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}

// GetFlagHelp calls the remote GetFlagHelp method.
func (c *ActionRPCClient) GetFlagHelp() []FlagHelp {
	var help []FlagHelp
	err := c.client.Call("Plugin.GetFlagHelp", new(any), &help)
	if err != nil {
		return []FlagHelp{}
	}
	return help
}

// EmitStatusArgs is the wire form of an Emitter.EmitStatus call.
type EmitStatusArgs struct {
	Description string
	Done        bool
}

// EmitMessageArgs is the wire form of an Emitter.EmitMessage call.
type EmitMessageArgs struct {
	Content string
	Role    string
}

// EmitterRPCServer serves a host-side Emitter over a broker stream.
type EmitterRPCServer struct {
	Impl Emitter
}

// EmitStatus implements the RPC method for status notifications.
func (s *EmitterRPCServer) EmitStatus(args EmitStatusArgs, _ *struct{}) error {
	return s.Impl.EmitStatus(args.Description, args.Done)
}

// EmitMessage implements the RPC method for message notifications.
func (s *EmitterRPCServer) EmitMessage(args EmitMessageArgs, _ *struct{}) error {
	return s.Impl.EmitMessage(args.Content, args.Role)
}

// EmitterRPCClient is the plugin-side view of the host's Emitter.
type EmitterRPCClient struct {
	client *rpc.Client
}

// EmitStatus calls the remote EmitStatus method.
func (c *EmitterRPCClient) EmitStatus(description string, done bool) error {
	return c.client.Call("Plugin.EmitStatus", EmitStatusArgs{Description: description, Done: done}, new(struct{}))
}

// EmitMessage calls the remote EmitMessage method.
func (c *EmitterRPCClient) EmitMessage(content, role string) error {
	return c.client.Call("Plugin.EmitMessage", EmitMessageArgs{Content: content, Role: role}, new(struct{}))
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}
