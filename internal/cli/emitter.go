package cli

import (
	"fmt"
	"io"
)

// consoleEmitter adapts the plugin emitter interface to terminal output for
// one-shot CLI runs. Messages (the markdown) go to stdout; status updates go
// to stderr so the markdown stays pipeable.
type consoleEmitter struct {
	out        io.Writer
	errOut     io.Writer
	showStatus bool
}

// EmitStatus writes a status line to stderr when attached to a terminal.
func (e *consoleEmitter) EmitStatus(description string, done bool) error {
	if !e.showStatus {
		return nil
	}
	_, err := fmt.Fprintln(e.errOut, description)
	return err
}

// EmitMessage writes the message content to stdout.
func (e *consoleEmitter) EmitMessage(content, _ string) error {
	_, err := fmt.Fprintln(e.out, content)
	return err
}
