// Veniceimg - A Venice AI image generation action for chat UIs
//
// Veniceimg turns the latest user chat message into an image-generation
// prompt, calls the Venice AI API, and streams the resulting images back
// into the chat as markdown.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/veniceimg/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
