// Package main is the entry point for the gensemen-pro API.
// It wires together all modules and starts the HTTP server.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
