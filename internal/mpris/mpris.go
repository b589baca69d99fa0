//go:build linux

// Package mpris exposes the mixer to desktop media keys over MPRIS.
package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"
)

// Adapter connects the mixer to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(mx Controller) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("bulle", &rootAdapter{}, &playerAdapter{mixer: mx}),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}
