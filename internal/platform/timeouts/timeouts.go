// Package timeouts defines shared timeout constants used by the drill
// service and its clients.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the drill service.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single drill request from the
// practice client.
const GRPCRequest = 2 * time.Second

// Shutdown limits how long the drill server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
