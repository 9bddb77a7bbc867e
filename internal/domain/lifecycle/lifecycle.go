// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps (DB ping, server drain).
const DefaultTimeout = 10 * time.Second
