// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of infrastructure
// components (database pings, HTTP server drain).
const DefaultTimeout = 10 * time.Second
