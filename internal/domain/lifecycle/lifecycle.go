// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived
// resources such as the HTTP server and database pools.
const DefaultTimeout = 10 * time.Second
