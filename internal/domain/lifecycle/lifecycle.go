// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as DB pings and graceful shutdown.
const DefaultTimeout = 30 * time.Second
