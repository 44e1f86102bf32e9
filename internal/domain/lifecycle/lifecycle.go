// Package lifecycle holds shared bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 15 * time.Second
