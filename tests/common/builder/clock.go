//go:build unit || e2e

package builder

import "time"

// FixedNow is the reference instant every builder stamps its records with.
var FixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
